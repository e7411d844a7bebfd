// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"unicode/utf8"

	"cogentcore.org/famine/shape"
)

// Glyph atlas layout: AtlasColumns x AtlasRows cells, each holding one
// glyph, indexed from FirstGlyph in row-major order from the top left.
const (
	AtlasColumns = 16
	AtlasRows    = 8
	FirstGlyph   = '!'
)

// GlyphIndex returns the atlas cell of r, and false if r has no cell.
func GlyphIndex(r rune) (int, bool) {
	i := int(r) - FirstGlyph
	return i, i >= 0 && i < AtlasColumns*AtlasRows
}

// GlyphUV returns the texture rectangle of atlas cell index:
// u1..u2 horizontally, vTop for the top edge and vBottom for the bottom.
func GlyphUV(index int) (u1, vTop, u2, vBottom float32) {
	const uPerColumn = 1.0 / AtlasColumns
	const vPerRow = 1.0 / AtlasRows
	row := float32(index / AtlasColumns)
	column := float32(index % AtlasColumns)
	u1 = uPerColumn * column
	u2 = u1 + uPerColumn
	vTop = vPerRow * row
	vBottom = vPerRow * (row + 1)
	return
}

// TextMeshes lays text out left to right in the box at x, y of the given
// size, dividing the width evenly between characters, and returns one
// quad per drawable glyph. Characters without an atlas cell, such as
// space, take up their share of the width but produce no quad.
func TextMeshes(text string, x, y, width, height float32) []*shape.Mesh {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}
	charW := width / float32(n)
	meshes := make([]*shape.Mesh, 0, n)
	i := 0
	for _, r := range text {
		if idx, ok := GlyphIndex(r); ok {
			u1, vTop, u2, vBottom := GlyphUV(idx)
			meshes = append(meshes, shape.Quad(x+float32(i)*charW, y, charW, height, u1, vTop, u2, vBottom))
		}
		i++
	}
	return meshes
}
