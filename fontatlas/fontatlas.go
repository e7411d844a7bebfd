// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontatlas renders the glyph atlas used by text drawing:
// a grid of [render.AtlasColumns] by [render.AtlasRows] equal cells,
// where cell i holds the glyph of rune [render.FirstGlyph] + i in
// white, with the glyph coverage in the alpha channel.
package fontatlas

import (
	"image"

	"cogentcore.org/famine/render"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LastGlyph is the last rune drawn into the atlas. Cells after it
// are left transparent.
const LastGlyph = '~'

// CellSize is the size of one atlas cell at scale 1: the advance of the
// basic face, which is one pixel wider than its glyph masks, by its height.
var CellSize = image.Pt(basicfont.Face7x13.Advance, basicfont.Face7x13.Height)

// New returns the atlas drawn with the 7x13 basic bitmap font and
// enlarged by the given integer scale without smoothing.
func New(scale int) *image.RGBA {
	atlas := Draw(basicfont.Face7x13, CellSize, basicfont.Face7x13.Ascent)
	if scale <= 1 {
		return atlas
	}
	b := atlas.Bounds()
	big := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), atlas, b, draw.Src, nil)
	return big
}

// Draw renders an atlas with the given face, drawing each glyph with
// its baseline ascent pixels below the top of its cell.
func Draw(face font.Face, cell image.Point, ascent int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cell.X*render.AtlasColumns, cell.Y*render.AtlasRows))
	d := &font.Drawer{Dst: img, Src: image.White, Face: face}
	for r := rune(render.FirstGlyph); r <= LastGlyph; r++ {
		i, _ := render.GlyphIndex(r)
		col, row := i%render.AtlasColumns, i/render.AtlasColumns
		d.Dot = fixed.P(col*cell.X, row*cell.Y+ascent)
		d.DrawString(string(r))
	}
	return img
}
