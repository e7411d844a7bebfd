// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Quad returns a textured, axis-aligned rectangle in the z = 0 plane,
// split into two triangles, covering x..x+width and y..y+height.
// The texture rectangle is u1..u2 horizontally; vTop is used for the
// y+height edge and vBottom for the y edge.
func Quad(x, y, width, height, u1, vTop, u2, vBottom float32) *Mesh {
	x2, y2 := x+width, y+height
	return &Mesh{Stride: TexturedStride, Vertices: []float32{
		x, y2, 0, u1, vTop,
		x, y, 0, u1, vBottom,
		x2, y2, 0, u2, vTop,

		x, y, 0, u1, vBottom,
		x2, y, 0, u2, vBottom,
		x2, y2, 0, u2, vTop,
	}}
}
