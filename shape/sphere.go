// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/famine/math32"
)

// Sphere returns a textured UV-sphere mesh of the given radius,
// with rings latitude bands and slices longitude bands.
// Each band-cell is emitted as two triangles, so the mesh has
// exactly rings*slices*6 vertices.
//
// The polar angle of the band edges runs from Pi/2 to 3*Pi/2, and the
// azimuth from 0 to 2*Pi. U maps the azimuth linearly onto [0, 1];
// V is the Cartesian height of the vertex, not a normalized latitude.
//
// Within a cell, the "top" edge is the larger polar angle and the
// "left" edge is the smaller azimuth. The triangles are
// (top-left, top-right, bottom-left) and
// (bottom-right, bottom-left, top-right), which gives every
// non-degenerate triangle the same orientation about the centre.
func Sphere(radius float32, rings, slices int) (*Mesh, error) {
	if rings < 3 || slices < 3 || !(radius > 0) {
		return nil, &GenerationError{Shape: "sphere",
			Reason: fmt.Sprintf("need rings >= 3, slices >= 3 and radius > 0, got rings=%d slices=%d radius=%v", rings, slices, radius),
			Err:    ErrInvalidParameters}
	}

	anglePerRing := math32.Pi / float32(rings)
	anglePerSlice := 2 * math32.Pi / float32(slices)

	vertices := make([]float32, 0, rings*slices*6*TexturedStride)
	for i := 1; i <= rings; i++ {
		phi := math32.Pi/2 + anglePerRing*float32(i)
		topY := radius * math32.Sin(phi)
		bottomY := radius * math32.Sin(phi-anglePerRing)
		topR := radius * math32.Cos(phi)
		bottomR := radius * math32.Cos(phi-anglePerRing)

		for j := 1; j <= slices; j++ {
			theta := anglePerSlice * float32(j)
			cosLeft, sinLeft := math32.Cos(theta-anglePerSlice), math32.Sin(theta-anglePerSlice)
			cosRight, sinRight := math32.Cos(theta), math32.Sin(theta)

			topX1, topZ1 := topR*cosLeft, topR*sinLeft
			bottomX1, bottomZ1 := bottomR*cosLeft, bottomR*sinLeft
			topX2, topZ2 := topR*cosRight, topR*sinRight
			bottomX2, bottomZ2 := bottomR*cosRight, bottomR*sinRight

			leftU := (theta - anglePerSlice) / (2 * math32.Pi)
			rightU := theta / (2 * math32.Pi)

			vertices = append(vertices,
				topX1, topY, topZ1, leftU, topY,
				topX2, topY, topZ2, rightU, topY,
				bottomX1, bottomY, bottomZ1, leftU, bottomY,

				bottomX2, bottomY, bottomZ2, rightU, bottomY,
				bottomX1, bottomY, bottomZ1, leftU, bottomY,
				topX2, topY, topZ2, rightU, topY,
			)
		}
	}
	return &Mesh{Vertices: vertices, Stride: TexturedStride}, nil
}
