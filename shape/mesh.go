// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates interleaved triangle-list vertex buffers
// for primitive and parametric shapes.
package shape

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// Vertex layouts. Every vertex starts with its x, y, z position;
// textured vertices follow it with u, v texture coordinates.
const (
	// PositionStride is the number of floats per untextured vertex.
	PositionStride = 3

	// TexturedStride is the number of floats per textured vertex.
	TexturedStride = 5
)

// ErrInvalidParameters is returned (wrapped in a [GenerationError])
// when shape parameters would produce degenerate geometry.
var ErrInvalidParameters = errors.New("shape: invalid parameters")

// GenerationError records which shape could not be generated and why.
type GenerationError struct {
	// Shape is the name of the generator, e.g. "sphere".
	Shape string

	// Reason describes the offending parameters.
	Reason string

	// Err is the underlying error class.
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("shape: cannot generate %s: %s", e.Shape, e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Mesh is an interleaved triangle-list vertex buffer with no index buffer.
// Each consecutive group of three vertex records is one triangle.
// A Mesh must not be modified after it has been built.
type Mesh struct {
	// Vertices are the interleaved vertex records.
	Vertices []float32

	// Stride is the number of floats per vertex:
	// [PositionStride] or [TexturedStride].
	Stride int
}

// NewMesh returns a mesh over the given vertices, checking that
// they form whole vertex records and whole triangles.
// The mesh takes ownership of the slice.
func NewMesh(vertices []float32, stride int) (*Mesh, error) {
	if stride != PositionStride && stride != TexturedStride {
		return nil, &GenerationError{Shape: "mesh", Reason: fmt.Sprintf("unsupported stride %d", stride), Err: ErrInvalidParameters}
	}
	if len(vertices)%stride != 0 {
		return nil, &GenerationError{Shape: "mesh", Reason: fmt.Sprintf("%d floats is not a whole number of %d-float vertices", len(vertices), stride), Err: ErrInvalidParameters}
	}
	if n := len(vertices) / stride; n%3 != 0 {
		return nil, &GenerationError{Shape: "mesh", Reason: fmt.Sprintf("%d vertices is not a whole number of triangles", n), Err: ErrInvalidParameters}
	}
	return &Mesh{Vertices: vertices, Stride: stride}, nil
}

// VertexCount returns the number of vertex records in the mesh.
func (ms *Mesh) VertexCount() int {
	if ms.Stride == 0 {
		return 0
	}
	return len(ms.Vertices) / ms.Stride
}

// TriangleCount returns the number of triangles in the mesh.
func (ms *Mesh) TriangleCount() int {
	return ms.VertexCount() / 3
}

// IsTextured returns whether the vertices carry texture coordinates.
func (ms *Mesh) IsTextured() bool {
	return ms.Stride == TexturedStride
}

// Vertex returns the position and, for textured meshes,
// the texture coordinates of vertex n.
func (ms *Mesh) Vertex(n int) (x, y, z, u, v float32) {
	o := n * ms.Stride
	x, y, z = ms.Vertices[o], ms.Vertices[o+1], ms.Vertices[o+2]
	if ms.IsTextured() {
		u, v = ms.Vertices[o+3], ms.Vertices[o+4]
	}
	return
}
