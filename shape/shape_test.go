// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereVertexCount(t *testing.T) {
	for _, rings := range []int{3, 4, 7, 16} {
		for _, slices := range []int{3, 5, 8, 32} {
			ms, err := Sphere(1.5, rings, slices)
			require.NoError(t, err)
			assert.Equal(t, TexturedStride, ms.Stride)
			assert.Equal(t, rings*slices*6, ms.VertexCount())
			assert.Zero(t, ms.VertexCount()%3)
			assert.Zero(t, len(ms.Vertices)%TexturedStride)
		}
	}
}

func TestSphereInvalid(t *testing.T) {
	cases := []struct {
		radius        float32
		rings, slices int
	}{
		{1, 2, 8},
		{1, 8, 2},
		{1, 0, 0},
		{1, -3, 5},
		{0, 8, 8},
		{-1, 8, 8},
		{float32(math.NaN()), 8, 8},
	}
	for _, c := range cases {
		ms, err := Sphere(c.radius, c.rings, c.slices)
		assert.Nil(t, ms)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidParameters)
		var ge *GenerationError
		require.True(t, errors.As(err, &ge))
		assert.Equal(t, "sphere", ge.Shape)
	}
}

func TestSphereDeterministic(t *testing.T) {
	a, err := Sphere(2, 12, 24)
	require.NoError(t, err)
	b, err := Sphere(2, 12, 24)
	require.NoError(t, err)
	require.Equal(t, len(a.Vertices), len(b.Vertices))
	for i := range a.Vertices {
		if math.Float32bits(a.Vertices[i]) != math.Float32bits(b.Vertices[i]) {
			t.Fatalf("vertex float %d differs: %v vs %v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestSphereGeometry(t *testing.T) {
	const radius = 2.5
	ms, err := Sphere(radius, 6, 9)
	require.NoError(t, err)
	for n := 0; n < ms.VertexCount(); n++ {
		x, y, z, u, v := ms.Vertex(n)
		assert.InDelta(t, radius, math.Sqrt(float64(x*x+y*y+z*z)), 1e-5, "vertex %d", n)
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1+1e-6))
		// V is the Cartesian height, not a normalized coordinate
		assert.Equal(t, y, v, "vertex %d", n)
	}
}

func TestSphereCellLayout(t *testing.T) {
	ms, err := Sphere(1, 4, 4)
	require.NoError(t, err)
	for cell := 0; cell < ms.VertexCount()/6; cell++ {
		b := cell * 6
		// the second triangle reuses bottom-left and top-right
		assertSameVertex(t, ms, b+2, b+4)
		assertSameVertex(t, ms, b+1, b+5)

		_, topY, _, topLeftU, _ := ms.Vertex(b)
		_, topY2, _, topRightU, _ := ms.Vertex(b + 1)
		_, bottomY, _, bottomLeftU, _ := ms.Vertex(b + 2)
		_, bottomY2, _, bottomRightU, _ := ms.Vertex(b + 3)
		assert.Equal(t, topY, topY2)
		assert.Equal(t, bottomY, bottomY2)
		assert.Equal(t, topLeftU, bottomLeftU)
		assert.Equal(t, topRightU, bottomRightU)
		assert.Less(t, topLeftU, topRightU)
	}
}

func assertSameVertex(t *testing.T, ms *Mesh, a, b int) {
	t.Helper()
	o1, o2 := a*ms.Stride, b*ms.Stride
	assert.Equal(t, ms.Vertices[o1:o1+ms.Stride], ms.Vertices[o2:o2+ms.Stride], "vertices %d and %d", a, b)
}

// All non-degenerate triangles must wind the same way relative to the
// centre, so that face culling keeps or removes the whole surface consistently.
func TestSphereWinding(t *testing.T) {
	ms, err := Sphere(1, 10, 16)
	require.NoError(t, err)
	inward, outward := 0, 0
	for tri := 0; tri < ms.TriangleCount(); tri++ {
		ax, ay, az, _, _ := ms.Vertex(tri * 3)
		bx, by, bz, _, _ := ms.Vertex(tri*3 + 1)
		cx, cy, cz, _, _ := ms.Vertex(tri*3 + 2)
		e1 := [3]float64{float64(bx - ax), float64(by - ay), float64(bz - az)}
		e2 := [3]float64{float64(cx - ax), float64(cy - ay), float64(cz - az)}
		n := [3]float64{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if math.Sqrt(n[0]*n[0]+n[1]*n[1]+n[2]*n[2]) < 1e-6 {
			continue // pole triangles collapse to a line
		}
		centroid := [3]float64{float64(ax+bx+cx) / 3, float64(ay+by+cy) / 3, float64(az+bz+cz) / 3}
		if n[0]*centroid[0]+n[1]*centroid[1]+n[2]*centroid[2] < 0 {
			inward++
		} else {
			outward++
		}
	}
	assert.NotZero(t, inward+outward)
	assert.True(t, inward == 0 || outward == 0, "mixed winding: %d inward, %d outward", inward, outward)
}

func TestNewMesh(t *testing.T) {
	ms, err := NewMesh(make([]float32, 18), PositionStride)
	require.NoError(t, err)
	assert.Equal(t, 6, ms.VertexCount())
	assert.Equal(t, 2, ms.TriangleCount())
	assert.False(t, ms.IsTextured())

	_, err = NewMesh(make([]float32, 16), PositionStride)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewMesh(make([]float32, 10), TexturedStride) // two vertices
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = NewMesh(make([]float32, 12), 4)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestQuad(t *testing.T) {
	ms := Quad(1, 2, 3, 4, 0.25, 0.5, 0.75, 1)
	require.Equal(t, 6, ms.VertexCount())
	x, y, z, u, v := ms.Vertex(0)
	assert.Equal(t, []float32{1, 6, 0, 0.25, 0.5}, []float32{x, y, z, u, v})
	x, y, z, u, v = ms.Vertex(4)
	assert.Equal(t, []float32{4, 2, 0, 0.75, 1}, []float32{x, y, z, u, v})
}
