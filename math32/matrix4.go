// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 transform matrix stored in column-major order,
// which is the layout GPU APIs expect for mat4 uniforms: element
// (row i, column j) lives at index 4*j + i.
//
// Matrices compose with the column-vector convention:
// a.Mul(b) is the product A·B, which applied to a vector
// applies B first and then A.
type Matrix4 [16]float32

// NewMatrix4 returns a matrix with the given column-major elements.
func NewMatrix4(data [16]float32) Matrix4 {
	return Matrix4(data)
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Zero4 returns the 4x4 matrix with all elements zero.
func Zero4() Matrix4 {
	return Matrix4{}
}

// Scale4 returns a matrix that scales by the given factor along each axis.
func Scale4(sx, sy, sz float32) Matrix4 {
	m := Identity4()
	m.Set(0, 0, sx)
	m.Set(1, 1, sy)
	m.Set(2, 2, sz)
	return m
}

// RotateX4 returns a matrix rotating by angle radians about the X axis,
// counter-clockwise when looking from +X towards the origin.
func RotateX4(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m.Set(1, 1, c)
	m.Set(1, 2, -s)
	m.Set(2, 1, s)
	m.Set(2, 2, c)
	return m
}

// RotateY4 returns a matrix rotating by angle radians about the Y axis,
// counter-clockwise when looking from +Y towards the origin.
func RotateY4(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m.Set(0, 0, c)
	m.Set(0, 2, s)
	m.Set(2, 0, -s)
	m.Set(2, 2, c)
	return m
}

// RotateZ4 returns a matrix rotating by angle radians about the Z axis,
// counter-clockwise when looking from +Z towards the origin.
func RotateZ4(angle float32) Matrix4 {
	c, s := Cos(angle), Sin(angle)
	m := Identity4()
	m.Set(0, 0, c)
	m.Set(0, 1, -s)
	m.Set(1, 0, s)
	m.Set(1, 1, c)
	return m
}

// Get returns the element at row i, column j.
func (m *Matrix4) Get(i, j int) float32 {
	return m[4*j+i]
}

// Set sets the element at row i, column j.
func (m *Matrix4) Set(i, j int, v float32) {
	m[4*j+i] = v
}

// Mul returns the matrix product m·other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var res Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			res.Set(i, j, m.Get(i, 0)*other.Get(0, j)+
				m.Get(i, 1)*other.Get(1, j)+
				m.Get(i, 2)*other.Get(2, j)+
				m.Get(i, 3)*other.Get(3, j))
		}
	}
	return res
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var res Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			res.Set(j, i, m.Get(i, j))
		}
	}
	return res
}

// Array returns the column-major elements, as uploaded to mat4 uniforms.
func (m Matrix4) Array() [16]float32 {
	return [16]float32(m)
}

// String returns the matrix in row order, one row per line.
func (m Matrix4) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&sb, "[%v %v %v %v]", m.Get(i, 0), m.Get(i, 1), m.Get(i, 2), m.Get(i, 3))
		if i < 3 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
