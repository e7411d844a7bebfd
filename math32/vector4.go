// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image/color"
)

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// It is also used for RGBA colors passed to shader uniforms.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z, and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4Color returns a [Vector4] with the non-premultiplied
// red, green, blue, and alpha components of the given color, in [0, 1].
func NewVector4Color(c color.Color) Vector4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Vector4{float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Array returns the components as an array, in the order expected by vec4 uniforms.
func (v Vector4) Array() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vector4{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

// MulScalar returns this vector with each component multiplied by the given scalar.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// MulMatrix4 returns the column vector v transformed by m, i.e. m·v.
func (v Vector4) MulMatrix4(m *Matrix4) Vector4 {
	return Vector4{m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W}
}
