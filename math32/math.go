// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package
// for the transforms that are uploaded to shader uniforms.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Pi as a float32 friendly untyped constant.
const Pi = math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// Cos returns the cosine of the radian argument x, from chewxy/math32.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x, from chewxy/math32.
func Sin(x float32) float32 {
	return math32.Sin(x)
}
