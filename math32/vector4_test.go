// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector4(t *testing.T) {
	v := Vec4(1, 2, 3, 1)
	assert.Equal(t, Vec4(3, 4, 6, 1), v.Add(Vec4(2, 2, 3, 0)))
	assert.Equal(t, Vec4(0.5, 1, 1.5, 0.5), v.MulScalar(0.5))
	assert.Equal(t, [4]float32{1, 2, 3, 1}, v.Array())
	assert.Equal(t, "(1, 2, 3, 1)", v.String())

	c := NewVector4Color(color.NRGBA{255, 0, 255, 0})
	assert.Equal(t, Vec4(1, 0, 1, 0), c)
	assert.InDelta(t, Pi/2, DegToRad(90), 1e-7)
}
