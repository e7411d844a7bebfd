// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numerical

import (
	"testing"

	"cogentcore.org/famine/math32"
	"github.com/stretchr/testify/assert"
)

func TestEulerStepConstant(t *testing.T) {
	state := []float32{0}
	derivs := make([]float32, 1)
	calls := 0
	constant := func(state, derivs []float32) {
		calls++
		derivs[0] = 1
	}
	for range 4 {
		EulerStep(0.5, state, derivs, constant)
	}
	assert.Equal(t, []float32{2}, state)
	assert.Equal(t, 4, calls)
}

func TestEulerStepLinearLaw(t *testing.T) {
	const dt = 0.25
	state := []float64{1, -2, 0}
	derivs := make([]float64, len(state))
	rates := []float64{3, 0.5, -4}
	for n := 1; n <= 8; n++ {
		EulerStep(dt, state, derivs, func(_, d []float64) { copy(d, rates) })
		assert.InDelta(t, 1+float64(n)*dt*3, state[0], 1e-12)
		assert.InDelta(t, -2+float64(n)*dt*0.5, state[1], 1e-12)
		assert.InDelta(t, float64(n)*dt*-4, state[2], 1e-12)
	}
}

func TestEulerStepUsesCurrentState(t *testing.T) {
	// exponential growth: x' = x; one step of size dt multiplies by 1+dt
	state := []float64{2}
	derivs := make([]float64, 1)
	EulerStep(0.1, state, derivs, func(s, d []float64) { d[0] = s[0] })
	assert.InDelta(t, 2.2, state[0], 1e-12)
	assert.InDelta(t, 2.0, derivs[0], 1e-12)
}

func TestEulerStepLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		EulerStep(1, []float32{0, 0}, []float32{0}, func(_, _ []float32) {})
	})
}

func TestEulerStepVectors(t *testing.T) {
	// position/velocity pair under constant velocity
	state := []math32.Vector4{math32.Vec4(0, 0, 0, 1)}
	derivs := make([]math32.Vector4, 1)
	velocity := math32.Vec4(1, 2, -1, 0)
	for range 4 {
		EulerStepVectors[math32.Vector4, float32](0.5, state, derivs, func(_, d []math32.Vector4) { d[0] = velocity })
	}
	assert.Equal(t, math32.Vec4(2, 4, -2, 1), state[0])

	assert.Panics(t, func() {
		EulerStepVectors[math32.Vector4, float32](1, state, nil, func(_, _ []math32.Vector4) {})
	})
}
