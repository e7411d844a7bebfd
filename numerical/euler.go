// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numerical provides fixed-step integrators for simple
// physical and animation state.
package numerical

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// EulerStep advances state by one explicit Euler step of size dt.
// It calls derivative exactly once to fill derivatives from the current
// state, then sets state[i] += derivatives[i] * dt in index order.
// There is no sub-stepping, clamping, or error control; callers that
// need stability must choose dt accordingly.
//
// state and derivatives must have the same length; a mismatch is a
// programming error and panics.
func EulerStep[F constraints.Float](dt F, state, derivatives []F, derivative func(state, derivatives []F)) {
	if len(state) != len(derivatives) {
		panic(fmt.Sprintf("numerical.EulerStep: state has %d elements but derivatives has %d", len(state), len(derivatives)))
	}
	derivative(state, derivatives)
	for i := range state {
		state[i] += derivatives[i] * dt
	}
}

// Accumulator is a vector value that supports the operations
// needed by an explicit integrator, such as [math32.Vector4].
type Accumulator[V any, F constraints.Float] interface {
	Add(other V) V
	MulScalar(s F) V
}

// EulerStepVectors is [EulerStep] for a state made of vectors:
// state[i] = state[i].Add(derivatives[i].MulScalar(dt)).
func EulerStepVectors[V Accumulator[V, F], F constraints.Float](dt F, state, derivatives []V, derivative func(state, derivatives []V)) {
	if len(state) != len(derivatives) {
		panic(fmt.Sprintf("numerical.EulerStepVectors: state has %d elements but derivatives has %d", len(state), len(derivatives)))
	}
	derivative(state, derivatives)
	for i := range state {
		state[i] = state[i].Add(derivatives[i].MulScalar(dt))
	}
}
