// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type clearingSurface struct {
	cleared [][4]float32
}

func (s *clearingSurface) FramebufferSize() (width, height int) { return 8, 8 }
func (s *clearingSurface) ShouldClose() bool                    { return false }
func (s *clearingSurface) SwapAndPoll()                         {}
func (s *clearingSurface) Destroy()                             {}

func (s *clearingSurface) Clear(r, g, b, a float32) bool {
	s.cleared = append(s.cleared, [4]float32{r, g, b, a})
	return true
}

func TestClearColorUsesSurface(t *testing.T) {
	s := &clearingSurface{}
	c := &Context{Surface: s}
	c.ClearColor(0.25, 0.5, 0.75, 1)
	assert.Equal(t, [][4]float32{{0.25, 0.5, 0.75, 1}}, s.cleared)
}

func TestCoreSurfaceIsClearer(t *testing.T) {
	var s Surface = &CoreSurface{}
	_, ok := s.(Clearer)
	assert.True(t, ok)

	var g Surface = &GLFWSurface{}
	_, ok = g.(Clearer)
	assert.False(t, ok)
}
