// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the [Context] capability interface that every
// graphics backend implements, and [ContextBase], which carries the
// backend-independent semantics on top of a driver's [Device].
//
// Exactly one driver is selected at build time by importing
// cogentcore.org/famine/render/driver.
package render

import (
	"fmt"
	"image/color"

	"cogentcore.org/famine/math32"
	"cogentcore.org/famine/shape"
)

// Context is a render target together with its GPU resource bindings.
// An application is written once against Context and runs unchanged on
// every driver. A Context is used from a single goroutine.
type Context interface {
	// State returns the current lifecycle state of the context.
	State() States

	// Clear fills the render target with the given color.
	Clear(r, g, b, a float32)

	// NewShader compiles and links a shader program from GLSL ES 3.0 sources.
	// Failures are logged and returned as a [*ShaderError].
	NewShader(vertexSrc, fragmentSrc string) (*Shader, error)

	// UseShader makes the given shader the active program.
	UseShader(sh *Shader)

	// NewImageTexture loads the named image resource, suspending the
	// caller until it has finished loading, and uploads it.
	NewImageTexture(name string) (*Texture, error)

	// RequestImageTexture starts loading the named image resource and
	// returns immediately with a texture that is not yet loaded.
	// It becomes usable once the driver's event loop has delivered it.
	RequestImageTexture(name string) *Texture

	// NewDataTexture uploads width x height RGBA pixels and returns
	// a texture that is configured immediately.
	NewDataTexture(width, height int, data []byte) (*Texture, error)

	// UseTexture binds the texture to texture unit 0. For an image texture
	// that has not loaded yet this does nothing, and may be repeated.
	UseTexture(tx *Texture)

	// SetUniformVector4 sets a vec4 uniform of the given shader.
	SetUniformVector4(sh *Shader, name string, value math32.Vector4)

	// SetUniformMatrix4 sets a mat4 uniform of the given shader.
	SetUniformMatrix4(sh *Shader, name string, value math32.Matrix4)

	// SetFontTexture sets the glyph atlas used by DrawText,
	// creating the font shader on first use.
	SetFontTexture(tx *Texture) error

	// DrawMesh uploads the mesh vertices and draws them as a triangle list
	// with the currently bound shader and texture.
	DrawMesh(ms *shape.Mesh)

	// DrawText draws text in the box at x, y of the given size, in
	// normalized device coordinates, one glyph quad per character.
	DrawText(text string, x, y, width, height float32, c color.Color)

	// DisplayWidth returns the width of the drawable surface in pixels.
	DisplayWidth() int

	// DisplayHeight returns the height of the drawable surface in pixels.
	DisplayHeight() int

	// Log writes a diagnostic message to the driver's message sink.
	Log(msg string)

	// ShouldClose returns whether the user or host has asked to close.
	ShouldClose() bool

	// Process presents the frame and handles pending host events.
	Process()

	// Close releases the surface and all driver resources.
	// It is safe to call more than once.
	Close() error
}

// States are the lifecycle states of a [Context]:
// Uninitialized, then Created once, then any interleaving of
// Configuring and Rendering, and finally Closed.
type States int32

const (
	// Uninitialized is the zero state, before the driver has a surface.
	Uninitialized States = iota

	// Created is entered exactly once, when the surface is ready.
	Created

	// Configuring is entered by shader, texture, and uniform operations.
	Configuring

	// Rendering is entered by Clear and draw operations.
	Rendering

	// Closed is entered by Close; no further operations are allowed.
	Closed
)

var statesNames = [...]string{"Uninitialized", "Created", "Configuring", "Rendering", "Closed"}

func (s States) String() string {
	if s < 0 || int(s) >= len(statesNames) {
		return fmt.Sprintf("States(%d)", int32(s))
	}
	return statesNames[s]
}
