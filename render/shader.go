// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Shader is a linked shader program owned by a [Context].
type Shader struct {
	// VertexSource is the GLSL ES 3.0 vertex shader source.
	VertexSource string

	// FragmentSource is the GLSL ES 3.0 fragment shader source.
	FragmentSource string

	// Handle is the driver's program object, set on compile.
	Handle any
}

// Attribute names that every shader uses for the interleaved
// mesh layout: position (vec3 read as vec4) and optional uv.
const (
	PositionAttrib = "v_position"
	UVAttrib       = "v_uv"
)

var (
	// ErrShaderCompile is the class of errors from compiling a shader stage.
	ErrShaderCompile = errors.New("render: shader compile failed")

	// ErrShaderLink is the class of errors from linking a shader program.
	ErrShaderLink = errors.New("render: shader link failed")
)

// ShaderStages are the steps of building a shader program.
type ShaderStages int32

const (
	VertexStage ShaderStages = iota
	FragmentStage
	LinkStage
)

func (s ShaderStages) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	case LinkStage:
		return "link"
	}
	return fmt.Sprintf("ShaderStages(%d)", int32(s))
}

// ShaderError reports a shader compile or link failure
// with the driver's info log.
type ShaderError struct {
	Stage ShaderStages
	Log   string
}

func (e *ShaderError) Error() string {
	log := strings.TrimSpace(e.Log)
	if log == "" {
		log = "unknown error"
	}
	if e.Stage == LinkStage {
		return "render: shader program link failed: " + log
	}
	return fmt.Sprintf("render: %v shader compile failed: %s", e.Stage, log)
}

func (e *ShaderError) Unwrap() error {
	if e.Stage == LinkStage {
		return ErrShaderLink
	}
	return ErrShaderCompile
}

// FontVertexShader positions glyph quads directly in clip space.
const FontVertexShader = `#version 300 es

in vec4 v_position;
in vec2 v_uv;

out vec2 f_uv;

void main() {
	gl_Position = v_position;
	f_uv = v_uv;
}
`

// FontFragmentShader tints the atlas coverage (alpha) with u_color.
const FontFragmentShader = `#version 300 es
precision highp float;

uniform vec4 u_color;
uniform sampler2D u_texture;

in vec2 f_uv;

out vec4 out_color;

void main() {
	out_color = u_color * texture(u_texture, f_uv).a;
}
`
