// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"fmt"
	"regexp"
	"strings"

	"cogentcore.org/famine/render"
)

// Ops are the device operations recorded by the offscreen [Context].
type Ops int32

const (
	Clear Ops = iota
	CompileProgram
	BindProgram
	UploadTexture
	BindTexture
	Uniform4f
	UniformMatrix4f
	DrawTriangles
	Present
)

var opsNames = [...]string{"Clear", "CompileProgram", "BindProgram", "UploadTexture", "BindTexture", "Uniform4f", "UniformMatrix4f", "DrawTriangles", "Present"}

func (op Ops) String() string {
	if op < 0 || int(op) >= len(opsNames) {
		return fmt.Sprintf("Ops(%d)", int32(op))
	}
	return opsNames[op]
}

// Command is one recorded device operation. Only the fields relevant
// to Op are set.
type Command struct {
	Op Ops

	// Program is the program id of compile, bind, uniform and draw commands.
	Program int

	// Texture is the texture id of upload and bind commands, and the
	// texture bound at the time of a draw.
	Texture int

	// Name is the uniform name, or the image name of an upload.
	Name string

	// Vector is the clear color or vec4 uniform value.
	Vector [4]float32

	// Matrix is the mat4 uniform value, column-major.
	Matrix [16]float32

	// VertexCount and Stride describe a draw.
	VertexCount int
	Stride      int
}

func (cmd Command) String() string {
	switch cmd.Op {
	case Clear:
		return fmt.Sprintf("Clear %v", cmd.Vector)
	case Uniform4f:
		return fmt.Sprintf("Uniform4f %d %s %v", cmd.Program, cmd.Name, cmd.Vector)
	case UniformMatrix4f:
		return fmt.Sprintf("UniformMatrix4f %d %s", cmd.Program, cmd.Name)
	case DrawTriangles:
		return fmt.Sprintf("DrawTriangles %d vertices (stride %d)", cmd.VertexCount, cmd.Stride)
	case UploadTexture, BindTexture:
		return fmt.Sprintf("%v %d", cmd.Op, cmd.Texture)
	}
	return fmt.Sprintf("%v %d", cmd.Op, cmd.Program)
}

var (
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	versionRe = regexp.MustCompile(`^\s*#version\s+300\s+es\b`)
	inRe      = regexp.MustCompile(`(?m)^\s*in\s+\w+\s+(\w+)\s*;`)
	outRe     = regexp.MustCompile(`(?m)^\s*out\s+\w+\s+(\w+)\s*;`)
)

// checkShader stands in for a GLSL compiler: each stage must declare
// GLSL ES 3.0 and define main, and every fragment input must be a
// vertex output.
func checkShader(sh *render.Shader) error {
	if err := checkStage(render.VertexStage, sh.VertexSource); err != nil {
		return err
	}
	if err := checkStage(render.FragmentStage, sh.FragmentSource); err != nil {
		return err
	}
	outs := map[string]bool{}
	for _, m := range outRe.FindAllStringSubmatch(sh.VertexSource, -1) {
		outs[m[1]] = true
	}
	var missing []string
	for _, m := range inRe.FindAllStringSubmatch(sh.FragmentSource, -1) {
		if !outs[m[1]] {
			missing = append(missing, m[1])
		}
	}
	if len(missing) > 0 {
		return &render.ShaderError{Stage: render.LinkStage, Log: "fragment inputs not written by the vertex shader: " + strings.Join(missing, ", ")}
	}
	return nil
}

func checkStage(stage render.ShaderStages, src string) error {
	switch {
	case !versionRe.MatchString(src):
		return &render.ShaderError{Stage: stage, Log: "ERROR: 0:1: missing #version 300 es"}
	case !mainRe.MatchString(src):
		return &render.ShaderError{Stage: stage, Log: "ERROR: no main function defined"}
	}
	return nil
}
