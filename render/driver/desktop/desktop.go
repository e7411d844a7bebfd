// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package desktop implements the [render] driver for desktop platforms,
// drawing with OpenGL 3.3 core on a GLFW window or on a window owned by
// the native core library.
//
// All calls must be made on the thread that created the context,
// which should be locked with runtime.LockOSThread.
package desktop

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"cogentcore.org/famine/render"
	"cogentcore.org/famine/shape"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init registers the desktop driver as [render.TheDriver].
func Init() {
	render.TheDriver = &render.Driver{Name: "desktop", New: func(opts *render.Options) (render.Context, error) {
		return New(opts)
	}}
}

// Context is the desktop [render.Context].
type Context struct {
	render.ContextBase

	// Surface is the window the context draws to.
	Surface Surface

	// Assets is the filesystem image textures are read from.
	Assets fs.FS

	// AssetPrefix is prepended to image texture names.
	AssetPrefix string

	vao      uint32
	vbo      uint32
	programs []uint32
	textures []uint32
	uniforms map[uint32]map[string]int32
}

// New opens the surface named by opts.Surface and prepares GL state.
func New(opts *render.Options) (*Context, error) {
	if opts.Size.X <= 0 || opts.Size.Y <= 0 {
		return nil, fmt.Errorf("desktop: invalid window size %v", opts.Size)
	}
	sf, err := NewSurface(opts)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		sf.Destroy()
		return nil, fmt.Errorf("desktop: initializing OpenGL: %w", err)
	}
	c := &Context{Surface: sf, Assets: os.DirFS("."), AssetPrefix: opts.AssetPrefix, uniforms: map[uint32]map[string]int32{}}
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	w, h := sf.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	c.Init(c, opts.Title)
	render.Logger().Info("desktop: OpenGL ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return c, nil
}

func (c *Context) ClearColor(r, g, b, a float32) {
	if cl, ok := c.Surface.(Clearer); ok && cl.Clear(r, g, b, a) {
		return
	}
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) CompileProgram(sh *render.Shader) error {
	vert, err := compileShader(gl.VERTEX_SHADER, render.VertexStage, sh.VertexSource)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(gl.FRAGMENT_SHADER, render.FragmentStage, sh.FragmentSource)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return &render.ShaderError{Stage: render.LinkStage, Log: strings.TrimRight(log, "\x00")}
	}
	c.programs = append(c.programs, prog)
	sh.Handle = prog
	return nil
}

func compileShader(kind uint32, stage render.ShaderStages, src string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(render.CoreProfileSource(src) + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &render.ShaderError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

func (c *Context) BindProgram(sh *render.Shader) {
	gl.UseProgram(program(sh))
}

// LoadImage reads the image synchronously; desktop has no event loop
// to defer it to.
func (c *Context) LoadImage(tx *render.Texture) {
	w, h, pix, err := render.OpenImageFS(c.Assets, render.AssetPath(c.AssetPrefix, tx.Name))
	if err != nil {
		c.Print(fmt.Sprintf("Error loading image %q: %v", tx.Name, err))
		tx.SetLoadFailed(err)
		return
	}
	tx.SetLoaded(w, h, pix, nil)
}

func (c *Context) AwaitImage(tx *render.Texture) error {
	return tx.LoadError()
}

func (c *Context) UploadTexture(tx *render.Texture) error {
	var id uint32
	gl.GenTextures(1, &id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tx.Width), int32(tx.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tx.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	if e := gl.GetError(); e != gl.NO_ERROR {
		gl.DeleteTextures(1, &id)
		return fmt.Errorf("desktop: glTexImage2D failed with error 0x%x", e)
	}
	c.textures = append(c.textures, id)
	tx.Handle = id
	if c.BoundTexture() != nil {
		gl.BindTexture(gl.TEXTURE_2D, texture(c.BoundTexture()))
	}
	return nil
}

func (c *Context) BindTexture(tx *render.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture(tx))
}

func (c *Context) uniform(sh *render.Shader, name string) int32 {
	prog := program(sh)
	locs := c.uniforms[prog]
	if locs == nil {
		locs = map[string]int32{}
		c.uniforms[prog] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
		locs[name] = loc
	}
	return loc
}

func (c *Context) Uniform4f(sh *render.Shader, name string, v [4]float32) {
	gl.Uniform4fv(c.uniform(sh, name), 1, &v[0])
}

func (c *Context) UniformMatrix4f(sh *render.Shader, name string, m [16]float32) {
	gl.UniformMatrix4fv(c.uniform(sh, name), 1, false, &m[0])
}

func (c *Context) DrawTriangles(sh *render.Shader, ms *shape.Mesh) {
	prog := program(sh)
	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(ms.Vertices)*4, gl.Ptr(ms.Vertices), gl.STREAM_DRAW)
	stride := int32(ms.Stride * 4)
	if loc := gl.GetAttribLocation(prog, gl.Str(render.PositionAttrib+"\x00")); loc >= 0 {
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointer(uint32(loc), 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	}
	if loc := gl.GetAttribLocation(prog, gl.Str(render.UVAttrib+"\x00")); loc >= 0 {
		if ms.IsTextured() {
			gl.EnableVertexAttribArray(uint32(loc))
			gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, stride, gl.PtrOffset(12))
		} else {
			gl.DisableVertexAttribArray(uint32(loc))
		}
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(ms.VertexCount()))
}

func (c *Context) FramebufferSize() (width, height int) {
	return c.Surface.FramebufferSize()
}

func (c *Context) Print(msg string) {
	render.Logger().Info(msg, "driver", "desktop")
}

func (c *Context) CloseRequested() bool {
	return c.Surface.ShouldClose()
}

func (c *Context) Present() {
	c.Surface.SwapAndPoll()
}

func (c *Context) Destroy() {
	if len(c.textures) > 0 {
		gl.DeleteTextures(int32(len(c.textures)), &c.textures[0])
	}
	for _, p := range c.programs {
		gl.DeleteProgram(p)
	}
	gl.DeleteBuffers(1, &c.vbo)
	gl.DeleteVertexArrays(1, &c.vao)
	c.programs, c.textures, c.uniforms = nil, nil, nil
	c.Surface.Destroy()
}

func program(sh *render.Shader) uint32 {
	p, _ := sh.Handle.(uint32)
	return p
}

func texture(tx *render.Texture) uint32 {
	t, _ := tx.Handle.(uint32)
	return t
}
