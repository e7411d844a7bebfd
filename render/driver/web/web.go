// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package web implements the [render] driver for the browser, drawing
// with WebGL2 on the first canvas element of the page.
//
// Image textures are loaded by the browser. NewImageTexture waits for
// the image's load event, and Process waits for the next animation
// frame; both yield to the browser's event loop.
package web

import (
	"fmt"
	"syscall/js"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/famine/render"
	"cogentcore.org/famine/shape"
)

// Init registers the web driver as [render.TheDriver].
func Init() {
	render.TheDriver = &render.Driver{Name: "web", New: func(opts *render.Options) (render.Context, error) {
		return New(opts)
	}}
}

// Context is the web [render.Context].
type Context struct {
	render.ContextBase

	// AssetPrefix is prepended to image texture names to form their URL.
	AssetPrefix string

	gl       js.Value
	canvas   js.Value
	consts   glConsts
	buffer   js.Value
	vao      js.Value
	programs []js.Value
	textures []js.Value
	uniforms map[*render.Shader]map[string]js.Value

	frame   chan struct{}
	onFrame js.Func
}

type glConsts struct {
	arrayBuffer      int
	streamDraw       int
	floatType        int
	triangles        int
	texture2D        int
	texture0         int
	rgba             int
	unsignedByte     int
	colorBufferBit   int
	cullFace         int
	blend            int
	srcAlpha         int
	oneMinusSrcAlpha int
	compileStatus    int
	linkStatus       int
	vertexShader     int
	fragmentShader   int
}

// New attaches to the first canvas of the document and creates a
// WebGL2 context on it. The canvas size comes from its CSS size and the
// device pixel ratio; opts.Size is ignored.
func New(opts *render.Options) (*Context, error) {
	window := js.Global()
	document := window.Get("document")
	canvas := document.Call("querySelector", "canvas")
	if canvas.IsNull() {
		return nil, errors.New("web: the document has no canvas element")
	}
	ratio := window.Get("devicePixelRatio").Float()
	canvas.Set("width", int(canvas.Get("clientWidth").Float()*ratio))
	canvas.Set("height", int(canvas.Get("clientHeight").Float()*ratio))
	gl := canvas.Call("getContext", "webgl2")
	if gl.IsNull() {
		return nil, errors.New("web: WebGL2 is not available")
	}
	document.Set("title", opts.Title)

	c := &Context{
		AssetPrefix: opts.AssetPrefix,
		gl:          gl,
		canvas:      canvas,
		uniforms:    map[*render.Shader]map[string]js.Value{},
		frame:       make(chan struct{}, 1),
	}
	c.initConsts()
	c.buffer = gl.Call("createBuffer")
	c.vao = gl.Call("createVertexArray")
	gl.Call("bindVertexArray", c.vao)
	gl.Call("bindBuffer", c.consts.arrayBuffer, c.buffer)
	gl.Call("enable", c.consts.cullFace)
	gl.Call("enable", c.consts.blend)
	gl.Call("blendFunc", c.consts.srcAlpha, c.consts.oneMinusSrcAlpha)
	c.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case c.frame <- struct{}{}:
		default:
		}
		return nil
	})
	c.Init(c, opts.Title)
	return c, nil
}

func (c *Context) initConsts() {
	c.consts = glConsts{
		arrayBuffer:      c.gl.Get("ARRAY_BUFFER").Int(),
		streamDraw:       c.gl.Get("STREAM_DRAW").Int(),
		floatType:        c.gl.Get("FLOAT").Int(),
		triangles:        c.gl.Get("TRIANGLES").Int(),
		texture2D:        c.gl.Get("TEXTURE_2D").Int(),
		texture0:         c.gl.Get("TEXTURE0").Int(),
		rgba:             c.gl.Get("RGBA").Int(),
		unsignedByte:     c.gl.Get("UNSIGNED_BYTE").Int(),
		colorBufferBit:   c.gl.Get("COLOR_BUFFER_BIT").Int(),
		cullFace:         c.gl.Get("CULL_FACE").Int(),
		blend:            c.gl.Get("BLEND").Int(),
		srcAlpha:         c.gl.Get("SRC_ALPHA").Int(),
		oneMinusSrcAlpha: c.gl.Get("ONE_MINUS_SRC_ALPHA").Int(),
		compileStatus:    c.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:       c.gl.Get("LINK_STATUS").Int(),
		vertexShader:     c.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader:   c.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
	c.gl.Call("clear", c.consts.colorBufferBit)
}

func (c *Context) compileShader(kind int, stage render.ShaderStages, src string) (js.Value, error) {
	shader := c.gl.Call("createShader", kind)
	c.gl.Call("shaderSource", shader, src)
	c.gl.Call("compileShader", shader)
	if !c.gl.Call("getShaderParameter", shader, c.consts.compileStatus).Bool() {
		log := c.gl.Call("getShaderInfoLog", shader).String()
		c.gl.Call("deleteShader", shader)
		return js.Null(), &render.ShaderError{Stage: stage, Log: log}
	}
	return shader, nil
}

func (c *Context) CompileProgram(sh *render.Shader) error {
	vert, err := c.compileShader(c.consts.vertexShader, render.VertexStage, sh.VertexSource)
	if err != nil {
		return err
	}
	defer c.gl.Call("deleteShader", vert)
	frag, err := c.compileShader(c.consts.fragmentShader, render.FragmentStage, sh.FragmentSource)
	if err != nil {
		return err
	}
	defer c.gl.Call("deleteShader", frag)

	prog := c.gl.Call("createProgram")
	c.gl.Call("attachShader", prog, vert)
	c.gl.Call("attachShader", prog, frag)
	c.gl.Call("linkProgram", prog)
	if !c.gl.Call("getProgramParameter", prog, c.consts.linkStatus).Bool() {
		log := c.gl.Call("getProgramInfoLog", prog).String()
		c.gl.Call("deleteProgram", prog)
		return &render.ShaderError{Stage: render.LinkStage, Log: log}
	}
	c.programs = append(c.programs, prog)
	sh.Handle = prog
	return nil
}

func (c *Context) BindProgram(sh *render.Shader) {
	c.gl.Call("useProgram", program(sh))
}

// LoadImage points a new image element at the texture's URL. The
// texture is marked loaded from the element's load event.
func (c *Context) LoadImage(tx *render.Texture) {
	img := js.Global().Get("Image").New()
	var onLoad, onError js.Func
	release := func() {
		onLoad.Release()
		onError.Release()
	}
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		tx.SetLoaded(img.Get("naturalWidth").Int(), img.Get("naturalHeight").Int(), nil, img)
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		err := fmt.Errorf("web: image %q failed to load", img.Get("src").String())
		c.Print(err.Error())
		tx.SetLoadFailed(err)
		return nil
	})
	img.Call("addEventListener", "load", onLoad)
	img.Call("addEventListener", "error", onError)
	img.Set("src", c.AssetPrefix+tx.Name)
}

func (c *Context) AwaitImage(tx *render.Texture) error {
	done := make(chan struct{})
	tx.OnSettled(func() { close(done) })
	<-done
	return tx.LoadError()
}

func (c *Context) UploadTexture(tx *render.Texture) error {
	t := c.gl.Call("createTexture")
	c.gl.Call("activeTexture", c.consts.texture0)
	c.gl.Call("bindTexture", c.consts.texture2D, t)
	if src, ok := tx.Source.(js.Value); ok {
		c.gl.Call("texImage2D", c.consts.texture2D, 0, c.consts.rgba, c.consts.rgba, c.consts.unsignedByte, src)
	} else {
		pix := js.Global().Get("Uint8Array").New(len(tx.Pixels))
		js.CopyBytesToJS(pix, tx.Pixels)
		c.gl.Call("texImage2D", c.consts.texture2D, 0, c.consts.rgba, tx.Width, tx.Height, 0, c.consts.rgba, c.consts.unsignedByte, pix)
	}
	c.gl.Call("generateMipmap", c.consts.texture2D)
	c.textures = append(c.textures, t)
	tx.Handle = t
	if bound := c.BoundTexture(); bound != nil {
		c.gl.Call("bindTexture", c.consts.texture2D, texture(bound))
	}
	return nil
}

func (c *Context) BindTexture(tx *render.Texture) {
	c.gl.Call("activeTexture", c.consts.texture0)
	c.gl.Call("bindTexture", c.consts.texture2D, texture(tx))
}

func (c *Context) uniform(sh *render.Shader, name string) js.Value {
	locs := c.uniforms[sh]
	if locs == nil {
		locs = map[string]js.Value{}
		c.uniforms[sh] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = c.gl.Call("getUniformLocation", program(sh), name)
		locs[name] = loc
	}
	return loc
}

func (c *Context) Uniform4f(sh *render.Shader, name string, v [4]float32) {
	c.gl.Call("uniform4f", c.uniform(sh, name), v[0], v[1], v[2], v[3])
}

func (c *Context) UniformMatrix4f(sh *render.Shader, name string, m [16]float32) {
	c.gl.Call("uniformMatrix4fv", c.uniform(sh, name), false, float32Array(m[:]))
}

func (c *Context) DrawTriangles(sh *render.Shader, ms *shape.Mesh) {
	prog := program(sh)
	c.gl.Call("bindVertexArray", c.vao)
	c.gl.Call("bindBuffer", c.consts.arrayBuffer, c.buffer)
	c.gl.Call("bufferData", c.consts.arrayBuffer, float32Array(ms.Vertices), c.consts.streamDraw)
	stride := ms.Stride * 4
	if loc := c.gl.Call("getAttribLocation", prog, render.PositionAttrib).Int(); loc >= 0 {
		c.gl.Call("enableVertexAttribArray", loc)
		c.gl.Call("vertexAttribPointer", loc, 3, c.consts.floatType, false, stride, 0)
	}
	if loc := c.gl.Call("getAttribLocation", prog, render.UVAttrib).Int(); loc >= 0 {
		if ms.IsTextured() {
			c.gl.Call("enableVertexAttribArray", loc)
			c.gl.Call("vertexAttribPointer", loc, 2, c.consts.floatType, false, stride, 12)
		} else {
			c.gl.Call("disableVertexAttribArray", loc)
		}
	}
	c.gl.Call("drawArrays", c.consts.triangles, 0, ms.VertexCount())
}

func (c *Context) FramebufferSize() (width, height int) {
	return c.gl.Get("drawingBufferWidth").Int(), c.gl.Get("drawingBufferHeight").Int()
}

func (c *Context) Print(msg string) {
	js.Global().Get("console").Call("log", msg)
}

// CloseRequested always returns false; a page is closed by the browser
// without asking.
func (c *Context) CloseRequested() bool {
	return false
}

// Present waits for the next animation frame, at which point the
// browser composites the canvas.
func (c *Context) Present() {
	js.Global().Call("requestAnimationFrame", c.onFrame)
	<-c.frame
}

func (c *Context) Destroy() {
	c.onFrame.Release()
	for _, t := range c.textures {
		c.gl.Call("deleteTexture", t)
	}
	for _, p := range c.programs {
		c.gl.Call("deleteProgram", p)
	}
	c.gl.Call("deleteBuffer", c.buffer)
	c.gl.Call("deleteVertexArray", c.vao)
	c.programs, c.textures, c.uniforms = nil, nil, nil
}

// float32Array copies data into a new JavaScript Float32Array.
func float32Array(data []float32) js.Value {
	if len(data) == 0 {
		return js.Global().Get("Float32Array").New(0)
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"))
}

func program(sh *render.Shader) js.Value {
	if p, ok := sh.Handle.(js.Value); ok {
		return p
	}
	return js.Null()
}

func texture(tx *render.Texture) js.Value {
	if t, ok := tx.Handle.(js.Value); ok {
		return t
	}
	return js.Null()
}
