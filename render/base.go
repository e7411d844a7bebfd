// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image/color"

	"cogentcore.org/famine/math32"
	"cogentcore.org/famine/shape"
)

// ContextBase implements [Context] on top of a driver [Device].
// Drivers embed it, implement Device, and call [ContextBase.Init]
// once their surface exists.
type ContextBase struct {
	// This is the driver device that primitive operations go to.
	This Device

	// Title is the title the context was created with.
	Title string

	state       States
	shader      *Shader
	texture     *Texture
	fontShader  *Shader
	fontTexture *Texture
}

// Init connects the base to its device and moves it to [Created].
func (cb *ContextBase) Init(dev Device, title string) {
	if cb.state != Uninitialized {
		panic(fmt.Sprintf("render: Init called on a context in state %v", cb.state))
	}
	cb.This = dev
	cb.Title = title
	cb.state = Created
}

func (cb *ContextBase) State() States {
	return cb.state
}

// BoundShader returns the active shader, or nil.
func (cb *ContextBase) BoundShader() *Shader {
	return cb.shader
}

// BoundTexture returns the texture bound to unit 0, or nil.
func (cb *ContextBase) BoundTexture() *Texture {
	return cb.texture
}

// FontShader returns the lazily created font shader, or nil.
func (cb *ContextBase) FontShader() *Shader {
	return cb.fontShader
}

// FontTexture returns the glyph atlas set by SetFontTexture, or nil.
func (cb *ContextBase) FontTexture() *Texture {
	return cb.fontTexture
}

func (cb *ContextBase) checkUsable() {
	switch cb.state {
	case Uninitialized:
		panic("render: Context used before it was created")
	case Closed:
		panic("render: Context used after Close")
	}
}

func (cb *ContextBase) configuring() {
	cb.checkUsable()
	cb.state = Configuring
}

func (cb *ContextBase) rendering() {
	cb.checkUsable()
	cb.state = Rendering
}

func (cb *ContextBase) Clear(r, g, b, a float32) {
	cb.rendering()
	cb.This.ClearColor(r, g, b, a)
}

func (cb *ContextBase) NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	cb.configuring()
	sh := &Shader{VertexSource: vertexSrc, FragmentSource: fragmentSrc}
	if err := cb.This.CompileProgram(sh); err != nil {
		cb.Log(err.Error())
		return nil, err
	}
	return sh, nil
}

func (cb *ContextBase) UseShader(sh *Shader) {
	cb.configuring()
	if sh == nil {
		cb.Log("render: UseShader called with a nil shader")
		return
	}
	cb.This.BindProgram(sh)
	cb.shader = sh
}

func (cb *ContextBase) NewImageTexture(name string) (*Texture, error) {
	tx := cb.RequestImageTexture(name)
	if err := cb.This.AwaitImage(tx); err != nil {
		return nil, fmt.Errorf("render: loading image texture %q: %w", name, err)
	}
	if err := cb.configure(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (cb *ContextBase) RequestImageTexture(name string) *Texture {
	cb.configuring()
	tx := &Texture{Name: name, Kind: ImageTexture}
	cb.This.LoadImage(tx)
	return tx
}

func (cb *ContextBase) NewDataTexture(width, height int, data []byte) (*Texture, error) {
	cb.configuring()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid data texture size %dx%d", width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("render: data texture of %dx%d needs %d RGBA bytes, got %d", width, height, width*height*4, len(data))
	}
	tx := &Texture{Kind: DataTexture}
	tx.SetLoaded(width, height, data, nil)
	if err := cb.configure(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// configure uploads the pixels of a loaded texture, once.
// Failures are returned for the caller to report.
func (cb *ContextBase) configure(tx *Texture) error {
	if tx.configured {
		return nil
	}
	if err := cb.This.UploadTexture(tx); err != nil {
		return fmt.Errorf("render: uploading %v: %w", tx, err)
	}
	tx.configured = true
	return nil
}

func (cb *ContextBase) UseTexture(tx *Texture) {
	if tx == nil || !tx.IsLoaded() {
		return
	}
	cb.configuring()
	if err := cb.configure(tx); err != nil {
		cb.Log(err.Error())
		return
	}
	cb.This.BindTexture(tx)
	cb.texture = tx
}

func (cb *ContextBase) SetUniformVector4(sh *Shader, name string, value math32.Vector4) {
	cb.configuring()
	if sh == nil {
		return
	}
	cb.This.Uniform4f(sh, name, value.Array())
}

func (cb *ContextBase) SetUniformMatrix4(sh *Shader, name string, value math32.Matrix4) {
	cb.configuring()
	if sh == nil {
		return
	}
	cb.This.UniformMatrix4f(sh, name, value.Array())
}

func (cb *ContextBase) SetFontTexture(tx *Texture) error {
	cb.configuring()
	if cb.fontShader == nil {
		sh, err := cb.NewShader(FontVertexShader, FontFragmentShader)
		if err != nil {
			return err
		}
		cb.fontShader = sh
	}
	cb.fontTexture = tx
	return nil
}

func (cb *ContextBase) DrawMesh(ms *shape.Mesh) {
	cb.rendering()
	if ms == nil || ms.VertexCount() == 0 {
		return
	}
	if cb.shader == nil {
		cb.Log("render: DrawMesh called with no shader bound")
		return
	}
	cb.This.DrawTriangles(cb.shader, ms)
}

func (cb *ContextBase) DrawText(text string, x, y, width, height float32, c color.Color) {
	cb.checkUsable()
	if cb.fontTexture == nil || cb.fontShader == nil {
		cb.Log("Context is missing font texture.")
		return
	}
	cb.UseShader(cb.fontShader)
	cb.UseTexture(cb.fontTexture)
	cb.SetUniformVector4(cb.fontShader, "u_color", math32.NewVector4Color(c))
	for _, ms := range TextMeshes(text, x, y, width, height) {
		cb.DrawMesh(ms)
	}
}

func (cb *ContextBase) DisplayWidth() int {
	cb.checkUsable()
	w, _ := cb.This.FramebufferSize()
	return w
}

func (cb *ContextBase) DisplayHeight() int {
	cb.checkUsable()
	_, h := cb.This.FramebufferSize()
	return h
}

func (cb *ContextBase) Log(msg string) {
	if cb.This == nil {
		Logger().Info(msg)
		return
	}
	cb.This.Print(msg)
}

func (cb *ContextBase) ShouldClose() bool {
	if cb.state == Closed {
		return true
	}
	cb.checkUsable()
	return cb.This.CloseRequested()
}

func (cb *ContextBase) Process() {
	cb.checkUsable()
	cb.This.Present()
}

func (cb *ContextBase) Close() error {
	switch cb.state {
	case Closed:
		return nil
	case Uninitialized:
		cb.state = Closed
		return nil
	}
	cb.This.Destroy()
	cb.shader, cb.texture = nil, nil
	cb.fontShader, cb.fontTexture = nil, nil
	cb.state = Closed
	return nil
}
