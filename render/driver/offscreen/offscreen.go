// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements a headless [render.Context] that records
// every device command instead of drawing. It is used for tests and for
// running without a display.
//
// Image resources load cooperatively: a requested image only arrives
// when a frame is presented by Process, or by NewImageTexture
// waiting for it, so the not-yet-loaded state is observable exactly as
// in a browser.
package offscreen

import (
	"fmt"
	"image"
	"io/fs"
	"os"
	"slices"

	"cogentcore.org/famine/render"
	"cogentcore.org/famine/shape"
)

// Init registers the offscreen driver as [render.TheDriver].
func Init() {
	render.TheDriver = &render.Driver{Name: "offscreen", New: func(opts *render.Options) (render.Context, error) {
		return New(opts)
	}}
}

// Context is the offscreen [render.Context].
type Context struct {
	render.ContextBase

	// Assets is the filesystem image textures are read from.
	Assets fs.FS

	// AssetPrefix is prepended to image texture names.
	AssetPrefix string

	// Size is the size of the virtual framebuffer.
	Size image.Point

	// MaxFrames requests a close after this many processed frames; 0 means never.
	MaxFrames int

	// Frames is the number of frames processed so far.
	Frames int

	// Commands are the recorded device commands, in order.
	Commands []Command

	// Messages are the diagnostics written through Log.
	Messages []string

	// Destroyed counts calls to Destroy, which must be at most one.
	Destroyed int

	pending  []*render.Texture
	programs int
	textures int
	closing  bool
}

// New returns a new offscreen context reading assets from the
// current directory.
func New(opts *render.Options) (*Context, error) {
	size := opts.Size
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("offscreen: invalid surface size %v", size)
	}
	c := &Context{
		Assets:      os.DirFS("."),
		AssetPrefix: opts.AssetPrefix,
		Size:        size,
		MaxFrames:   opts.MaxFrames,
	}
	c.Init(c, opts.Title)
	return c, nil
}

// CommandsOf returns the recorded commands with the given op.
func (c *Context) CommandsOf(op Ops) []Command {
	var cmds []Command
	for _, cmd := range c.Commands {
		if cmd.Op == op {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// ResetCommands discards the recorded commands.
func (c *Context) ResetCommands() {
	c.Commands = c.Commands[:0]
}

// PendingImages returns the number of image loads not yet delivered.
func (c *Context) PendingImages() int {
	return len(c.pending)
}

// RequestClose makes CloseRequested return true.
func (c *Context) RequestClose() {
	c.closing = true
}

func (c *Context) record(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record(Command{Op: Clear, Vector: [4]float32{r, g, b, a}})
}

func (c *Context) CompileProgram(sh *render.Shader) error {
	if err := checkShader(sh); err != nil {
		return err
	}
	c.programs++
	sh.Handle = c.programs
	c.record(Command{Op: CompileProgram, Program: c.programs})
	return nil
}

func (c *Context) BindProgram(sh *render.Shader) {
	c.record(Command{Op: BindProgram, Program: programID(sh)})
}

func (c *Context) LoadImage(tx *render.Texture) {
	c.pending = append(c.pending, tx)
}

func (c *Context) AwaitImage(tx *render.Texture) error {
	for !tx.IsSettled() {
		if !slices.Contains(c.pending, tx) {
			return fmt.Errorf("offscreen: image %q was never requested", tx.Name)
		}
		c.deliverImages()
	}
	return tx.LoadError()
}

// deliverImages completes every pending image load, as a browser would
// when its event loop runs.
func (c *Context) deliverImages() {
	pending := c.pending
	c.pending = nil
	for _, tx := range pending {
		w, h, pix, err := render.OpenImageFS(c.Assets, render.AssetPath(c.AssetPrefix, tx.Name))
		if err != nil {
			c.Print(fmt.Sprintf("Error loading image %q: %v", tx.Name, err))
			tx.SetLoadFailed(err)
			continue
		}
		tx.SetLoaded(w, h, pix, nil)
	}
}

func (c *Context) UploadTexture(tx *render.Texture) error {
	if len(tx.Pixels) != tx.Width*tx.Height*4 {
		return fmt.Errorf("offscreen: texture has %d bytes for %dx%d pixels", len(tx.Pixels), tx.Width, tx.Height)
	}
	c.textures++
	tx.Handle = c.textures
	c.record(Command{Op: UploadTexture, Texture: c.textures, Name: tx.Name})
	return nil
}

func (c *Context) BindTexture(tx *render.Texture) {
	c.record(Command{Op: BindTexture, Texture: textureID(tx)})
}

func (c *Context) Uniform4f(sh *render.Shader, name string, v [4]float32) {
	c.record(Command{Op: Uniform4f, Program: programID(sh), Name: name, Vector: v})
}

func (c *Context) UniformMatrix4f(sh *render.Shader, name string, m [16]float32) {
	c.record(Command{Op: UniformMatrix4f, Program: programID(sh), Name: name, Matrix: m})
}

func (c *Context) DrawTriangles(sh *render.Shader, ms *shape.Mesh) {
	cmd := Command{Op: DrawTriangles, Program: programID(sh), VertexCount: ms.VertexCount(), Stride: ms.Stride}
	if tx := c.BoundTexture(); tx != nil {
		cmd.Texture = textureID(tx)
	}
	c.record(cmd)
}

func (c *Context) FramebufferSize() (width, height int) {
	return c.Size.X, c.Size.Y
}

func (c *Context) Print(msg string) {
	c.Messages = append(c.Messages, msg)
	render.Logger().Info(msg, "driver", "offscreen")
}

func (c *Context) CloseRequested() bool {
	return c.closing
}

func (c *Context) Present() {
	c.Frames++
	c.record(Command{Op: Present})
	c.deliverImages()
	if c.MaxFrames > 0 && c.Frames >= c.MaxFrames {
		c.closing = true
	}
}

func (c *Context) Destroy() {
	c.Destroyed++
	c.pending = nil
}

func programID(sh *render.Shader) int {
	id, _ := sh.Handle.(int)
	return id
}

func textureID(tx *render.Texture) int {
	id, _ := tx.Handle.(int)
	return id
}
