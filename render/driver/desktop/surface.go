// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package desktop

import (
	"fmt"
	"image"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/famine/corelib"
	"cogentcore.org/famine/render"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Surface is a native window whose OpenGL 3.3 context is current on
// the calling thread.
type Surface interface {
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// ShouldClose returns whether the user has asked to close the window.
	ShouldClose() bool

	// SwapAndPoll presents the back buffer and processes window events.
	SwapAndPoll()

	// Destroy releases the window and its context.
	Destroy()
}

// Clearer is implemented by surfaces that can clear their own
// framebuffer. Clear reports whether it did; on false the driver
// clears with OpenGL.
type Clearer interface {
	Clear(r, g, b, a float32) bool
}

// NewSurface creates the surface named by opts.Surface.
func NewSurface(opts *render.Options) (Surface, error) {
	switch opts.Surface {
	case "", "glfw":
		return NewGLFWSurface(opts.Title, opts.Size)
	case "corelib":
		return NewCoreSurface(opts.CoreLibrary, opts.Title, opts.Size)
	}
	return nil, fmt.Errorf("desktop: unknown surface %q", opts.Surface)
}

// GLFWSurface is a [Surface] on a GLFW window.
type GLFWSurface struct {
	Window *glfw.Window
}

// NewGLFWSurface initializes GLFW and opens a window with a core
// profile context. It must be called on the main thread.
func NewGLFWSurface(title string, size image.Point) (*GLFWSurface, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})
	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	return &GLFWSurface{Window: win}, nil
}

func (s *GLFWSurface) FramebufferSize() (width, height int) {
	return s.Window.GetFramebufferSize()
}

func (s *GLFWSurface) ShouldClose() bool {
	return s.Window.ShouldClose()
}

func (s *GLFWSurface) SwapAndPoll() {
	s.Window.SwapBuffers()
	glfw.PollEvents()
}

func (s *GLFWSurface) Destroy() {
	s.Window.Destroy()
	glfw.Terminate()
}

// CoreSurface is a [Surface] on a window owned by the native core
// library. The core does not report resizes, so the framebuffer keeps
// the size it was created with.
type CoreSurface struct {
	Library *corelib.Library
	Window  *corelib.Window
	Size    image.Point

	processErr bool
}

// NewCoreSurface loads the core library at path, or [corelib.DefaultName]
// if path is empty, and creates a window with it.
func NewCoreSurface(path, title string, size image.Point) (*CoreSurface, error) {
	if path == "" {
		path = corelib.DefaultName
	}
	lib, err := corelib.Open(path)
	if err != nil {
		return nil, err
	}
	if !lib.HasProcess() {
		lib.Close()
		return nil, fmt.Errorf("desktop: core library %q does not export window_process", path)
	}
	win, err := lib.NewWindow(title, size.X, size.Y)
	if err != nil {
		lib.Close()
		return nil, err
	}
	return &CoreSurface{Library: lib, Window: win, Size: size}, nil
}

func (s *CoreSurface) FramebufferSize() (width, height int) {
	return s.Size.X, s.Size.Y
}

func (s *CoreSurface) ShouldClose() bool {
	return s.Window.ShouldClose()
}

// Clear clears through window_clear when the core exports it.
func (s *CoreSurface) Clear(r, g, b, a float32) bool {
	return s.Window.Clear(r, g, b, a) == nil
}

func (s *CoreSurface) SwapAndPoll() {
	if err := s.Window.Process(); err != nil && !s.processErr {
		s.processErr = true
		errors.Log(err)
	}
}

func (s *CoreSurface) Destroy() {
	s.Window.Destroy()
	errors.Log(s.Library.Close())
}
