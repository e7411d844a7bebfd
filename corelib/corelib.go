// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corelib binds the native core library, a shared library that
// owns a desktop window and its OpenGL context behind a small C ABI:
//
//	void* window_create(const char* title, size_t width, size_t height);
//	void  window_destroy(void* window);
//	bool  window_should_close(void* window);
//	void  window_clear(void* window, float r, float g, float b, float a);
//	void  window_process(void* window);
//	void  window_draw_mesh(void* window, const float* vertices);
//	void  window_use_shader(void* window);
//
// Only the first three are required; older cores export nothing else.
package corelib

import "cogentcore.org/core/base/errors"

var (
	// ErrUnsupported is returned by [Open] on platforms without
	// dynamic library loading.
	ErrUnsupported = errors.New("corelib: native core library is not supported on this platform")

	// ErrNoWindow is returned when window_create returns a null handle.
	ErrNoWindow = errors.New("corelib: window_create returned a null window")

	// ErrMissingSymbol is returned when an optional symbol is called
	// but the library does not export it.
	ErrMissingSymbol = errors.New("corelib: symbol not exported by the core library")
)

// DefaultName is the file name of the core library on this platform.
var DefaultName = defaultName

// Window is a window created by the core library. It owns the native
// handle until Destroy, which releases it exactly once.
type Window struct {
	lib    *Library
	handle uintptr
}

// ShouldClose returns whether the user has asked to close the window.
// A destroyed window always reports true.
func (w *Window) ShouldClose() bool {
	if w.handle == 0 {
		return true
	}
	return w.lib.shouldClose(w.handle)
}

// Clear clears the window's framebuffer.
func (w *Window) Clear(r, g, b, a float32) error {
	if w.handle == 0 {
		return nil
	}
	if w.lib.clear == nil {
		return ErrMissingSymbol
	}
	w.lib.clear(w.handle, r, g, b, a)
	return nil
}

// Process swaps buffers and polls window events.
func (w *Window) Process() error {
	if w.handle == 0 {
		return nil
	}
	if w.lib.process == nil {
		return ErrMissingSymbol
	}
	w.lib.process(w.handle)
	return nil
}

// UseShader activates the core's built-in shader. The desktop driver
// draws with its own OpenGL programs and does not call it; it is for
// hosts that render through the core's pipeline.
func (w *Window) UseShader() error {
	if w.handle == 0 {
		return nil
	}
	if w.lib.useShader == nil {
		return ErrMissingSymbol
	}
	w.lib.useShader(w.handle)
	return nil
}

// DrawMesh hands the interleaved vertices of a mesh to the core to draw
// with its built-in shader. The core reads them during the call only.
// Like [Window.UseShader], it is not used by the desktop driver.
func (w *Window) DrawMesh(vertices []float32) error {
	if w.handle == 0 || len(vertices) == 0 {
		return nil
	}
	if w.lib.drawMesh == nil {
		return ErrMissingSymbol
	}
	w.lib.drawMesh(w.handle, &vertices[0])
	return nil
}

// Destroy releases the native window. Later calls do nothing.
func (w *Window) Destroy() {
	if w.handle == 0 {
		return
	}
	h := w.handle
	w.handle = 0
	w.lib.destroy(h)
}

// IsDestroyed returns whether Destroy has been called.
func (w *Window) IsDestroyed() bool {
	return w.handle == 0
}
