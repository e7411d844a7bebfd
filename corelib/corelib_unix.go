// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux && !android) || (darwin && !ios) || freebsd

package corelib

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

// Library is an open handle to the native core library.
type Library struct {
	// Path is the path the library was opened from.
	Path string

	handle uintptr

	create      func(title *byte, width, height uintptr) uintptr
	destroy     func(window uintptr)
	shouldClose func(window uintptr) bool
	clear       func(window uintptr, r, g, b, a float32)
	process     func(window uintptr)
	drawMesh    func(window uintptr, vertices *float32)
	useShader   func(window uintptr)
}

// Open loads the core library at path and resolves its symbols.
func Open(path string) (*Library, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("corelib: opening %q: %w", path, err)
	}
	lib := &Library{Path: path, handle: h}
	for name, fn := range map[string]any{
		"window_create":       &lib.create,
		"window_destroy":      &lib.destroy,
		"window_should_close": &lib.shouldClose,
	} {
		sym, err := purego.Dlsym(h, name)
		if err != nil {
			purego.Dlclose(h)
			return nil, fmt.Errorf("corelib: %q: %w", path, err)
		}
		purego.RegisterFunc(fn, sym)
	}
	for name, fn := range map[string]any{
		"window_clear":      &lib.clear,
		"window_process":    &lib.process,
		"window_draw_mesh":  &lib.drawMesh,
		"window_use_shader": &lib.useShader,
	} {
		if sym, err := purego.Dlsym(h, name); err == nil {
			purego.RegisterFunc(fn, sym)
		}
	}
	return lib, nil
}

// HasProcess returns whether the library exports window_process.
func (lib *Library) HasProcess() bool {
	return lib.process != nil
}

// NewWindow creates a window with the given title and size, and makes
// its OpenGL context current on the calling thread.
func (lib *Library) NewWindow(title string, width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("corelib: invalid window size %dx%d", width, height)
	}
	ctitle, err := CString(title)
	if err != nil {
		return nil, err
	}
	h := lib.create(ctitle, uintptr(width), uintptr(height))
	runtime.KeepAlive(ctitle)
	if h == 0 {
		return nil, ErrNoWindow
	}
	return &Window{lib: lib, handle: h}, nil
}

// Close unloads the library. Windows created from it must be
// destroyed first.
func (lib *Library) Close() error {
	if lib.handle == 0 {
		return nil
	}
	h := lib.handle
	lib.handle = 0
	return purego.Dlclose(h)
}

// CString returns s as a NUL-terminated byte sequence. It fails if s
// contains a NUL byte.
func CString(s string) (*byte, error) {
	p, err := unix.BytePtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("corelib: title %q: %w", s, err)
	}
	return p, nil
}
