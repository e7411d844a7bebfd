// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !((linux && !android) || (darwin && !ios) || freebsd)

package corelib

// Library is an open handle to the native core library.
type Library struct {
	Path string

	destroy     func(window uintptr)
	shouldClose func(window uintptr) bool
	clear       func(window uintptr, r, g, b, a float32)
	process     func(window uintptr)
	drawMesh    func(window uintptr, vertices *float32)
	useShader   func(window uintptr)
}

// Open always fails with [ErrUnsupported] on this platform.
func Open(path string) (*Library, error) {
	return nil, ErrUnsupported
}

func (lib *Library) HasProcess() bool { return false }

func (lib *Library) NewWindow(title string, width, height int) (*Window, error) {
	return nil, ErrUnsupported
}

func (lib *Library) Close() error { return nil }
