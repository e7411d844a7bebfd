// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "fmt"

// TextureKinds are the two ways a [Texture] gets its pixels.
type TextureKinds int32

const (
	// ImageTexture is populated asynchronously from a named image resource.
	ImageTexture TextureKinds = iota

	// DataTexture is built from raw RGBA bytes and is GPU-resident at once.
	DataTexture
)

func (k TextureKinds) String() string {
	switch k {
	case ImageTexture:
		return "ImageTexture"
	case DataTexture:
		return "DataTexture"
	}
	return fmt.Sprintf("TextureKinds(%d)", int32(k))
}

// Texture is a 2D RGBA texture owned by a [Context].
//
// A texture is loaded once its pixel source is available, and configured
// once those pixels have been uploaded to the GPU. Both flags only ever
// go from false to true.
type Texture struct {
	// Name is the image resource name, for image textures.
	Name string

	// Kind is how the texture gets its pixels.
	Kind TextureKinds

	// Width and Height are the size in pixels, known once loaded.
	Width, Height int

	// Pixels holds tightly packed RGBA bytes, top row first, when the
	// pixels are available on the Go side. Drivers that hand a host image
	// object straight to the GPU keep that in Source instead.
	Pixels []byte

	// Source is an optional driver-specific pixel source, such as a
	// browser image element.
	Source any

	// Handle is the driver's GPU texture object, set on upload.
	Handle any

	loaded     bool
	configured bool
	loadErr    error
	waiters    []func()
}

// IsLoaded returns whether the pixel source is available.
func (tx *Texture) IsLoaded() bool {
	return tx.loaded
}

// IsConfigured returns whether the pixels have been uploaded to the GPU.
func (tx *Texture) IsConfigured() bool {
	return tx.configured
}

// LoadError returns the error that stopped the texture from loading, if any.
func (tx *Texture) LoadError() error {
	return tx.loadErr
}

// IsSettled returns whether loading has finished, successfully or not.
func (tx *Texture) IsSettled() bool {
	return tx.loaded || tx.loadErr != nil
}

// SetLoaded records that the pixel source is available.
// Drivers call it when an image resource has arrived.
// It has no effect on a texture that is already loaded.
func (tx *Texture) SetLoaded(width, height int, pixels []byte, source any) {
	if tx.loaded {
		return
	}
	tx.Width, tx.Height = width, height
	tx.Pixels = pixels
	tx.Source = source
	tx.loaded = true
	tx.settle()
}

// SetLoadFailed records that the image resource could not be loaded.
func (tx *Texture) SetLoadFailed(err error) {
	if tx.IsSettled() {
		return
	}
	tx.loadErr = err
	tx.settle()
}

// OnSettled calls f once loading has finished, immediately if it already has.
func (tx *Texture) OnSettled(f func()) {
	if tx.IsSettled() {
		f()
		return
	}
	tx.waiters = append(tx.waiters, f)
}

func (tx *Texture) settle() {
	ws := tx.waiters
	tx.waiters = nil
	for _, f := range ws {
		f()
	}
}

func (tx *Texture) String() string {
	if tx.Kind == ImageTexture {
		return fmt.Sprintf("%v %q (%dx%d, loaded: %v, configured: %v)", tx.Kind, tx.Name, tx.Width, tx.Height, tx.loaded, tx.configured)
	}
	return fmt.Sprintf("%v (%dx%d, configured: %v)", tx.Kind, tx.Width, tx.Height, tx.configured)
}
