// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"io/fs"
	"path"

	"cogentcore.org/core/base/iox/imagex"
)

// AssetPath returns the resource path of the image named name
// under the given prefix.
func AssetPath(prefix, name string) string {
	return path.Clean(prefix + name)
}

// OpenImageFS decodes the image at filename in fsys and returns
// its tightly packed RGBA pixels, top row first.
func OpenImageFS(fsys fs.FS, filename string) (width, height int, pixels []byte, err error) {
	img, _, err := imagex.OpenFS(fsys, filename)
	if err != nil {
		return 0, 0, nil, err
	}
	width, height, pixels = RGBAPixels(img)
	return
}

// RGBAPixels returns the size and tightly packed RGBA pixels of img.
func RGBAPixels(img image.Image) (width, height int, pixels []byte) {
	rgba := imagex.AsRGBA(img)
	b := rgba.Bounds()
	width, height = b.Dx(), b.Dy()
	if rgba.Stride == width*4 && b.Min == (image.Point{}) {
		return width, height, rgba.Pix[:width*height*4]
	}
	pixels = make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		o := rgba.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pixels[y*width*4:(y+1)*width*4], rgba.Pix[o:o+width*4])
	}
	return
}
