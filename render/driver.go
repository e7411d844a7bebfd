// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/base/errors"
)

// Options are the options for creating a [Context].
type Options struct {
	// Title is the window or document title.
	Title string

	// Size is the requested surface size in pixels. Drivers whose surface
	// size is set by the host (web) ignore it.
	Size image.Point

	// AssetPrefix is prepended to image texture names to locate them.
	AssetPrefix string

	// Surface selects the native surface provider on desktop:
	// "glfw" (the default) or "corelib".
	Surface string

	// CoreLibrary is the path of the native core library used by
	// the "corelib" surface.
	CoreLibrary string

	// MaxFrames makes the offscreen driver request a close after this many
	// processed frames; 0 means never.
	MaxFrames int
}

// Driver creates a [Context] on the platform it implements.
type Driver struct {
	// Name identifies the driver, e.g. "desktop".
	Name string

	// New creates a context. A failure to obtain a drawable surface is
	// returned as an error and is fatal for startup.
	New func(opts *Options) (Context, error)
}

// TheDriver is the driver used by [NewContext]. It is set by the
// driver packages when cogentcore.org/famine/render/driver is imported.
var TheDriver *Driver

// NewContext creates a [Context] using [TheDriver].
func NewContext(opts *Options) (Context, error) {
	if TheDriver == nil {
		return nil, errors.New("render: no driver registered; import cogentcore.org/famine/render/driver")
	}
	ctx, err := TheDriver.New(opts)
	if err != nil {
		Logger().Error("render: creating context failed", "driver", TheDriver.Name, "err", err)
		return nil, err
	}
	Logger().Info("render: context created", "driver", TheDriver.Name, "title", opts.Title)
	return ctx, nil
}
