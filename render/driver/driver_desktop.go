// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(js || offscreen)

// Package driver selects the [render] driver for the current platform.
// Importing it for side effects sets [render.TheDriver].
package driver

import (
	"os"
	"slices"
	"testing"

	"cogentcore.org/famine/render/driver/desktop"
	"cogentcore.org/famine/render/driver/offscreen"
)

func init() {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		offscreen.Init()
		return
	}
	desktop.Init()
}
