// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"cogentcore.org/famine/app"
	"cogentcore.org/famine/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDriverNoGUI(t *testing.T) {
	old := render.TheDriver
	defer func() { render.TheDriver = old }()

	desktop := &render.Driver{Name: "desktop"}
	render.TheDriver = desktop
	cfg := app.NewConfig()
	selectDriver(cfg)
	assert.Same(t, desktop, render.TheDriver)

	cfg.NoGUI = true
	selectDriver(cfg)
	require.NotNil(t, render.TheDriver)
	assert.Equal(t, "offscreen", render.TheDriver.Name)
}
