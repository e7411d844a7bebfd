// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command famine opens a window showing a textured spinning sphere.
// Run it with -nogui to render offscreen.
package main

import (
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/famine/app"
	"cogentcore.org/famine/render"
	_ "cogentcore.org/famine/render/driver"
	"cogentcore.org/famine/render/driver/offscreen"
)

func init() {
	// OpenGL and GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	opts := cli.DefaultOptions("famine", "Famine renders a textured sphere with the same code on desktop and web.")
	opts.DefaultFiles = []string{"famine.toml"}
	cli.Run(opts, app.NewConfig(), Run)
}

// Run creates the app and drives it until its window is closed.
func Run(cfg *app.Config) error {
	selectDriver(cfg)
	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	ctx := a.Window()
	for !ctx.ShouldClose() {
		a.Update()
		ctx.Process()
	}
	render.Logger().Info("famine: closing", "rotation", a.Rotation())
	return errors.Log(ctx.Close())
}

// selectDriver switches to the offscreen driver when NoGUI is set,
// whether it came from a flag or a config file.
func selectDriver(cfg *app.Config) {
	if cfg.NoGUI {
		offscreen.Init()
	}
}
