// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app is the famine application: a textured sphere spinning
// about the x and y axes, written once against [render.Context] and
// run unchanged on every driver.
package app

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/famine/fontatlas"
	"cogentcore.org/famine/math32"
	"cogentcore.org/famine/numerical"
	"cogentcore.org/famine/render"
	"cogentcore.org/famine/shape"
)

// App holds the scene state. It is only mutated by [App.Update].
type App struct {
	// Config is the configuration the app was built with.
	Config *Config

	ctx        render.Context
	shader     *render.Shader
	texture    *render.Texture
	mesh       *shape.Mesh
	background math32.Vector4
	transform  math32.Matrix4
	spin       [1]float32
	spinRate   [1]float32
	frames     int
}

// Options returns the [render.Options] for creating the app's context.
func (cfg *Config) Options() *render.Options {
	return &render.Options{
		Title:       cfg.Title,
		Size:        cfg.Size(),
		AssetPrefix: cfg.AssetPrefix,
		Surface:     cfg.Surface,
		CoreLibrary: cfg.CoreLibrary,
		MaxFrames:   cfg.MaxFrames,
	}
}

// New creates a context with [render.NewContext] and sets up the app
// on it. The context is closed if setup fails.
func New(cfg *Config) (*App, error) {
	ctx, err := render.NewContext(cfg.Options())
	if err != nil {
		return nil, err
	}
	a, err := NewWithContext(ctx, cfg)
	if err != nil {
		errors.Log(ctx.Close())
		return nil, err
	}
	return a, nil
}

// NewWithContext sets up the app on an existing context: it compiles
// the scene shader, loads the texture, builds the sphere and, with
// diagnostics on, the font. Loading the texture waits for it unless
// cfg.AsyncTexture is set.
func NewWithContext(ctx render.Context, cfg *Config) (*App, error) {
	bg, err := colors.FromHex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("app: background: %w", err)
	}
	a := &App{Config: cfg, ctx: ctx, background: math32.NewVector4Color(bg), transform: math32.Identity4()}

	a.shader, err = ctx.NewShader(SceneVertexShader, SceneFragmentShader)
	if err != nil {
		return nil, err
	}
	if cfg.AsyncTexture {
		a.texture = ctx.RequestImageTexture(cfg.Texture)
	} else {
		a.texture, err = ctx.NewImageTexture(cfg.Texture)
		if err != nil {
			return nil, err
		}
	}
	a.mesh, err = shape.Sphere(cfg.Radius, cfg.Rings, cfg.Slices)
	if err != nil {
		return nil, err
	}
	if cfg.Diagnostics {
		w, h, pix := render.RGBAPixels(fontatlas.New(cfg.FontScale))
		font, err := ctx.NewDataTexture(w, h, pix)
		if err != nil {
			return nil, err
		}
		if err := ctx.SetFontTexture(font); err != nil {
			return nil, err
		}
	}
	render.Logger().Info("app: ready", "texture", cfg.Texture, "vertices", a.mesh.VertexCount())
	return a, nil
}

// Update advances the rotation by one Euler step at the constant
// rate RotationStep per update, recomputes the transform and draws
// one frame: clear, bind texture, bind shader, set the transform,
// draw the sphere, and then the diagnostics text if enabled.
func (a *App) Update() {
	numerical.EulerStep(1, a.spin[:], a.spinRate[:], func(_, rate []float32) {
		rate[0] = a.Config.RotationStep
	})
	rot := a.spin[0]
	aspect := float32(1)
	if w := a.ctx.DisplayWidth(); w > 0 {
		aspect = float32(a.ctx.DisplayHeight()) / float32(w)
	}
	a.transform = math32.RotateX4(rot).Mul(math32.RotateY4(rot)).Mul(math32.Scale4(aspect, 1, 1))

	bg := a.background
	a.ctx.Clear(bg.X, bg.Y, bg.Z, bg.W)
	a.ctx.UseTexture(a.texture)
	a.ctx.UseShader(a.shader)
	a.ctx.SetUniformMatrix4(a.shader, "u_transform", a.transform)
	a.ctx.DrawMesh(a.mesh)
	if a.Config.Diagnostics {
		a.ctx.DrawText(fmt.Sprintf("frame %d", a.frames), -0.95, 0.85, 0.5, 0.08, color.White)
	}
	a.frames++
}

// Window returns the context the app draws to.
func (a *App) Window() render.Context {
	return a.ctx
}

// Transform returns the transform computed by the last update.
func (a *App) Transform() math32.Matrix4 {
	return a.transform
}

// Rotation returns the current rotation angle in radians.
func (a *App) Rotation() float32 {
	return a.spin[0]
}

// Texture returns the sphere texture, which may still be loading.
func (a *App) Texture() *render.Texture {
	return a.texture
}

// Mesh returns the sphere mesh.
func (a *App) Mesh() *shape.Mesh {
	return a.mesh
}
