// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"cogentcore.org/famine/math32"
	"cogentcore.org/famine/render"
	"cogentcore.org/famine/render/driver/offscreen"
	"cogentcore.org/famine/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(t *testing.T) *offscreen.Context {
	c, err := offscreen.New(&render.Options{Title: "test", Size: image.Pt(640, 480)})
	require.NoError(t, err)
	return c
}

func TestStateMachine(t *testing.T) {
	c := newContext(t)
	assert.Equal(t, render.Created, c.State())

	sh, err := c.NewShader(render.FontVertexShader, render.FontFragmentShader)
	require.NoError(t, err)
	assert.Equal(t, render.Configuring, c.State())

	c.Clear(0.1, 0.2, 0.3, 1)
	assert.Equal(t, render.Rendering, c.State())

	c.UseShader(sh)
	assert.Equal(t, render.Configuring, c.State())
	c.SetUniformMatrix4(sh, "u_transform", math32.Identity4())
	assert.Equal(t, render.Configuring, c.State())

	ms, err := shape.Sphere(1, 3, 3)
	require.NoError(t, err)
	c.DrawMesh(ms)
	assert.Equal(t, render.Rendering, c.State())

	require.NoError(t, c.Close())
	assert.Equal(t, render.Closed, c.State())
	assert.Panics(t, func() { c.UseShader(sh) })
	assert.Panics(t, func() { c.DrawMesh(ms) })
	assert.Panics(t, func() { c.Process() })
	assert.NotPanics(t, func() { c.Close() })
}

func TestInitTwicePanics(t *testing.T) {
	c := newContext(t)
	assert.Panics(t, func() { c.Init(c, "again") })
}

func TestDataTexture(t *testing.T) {
	c := newContext(t)
	data := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	tx, err := c.NewDataTexture(2, 1, data)
	require.NoError(t, err)
	assert.True(t, tx.IsLoaded())
	assert.True(t, tx.IsConfigured())
	assert.Equal(t, render.DataTexture, tx.Kind)
	assert.Len(t, c.CommandsOf(offscreen.UploadTexture), 1)

	c.UseTexture(tx)
	assert.Same(t, tx, c.BoundTexture())
	assert.Len(t, c.CommandsOf(offscreen.UploadTexture), 1)

	_, err = c.NewDataTexture(2, 2, data)
	assert.Error(t, err)
	_, err = c.NewDataTexture(0, 1, nil)
	assert.Error(t, err)
}

func TestUseTextureUnloadedKeepsState(t *testing.T) {
	c := newContext(t)
	tx := c.RequestImageTexture("earth.png")
	c.Clear(0, 0, 0, 1)
	c.UseTexture(tx)
	assert.Equal(t, render.Rendering, c.State())
	assert.False(t, tx.IsConfigured())
	c.UseTexture(nil)
	assert.Nil(t, c.BoundTexture())
}

func TestDrawMeshWithoutShader(t *testing.T) {
	c := newContext(t)
	ms, err := shape.Sphere(1, 3, 3)
	require.NoError(t, err)
	c.DrawMesh(ms)
	assert.Empty(t, c.CommandsOf(offscreen.DrawTriangles))
	assert.Len(t, c.Messages, 1)
}

func TestDrawTextMissingFont(t *testing.T) {
	c := newContext(t)
	c.DrawText("Hi", -1, 0.9, 0.5, 0.1, color.White)
	assert.Equal(t, []string{"Context is missing font texture."}, c.Messages)
	assert.Empty(t, c.Commands)
	assert.Nil(t, c.FontShader())
}

func TestDrawText(t *testing.T) {
	c := newContext(t)
	atlas := make([]byte, 16*8*4)
	font, err := c.NewDataTexture(16, 8, atlas)
	require.NoError(t, err)
	require.NoError(t, c.SetFontTexture(font))
	require.NotNil(t, c.FontShader())
	fs := c.FontShader()
	require.NoError(t, c.SetFontTexture(font))
	assert.Same(t, fs, c.FontShader())
	c.ResetCommands()

	c.DrawText("Hi there", -1, 0.9, 0.8, 0.1, color.RGBA{255, 0, 0, 255})
	draws := c.CommandsOf(offscreen.DrawTriangles)
	assert.Len(t, draws, 7)
	for _, d := range draws {
		assert.Equal(t, 6, d.VertexCount)
		assert.Equal(t, 5, d.Stride)
		assert.Equal(t, font.Handle, d.Texture)
	}
	require.Len(t, c.CommandsOf(offscreen.Uniform4f), 1)
	u := c.CommandsOf(offscreen.Uniform4f)[0]
	assert.Equal(t, "u_color", u.Name)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, u.Vector)
	assert.Same(t, fs, c.BoundShader())
	assert.Same(t, font, c.BoundTexture())
}

func TestLoggerFallback(t *testing.T) {
	var b bytes.Buffer
	render.SetLogger(slog.New(slog.NewTextHandler(&b, nil)))
	defer render.SetLogger(nil)

	var cb render.ContextBase
	cb.Log("hello")
	assert.Contains(t, b.String(), "hello")

	render.SetLogger(nil)
	assert.Same(t, slog.Default(), render.Logger())
}

func TestNewContextWithoutDriver(t *testing.T) {
	old := render.TheDriver
	render.TheDriver = nil
	defer func() { render.TheDriver = old }()
	_, err := render.NewContext(&render.Options{})
	assert.Error(t, err)
}

func TestUploadFailureLoggedOnce(t *testing.T) {
	var b bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&b, nil)))
	defer slog.SetDefault(old)

	c := newContext(t)
	tx := c.RequestImageTexture("earth.png")
	tx.SetLoaded(2, 2, []byte{1, 2, 3}, nil)
	c.UseTexture(tx)

	assert.False(t, tx.IsConfigured())
	assert.Nil(t, c.BoundTexture())
	require.Len(t, c.Messages, 1)
	assert.Contains(t, c.Messages[0], "uploading")
	assert.Equal(t, 1, strings.Count(b.String(), "uploading"))
}
