// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/famine/render"
	"cogentcore.org/famine/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFile(t *testing.T, w, h int) *fstest.MapFile {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x), uint8(y), 200, 255})
		}
	}
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return &fstest.MapFile{Data: b.Bytes()}
}

func newTestContext(t *testing.T) *Context {
	c, err := New(&render.Options{Title: "test", Size: image.Pt(800, 600), AssetPrefix: "assets/"})
	require.NoError(t, err)
	c.Assets = fstest.MapFS{"assets/earth.png": pngFile(t, 4, 2)}
	return c
}

func TestNewInvalidSize(t *testing.T) {
	_, err := New(&render.Options{Size: image.Pt(0, 600)})
	assert.Error(t, err)
}

func TestDisplaySize(t *testing.T) {
	c := newTestContext(t)
	assert.Equal(t, render.Created, c.State())
	assert.Equal(t, 800, c.DisplayWidth())
	assert.Equal(t, 600, c.DisplayHeight())
}

func TestShaderErrors(t *testing.T) {
	c := newTestContext(t)

	_, err := c.NewShader("#version 300 es\nvoid nope() {}", render.FontFragmentShader)
	assert.ErrorIs(t, err, render.ErrShaderCompile)
	var se *render.ShaderError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, render.VertexStage, se.Stage)

	_, err = c.NewShader(render.FontVertexShader, "void main() {}")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, render.FragmentStage, se.Stage)

	vs := "#version 300 es\nin vec4 v_position;\nvoid main() { gl_Position = v_position; }\n"
	_, err = c.NewShader(vs, render.FontFragmentShader)
	assert.ErrorIs(t, err, render.ErrShaderLink)
	assert.Contains(t, err.Error(), "f_uv")

	assert.Len(t, c.Messages, 3)
	assert.Empty(t, c.CommandsOf(CompileProgram))

	sh, err := c.NewShader(render.FontVertexShader, render.FontFragmentShader)
	require.NoError(t, err)
	assert.Equal(t, 1, sh.Handle)
}

func TestImageTextureLoadsOnProcess(t *testing.T) {
	c := newTestContext(t)
	tx := c.RequestImageTexture("earth.png")
	assert.False(t, tx.IsLoaded())
	assert.Equal(t, 1, c.PendingImages())

	c.UseTexture(tx)
	c.UseTexture(tx)
	assert.Empty(t, c.CommandsOf(BindTexture))
	assert.Nil(t, c.BoundTexture())

	c.Process()
	assert.True(t, tx.IsLoaded())
	assert.False(t, tx.IsConfigured())
	assert.Equal(t, 4, tx.Width)
	assert.Equal(t, 2, tx.Height)
	assert.Len(t, tx.Pixels, 4*2*4)
	assert.Equal(t, []byte{3, 1, 200, 255}, tx.Pixels[(1*4+3)*4:(1*4+3)*4+4])

	c.UseTexture(tx)
	assert.True(t, tx.IsConfigured())
	assert.Len(t, c.CommandsOf(UploadTexture), 1)
	assert.Len(t, c.CommandsOf(BindTexture), 1)

	c.UseTexture(tx)
	assert.Len(t, c.CommandsOf(UploadTexture), 1)
	assert.Len(t, c.CommandsOf(BindTexture), 2)
}

func TestNewImageTexture(t *testing.T) {
	c := newTestContext(t)
	tx, err := c.NewImageTexture("earth.png")
	require.NoError(t, err)
	assert.True(t, tx.IsLoaded())
	assert.True(t, tx.IsConfigured())
	assert.Equal(t, 0, c.Frames)

	_, err = c.NewImageTexture("missing.png")
	assert.Error(t, err)
	assert.Len(t, c.Messages, 1)
}

func TestDrawRecordsLayout(t *testing.T) {
	c := newTestContext(t)
	sh, err := c.NewShader(render.FontVertexShader, render.FontFragmentShader)
	require.NoError(t, err)
	ms, err := shape.Sphere(1, 3, 4)
	require.NoError(t, err)

	c.Clear(0, 0, 0, 1)
	c.UseShader(sh)
	c.DrawMesh(ms)
	draws := c.CommandsOf(DrawTriangles)
	require.Len(t, draws, 1)
	assert.Equal(t, 72, draws[0].VertexCount)
	assert.Equal(t, shape.TexturedStride, draws[0].Stride)
	assert.Equal(t, 1, draws[0].Program)
}

func TestMaxFrames(t *testing.T) {
	c, err := New(&render.Options{Size: image.Pt(10, 10), MaxFrames: 2})
	require.NoError(t, err)
	c.Process()
	assert.False(t, c.ShouldClose())
	c.Process()
	assert.True(t, c.ShouldClose())
	assert.Len(t, c.CommandsOf(Present), 2)
}

func TestCloseOnce(t *testing.T) {
	c := newTestContext(t)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.Equal(t, 1, c.Destroyed)
	assert.True(t, c.ShouldClose())
	assert.Panics(t, func() { c.Clear(0, 0, 0, 1) })
}

func TestInitRegistersDriver(t *testing.T) {
	old := render.TheDriver
	defer func() { render.TheDriver = old }()
	Init()
	ctx, err := render.NewContext(&render.Options{Size: image.Pt(4, 4)})
	require.NoError(t, err)
	assert.IsType(t, &Context{}, ctx)
	assert.Equal(t, "offscreen", render.TheDriver.Name)
}
