// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/famine/shape"

// Device is the set of primitive operations a driver provides.
// [ContextBase] implements [Context] in terms of a Device, so that
// state tracking, texture readiness, and text layout behave the same
// on every driver.
type Device interface {
	// ClearColor clears the color buffer.
	ClearColor(r, g, b, a float32)

	// CompileProgram compiles and links the sources of sh, storing the
	// driver program in sh.Handle. It returns a [*ShaderError] on failure.
	CompileProgram(sh *Shader) error

	// BindProgram makes sh the active program.
	BindProgram(sh *Shader)

	// LoadImage starts resolving the image resource named by tx.Name.
	// When the resource arrives the driver calls [Texture.SetLoaded]
	// or [Texture.SetLoadFailed].
	LoadImage(tx *Texture)

	// AwaitImage blocks until tx has loaded or failed to load,
	// returning the load error if any.
	AwaitImage(tx *Texture) error

	// UploadTexture creates the GPU texture for a loaded tx and uploads
	// its pixels, storing the driver texture in tx.Handle.
	UploadTexture(tx *Texture) error

	// BindTexture binds a configured texture to texture unit 0.
	BindTexture(tx *Texture)

	// Uniform4f sets a vec4 uniform of sh.
	Uniform4f(sh *Shader, name string, v [4]float32)

	// UniformMatrix4f sets a mat4 uniform of sh from column-major elements.
	UniformMatrix4f(sh *Shader, name string, m [16]float32)

	// DrawTriangles uploads the mesh vertices and draws them as a triangle
	// list using the active program sh.
	DrawTriangles(sh *Shader, ms *shape.Mesh)

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// Print writes a diagnostic message.
	Print(msg string)

	// CloseRequested returns whether the user or host has asked to close.
	CloseRequested() bool

	// Present presents the frame and pumps host events.
	Present()

	// Destroy releases the surface. It is called exactly once.
	Destroy()
}
