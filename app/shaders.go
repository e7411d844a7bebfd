// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

// SceneVertexShader transforms the textured sphere by u_transform.
const SceneVertexShader = `#version 300 es

uniform mat4 u_transform;

in vec4 v_position;
in vec2 v_uv;

out vec2 f_uv;

void main() {
	gl_Position = u_transform * v_position;
	f_uv = v_uv;
}
`

// SceneFragmentShader samples the sphere texture.
const SceneFragmentShader = `#version 300 es
precision highp float;

uniform sampler2D u_texture;

in vec2 f_uv;

out vec4 out_color;

void main() {
	out_color = texture(u_texture, f_uv);
}
`
