// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"regexp"
)

var esVersionRe = regexp.MustCompile(`(?m)^[ \t]*#version[ \t]+300[ \t]+es[ \t]*$`)

// CoreProfileSource rewrites a GLSL ES 3.0 shader source for desktop
// OpenGL 3.3 core by replacing its version directive. Precision
// qualifiers are accepted and ignored by desktop GLSL, so they stay.
// Sources without an ES 3.0 directive are returned unchanged.
func CoreProfileSource(src string) string {
	loc := esVersionRe.FindStringIndex(src)
	if loc == nil {
		return src
	}
	return src[:loc[0]] + "#version 330 core" + src[loc[1]:]
}
