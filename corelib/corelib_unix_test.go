// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux && !android) || (darwin && !ios) || freebsd

package corelib

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCString(t *testing.T) {
	p, err := CString("ZA APP")
	require.NoError(t, err)
	b := unsafe.Slice(p, 7)
	assert.Equal(t, "ZA APP\x00", string(b))

	_, err = CString("bad\x00title")
	assert.Error(t, err)
}

func TestNewWindowNullHandle(t *testing.T) {
	lib := &Library{create: func(*byte, uintptr, uintptr) uintptr { return 0 }}
	_, err := lib.NewWindow("x", 640, 480)
	assert.ErrorIs(t, err, ErrNoWindow)

	_, err = lib.NewWindow("x", 0, 480)
	assert.Error(t, err)
}
