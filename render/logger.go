// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the logger shared by render and its drivers.
var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger sets the logger used by render and its drivers for
// lifecycle events and errors. Passing nil restores [slog.Default].
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

// Logger returns the logger used by render and its drivers.
func Logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}
