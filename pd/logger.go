// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pd

import (
	goio "io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a levelled logger writing coloured records to w
//  debug -- also log every step
func NewLogger(w goio.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}

// discardLogger returns a logger that writes nothing
func discardLogger() *slog.Logger {
	return slog.New(tint.NewHandler(goio.Discard, &tint.Options{Level: slog.LevelError}))
}
