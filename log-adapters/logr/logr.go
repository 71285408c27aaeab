// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package llogr is a logr implementation that writes to a logging channel.
package llogr

import (
	"context"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"github.com/playground/instrumented-script/log-adapters/internal"
	"github.com/playground/instrumented-script/logging"
)

type sink struct {
	l     *logging.Logger
	depth int
}

var (
	_ logr.LogSink          = (*sink)(nil)
	_ logr.CallDepthLogSink = (*sink)(nil)
)

// NewLogger returns a logr.Logger that logs on l.
// WithName names a child channel of l.
func NewLogger(l *logging.Logger) logr.Logger {
	return logr.New(&sink{l: l})
}

// Level converts a logr verbosity to a logging level. V(0) is INFO and
// each further step is one level value lower, down to DEBUG-9.
func Level(v int) logging.Level {
	lv := logging.LevelInfo - logging.Level(v)
	if floor := logging.LevelDebug - 9; lv < floor {
		return floor
	}
	return lv
}

func (s *sink) Init(info logr.RuntimeInfo) {
	s.depth += info.CallDepth
}

func (s *sink) Enabled(level int) bool {
	return s.l.Enabled(context.Background(), Level(level))
}

// Info logs a non-error message with the given key/value pairs as context.
func (s *sink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.deliver(Level(level), msg, keysAndValues, nil)
}

// Error logs an error at ERROR, adding it under the "error" key.
func (s *sink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.deliver(logging.LevelError, msg, keysAndValues, err)
}

func (s *sink) deliver(level logging.Level, msg string, keysAndValues []interface{}, err error) {
	var pcs [1]uintptr
	// skip [runtime.Callers, deliver, Info or Error] plus the frames logr
	// reported.
	runtime.Callers(3+s.depth, pcs[:])
	r := logging.NewRecord(time.Now(), level, s.l.Name(), msg, pcs[0])
	r.AddAttrs(internal.KeyValues(keysAndValues, "<no-value>")...)
	if err != nil {
		r.AddAttrs(logging.String("error", err.Error()))
	}
	internal.Emit(context.Background(), s.l, r)
}

func (s *sink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	attrs := internal.KeyValues(keysAndValues, "<no-value>")
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	s2 := *s
	s2.l = s.l.With(args...)
	return &s2
}

func (s *sink) WithName(name string) logr.LogSink {
	s2 := *s
	s2.l = s.l.Child(name)
	return &s2
}

func (s *sink) WithCallDepth(depth int) logr.LogSink {
	s2 := *s
	s2.depth += depth
	return &s2
}
