// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzap provides an implementation of zapcore.Core that writes to
// a logging channel.
//
//	log := zap.New(lzap.NewCore(m.Logger("legacy")), zap.AddCaller())
//
// A zap logger name becomes a child channel, so log.Named("db") logs on
// "legacy.db".
package lzap

import (
	"context"
	"strings"

	"github.com/playground/instrumented-script/log-adapters/internal"
	"github.com/playground/instrumented-script/logging"
	"go.uber.org/zap/zapcore"
)

type core struct {
	l *logging.Logger
}

var _ zapcore.Core = (*core)(nil)

// NewCore returns a zapcore.Core that logs on l.
func NewCore(l *logging.Logger) zapcore.Core {
	return &core{l: l}
}

// Level converts a zap level to a logging level.
func Level(l zapcore.Level) logging.Level {
	switch {
	case l < zapcore.InfoLevel:
		return logging.LevelDebug
	case l == zapcore.InfoLevel:
		return logging.LevelInfo
	case l == zapcore.WarnLevel:
		return logging.LevelWarning
	case l == zapcore.ErrorLevel:
		return logging.LevelError
	default:
		return logging.LevelCritical
	}
}

// Enabled reports whether the core's channel or any existing descendant
// channel accepts level. zap consults it before Check, so it must not
// reject an entry a named logger's channel would take; Check applies the
// exact threshold of the entry's own channel.
func (c *core) Enabled(level zapcore.Level) bool {
	ctx := context.Background()
	lv := Level(level)
	if c.l.Enabled(ctx, lv) {
		return true
	}
	m := c.l.Manager()
	if m == nil {
		return false
	}
	prefix := c.l.Name() + "."
	if c.l.Name() == logging.RootName {
		prefix = ""
	}
	for _, name := range m.Names() {
		if strings.HasPrefix(name, prefix) && m.Logger(name).Enabled(ctx, lv) {
			return true
		}
	}
	return false
}

// target returns the channel an entry from the zap logger with the given
// name is logged on.
func (c *core) target(loggerName string) *logging.Logger {
	if loggerName == "" {
		return c.l
	}
	return c.l.Child(loggerName)
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	attrs := fieldAttrs(fields)
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return &core{l: c.l.With(args...)}
}

func (c *core) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.target(e.LoggerName).Enabled(context.Background(), Level(e.Level)) {
		return ce.AddCore(e, c)
	}
	return ce
}

func (c *core) Write(e zapcore.Entry, fs []zapcore.Field) error {
	l := c.target(e.LoggerName)
	var pc uintptr
	if e.Caller.Defined {
		pc = e.Caller.PC
	}
	r := logging.NewRecord(e.Time, Level(e.Level), l.Name(), e.Message, pc)
	r.AddAttrs(fieldAttrs(fs)...)
	if e.Stack != "" {
		r.AddAttrs(logging.String("stack", e.Stack))
	}
	internal.Emit(context.Background(), l, r)
	return nil
}

func (c *core) Sync() error { return nil }

// fieldAttrs converts zap fields to attributes in field order, letting zap
// decode each field's value.
func fieldAttrs(fields []zapcore.Field) []logging.Attr {
	attrs := make([]logging.Attr, 0, len(fields))
	for _, f := range fields {
		switch f.Type {
		case zapcore.SkipType, zapcore.NamespaceType:
			continue
		}
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		if v, ok := enc.Fields[f.Key]; ok {
			attrs = append(attrs, logging.Any(f.Key, v))
		}
		// Errors also add a verbose form under key+"Verbose".
		if v, ok := enc.Fields[f.Key+"Verbose"]; ok && f.Type == zapcore.ErrorType {
			attrs = append(attrs, logging.Any(f.Key+"Verbose", v))
		}
	}
	return attrs
}
