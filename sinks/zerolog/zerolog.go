// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerologsink provides a logging.Handler that writes records
// through a zerolog.Logger.
package zerologsink

import (
	"context"
	"time"

	"github.com/playground/instrumented-script/logging"
	"github.com/rs/zerolog"
)

// LoggerKey is the field holding the channel name.
const LoggerKey = "logger"

// Handler writes each record as one zerolog event.
type Handler struct {
	zl    zerolog.Logger
	level logging.Leveler
}

var _ logging.Handler = (*Handler)(nil)

// NewHandler returns a Handler that writes to zl. Records below level are
// ignored; a nil level accepts all records and leaves filtering to zl.
func NewHandler(zl zerolog.Logger, level logging.Leveler) *Handler {
	return &Handler{zl: zl, level: level}
}

// Level converts a logging level to the zerolog level with the same
// severity band.
func Level(l logging.Level) zerolog.Level {
	switch {
	case l < logging.LevelDebug:
		return zerolog.TraceLevel
	case l < logging.LevelInfo:
		return zerolog.DebugLevel
	case l < logging.LevelWarning:
		return zerolog.InfoLevel
	case l < logging.LevelError:
		return zerolog.WarnLevel
	case l < logging.LevelCritical:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}

func (h *Handler) Enabled(_ context.Context, l logging.Level) bool {
	return h.level == nil || l >= h.level.Level()
}

// Handle writes r. CRITICAL records are written at zerolog's fatal level
// through WithLevel, which does not exit.
func (h *Handler) Handle(_ context.Context, r logging.Record) error {
	e := h.zl.WithLevel(Level(r.Level()))
	if e == nil {
		return nil
	}
	if t := r.Time(); !t.IsZero() {
		e = e.Time(zerolog.TimestampFieldName, t)
	}
	e = e.Str(LoggerKey, r.Channel())
	r.Attrs(func(a logging.Attr) bool {
		if a.Key == "" {
			return true
		}
		switch v := a.Value.(type) {
		case string:
			e = e.Str(a.Key, v)
		case int64:
			e = e.Int64(a.Key, v)
		case uint64:
			e = e.Uint64(a.Key, v)
		case float64:
			e = e.Float64(a.Key, v)
		case bool:
			e = e.Bool(a.Key, v)
		case time.Duration:
			e = e.Dur(a.Key, v)
		case time.Time:
			e = e.Time(a.Key, v)
		case error:
			e = e.AnErr(a.Key, v)
		default:
			e = e.Interface(a.Key, v)
		}
		return true
	})
	e.Msg(r.Message())
	return nil
}
