// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lgokit provides a go-kit logger that writes to a logging channel.
//
// The "msg" or "message" key supplies the record's message and the
// "level" key, as written by go-kit's log/level package, its level.
// Records without a level are logged at INFO.
package lgokit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/playground/instrumented-script/log-adapters/internal"
	"github.com/playground/instrumented-script/logging"
)

type logger struct {
	l *logging.Logger
}

// NewLogger returns a go-kit Logger that logs on l.
func NewLogger(l *logging.Logger) log.Logger {
	return &logger{l: l}
}

// Log delivers keyvals as one record. A context.Context passed as the
// first element is handed to the handlers and is not logged.
func (l *logger) Log(keyvals ...interface{}) error {
	ctx := context.Background()
	if len(keyvals) > 0 {
		if c, ok := keyvals[0].(context.Context); ok {
			ctx = c
			keyvals = keyvals[1:]
		}
	}
	level := logging.LevelInfo
	var msg string
	attrs := internal.KeyValues(keyvals, log.ErrMissingValue)
	kept := attrs[:0]
	for _, a := range attrs {
		switch a.Key {
		case "msg", "message":
			if msg == "" {
				msg = fmt.Sprint(a.Value)
				continue
			}
		case "level":
			if lv, err := logging.ParseLevel(fmt.Sprint(a.Value)); err == nil {
				level = lv
				continue
			}
		}
		kept = append(kept, a)
	}
	r := logging.NewRecord(time.Now(), level, l.l.Name(), msg, 0)
	r.AddAttrs(kept...)
	internal.Emit(ctx, l.l, r)
	return nil
}
