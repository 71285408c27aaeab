// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package llogrus provides a logrus Formatter that sends entries to a
// logging channel.
// To use for the global logger:
//
//	logrus.SetFormatter(llogrus.NewFormatter(l))
//	logrus.SetOutput(io.Discard)
//
// and for a Logger instance:
//
//	logger.SetFormatter(llogrus.NewFormatter(l))
//	logger.SetOutput(io.Discard)
package llogrus

import (
	"sort"

	"github.com/playground/instrumented-script/log-adapters/internal"
	"github.com/playground/instrumented-script/logging"
	"github.com/sirupsen/logrus"
)

type formatter struct {
	l *logging.Logger
}

// NewFormatter returns a logrus.Formatter that logs each entry on l.
func NewFormatter(l *logging.Logger) logrus.Formatter {
	return &formatter{l: l}
}

var _ logrus.Formatter = (*formatter)(nil)

// Level converts a logrus level to a logging level.
func Level(l logrus.Level) logging.Level {
	switch l {
	case logrus.TraceLevel:
		return logging.LevelDebug - 5
	case logrus.DebugLevel:
		return logging.LevelDebug
	case logrus.InfoLevel:
		return logging.LevelInfo
	case logrus.WarnLevel:
		return logging.LevelWarning
	case logrus.ErrorLevel:
		return logging.LevelError
	default:
		return logging.LevelCritical
	}
}

// Logrus first calls the Formatter to get a []byte, then writes that to the
// output. That doesn't work for channels, so we subvert it by having the
// Formatter deliver the record. That is why the logrus Output io.Writer
// should be set to io.Discard.
func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var pc uintptr
	if e.Caller != nil {
		pc = e.Caller.PC
	}
	r := logging.NewRecord(e.Time, Level(e.Level), f.l.Name(), e.Message, pc)
	// logrus fields are stored in a map; sort them for stable output.
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := e.Data[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		r.AddAttrs(logging.Any(k, v))
	}
	internal.Emit(e.Context, f.l, r)
	return nil, nil
}
