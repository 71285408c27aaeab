// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logtest supports testing code that logs through package logging.
package logtest

import (
	"context"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/playground/instrumented-script/logging"
)

// Entry is a comparable view of a logging.Record.
type Entry struct {
	Time    time.Time
	Level   logging.Level
	Channel string
	Message string
	Attrs   []logging.Attr
}

// EntryOf returns the Entry for r.
func EntryOf(r logging.Record) Entry {
	e := Entry{
		Time:    r.Time(),
		Level:   r.Level(),
		Channel: r.Channel(),
		Message: r.Message(),
	}
	r.Attrs(func(a logging.Attr) bool {
		e.Attrs = append(e.Attrs, a)
		return true
	})
	return e
}

// CmpOptions compare Entries ignoring their times.
var CmpOptions = []cmp.Option{
	cmpopts.IgnoreFields(Entry{}, "Time"),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b logging.Attr) bool { return a.Equal(b) }),
}

// Recorder is a logging.Handler that keeps every record it handles.
type Recorder struct {
	// Level is the lowest level the Recorder is enabled for.
	Level logging.Level
	// Err, if set, is returned from every Handle call.
	Err error

	mu      sync.Mutex
	entries []Entry
	ctxs    []context.Context
}

func (r *Recorder) Enabled(_ context.Context, l logging.Level) bool {
	return l >= r.Level
}

func (r *Recorder) Handle(ctx context.Context, rec logging.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, EntryOf(rec))
	r.ctxs = append(r.ctxs, ctx)
	return r.Err
}

// Entries returns a copy of the recorded entries in arrival order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Contexts returns the contexts passed to Handle, in arrival order.
func (r *Recorder) Contexts() []context.Context {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]context.Context(nil), r.ctxs...)
}

// Reset discards the recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.ctxs = nil
}

// Closer is a Recorder that counts calls to Close.
type Closer struct {
	Recorder
	Closed   int
	CloseErr error
}

func (c *Closer) Close() error {
	c.Closed++
	return c.CloseErr
}
