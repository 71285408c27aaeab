// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"runtime"
	"slices"
	"time"
)

const nAttrsInline = 5

// A Record holds information about a log event.
// Copies of a Record share state. Do not modify a Record after handing
// out a copy to it; use Record.Clone to get a copy with no shared state.
type Record struct {
	// The time at which the output method (Info, Log, etc.) was called.
	time time.Time

	// The log message.
	message string

	level Level

	// The name of the channel the record was emitted on.
	channel string

	// The program counter at the time the record was constructed, as
	// determined by runtime.Callers. If zero, no source is available.
	pc uintptr

	// Allocation optimization: an inline array sized to hold
	// the majority of log calls.
	front  [nAttrsInline]Attr
	nFront int
	back   []Attr
}

// NewRecord creates a Record from the given arguments.
// Use [Record.AddAttrs] to add attributes to the Record.
//
// NewRecord is intended for logging APIs that want to support a [Handler] as
// a backend, such as the adapters under log-adapters.
func NewRecord(t time.Time, level Level, channel, msg string, pc uintptr) Record {
	return Record{
		time:    t,
		message: msg,
		level:   level,
		channel: channel,
		pc:      pc,
	}
}

// callerPC returns the program counter of the function skip frames above
// the function that calls callerPC. callerPC(0) is the caller itself.
func callerPC(skip int) uintptr {
	var pcs [1]uintptr
	// skip runtime.Callers and callerPC.
	runtime.Callers(skip+2, pcs[:])
	return pcs[0]
}

// Time returns the time of the log event.
func (r Record) Time() time.Time { return r.time }

// Message returns the log message.
func (r Record) Message() string { return r.message }

// Level returns the level of the log event.
func (r Record) Level() Level { return r.level }

// Channel returns the name of the channel the event was logged on.
func (r Record) Channel() string { return r.channel }

// PC returns the program counter recorded for the event, or zero.
func (r Record) PC() uintptr { return r.pc }

// Source returns the file and line of the log event.
// If the Record was created without the necessary information,
// or if the location is unavailable, it returns ("", 0).
func (r Record) Source() (file string, line int) {
	if r.pc == 0 {
		return "", 0
	}
	fs := runtime.CallersFrames([]uintptr{r.pc})
	f, _ := fs.Next()
	return f.File, f.Line
}

// Clone returns a copy of the record with no shared state.
// The original record and the clone can both be modified
// without interfering with each other.
func (r Record) Clone() Record {
	r.back = slices.Clip(r.back)
	return r
}

// NumAttrs returns the number of attributes in the Record.
func (r Record) NumAttrs() int {
	return r.nFront + len(r.back)
}

// Attrs calls f on each Attr in the Record.
// Iteration stops if f returns false.
func (r Record) Attrs(f func(Attr) bool) {
	for i := 0; i < r.nFront; i++ {
		if !f(r.front[i]) {
			return
		}
	}
	for _, a := range r.back {
		if !f(a) {
			return
		}
	}
}

// AddAttrs appends the given Attrs to the Record's list of Attrs.
// It does not check for duplicate keys.
func (r *Record) AddAttrs(attrs ...Attr) {
	var i int
	for i = 0; i < len(attrs) && r.nFront < len(r.front); i++ {
		r.front[r.nFront] = attrs[i]
		r.nFront++
	}
	r.back = append(r.back, attrs[i:]...)
}

// Add converts the args to Attrs as described in [Logger.Log],
// then appends the Attrs to the Record's list of Attrs.
func (r *Record) Add(args ...any) {
	var a Attr
	for len(args) > 0 {
		a, args = argsToAttr(args)
		r.AddAttrs(a)
	}
}
