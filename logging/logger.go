// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// A channel is the shared state behind every Logger with the same name.
type channel struct {
	m         *Manager
	name      string
	level     LevelVar
	propagate atomic.Bool

	mu       sync.RWMutex
	handlers []Handler
}

func newChannel(m *Manager, name string) *channel {
	c := &channel{m: m, name: name}
	c.propagate.Store(true)
	return c
}

// snapshot returns the current handlers. The caller must not modify the
// returned slice.
func (c *channel) snapshot() []Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.handlers
}

func (c *channel) add(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Copy on write, so snapshots stay valid during delivery.
	hs := make([]Handler, len(c.handlers), len(c.handlers)+1)
	copy(hs, c.handlers)
	c.handlers = append(hs, h)
}

func (c *channel) remove(h Handler) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.IndexFunc(c.handlers, func(x Handler) bool { return x == h })
	if i < 0 {
		return false
	}
	c.handlers = slices.Delete(slices.Clone(c.handlers), i, i+1)
	return true
}

func (c *channel) removeAll() []Handler {
	c.mu.Lock()
	defer c.mu.Unlock()
	hs := c.handlers
	c.handlers = nil
	return hs
}

// A Logger is a named logging channel, plus a set of attributes bound to
// it with With.
//
// Loggers form a hierarchy by name: "a.b" is a child of "a", and every
// channel is a descendant of the root. A record logged on a channel is
// offered to the channel's handlers and then to those of its ancestors,
// until a channel with propagation turned off has been reached.
//
// Obtain Loggers from a Manager. All methods are safe for concurrent use.
// A nil *Logger discards everything.
type Logger struct {
	ch    *channel
	attrs []Attr
}

// Name returns the channel name. The root channel is named "root".
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.ch.name
}

// Manager returns the manager that owns the channel.
func (l *Logger) Manager() *Manager {
	if l == nil {
		return nil
	}
	return l.ch.m
}

// Level returns the channel's own threshold, which is LevelNotSet unless
// SetLevel was called.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelNotSet
	}
	return l.ch.level.Level()
}

// SetLevel sets the channel's threshold, replacing any previous one.
// LevelNotSet makes the channel defer to its ancestors.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.ch.level.Set(level)
}

// EffectiveLevel returns the first threshold other than LevelNotSet found
// on the channel or its ancestors, or LevelNotSet if there is none.
func (l *Logger) EffectiveLevel() Level {
	if l == nil {
		return LevelNotSet
	}
	for c := l.ch; c != nil; c = l.ch.m.parentOf(c) {
		if lv := c.level.Level(); lv != LevelNotSet {
			return lv
		}
	}
	return LevelNotSet
}

// Enabled reports whether l emits records at the given level.
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	if l == nil {
		return false
	}
	if l.ch.m.disabled(level) {
		return false
	}
	return level >= l.EffectiveLevel()
}

// Propagate reports whether records are passed on to the ancestors'
// handlers.
func (l *Logger) Propagate() bool {
	return l != nil && l.ch.propagate.Load()
}

// SetPropagate turns propagation to the ancestors' handlers on or off.
// Channels start with propagation on.
func (l *Logger) SetPropagate(on bool) {
	if l == nil {
		return
	}
	l.ch.propagate.Store(on)
}

// AddHandler attaches h to the channel. A handler added twice receives
// each record twice.
func (l *Logger) AddHandler(h Handler) {
	if l == nil || h == nil {
		return
	}
	l.ch.add(h)
}

// RemoveHandler detaches the first occurrence of h and reports whether it
// was attached. h's dynamic type must be comparable.
func (l *Logger) RemoveHandler(h Handler) bool {
	if l == nil {
		return false
	}
	return l.ch.remove(h)
}

// Handlers returns a copy of the handlers attached to the channel itself.
func (l *Logger) Handlers() []Handler {
	if l == nil {
		return nil
	}
	return slices.Clone(l.ch.snapshot())
}

// HasHandlers reports whether the channel or any ancestor reached through
// propagation has a handler.
func (l *Logger) HasHandlers() bool {
	if l == nil {
		return false
	}
	for c := l.ch; c != nil; c = l.ch.m.parentOf(c) {
		if len(c.snapshot()) > 0 {
			return true
		}
		if !c.propagate.Load() {
			break
		}
	}
	return false
}

// Child returns the channel named l.Name() + "." + suffix.
// The root's children are named by suffix alone.
// Attributes bound with With are carried over.
func (l *Logger) Child(suffix string) *Logger {
	if l == nil {
		return nil
	}
	name := suffix
	if l.ch != l.ch.m.root {
		name = l.ch.name + "." + suffix
	}
	c := l.ch.m.Logger(name)
	c.attrs = l.attrs
	return c
}

// With returns a Logger on the same channel that includes the given
// attributes in each record. The arguments are converted to attributes
// as if by Logger.Log.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	var r Record
	r.Add(args...)
	attrs := slices.Clip(l.attrs)
	r.Attrs(func(a Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	return &Logger{ch: l.ch, attrs: attrs}
}

// Handle delivers r on l's channel without checking the channel's
// threshold. The record is offered to every handler reached through
// propagation whose Enabled method reports true.
// Attributes bound with With come before r's own, as with Log.
// r itself is not modified.
func (l *Logger) Handle(ctx context.Context, r Record) {
	if l == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(l.attrs) > 0 {
		r2 := NewRecord(r.Time(), r.Level(), r.Channel(), r.Message(), r.PC())
		r2.AddAttrs(l.attrs...)
		r.Attrs(func(a Attr) bool {
			r2.AddAttrs(a)
			return true
		})
		r = r2
	}
	l.ch.m.dispatch(ctx, l.ch, r)
}

// Log emits a record with the given level and message.
// The record's attributes are l's bound attributes followed by args,
// which are converted as follows:
//   - If an argument is an Attr, it is used as is.
//   - If an argument is a string and this is not the last argument,
//     the following argument is treated as the value and the two are
//     combined into an Attr.
//   - Otherwise, the argument is treated as a value with key "!BADKEY".
func (l *Logger) Log(ctx context.Context, level Level, msg string, args ...any) {
	l.log(ctx, level, msg, args...)
}

// LogAttrs is a more efficient version of Logger.Log that accepts only Attrs.
func (l *Logger) LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	l.logAttrs(ctx, level, msg, attrs...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(context.Background(), LevelDebug, msg, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) {
	l.log(context.Background(), LevelInfo, msg, args...)
}

// Warn logs at LevelWarning.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(context.Background(), LevelWarning, msg, args...)
}

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) {
	l.log(context.Background(), LevelError, msg, args...)
}

// Critical logs at LevelCritical. It does not exit.
func (l *Logger) Critical(msg string, args ...any) {
	l.log(context.Background(), LevelCritical, msg, args...)
}

// log is the low-level logging method for methods that take ...any.
// It must always be called directly by an exported logging method
// or function, because it uses a fixed call depth to obtain the pc.
func (l *Logger) log(ctx context.Context, level Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	// skip [log, exported method]
	r := NewRecord(time.Now(), level, l.ch.name, msg, callerPC(2))
	r.AddAttrs(l.attrs...)
	r.Add(args...)
	l.ch.m.dispatch(ctx, l.ch, r)
}

// logAttrs is like log, but for methods that take ...Attr.
func (l *Logger) logAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, level) {
		return
	}
	r := NewRecord(time.Now(), level, l.ch.name, msg, callerPC(2))
	r.AddAttrs(l.attrs...)
	r.AddAttrs(attrs...)
	l.ch.m.dispatch(ctx, l.ch, r)
}
