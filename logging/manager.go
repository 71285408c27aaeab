// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"
	"golang.org/x/xerrors"
)

// RootName is the name of the root channel.
const RootName = "root"

const noDisable = math.MinInt64

// A Manager owns a hierarchy of logging channels.
//
// A program normally creates one Manager at startup, configures it with
// BasicConfig, and passes it, or Loggers obtained from it, to the code that
// logs. The zero Manager is not usable; call NewManager.
type Manager struct {
	root *channel

	mu       sync.RWMutex
	channels map[string]*channel

	cfgMu sync.Mutex // serializes BasicConfig

	disable atomic.Int64

	hmu        sync.RWMutex
	lastResort Handler
	onError    func(error)
}

// NewManager returns a Manager with an unconfigured root channel at
// LevelWarning.
//
// Until a handler is attached somewhere on the path of a record, records
// at LevelWarning or above are written to standard error with only their
// message; see SetLastResort.
func NewManager() *Manager {
	m := &Manager{channels: make(map[string]*channel)}
	m.root = newChannel(m, RootName)
	m.root.level.Set(LevelWarning)
	m.disable.Store(noDisable)
	m.lastResort = HandlerOptions{Level: LevelWarning, Format: "{message}"}.NewTextHandler(os.Stderr)
	m.onError = func(err error) { fmt.Fprintln(os.Stderr, err) }
	return m
}

// Root returns the root channel.
func (m *Manager) Root() *Logger {
	return &Logger{ch: m.root}
}

// Logger returns the channel with the given dot-separated name, creating
// it if needed. The empty name and RootName denote the root channel.
// Every call with the same name refers to the same channel.
func (m *Manager) Logger(name string) *Logger {
	if name == "" || name == RootName {
		return m.Root()
	}
	m.mu.RLock()
	c, ok := m.channels[name]
	m.mu.RUnlock()
	if !ok {
		m.mu.Lock()
		if c, ok = m.channels[name]; !ok {
			c = newChannel(m, name)
			m.channels[name] = c
		}
		m.mu.Unlock()
	}
	return &Logger{ch: c}
}

// Names returns the names of all channels other than the root, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.channels))
	for n := range m.channels {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// parentOf returns the nearest existing ancestor of c, or nil for the root.
func (m *Manager) parentOf(c *channel) *channel {
	if c == m.root {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	name := c.name
	for {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return m.root
		}
		name = name[:i]
		if p, ok := m.channels[name]; ok {
			return p
		}
	}
}

// Disable suppresses records at or below level on every channel,
// regardless of channel thresholds. Disable(LevelNotSet) lifts the
// suppression.
func (m *Manager) Disable(level Level) {
	if level == LevelNotSet {
		m.disable.Store(noDisable)
		return
	}
	m.disable.Store(int64(level))
}

func (m *Manager) disabled(level Level) bool {
	return int64(level) <= m.disable.Load()
}

// SetLastResort sets the handler used for records that find no handler
// on their channel or its ancestors. A nil handler drops such records.
func (m *Manager) SetLastResort(h Handler) {
	m.hmu.Lock()
	defer m.hmu.Unlock()
	m.lastResort = h
}

// SetErrorHandler sets the function that receives errors returned by
// handlers. The default prints them to standard error. A nil function
// ignores them.
func (m *Manager) SetErrorHandler(f func(error)) {
	m.hmu.Lock()
	defer m.hmu.Unlock()
	m.onError = f
}

func (m *Manager) reportError(err error) {
	m.hmu.RLock()
	f := m.onError
	m.hmu.RUnlock()
	if f != nil {
		f(err)
	}
}

// dispatch offers r to the handlers of c and its ancestors.
func (m *Manager) dispatch(ctx context.Context, c *channel, r Record) {
	found := 0
	for ; c != nil; c = m.parentOf(c) {
		hs := c.snapshot()
		found += len(hs)
		for _, h := range hs {
			if !h.Enabled(ctx, r.Level()) {
				continue
			}
			if err := h.Handle(ctx, r); err != nil {
				m.reportError(xerrors.Errorf("logging: handler on channel %q: %w", c.name, err))
			}
		}
		if !c.propagate.Load() {
			break
		}
	}
	if found > 0 {
		return
	}
	m.hmu.RLock()
	lr := m.lastResort
	m.hmu.RUnlock()
	if lr != nil && lr.Enabled(ctx, r.Level()) {
		if err := lr.Handle(ctx, r); err != nil {
			m.reportError(xerrors.Errorf("logging: last resort handler: %w", err))
		}
	}
}

// Shutdown detaches every handler from every channel and closes those
// that implement io.Closer. A handler attached to several channels is
// closed once. The returned error combines all close errors.
func (m *Manager) Shutdown() error {
	m.mu.RLock()
	chans := make([]*channel, 0, len(m.channels)+1)
	chans = append(chans, m.root)
	for _, c := range m.channels {
		chans = append(chans, c)
	}
	m.mu.RUnlock()

	var (
		err  error
		seen []io.Closer
	)
	for _, c := range chans {
		for _, h := range c.removeAll() {
			cl, ok := h.(io.Closer)
			if !ok || containsCloser(seen, cl) {
				continue
			}
			seen = append(seen, cl)
			if cerr := cl.Close(); cerr != nil {
				err = multierr.Append(err, xerrors.Errorf("logging: closing handler on channel %q: %w", c.name, cerr))
			}
		}
	}
	return err
}

func containsCloser(cs []io.Closer, c io.Closer) bool {
	if !reflect.TypeOf(c).Comparable() {
		return false
	}
	for _, x := range cs {
		if reflect.TypeOf(x) == reflect.TypeOf(c) && x == c {
			return true
		}
	}
	return false
}
