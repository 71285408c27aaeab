// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"io"
	"os"

	"go.uber.org/multierr"
	"golang.org/x/xerrors"
)

// Config describes a default configuration for the root channel.
// A zero Config writes text records with DefaultFormat to standard error.
type Config struct {
	// Output is where the created handler writes. If nil, os.Stderr.
	Output io.Writer

	// Format is the text layout; see Formatter. If empty, DefaultFormat.
	Format string

	// TimeLayout is the layout for the {time} token.
	TimeLayout string

	// JSON selects a JSONHandler instead of a TextHandler.
	JSON bool

	// AddSource adds the call site to JSON output.
	AddSource bool

	// Level, if not nil, becomes the root channel's threshold.
	Level Leveler

	// Handlers, if not empty, are attached to the root instead of
	// creating a handler. It cannot be combined with Output, Format or JSON.
	Handlers []Handler

	// Force replaces handlers already attached to the root. The replaced
	// handlers are closed if they implement io.Closer.
	Force bool
}

// ErrConflictingConfig is returned by BasicConfig when Config.Handlers is
// combined with options that describe a handler to create.
var ErrConflictingConfig = xerrors.New("logging: Handlers cannot be combined with Output, Format or JSON")

// BasicConfig attaches a handler to the root channel as described by c.
//
// If the root already has a handler and c.Force is false, BasicConfig does
// nothing, so calling it more than once never duplicates output.
// Validation errors leave the manager unchanged. With c.Force, errors from
// closing the replaced handlers are returned after the new configuration
// has been applied.
func (m *Manager) BasicConfig(c Config) error {
	if len(c.Handlers) > 0 && (c.Output != nil || c.Format != "" || c.JSON) {
		return ErrConflictingConfig
	}
	if c.Format != "" {
		if _, err := ParseFormat(c.Format); err != nil {
			return xerrors.Errorf("logging: basic config: %w", err)
		}
	}

	m.cfgMu.Lock()
	defer m.cfgMu.Unlock()

	root := m.root
	var err error
	if c.Force {
		for _, h := range root.removeAll() {
			if cl, ok := h.(io.Closer); ok {
				err = multierr.Append(err, cl.Close())
			}
		}
	} else if len(root.snapshot()) > 0 {
		return nil
	}

	hs := c.Handlers
	if len(hs) == 0 {
		out := c.Output
		if out == nil {
			out = os.Stderr
		}
		opts := HandlerOptions{
			AddSource:  c.AddSource,
			Format:     c.Format,
			TimeLayout: c.TimeLayout,
		}
		if c.JSON {
			hs = []Handler{opts.NewJSONHandler(out)}
		} else {
			hs = []Handler{opts.NewTextHandler(out)}
		}
	}
	for _, h := range hs {
		if h != nil {
			root.add(h)
		}
	}
	if c.Level != nil {
		root.level.Set(c.Level.Level())
	}
	if err != nil {
		return xerrors.Errorf("logging: closing replaced handlers: %w", err)
	}
	return nil
}
