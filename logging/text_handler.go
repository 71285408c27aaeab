// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"
)

// TextHandler is a Handler that writes Records to an io.Writer as
// lines of text laid out by a Formatter.
type TextHandler struct {
	*commonHandler
}

// NewTextHandler creates a TextHandler that writes to w,
// using the default options.
func NewTextHandler(w io.Writer) *TextHandler {
	return (HandlerOptions{}).NewTextHandler(w)
}

// NewTextHandler creates a TextHandler with the given options that writes to w.
func (opts HandlerOptions) NewTextHandler(w io.Writer) *TextHandler {
	f := defaultFormatter
	if opts.Format != "" {
		if pf, err := ParseFormat(opts.Format); err == nil {
			f = pf
		}
	}
	return &TextHandler{
		&commonHandler{
			opts: opts,
			w:    w,
			fmt:  f,
		},
	}
}

// Format returns the layout the handler writes with.
func (h *TextHandler) Format() string { return h.fmt.String() }

// Enabled reports whether the handler handles records at the given level.
// The handler ignores records whose level is lower.
func (h *TextHandler) Enabled(_ context.Context, level Level) bool {
	return h.opts.enabled(level)
}

// Handle formats the Record as a single line per the handler's layout.
//
// With DefaultFormat, the line is the level, channel name and message
// separated by colons, followed by the attributes as key=value pairs.
// Keys and values containing spaces, '=', '"' or non-printing characters
// are quoted with strconv.Quote.
//
// Each call to Handle results in a single serialized call to
// io.Writer.Write.
func (h *TextHandler) Handle(_ context.Context, r Record) error {
	return h.commonHandler.handle(r)
}
