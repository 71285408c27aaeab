// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"encoding"
	"fmt"
	"io"
	"sync"
	"time"
)

// A Handler handles log records produced by a Logger.
//
// A typical handler may print log records to standard error,
// or write them to a file or database, or perhaps augment them
// with additional attributes and pass them on to another handler.
//
// Any of the Handler's methods may be called concurrently with itself
// or with other methods. It is the responsibility of the Handler to
// manage this concurrency.
//
// A Handler that also implements io.Closer is closed by Manager.Shutdown
// and when BasicConfig replaces it.
type Handler interface {
	// Enabled reports whether the handler handles records at the given level.
	// The handler ignores records whose level is lower.
	Enabled(context.Context, Level) bool

	// Handle handles the Record.
	// It is only called when Enabled returns true.
	// Handle methods that produce output should observe the following rules:
	//   - If r.Time() is the zero time, ignore the time.
	//   - If an Attr's key is the empty string, ignore the Attr.
	Handle(ctx context.Context, r Record) error
}

// HandlerOptions are options for a TextHandler or JSONHandler.
// A zero HandlerOptions consists entirely of default values.
type HandlerOptions struct {
	// Ignore records with levels below Level.Level().
	// If nil, accept all levels.
	Level Leveler

	// Add a "source" attribute to JSON output whose value is of the form
	// "file:line". Text output shows the source through the {source} token.
	AddSource bool

	// Format is the text layout, see Formatter. If empty, DefaultFormat.
	// An invalid layout falls back to DefaultFormat; use ParseFormat to
	// validate a layout first. JSONHandler ignores it.
	Format string

	// TimeLayout is the time.Format layout for the {time} token.
	// If empty, DefaultTimeLayout.
	TimeLayout string

	// If set, ReplaceAttr is called on each attribute of the record,
	// and the returned value is used instead of the original. If the returned
	// key is empty, the attribute is omitted from the output.
	// JSONHandler also passes the built-in time, level, name, source and
	// msg fields to it; TextHandler only the record's attributes.
	ReplaceAttr func(a Attr) Attr

	// If set, only records for which Filter returns true are written.
	Filter func(r Record) bool
}

func (o *HandlerOptions) enabled(l Level) bool {
	if o.Level == nil {
		return true
	}
	return l >= o.Level.Level()
}

type commonHandler struct {
	opts HandlerOptions
	mu   sync.Mutex
	w    io.Writer
	json bool
	fmt  *Formatter
}

func (h *commonHandler) handle(r Record) error {
	if h.opts.Filter != nil && !h.opts.Filter(r) {
		return nil
	}
	var buf []byte
	if h.json {
		buf = h.appendJSON(buf, r)
	} else {
		buf = h.fmt.Append(buf, r, h.opts.TimeLayout, h.opts.ReplaceAttr)
	}
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// textValue renders an attribute value for text output.
func textValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return string(appendTimeRFC3339Millis(nil, x))
	case encoding.TextMarshaler:
		data, err := x.MarshalText()
		if err != nil {
			return fmt.Sprintf("!ERROR:%v", err)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

// appendTimeRFC3339Millis appends t in RFC 3339 format with millisecond
// precision.
func appendTimeRFC3339Millis(buf []byte, t time.Time) []byte {
	return t.AppendFormat(buf, "2006-01-02T15:04:05.000Z07:00")
}

// DiscardHandler is enabled for no level and drops every record.
// Attach it to a channel to give it a handler without producing output.
var DiscardHandler Handler = discardHandler{}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, Level) bool  { return false }
func (discardHandler) Handle(context.Context, Record) error { return nil }
