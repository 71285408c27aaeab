// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"
)

// Keys for the built-in fields of JSON output.
const (
	TimeKey    = "time"
	LevelKey   = "level"
	NameKey    = "name"
	MessageKey = "msg"
	SourceKey  = "source"
)

// JSONHandler is a Handler that writes Records to an io.Writer as
// line-delimited JSON objects.
type JSONHandler struct {
	*commonHandler
}

// NewJSONHandler creates a JSONHandler that writes to w,
// using the default options.
func NewJSONHandler(w io.Writer) *JSONHandler {
	return (HandlerOptions{}).NewJSONHandler(w)
}

// NewJSONHandler creates a JSONHandler with the given options that writes to w.
func (opts HandlerOptions) NewJSONHandler(w io.Writer) *JSONHandler {
	return &JSONHandler{
		&commonHandler{
			json: true,
			opts: opts,
			w:    w,
		},
	}
}

// Enabled reports whether the handler handles records at the given level.
// The handler ignores records whose level is lower.
func (h *JSONHandler) Enabled(_ context.Context, level Level) bool {
	return h.opts.enabled(level)
}

// Handle formats its argument Record as a JSON object on a single line.
//
// The time is output under TimeKey in RFC 3339 format with millisecond
// precision. It is omitted if zero.
//
// The level is output under LevelKey as Level.String, the channel name
// under NameKey and the message under MessageKey.
//
// If the AddSource option is set and source information is available,
// "file:line" is output under SourceKey.
//
// Values are formatted with encoding/json.Marshal, except that floats
// that JSON cannot represent are written as the strings "+Inf", "-Inf"
// and "NaN", and values that fail to marshal are written as
// "!ERROR:<err>".
//
// Each call to Handle results in a single serialized call to io.Writer.Write.
func (h *JSONHandler) Handle(_ context.Context, r Record) error {
	return h.commonHandler.handle(r)
}

func (h *commonHandler) appendJSON(buf []byte, r Record) []byte {
	s := jsonState{buf: buf, rep: h.opts.ReplaceAttr}
	s.buf = append(s.buf, '{')
	if t := r.Time(); !t.IsZero() {
		s.attr(Time(TimeKey, t))
	}
	s.attr(String(LevelKey, r.Level().String()))
	s.attr(String(NameKey, r.Channel()))
	if h.opts.AddSource {
		if file, line := r.Source(); file != "" {
			s.attr(String(SourceKey, file+":"+strconv.Itoa(line)))
		}
	}
	s.attr(String(MessageKey, r.Message()))
	r.Attrs(func(a Attr) bool {
		s.attr(a)
		return true
	})
	return append(s.buf, '}')
}

type jsonState struct {
	buf []byte
	rep func(Attr) Attr
	sep bool
}

func (s *jsonState) attr(a Attr) {
	if s.rep != nil {
		a = s.rep(a)
	}
	if a.Key == "" {
		return
	}
	if s.sep {
		s.buf = append(s.buf, ',')
	}
	s.sep = true
	s.buf = appendJSONMarshal(s.buf, a.Key)
	s.buf = append(s.buf, ':')
	s.value(a.Value)
}

func (s *jsonState) value(v any) {
	switch x := v.(type) {
	case time.Time:
		s.buf = append(s.buf, '"')
		s.buf = appendTimeRFC3339Millis(s.buf, x)
		s.buf = append(s.buf, '"')
	case time.Duration:
		// Do what json.Marshal does.
		s.buf = strconv.AppendInt(s.buf, int64(x), 10)
	case float64:
		// json.Marshal fails on special floats, so handle them here.
		switch {
		case math.IsInf(x, 1):
			s.buf = append(s.buf, `"+Inf"`...)
		case math.IsInf(x, -1):
			s.buf = append(s.buf, `"-Inf"`...)
		case math.IsNaN(x):
			s.buf = append(s.buf, `"NaN"`...)
		default:
			s.buf = appendJSONMarshal(s.buf, x)
		}
	case error:
		s.buf = appendJSONMarshal(s.buf, x.Error())
	default:
		s.buf = appendJSONMarshal(s.buf, v)
	}
}

func appendJSONMarshal(buf []byte, v any) []byte {
	var bb bytes.Buffer
	enc := json.NewEncoder(&bb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return appendJSONMarshal(buf, fmt.Sprintf("!ERROR:%v", err))
	}
	// Encode appends a newline.
	return append(buf, bytes.TrimRight(bb.Bytes(), "\n")...)
}
