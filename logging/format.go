// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// DefaultFormat is the layout used by BasicConfig and by a TextHandler
// whose options leave Format empty. It renders as
//
//	INFO:main:Hello world! user=pat
const DefaultFormat = "{level}:{name}:{message}{attrs}"

// DefaultTimeLayout is the time.Format layout for the {time} token.
const DefaultTimeLayout = "2006-01-02 15:04:05.000"

// ErrBadFormat is returned, wrapped, by ParseFormat.
var ErrBadFormat = xerrors.New("logging: bad format")

type token int

const (
	tokLiteral token = iota
	tokTime
	tokLevel
	tokLevelNo
	tokName
	tokMessage
	tokSource
	tokAttrs
)

var tokenNames = map[string]token{
	"time":    tokTime,
	"level":   tokLevel,
	"levelno": tokLevelNo,
	"name":    tokName,
	"message": tokMessage,
	"source":  tokSource,
	"attrs":   tokAttrs,
}

type segment struct {
	tok     token
	literal string
}

// A Formatter renders records as text according to a layout.
//
// A layout is literal text with tokens in braces:
//
//	{time}     record time, formatted with the time layout
//	{level}    level name, as Level.String
//	{levelno}  level number
//	{name}     channel name
//	{message}  record message
//	{source}   file:line of the call site, empty if unknown
//	{attrs}    each attribute as " key=value", quoted when needed
//
// "{{" stands for a literal "{". A Formatter is safe for concurrent use.
type Formatter struct {
	layout   string
	segments []segment
}

// ParseFormat parses a layout into a Formatter.
func ParseFormat(layout string) (*Formatter, error) {
	f := &Formatter{layout: layout}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			f.segments = append(f.segments, segment{tok: tokLiteral, literal: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '{' {
			lit.WriteByte(c)
			continue
		}
		if i+1 < len(layout) && layout[i+1] == '{' {
			lit.WriteByte('{')
			i++
			continue
		}
		end := strings.IndexByte(layout[i:], '}')
		if end < 0 {
			return nil, xerrors.Errorf("%w: unterminated token at offset %d in %q", ErrBadFormat, i, layout)
		}
		name := layout[i+1 : i+end]
		tok, ok := tokenNames[name]
		if !ok {
			return nil, xerrors.Errorf("%w: unknown token {%s} in %q", ErrBadFormat, name, layout)
		}
		flush()
		f.segments = append(f.segments, segment{tok: tok})
		i += end
	}
	flush()
	return f, nil
}

// MustParseFormat is like ParseFormat but panics if the layout is invalid.
func MustParseFormat(layout string) *Formatter {
	f, err := ParseFormat(layout)
	if err != nil {
		panic(err)
	}
	return f
}

var defaultFormatter = MustParseFormat(DefaultFormat)

// String returns the layout f was parsed from.
func (f *Formatter) String() string { return f.layout }

// Append appends the rendering of r to buf and returns the extended buffer.
// No trailing newline is added.
func (f *Formatter) Append(buf []byte, r Record, timeLayout string, rep func(Attr) Attr) []byte {
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}
	for _, s := range f.segments {
		switch s.tok {
		case tokLiteral:
			buf = append(buf, s.literal...)
		case tokTime:
			if !r.Time().IsZero() {
				buf = r.Time().AppendFormat(buf, timeLayout)
			}
		case tokLevel:
			buf = append(buf, r.Level().String()...)
		case tokLevelNo:
			buf = strconv.AppendInt(buf, int64(r.Level()), 10)
		case tokName:
			buf = append(buf, r.Channel()...)
		case tokMessage:
			buf = append(buf, r.Message()...)
		case tokSource:
			if file, line := r.Source(); file != "" {
				buf = append(buf, file...)
				buf = append(buf, ':')
				buf = strconv.AppendInt(buf, int64(line), 10)
			}
		case tokAttrs:
			r.Attrs(func(a Attr) bool {
				buf = appendTextAttr(buf, a, rep)
				return true
			})
		}
	}
	return buf
}

func appendTextAttr(buf []byte, a Attr, rep func(Attr) Attr) []byte {
	if rep != nil {
		a = rep(a)
	}
	if a.Key == "" {
		return buf
	}
	buf = append(buf, ' ')
	buf = appendMaybeQuoted(buf, a.Key)
	buf = append(buf, '=')
	return appendMaybeQuoted(buf, textValue(a.Value))
}

func appendMaybeQuoted(buf []byte, s string) []byte {
	if needsQuoting(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

// needsQuoting reports whether s must be quoted to be read back
// unambiguously as a single key or value.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); {
		b := s[i]
		if b < utf8.RuneSelf {
			if b <= ' ' || b == '=' || b == '"' || b == 0x7f {
				return true
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return true
		}
		i += size
	}
	return false
}
