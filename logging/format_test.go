// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/xerrors"
)

var testTime = time.Date(2000, 1, 2, 3, 4, 5, 600_000_000, time.UTC)

func TestFormatterAppend(t *testing.T) {
	r := NewRecord(testTime, LevelInfo, "main", "Hello world!", 0)
	for _, test := range []struct {
		layout string
		attrs  []Attr
		want   string
	}{
		{DefaultFormat, nil, "INFO:main:Hello world!"},
		{DefaultFormat, []Attr{String("user", "pat"), Int("n", 3)}, "INFO:main:Hello world! user=pat n=3"},
		{DefaultFormat, []Attr{String("q", "a b")}, `INFO:main:Hello world! q="a b"`},
		{DefaultFormat, []Attr{String("e", "")}, `INFO:main:Hello world! e=""`},
		{"{time} {levelno} {name}: {message}", nil, "2000-01-02 03:04:05.600 20 main: Hello world!"},
		{"{{literal}} {message}", nil, "{literal}} Hello world!"},
		{"plain", nil, "plain"},
		{"{source}|{message}", nil, "|Hello world!"},
		{"[{level}]{attrs}", []Attr{Duration("d", time.Second), Bool("ok", true)}, "[INFO] d=1s ok=true"},
	} {
		r := r.Clone()
		r.AddAttrs(test.attrs...)
		f, err := ParseFormat(test.layout)
		if err != nil {
			t.Fatalf("%q: %v", test.layout, err)
		}
		got := string(f.Append(nil, r, "", nil))
		if got != test.want {
			t.Errorf("%q:\ngot  %q\nwant %q", test.layout, got, test.want)
		}
	}
}

func TestFormatterTimeLayout(t *testing.T) {
	r := NewRecord(testTime, LevelWarning, "x", "m", 0)
	got := string(MustParseFormat("{time}").Append(nil, r, time.Kitchen, nil))
	if want := "3:04AM"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	r = NewRecord(time.Time{}, LevelWarning, "x", "m", 0)
	got = string(MustParseFormat("{time}{message}").Append(nil, r, "", nil))
	if want := "m"; got != want {
		t.Errorf("zero time: got %q, want %q", got, want)
	}
}

func TestFormatterReplaceAttr(t *testing.T) {
	r := NewRecord(testTime, LevelInfo, "main", "msg", 0)
	r.AddAttrs(String("secret", "x"), String("keep", "y"))
	rep := func(a Attr) Attr {
		if a.Key == "secret" {
			return Attr{}
		}
		return a
	}
	got := string(defaultFormatter.Append(nil, r, "", rep))
	if want := "INFO:main:msg keep=y"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseFormatErrors(t *testing.T) {
	for _, layout := range []string{"{nope}", "{message", "x {Level}"} {
		_, err := ParseFormat(layout)
		if err == nil {
			t.Errorf("%q: got nil error", layout)
			continue
		}
		if !xerrors.Is(err, ErrBadFormat) {
			t.Errorf("%q: got %v, want ErrBadFormat", layout, err)
		}
	}
}

func TestNeedsQuoting(t *testing.T) {
	for _, test := range []struct {
		in   string
		want bool
	}{
		{"", true},
		{"ab", false},
		{"a b", true},
		{"a=b", true},
		{`a"b`, true},
		{"\t", true},
		{"日本", false},
		{"a\u00a0b", true},
		{"\xff", true},
	} {
		got := needsQuoting(test.in)
		if got != test.want {
			t.Errorf("%q: got %t, want %t", test.in, got, test.want)
		}
	}
}

func TestFormatterString(t *testing.T) {
	if got := defaultFormatter.String(); !strings.Contains(got, "{message}") {
		t.Errorf("got %q", got)
	}
}
