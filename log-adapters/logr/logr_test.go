// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package llogr

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/playground/instrumented-script/logging"
	"github.com/playground/instrumented-script/logging/logtest"
)

func newManager(t *testing.T, level logging.Level) (*logging.Manager, *logtest.Recorder) {
	t.Helper()
	m := logging.NewManager()
	m.SetLastResort(nil)
	rec := &logtest.Recorder{Level: logging.LevelNotSet}
	if err := m.BasicConfig(logging.Config{Handlers: []logging.Handler{rec}, Level: level}); err != nil {
		t.Fatal(err)
	}
	return m, rec
}

func TestInfo(t *testing.T) {
	m, rec := newManager(t, logging.LevelNotSet)
	log := NewLogger(m.Logger("r")).WithName("n").V(3)
	log = log.WithName("m").WithValues("traceID", 17)
	log.Info("mess", "resource", "R")
	want := []logtest.Entry{{
		Level:   logging.LevelInfo - 3,
		Channel: "r.n.m",
		Message: "mess",
		Attrs: []logging.Attr{
			logging.Any("traceID", 17),
			logging.Any("resource", "R"),
		},
	}}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestError(t *testing.T) {
	m, rec := newManager(t, logging.LevelWarning)
	log := NewLogger(m.Logger("r"))
	log.Info("dropped")
	log.Error(errors.New("boom"), "failed", "odd")
	want := []logtest.Entry{{
		Level:   logging.LevelError,
		Channel: "r",
		Message: "failed",
		Attrs: []logging.Attr{
			logging.Any("odd", "<no-value>"),
			logging.String("error", "boom"),
		},
	}}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestVerbosity(t *testing.T) {
	for _, test := range []struct {
		v    int
		want logging.Level
	}{
		{0, logging.LevelInfo},
		{1, logging.LevelInfo - 1},
		{10, logging.LevelDebug},
		{19, logging.LevelDebug - 9},
		{100, logging.LevelDebug - 9},
	} {
		if got := Level(test.v); got != test.want {
			t.Errorf("V(%d): got %v, want %v", test.v, got, test.want)
		}
	}

	m, _ := newManager(t, logging.LevelDebug)
	log := NewLogger(m.Logger("r"))
	if !log.V(10).Enabled() {
		t.Error("V(10) disabled at DEBUG")
	}
	if log.V(11).Enabled() {
		t.Error("V(11) enabled at DEBUG")
	}
}

func TestCaller(t *testing.T) {
	m := logging.NewManager()
	var buf bytes.Buffer
	m.Root().AddHandler(logging.HandlerOptions{Format: "{source}"}.NewTextHandler(&buf))
	m.Root().SetLevel(logging.LevelInfo)
	NewLogger(m.Root()).Info("here")
	file, _, _ := strings.Cut(buf.String(), ":")
	if got, want := filepath.Base(file), "logr_test.go"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
