// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/playground/instrumented-script/logging"
	"github.com/playground/instrumented-script/logging/logtest"
	"golang.org/x/xerrors"
)

func newTestManager(t *testing.T) (*logging.Manager, *logtest.Recorder) {
	t.Helper()
	m := logging.NewManager()
	m.SetLastResort(nil)
	rec := &logtest.Recorder{Level: logging.LevelNotSet - 100}
	if err := m.BasicConfig(logging.Config{Handlers: []logging.Handler{rec}, Level: logging.LevelNotSet}); err != nil {
		t.Fatal(err)
	}
	return m, rec
}

func TestLoggerEmits(t *testing.T) {
	m, rec := newTestManager(t)
	l := m.Logger("main")
	l.Debug("d", "k", 1)
	l.Info("Hello world!")
	l.Warn("w")
	l.Error("e", logging.String("s", "x"))
	l.Critical("c")
	l.Log(context.Background(), logging.LevelNotSet, "n")
	l.LogAttrs(context.Background(), logging.LevelInfo+1, "a", logging.Bool("b", true))

	want := []logtest.Entry{
		{Level: logging.LevelDebug, Channel: "main", Message: "d", Attrs: []logging.Attr{logging.Any("k", 1)}},
		{Level: logging.LevelInfo, Channel: "main", Message: "Hello world!"},
		{Level: logging.LevelWarning, Channel: "main", Message: "w"},
		{Level: logging.LevelError, Channel: "main", Message: "e", Attrs: []logging.Attr{logging.String("s", "x")}},
		{Level: logging.LevelCritical, Channel: "main", Message: "c"},
		{Level: logging.LevelNotSet, Channel: "main", Message: "n"},
		{Level: logging.LevelInfo + 1, Channel: "main", Message: "a", Attrs: []logging.Attr{logging.Bool("b", true)}},
	}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRootThreshold(t *testing.T) {
	m := logging.NewManager()
	m.SetLastResort(nil)
	rec := &logtest.Recorder{}
	m.Root().AddHandler(rec)
	if got, want := m.Root().Level(), logging.LevelWarning; got != want {
		t.Fatalf("root level: got %v, want %v", got, want)
	}
	l := m.Logger("app")
	l.Info("dropped")
	l.Warn("kept")
	if got := len(rec.Entries()); got != 1 {
		t.Errorf("got %d entries, want 1", got)
	}
	if l.Enabled(context.Background(), logging.LevelInfo) {
		t.Error("Info enabled under the default threshold")
	}
}

func TestEffectiveLevel(t *testing.T) {
	m := logging.NewManager()
	abc := m.Logger("a.b.c")
	if got, want := abc.EffectiveLevel(), logging.LevelWarning; got != want {
		t.Errorf("before: got %v, want %v", got, want)
	}
	// "a" is created after its descendant and must still be found.
	m.Logger("a").SetLevel(logging.LevelDebug)
	if got, want := abc.EffectiveLevel(), logging.LevelDebug; got != want {
		t.Errorf("after parent: got %v, want %v", got, want)
	}
	m.Logger("a.b").SetLevel(logging.LevelError)
	if got, want := abc.EffectiveLevel(), logging.LevelError; got != want {
		t.Errorf("after nearer ancestor: got %v, want %v", got, want)
	}
	abc.SetLevel(logging.LevelInfo)
	if got, want := abc.EffectiveLevel(), logging.LevelInfo; got != want {
		t.Errorf("own level: got %v, want %v", got, want)
	}
	abc.SetLevel(logging.LevelNotSet)
	m.Logger("a.b").SetLevel(logging.LevelNotSet)
	m.Logger("a").SetLevel(logging.LevelNotSet)
	m.Root().SetLevel(logging.LevelNotSet)
	if got, want := abc.EffectiveLevel(), logging.LevelNotSet; got != want {
		t.Errorf("all unset: got %v, want %v", got, want)
	}
}

func TestPropagation(t *testing.T) {
	m, rootRec := newTestManager(t)
	var mid, leaf logtest.Recorder
	m.Logger("svc").AddHandler(&mid)
	m.Logger("svc.db").AddHandler(&leaf)

	m.Logger("svc.db").Info("one")
	m.Logger("svc").SetPropagate(false)
	m.Logger("svc.db").Info("two")

	if got := messages(leaf.Entries()); !cmp.Equal(got, []string{"one", "two"}) {
		t.Errorf("leaf: got %v", got)
	}
	if got := messages(mid.Entries()); !cmp.Equal(got, []string{"one", "two"}) {
		t.Errorf("mid: got %v", got)
	}
	if got := messages(rootRec.Entries()); !cmp.Equal(got, []string{"one"}) {
		t.Errorf("root: got %v", got)
	}
	if m.Logger("svc").Propagate() {
		t.Error("Propagate: got true")
	}
}

func TestHandlerLevelsAreIndependent(t *testing.T) {
	m, rootRec := newTestManager(t)
	rootRec.Level = logging.LevelError
	l := m.Logger("x")
	l.Warn("w")
	l.Error("e")
	if got := messages(rootRec.Entries()); !cmp.Equal(got, []string{"e"}) {
		t.Errorf("got %v", got)
	}
}

func TestDisable(t *testing.T) {
	m, rec := newTestManager(t)
	l := m.Logger("x")
	m.Disable(logging.LevelWarning)
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	m.Disable(logging.LevelNotSet)
	l.Debug("d")
	if got := messages(rec.Entries()); !cmp.Equal(got, []string{"e", "d"}) {
		t.Errorf("got %v", got)
	}
}

func TestLastResort(t *testing.T) {
	m := logging.NewManager()
	var buf bytes.Buffer
	m.SetLastResort(logging.HandlerOptions{Level: logging.LevelWarning, Format: "{message}"}.NewTextHandler(&buf))
	l := m.Logger("lonely")
	l.Warn("first")
	l.Error("second")
	if got, want := buf.String(), "first\nsecond\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A handler that declines the record still counts as configured.
	buf.Reset()
	m.Root().AddHandler(logging.DiscardHandler)
	l.Error("third")
	if got := buf.String(); got != "" {
		t.Errorf("after DiscardHandler: got %q", got)
	}
}

func TestHandlerErrors(t *testing.T) {
	m, _ := newTestManager(t)
	boom := errors.New("boom")
	bad := &logtest.Recorder{Err: boom}
	good := &logtest.Recorder{}
	l := m.Logger("svc")
	l.AddHandler(bad)
	l.AddHandler(good)

	var mu sync.Mutex
	var errs []error
	m.SetErrorHandler(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	})
	l.Warn("w")

	if len(good.Entries()) != 1 {
		t.Errorf("good handler got %d entries, want 1", len(good.Entries()))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if !xerrors.Is(errs[0], boom) {
		t.Errorf("got %v, want wrapping boom", errs[0])
	}
	if !strings.Contains(errs[0].Error(), `"svc"`) {
		t.Errorf("error %q does not name the channel", errs[0])
	}

	m.SetErrorHandler(nil)
	l.Warn("ignored error")
}

func TestWithAndChild(t *testing.T) {
	m, rec := newTestManager(t)
	l := m.Logger("svc").With("req", 7)
	l.Info("a", "k", "v")
	l.Child("db").Info("b")
	m.Root().Child("top").Info("c")
	m.Logger("svc").Info("d")

	want := []logtest.Entry{
		{Level: logging.LevelInfo, Channel: "svc", Message: "a", Attrs: []logging.Attr{logging.Any("req", 7), logging.String("k", "v")}},
		{Level: logging.LevelInfo, Channel: "svc.db", Message: "b", Attrs: []logging.Attr{logging.Any("req", 7)}},
		{Level: logging.LevelInfo, Channel: "top", Message: "c"},
		{Level: logging.LevelInfo, Channel: "svc", Message: "d"},
	}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.Names(), []string{"svc", "svc.db", "top"}; !cmp.Equal(got, want) {
		t.Errorf("Names: got %v, want %v", got, want)
	}
}

func TestSameNameSameChannel(t *testing.T) {
	m := logging.NewManager()
	m.Logger("a").SetLevel(logging.LevelError)
	if got := m.Logger("a").Level(); got != logging.LevelError {
		t.Errorf("got %v, want ERROR", got)
	}
	for _, name := range []string{"", logging.RootName} {
		if got := m.Logger(name).Name(); got != logging.RootName {
			t.Errorf("%q: got %q, want root", name, got)
		}
	}
}

func TestHandleRecord(t *testing.T) {
	m, rec := newTestManager(t)
	m.Root().SetLevel(logging.LevelCritical)
	r := logging.NewRecord(time.Now(), logging.LevelDebug, "ext", "direct", 0)
	m.Logger("ext").With("w", 1).Handle(context.Background(), r)
	want := []logtest.Entry{{Level: logging.LevelDebug, Channel: "ext", Message: "direct", Attrs: []logging.Attr{logging.Any("w", 1)}}}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if r.NumAttrs() != 0 {
		t.Error("Handle modified the caller's record")
	}
}

func TestHandleAttrOrderMatchesLog(t *testing.T) {
	m, rec := newTestManager(t)
	l := m.Logger("x").With("bound", 1)
	l.Info("log", "call", 2)
	r := logging.NewRecord(time.Now(), logging.LevelInfo, "x", "handle", 0)
	r.Add("call", 2)
	l.Handle(context.Background(), r)

	attrs := []logging.Attr{logging.Any("bound", 1), logging.Any("call", 2)}
	want := []logtest.Entry{
		{Level: logging.LevelInfo, Channel: "x", Message: "log", Attrs: attrs},
		{Level: logging.LevelInfo, Channel: "x", Message: "handle", Attrs: attrs},
	}
	if diff := cmp.Diff(want, rec.Entries(), logtest.CmpOptions...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if r.NumAttrs() != 1 {
		t.Errorf("Handle modified the caller's record: %d attrs", r.NumAttrs())
	}
}

func TestContext(t *testing.T) {
	m, rec := newTestManager(t)
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	l := m.Logger("ctx")
	ctx = logging.NewContext(ctx, l)
	logging.FromContext(ctx).Log(ctx, logging.LevelInfo, "m")
	ctxs := rec.Contexts()
	if len(ctxs) != 1 || ctxs[0].Value(key{}) != "v" {
		t.Errorf("handler did not receive the caller's context")
	}
	if logging.FromContext(context.Background()) != nil {
		t.Error("FromContext: got non-nil Logger")
	}
}

func TestNilLogger(t *testing.T) {
	var l *logging.Logger
	l.Info("nothing")
	l.With("a", 1).Child("b").Warn("nothing")
	if l.Enabled(context.Background(), logging.LevelCritical) {
		t.Error("nil Logger enabled")
	}
	if l.HasHandlers() {
		t.Error("nil Logger has handlers")
	}
}

func TestRemoveHandler(t *testing.T) {
	m := logging.NewManager()
	l := m.Logger("x")
	rec := &logtest.Recorder{}
	l.AddHandler(rec)
	l.AddHandler(rec)
	if got := len(l.Handlers()); got != 2 {
		t.Fatalf("got %d handlers, want 2", got)
	}
	if !l.RemoveHandler(rec) || !l.RemoveHandler(rec) {
		t.Fatal("RemoveHandler failed")
	}
	if l.RemoveHandler(rec) {
		t.Error("RemoveHandler of a missing handler reported true")
	}
	if l.HasHandlers() {
		t.Error("HasHandlers after removal")
	}
}

func TestSource(t *testing.T) {
	m := logging.NewManager()
	var buf bytes.Buffer
	m.Root().AddHandler(logging.HandlerOptions{Format: "{source}"}.NewTextHandler(&buf))
	m.Root().Warn("here")
	got := strings.TrimSpace(buf.String())
	if file, _, ok := strings.Cut(got, ":"); !ok || filepath.Base(file) != "logger_test.go" {
		t.Errorf("got source %q, want logger_test.go", got)
	}
}

func TestConcurrentLogging(t *testing.T) {
	m, rec := newTestManager(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := m.Logger("worker")
			for j := 0; j < 50; j++ {
				l.Info("tick")
			}
		}()
	}
	wg.Wait()
	if got, want := len(rec.Entries()), 8*50; got != want {
		t.Errorf("got %d entries, want %d", got, want)
	}
}

func messages(es []logtest.Entry) []string {
	var ms []string
	for _, e := range es {
		ms = append(ms, e.Message)
	}
	return ms
}
