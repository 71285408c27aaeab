// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otelsink provides a logging.Handler that records log records as
// OpenTelemetry span events.
package otelsink

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/playground/instrumented-script/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EventName is the name of the span events the handler adds.
const EventName = "log"

// Attribute keys for the record's built-in fields.
const (
	LevelKey   = attribute.Key("log.level")
	LoggerKey  = attribute.Key("log.logger")
	MessageKey = attribute.Key("log.message")
)

// Handler adds each record as an event on the recording span found in the
// context passed to Handle. Records at ERROR or above also set the span's
// status to codes.Error with the record's message.
// Records logged without a recording span are dropped.
type Handler struct {
	level logging.Leveler
}

var _ logging.Handler = (*Handler)(nil)

// NewHandler returns a Handler that ignores records below level.
// A nil level accepts all records.
func NewHandler(level logging.Leveler) *Handler {
	return &Handler{level: level}
}

func (h *Handler) Enabled(_ context.Context, l logging.Level) bool {
	return h.level == nil || l >= h.level.Level()
}

func (h *Handler) Handle(ctx context.Context, r logging.Record) error {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return nil
	}
	attrs := make([]attribute.KeyValue, 0, 3+r.NumAttrs())
	attrs = append(attrs,
		LevelKey.String(r.Level().String()),
		LoggerKey.String(r.Channel()),
		MessageKey.String(r.Message()),
	)
	r.Attrs(func(a logging.Attr) bool {
		if a.Key != "" {
			attrs = append(attrs, keyValue(a))
		}
		return true
	})
	opts := []trace.EventOption{trace.WithAttributes(attrs...)}
	if t := r.Time(); !t.IsZero() {
		opts = append(opts, trace.WithTimestamp(t))
	}
	span.AddEvent(EventName, opts...)
	if r.Level() >= logging.LevelError {
		span.SetStatus(codes.Error, r.Message())
	}
	return nil
}

func keyValue(a logging.Attr) attribute.KeyValue {
	k := attribute.Key(a.Key)
	switch v := a.Value.(type) {
	case string:
		return k.String(v)
	case int64:
		return k.Int64(v)
	case int:
		return k.Int(v)
	case uint64:
		// Values past the int64 range keep their digits as a string.
		if v <= math.MaxInt64 {
			return k.Int64(int64(v))
		}
		return k.String(strconv.FormatUint(v, 10))
	case float64:
		return k.Float64(v)
	case bool:
		return k.Bool(v)
	case time.Duration:
		return k.String(v.String())
	case time.Time:
		return k.String(v.Format(time.RFC3339Nano))
	case error:
		return k.String(v.Error())
	case fmt.Stringer:
		return k.String(v.String())
	default:
		return k.String(fmt.Sprint(v))
	}
}
