// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package promsink provides a logging.Handler that counts records in a
// Prometheus counter, labelled by level and channel.
package promsink

import (
	"context"

	"github.com/playground/instrumented-script/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricName is the name of the counter the handler registers.
const MetricName = "log_records_total"

// Handler counts every record it handles.
type Handler struct {
	records *prometheus.CounterVec
	level   logging.Leveler
}

var _ logging.Handler = (*Handler)(nil)

// NewHandler registers the counter with reg and returns a Handler that
// ignores records below level. A nil level counts all records.
// It panics if the counter is already registered with reg.
func NewHandler(reg prometheus.Registerer, level logging.Leveler) *Handler {
	return &Handler{
		records: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: MetricName,
			Help: "Number of log records handled, by level and logger.",
		}, []string{"level", "logger"}),
		level: level,
	}
}

func (h *Handler) Enabled(_ context.Context, l logging.Level) bool {
	return h.level == nil || l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r logging.Record) error {
	h.records.WithLabelValues(r.Level().String(), r.Channel()).Inc()
	return nil
}

// Count returns the counter for the given level and channel.
func (h *Handler) Count(level logging.Level, channel string) prometheus.Counter {
	return h.records.WithLabelValues(level.String(), channel)
}
