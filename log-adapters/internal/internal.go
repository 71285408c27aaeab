// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package internal holds helpers shared by the log adapters.
package internal

import (
	"context"
	"fmt"

	"github.com/playground/instrumented-script/logging"
)

// KeyValues converts an alternating key/value list into attributes.
// Keys that are not strings are formatted with fmt.Sprint.
// A trailing key without a value is paired with missing.
func KeyValues(kvs []any, missing any) []logging.Attr {
	attrs := make([]logging.Attr, 0, (len(kvs)+1)/2)
	for i := 0; i < len(kvs); i += 2 {
		var v any = missing
		if i+1 < len(kvs) {
			v = kvs[i+1]
		}
		attrs = append(attrs, logging.Any(keyString(kvs[i]), v))
	}
	return attrs
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// Emit builds a record and delivers it on l if l is enabled at level.
// Adapters call it after doing their own level mapping.
func Emit(ctx context.Context, l *logging.Logger, r logging.Record) {
	if ctx == nil {
		ctx = context.Background()
	}
	if !l.Enabled(ctx, r.Level()) {
		return
	}
	l.Handle(ctx, r)
}
