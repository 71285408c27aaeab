// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"reflect"
	"time"
)

// An Attr is a key-value pair attached to a log record.
type Attr struct {
	Key   string
	Value any
}

// String returns an Attr for a string value.
func String(key, value string) Attr {
	return Attr{key, value}
}

// Int converts an int to an int64 and returns an Attr with that value.
func Int(key string, value int) Attr {
	return Int64(key, int64(value))
}

// Int64 returns an Attr for an int64.
func Int64(key string, value int64) Attr {
	return Attr{key, value}
}

// Uint64 returns an Attr for a uint64.
func Uint64(key string, value uint64) Attr {
	return Attr{key, value}
}

// Float64 returns an Attr for a floating-point number.
func Float64(key string, value float64) Attr {
	return Attr{key, value}
}

// Bool returns an Attr for a bool.
func Bool(key string, value bool) Attr {
	return Attr{key, value}
}

// Time returns an Attr for a time.Time.
// The monotonic portion of the time is dropped.
func Time(key string, v time.Time) Attr {
	return Attr{key, v.Round(0)}
}

// Duration returns an Attr for a time.Duration.
func Duration(key string, v time.Duration) Attr {
	return Attr{key, v}
}

// Any returns an Attr for the supplied value.
func Any(key string, value any) Attr {
	return Attr{key, value}
}

// Equal reports whether a and b have equal keys and values.
func (a Attr) Equal(b Attr) bool {
	if a.Key != b.Key {
		return false
	}
	if at, ok := a.Value.(time.Time); ok {
		bt, ok := b.Value.(time.Time)
		return ok && at.Equal(bt)
	}
	return reflect.DeepEqual(a.Value, b.Value)
}

// String returns the attr as key=value.
func (a Attr) String() string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value)
}

const badKey = "!BADKEY"

// argsToAttr turns a prefix of the args slice into an Attr and returns
// the unused portion of the slice.
// If args[0] is an Attr, it returns it.
// If args[0] is a string, it treats the first two elements as
// a key-value pair.
// Otherwise, it treats args[0] as a value with a missing key.
func argsToAttr(args []any) (Attr, []any) {
	switch x := args[0].(type) {
	case string:
		if len(args) == 1 {
			return String(badKey, x), nil
		}
		return Any(x, args[1]), args[2:]
	case Attr:
		return x, args[1:]
	default:
		return Any(badKey, x), args[1:]
	}
}

func attrsEqual(as1, as2 []Attr) bool {
	if len(as1) != len(as2) {
		return false
	}
	for i := range as1 {
		if !as1[i].Equal(as2[i]) {
			return false
		}
	}
	return true
}
