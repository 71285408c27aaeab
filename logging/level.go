// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/xerrors"
)

// A Level is the severity of a log record.
// The higher the level, the more severe the record.
type Level int

// Names for common levels.
//
// The gap of ten between named levels leaves room for schemes with levels
// in between, such as a Notice level between Info and Warning, or the
// verbosities of a V-style logger below Info.
const (
	LevelNotSet   Level = 0
	LevelDebug    Level = 10
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50
)

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelCritical, "CRITICAL"},
	{LevelError, "ERROR"},
	{LevelWarning, "WARNING"},
	{LevelInfo, "INFO"},
	{LevelDebug, "DEBUG"},
	{LevelNotSet, "NOTSET"},
}

// String returns a name for the level.
// If the level has a name, that name is returned.
// Otherwise the name of the nearest lower named level is returned with
// the offset appended:
//
//	LevelInfo.String() => "INFO"
//	(LevelWarning+2).String() => "WARNING+2"
//	Level(-3).String() => "NOTSET-3"
func (l Level) String() string {
	str := func(base string, val Level) string {
		if val == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, val)
	}
	for _, n := range levelNames {
		if l >= n.level {
			return str(n.name, l-n.level)
		}
	}
	return str("NOTSET", l)
}

// Level returns the receiver.
// It implements Leveler.
func (l Level) Level() Level { return l }

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts any string produced by Level.String and the forms
// accepted by ParseLevel.
func (l *Level) UnmarshalText(data []byte) error {
	v, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ParseLevel parses s as a level name, optionally followed by a signed
// offset, or as a plain integer. Names are case-insensitive; "warn" is
// accepted for WARNING and "fatal" for CRITICAL.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, xerrors.New("logging: empty level")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Level(n), nil
	}
	name, offset := s, 0
	if i := strings.IndexAny(s, "+-"); i > 0 {
		n, err := strconv.Atoi(s[i:])
		if err != nil {
			return 0, xerrors.Errorf("logging: bad level offset in %q: %w", s, err)
		}
		name, offset = s[:i], n
	}
	var base Level
	switch strings.ToUpper(name) {
	case "NOTSET":
		base = LevelNotSet
	case "DEBUG":
		base = LevelDebug
	case "INFO":
		base = LevelInfo
	case "WARNING", "WARN":
		base = LevelWarning
	case "ERROR":
		base = LevelError
	case "CRITICAL", "FATAL":
		base = LevelCritical
	default:
		return 0, xerrors.Errorf("logging: unknown level %q", s)
	}
	return base + Level(offset), nil
}

// A LevelVar is a Level that can be read and written safely by multiple
// goroutines. The zero LevelVar is LevelNotSet.
type LevelVar struct {
	val atomic.Int64
}

// NewLevelVar creates a LevelVar initialized to l.
func NewLevelVar(l Level) *LevelVar {
	var v LevelVar
	v.Set(l)
	return &v
}

// Level returns v's level.
func (v *LevelVar) Level() Level {
	return Level(int(v.val.Load()))
}

// Set sets v's level to l.
func (v *LevelVar) Set(l Level) {
	v.val.Store(int64(l))
}

func (v *LevelVar) String() string {
	return fmt.Sprintf("LevelVar(%s)", v.Level())
}

// A Leveler reports a Level.
//
// Both Level and *LevelVar implement Leveler, so they can be used
// interchangeably when a Leveler is required.
type Leveler interface {
	Level() Level
}
