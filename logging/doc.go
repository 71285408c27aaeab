// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package logging provides leveled logging through a hierarchy of named
channels.

A [Manager] owns the channels. Each channel is reached through a [Logger]
obtained with [Manager.Logger]. A Logger output method creates a [Record]
and offers it to the [Handler]s of its channel, then to those of the
channel's ancestors. There is no package-level default: create a Manager
at program start and pass it, or Loggers from it, to the code that logs.

	m := logging.NewManager()
	if err := m.BasicConfig(logging.Config{}); err != nil {
		// handle err
	}
	m.Root().SetLevel(logging.LevelNotSet)
	m.Logger("main").Info("Hello world!")

writes

	INFO:main:Hello world!

to standard error.

# Levels

Levels are ordered by severity: [LevelNotSet], [LevelDebug], [LevelInfo],
[LevelWarning], [LevelError], [LevelCritical]. A channel passes records at
or above its effective level, which is its own threshold or, if that is
LevelNotSet, the nearest ancestor's. The root starts at LevelWarning.
Setting the root to LevelNotSet passes everything. [Manager.Disable] turns
off low levels everywhere at once.

# Channels

Channel names are dot-separated paths: "app.db" is a child of "app", and
every channel descends from the root. Records propagate upward until a
channel with [Logger.SetPropagate](false) has been reached. A record that
finds no handler at all goes to the Manager's last-resort handler, which by
default prints records at LevelWarning and above to standard error.

# Handlers

[TextHandler] writes one line per record, laid out by a [Formatter]:

	logger.Info("hello", "count", 3)

with [DefaultFormat] produces

	INFO:main:hello count=3

[JSONHandler] writes line-delimited JSON:

	{"time":"2026-10-14T15:28:26.000Z","level":"INFO","name":"main","msg":"hello","count":3}

[DiscardHandler] drops everything. Adapters under log-adapters route zap,
logrus, go-kit and logr output into channels; sinks under sinks write
records through zerolog, OpenTelemetry spans and Prometheus counters.

# Errors

Output methods never return errors. A failing handler's error is passed to
the function set with [Manager.SetErrorHandler] and delivery continues.
*/
package logging
