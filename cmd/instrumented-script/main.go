// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Instrumented-script configures logging with the default settings, logs
// one informational message on the "main" channel and prints a line to
// standard output.
//
// Usage:
//
//	instrumented-script
//
// Standard error receives
//
//	INFO:main:Hello world!
//
// and standard output
//
//	This is a test script that logs a message.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/playground/instrumented-script/logging"
	"golang.org/x/xerrors"
)

const banner = "This is a test script that logs a message."

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: instrumented-script\n")
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("instrumented-script: ")

	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}

	if err := run(os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// run performs the program's steps, writing log output to logw and the
// banner to stdout.
func run(stdout, logw io.Writer) error {
	return runConfig(stdout, logging.Config{Output: logw})
}

// runConfig is run with the logging configuration given explicitly.
// Errors from closing the handlers at exit are returned unless an earlier
// error occurred.
func runConfig(stdout io.Writer, cfg logging.Config) (err error) {
	m := logging.NewManager()
	defer func() {
		if serr := m.Shutdown(); serr != nil && err == nil {
			err = xerrors.Errorf("shutting down logging: %w", serr)
		}
	}()

	if err := m.BasicConfig(cfg); err != nil {
		return err
	}
	m.Root().SetLevel(logging.LevelNotSet)
	m.Logger("main").Info("Hello world!")

	if _, err := fmt.Fprintln(stdout, banner); err != nil {
		return xerrors.Errorf("writing banner: %w", err)
	}
	return nil
}
