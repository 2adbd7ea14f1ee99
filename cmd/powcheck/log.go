// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The litecoinz developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/litecoinz-project/litecoinzd/blockchain"
)

// logRotator rotates the log file powcheck writes to, in addition to the
// copy written to stdout. It is nil until initLogRotator runs, exactly as
// the daemon this tool's logging setup is modeled on leaves its own
// rotator nil until its config is parsed.
var logRotator *rotator.Rotator

// logWriter implements io.Writer and writes to both standard output and
// the log rotator, which must be set by the caller before any logging is
// done.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// backendLog is the logging backend used to create all subsystem loggers.
var backendLog = slog.NewBackend(logWriter{})

// subsystemLoggers maps each subsystem identifier to its logger, mirroring
// the table-driven subsystem registration the daemon this tool borrows its
// logging setup from keeps for its own packages.
var subsystemLoggers = map[string]slog.Logger{
	"PCHK": backendLog.Logger("PCHK"),
	"BCHN": backendLog.Logger("BCHN"),
}

var log = subsystemLoggers["PCHK"]

// initLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before
// the package-level log rotator variable is used, since it is initially
// nil.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintln(os.Stderr, "failed to create log directory:", err)
		os.Exit(1)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create file rotator:", err)
		os.Exit(1)
	}
	logRotator = r
}

// setLogLevels sets the logging level for every subsystem and wires each
// subsystem package's own logger via its UseLogger hook, the same pattern
// the daemon these packages were lifted from uses to let every package log
// through a single shared backend without importing a concrete logging
// implementation itself.
func setLogLevels(levelStr string) {
	level, ok := slog.LevelFromString(levelStr)
	if !ok {
		level = slog.LevelInfo
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}

	blockchain.UseLogger(subsystemLoggers["BCHN"])
}
