// Copyright (C) 2024-2026, Cardforge Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package log re-exports github.com/luxfi/log.Logger as this module's
// ambient logging type, plus a no-op constructor for library and test
// callers that don't want a real sink. Adapted from teacher_log/nolog.go
// and teacher_log/noop.go: dropped the zap/slog passthrough plumbing
// those files carry only to satisfy the teacher's geth-style consensus
// logger, kept the thin delegation-to-luxfi/log pattern.
package log

import (
	"github.com/luxfi/log"
)

// Logger is this module's logging interface: every component that logs
// takes one of these by constructor argument, never a package-level
// singleton.
type Logger = log.Logger

// NewNoOpLogger returns a Logger that discards everything, for tests
// and for library callers that haven't wired a real sink.
func NewNoOpLogger() Logger {
	return log.NewNoOpLogger()
}

// New constructs the default structured logger for the CLI, named after
// the component that owns it (e.g. "search", "httpapi").
func New(name string) Logger {
	return log.NewLogger(name)
}
