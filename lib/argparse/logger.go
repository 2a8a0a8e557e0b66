// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package argparse

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger suitable for CLI
// programs. When stderr is a terminal, uses slog.TextHandler for
// human-readable output. When stderr is piped or redirected (CI,
// scripts, integration tests), uses slog.JSONHandler for
// machine-parseable output.
//
// Install it on a parser with [Parser.SetLogger] to trace token
// classification and dispatch during Parse:
//
//	logger := argparse.NewCommandLogger(slog.LevelDebug)
//	parser.SetLogger(logger.With("command", "import"))
func NewCommandLogger(level slog.Level) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler)
}
