// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/errors.go
// Summary: Error-handling knobs (spec §7): invariant checking and the
// trace/diagnostic logger.
// Grounded on: apps/texelterm/parser/vterm_display_buffer.go's logDebug
// (plain "log", no structured-logging dependency — see SPEC_FULL.md's
// AMBIENT STACK / Logging for why that's the right call here too).

package screen

import "log"

// StrictInvariants gates ScreenBuffer.verifyState's panics. Production
// code leaves it false (spec §7: "production builds may downgrade to
// logging"); tests that want to catch invariant regressions early set it
// true in TestMain.
var StrictInvariants = false

// Logger receives diagnostics for ignored commands. The only condition
// reported through it is an ignored charset designation or single-shift
// command; invalid DECSTBM ranges, unknown SGR sub-parameters and
// malformed OSC payloads are ignored without a log line. NewScreen
// installs a Logger that discards everything unless WithLogger supplies
// one.
type Logger interface {
	Debugf(format string, args ...any)
}

// stdLogger adapts the standard library's *log.Logger to Logger.
type stdLogger struct{ l *log.Logger }

func (s stdLogger) Debugf(format string, args ...any) { s.l.Printf(format, args...) }

// NewStdLogger wraps l as a Logger.
func NewStdLogger(l *log.Logger) Logger { return stdLogger{l: l} }

type noopLogger struct{}

func (noopLogger) Debugf(string, ...any) {}
