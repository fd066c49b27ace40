// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package vtparse turns a byte stream from a pty into screen.Command
// values. It is not part of the screen model itself — the byte parser
// is an external collaborator that the model only ever consumes through
// screen.Command — but a real terminal emulator needs one wired up
// somewhere, so this package provides a small ECMA-48/DEC state machine
// grounded in the same C0/ESC/CSI/OSC/DCS state layout common to the
// VT100 family.
package vtparse
