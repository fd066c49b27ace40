// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screen implements the in-memory grid model and command
// interpreter at the core of a VT100/VT220/xterm-family terminal
// emulator: a Screen owns a primary and an alternate ScreenBuffer and
// applies a closed set of Commands to whichever buffer is active.
//
// The package has no knowledge of bytes, ptys, or rendering toolkits.
// A separate decoder (see the sibling vtparse package) turns an
// incoming byte stream into Commands; a renderer reads cells back out
// through Screen.Render or Screen.Screenshot.
package screen
