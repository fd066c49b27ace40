// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/modes.go
// Summary: Mode enumeration (ANSI + DEC private) and the enabled set.
// Grounded on: apps/texelterm/parser/vterm_modes.go's processANSIMode /
// processPrivateCSI dispatch, generalized from a handful of hardcoded
// numbers into a closed Mode enum the way spec §4.3 describes.

package screen

// Mode is an enumerated tag for both ANSI modes (SM/RM) and DEC private
// modes (DECSET/DECRST), distinguished by tag rather than by a shared
// numeric namespace (spec §4.3).
type Mode int

const (
	// ANSI modes (CSI Pm h / l).
	InsertReplace Mode = iota // IRM, ANSI mode 4.
	LineFeedNewLine           // LNM, ANSI mode 20.

	// DEC private modes (CSI ? Pm h / l).
	ApplicationCursorKeys // DECCKM, 1.
	Origin                // DECOM, 6.
	AutoWrap              // DECAWM, 7.
	MouseX10              // 9.
	CursorVisible          // DECTCEM, 25.
	MouseVT200            // 1000.
	MouseButtonEvent      // 1002.
	MouseAnyEvent         // 1003.
	FocusEvents           // 1004.
	MouseUTF8             // 1005.
	MouseSGR              // 1006.
	MouseURXVT            // 1015.
	ApplicationKeypad     // DECNKM / numeric vs application keypad, 66.
	LeftRightMargin       // DECLRMM, 69.
	UseAlternateScreen47  // legacy alt-screen swap, no cursor save.
	UseAlternateScreen1047
	UseAlternateScreen1049
	BracketedPaste       // 2004.
	SynchronizedOutput   // 2026.
	ReverseVideoScreen   // DECSCNM, 5.
)

// modeSet is the enabled-modes bag a ScreenBuffer carries. Unrecognized
// modes are still tracked (by numeric value, outside this enum) purely
// so RequestMode can answer accurately; see modes_dispatch.go's
// requestMode for that fallback path.
type modeSet struct {
	enabled map[Mode]bool
	raw     map[int]bool // numeric modes with no dedicated Mode constant
}

func newModeSet() modeSet {
	return modeSet{enabled: make(map[Mode]bool), raw: make(map[int]bool)}
}

func (s modeSet) has(m Mode) bool { return s.enabled[m] }

func (s modeSet) set(m Mode, on bool) {
	if on {
		s.enabled[m] = true
	} else {
		delete(s.enabled, m)
	}
}

func (s modeSet) setRaw(n int, on bool) {
	if on {
		s.raw[n] = true
	} else {
		delete(s.raw, n)
	}
}

func (s modeSet) hasRaw(n int) bool { return s.raw[n] }

// ModeReplyState is the DECRQM four-state reply vocabulary (spec §4.3
// "RequestMode replies DECRQM-style with the four-state").
type ModeReplyState int

const (
	ModeNotRecognized ModeReplyState = iota
	ModeSet
	ModeReset
	ModePermanentlySet
	ModePermanentlyReset
)
