// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/modes_dispatch.go
// Summary: SetMode/RequestMode Screen-level dispatch (spec §4.3): most
// modes are pure ScreenBuffer flags, but the three alternate-screen
// modes and several notify-the-embedder modes need the Screen's wider
// view (buffer switching, callbacks), so they live here rather than in
// buffer.go.
// Grounded on: apps/texelterm/parser/vterm_modes.go's processPrivateCSI,
// split along the same "needs VTerm vs needs only the grid" line the
// teacher's own SetAltScreen special case already draws.

package screen

// setMode applies a DECSET/DECRST (or ANSI SM/RM) toggle. mode is the
// recognized tag; rawMode is the original numeric value, used both for
// modes with no dedicated tag and to answer RequestMode accurately.
func (s *Screen) setMode(mode Mode, rawMode int, on bool) {
	b := s.active

	switch mode {
	case UseAlternateScreen47:
		s.setAlternateScreen(on, false)
		return
	case UseAlternateScreen1047:
		s.setAlternateScreen(on, false)
		return
	case UseAlternateScreen1049:
		s.setAlternateScreen(on, true)
		return
	case Origin:
		b.cursorRestrictedToMargin = on
		b.moveCursorToOrigin()
	case AutoWrap:
		b.autoWrap = on
		b.modes.set(AutoWrap, on)
	case CursorVisible:
		b.Cursor.Visible = on
		b.modes.set(CursorVisible, on)
	case ApplicationCursorKeys:
		b.modes.set(mode, on)
		if s.cb.UseApplicationCursorKeys != nil {
			s.cb.UseApplicationCursorKeys(on)
		}
	case BracketedPaste:
		b.modes.set(mode, on)
		if s.cb.SetBracketedPaste != nil {
			s.cb.SetBracketedPaste(on)
		}
	case FocusEvents:
		b.modes.set(mode, on)
		if s.cb.SetGenerateFocusEvents != nil {
			s.cb.SetGenerateFocusEvents(on)
		}
	case MouseX10, MouseVT200, MouseButtonEvent, MouseAnyEvent:
		b.modes.set(mode, on)
		if s.cb.SetMouseProtocol != nil {
			s.cb.SetMouseProtocol(rawMode, on)
		}
	case MouseUTF8, MouseSGR, MouseURXVT:
		b.modes.set(mode, on)
		if s.cb.SetMouseTransport != nil && on {
			s.cb.SetMouseTransport(rawMode)
		}
	case ApplicationKeypad:
		b.modes.set(mode, on)
		if s.cb.SetApplicationKeypadMode != nil {
			s.cb.SetApplicationKeypadMode(on)
		}
	case LeftRightMargin:
		b.modes.set(mode, on)
		if !on {
			b.Margin.Horizontal = Range{From: 1, To: b.Size.Columns}
		}
	case InsertReplace, LineFeedNewLine, SynchronizedOutput, ReverseVideoScreen:
		b.modes.set(mode, on)
	default:
		b.modes.setRaw(rawMode, on)
	}
}

// setAlternateScreen implements DECSET 47/1047/1049. saveCursor mirrors
// 1049's documented extra behavior of pushing/popping the cursor across
// the swap; 47/1047 only swap the grid.
func (s *Screen) setAlternateScreen(on, saveCursor bool) {
	target := Main
	if on {
		target = Alternate
	}
	if s.activeType == target {
		return
	}
	if on && saveCursor {
		s.Primary.saveCursor()
	}
	s.switchTo(target)
	if !on {
		s.Alternate.resetGrid()
		if saveCursor {
			s.Primary.restoreCursor()
		}
	}
}

// requestMode answers DECRQM with ModeSet or ModeReset: from the mode
// set for a recognized mode, else from the raw numeric map. It never
// replies ModeNotRecognized (spec §4.3).
func (s *Screen) requestMode(mode Mode, rawMode int) {
	b := s.active
	var state ModeReplyState
	if mode != 0 || rawMode == 0 {
		if b.modes.has(mode) {
			state = ModeSet
		} else {
			state = ModeReset
		}
	} else if b.modes.hasRaw(rawMode) {
		state = ModeSet
	} else {
		state = ModeReset
	}
	s.replyModeState(rawMode, state)
}
