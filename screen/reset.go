// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/reset.go
// Summary: Soft (DECSTR) and hard (RIS) reset (spec §4.10).
// Grounded on: apps/texelterm/parser/vterm.go's Reset/SoftReset pair.

package screen

// resetGrid clears every cell back to a blank default-rendition cell,
// without touching margins, modes, or the cursor — the piece of a hard
// reset that's also reused when leaving the alternate screen (spec
// §4.10, §4.8).
func (b *ScreenBuffer) resetGrid() {
	for i := range b.lines {
		b.lines[i] = newLine(b.Size.Columns, DefaultGraphicsAttributes())
	}
}

// resetSoft implements DECSTR: cursor home, default rendition, default
// modes, full-screen margins — the grid contents and scrollback survive
// (spec §4.10).
func (s *Screen) resetSoft() {
	b := s.active
	b.Cursor.Row, b.Cursor.Col = 1, 1
	b.Cursor.Visible = true
	b.rendition = DefaultGraphicsAttributes()
	b.autoWrap = true
	b.cursorRestrictedToMargin = false
	b.wrapPending = false
	b.activeHyperlink = ""
	b.Margin = fullScreenMargin(b.Size)
	b.savedStates = nil
	b.modes = newModeSet()
	b.modes.set(AutoWrap, true)
	b.modes.set(CursorVisible, true)
}

// resetHard implements RIS: everything resetSoft does, plus clearing
// the grid, both buffers, the scrollback, and the window title stack
// (spec §4.10).
func (s *Screen) resetHard() {
	s.Primary.resetGrid()
	s.Alternate.resetGrid()
	if s.Primary.savedLines != nil {
		s.Primary.savedLines.Clear()
	}
	s.scrollOffset = 0
	s.titleStack = nil
	s.title = ""
	s.activeType = Main
	s.active = s.Primary
	s.resetSoftBoth()
}

func (s *Screen) resetSoftBoth() {
	saved := s.active
	s.active = s.Primary
	s.resetSoft()
	s.active = s.Alternate
	s.resetSoft()
	s.active = saved
}
