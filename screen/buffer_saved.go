// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_saved.go
// Summary: DECSC/DECRC cursor save/restore stack (spec §4.2, §4.10).
// Grounded on: apps/texelterm/parser/vterm.go's SaveCursor/RestoreCursor,
// extended to a stack per xterm's behavior of nesting multiple saves.

package screen

// saveCursor pushes the cursor position, rendition, autowrap flag,
// origin mode, and active hyperlink (DECSC, spec §4.2).
func (b *ScreenBuffer) saveCursor() {
	b.savedStates = append(b.savedStates, SavedState{
		CursorPosition:   b.Cursor.Position(),
		Attrs:            b.rendition,
		AutoWrap:         b.autoWrap,
		OriginMode:       b.cursorRestrictedToMargin,
		ActiveHyperlink:  b.activeHyperlink,
	})
}

// restoreCursor pops the most recent save, or resets to the default
// cursor state if the stack is empty (xterm's documented DECRC-with-
// nothing-saved behavior).
func (b *ScreenBuffer) restoreCursor() {
	n := len(b.savedStates)
	if n == 0 {
		b.Cursor.Row, b.Cursor.Col = b.originRow(), b.originCol()
		b.rendition = DefaultGraphicsAttributes()
		b.autoWrap = true
		b.cursorRestrictedToMargin = false
		b.activeHyperlink = ""
		b.wrapPending = false
		return
	}
	st := b.savedStates[n-1]
	b.savedStates = b.savedStates[:n-1]
	b.Cursor.Row, b.Cursor.Col = st.CursorPosition.Row, st.CursorPosition.Col
	b.rendition = st.Attrs
	b.autoWrap = st.AutoWrap
	b.cursorRestrictedToMargin = st.OriginMode
	b.activeHyperlink = st.ActiveHyperlink
	b.wrapPending = false
	b.clampCursorToBuffer()
}
