// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_cursor.go
// Summary: Cursor motion operations (spec §4.2): relative moves, direct
// addressing, index/reverse-index, and DECBI/DECFI.
// Grounded on: apps/texelterm/parser/vterm_cursor.go's CursorUp/Down/
// Forward/Backward family, extended with DECOM-aware clamping per
// spec §4.2's "clamped to the margin rectangle when DECOM is set".

package screen

// cursorUp moves up n rows, clamped to the top of the current frame
// (margin top under DECOM, else row 1) without triggering scroll.
func (b *ScreenBuffer) cursorUp(n int) {
	min := 1
	if b.cursorRestrictedToMargin {
		min = b.Margin.Vertical.From
	}
	b.Cursor.Row -= n
	if b.Cursor.Row < min {
		b.Cursor.Row = min
	}
	b.wrapPending = false
}

func (b *ScreenBuffer) cursorDown(n int) {
	max := b.Size.Rows
	if b.cursorRestrictedToMargin {
		max = b.Margin.Vertical.To
	}
	b.Cursor.Row += n
	if b.Cursor.Row > max {
		b.Cursor.Row = max
	}
	b.wrapPending = false
}

func (b *ScreenBuffer) cursorForward(n int) {
	max := b.Size.Columns
	if b.cursorRestrictedToMargin {
		max = b.Margin.Horizontal.To
	}
	b.Cursor.Col += n
	if b.Cursor.Col > max {
		b.Cursor.Col = max
	}
	b.wrapPending = false
}

func (b *ScreenBuffer) cursorBackward(n int) {
	min := 1
	if b.cursorRestrictedToMargin {
		min = b.Margin.Horizontal.From
	}
	b.Cursor.Col -= n
	if b.Cursor.Col < min {
		b.Cursor.Col = min
	}
	b.wrapPending = false
}

// cursorNextLine is cursorDown followed by a return to the left margin.
func (b *ScreenBuffer) cursorNextLine(n int) {
	b.cursorDown(n)
	b.Cursor.Col = b.leftMarginOrOne()
}

func (b *ScreenBuffer) cursorPreviousLine(n int) {
	b.cursorUp(n)
	b.Cursor.Col = b.leftMarginOrOne()
}

func (b *ScreenBuffer) cursorToColumn(col int) {
	b.Cursor.Col = col
	b.clampCursorToBuffer()
	b.wrapPending = false
}

func (b *ScreenBuffer) cursorToLine(row int) {
	b.Cursor.Row = row
	if b.cursorRestrictedToMargin {
		b.Cursor.Row += b.Margin.Vertical.From - 1
	}
	b.clampCursorToBuffer()
	b.wrapPending = false
}

// cursorTo is direct cursor addressing (CUP/HVP), relative to the
// origin frame when DECOM is set (spec §4.2).
func (b *ScreenBuffer) cursorTo(coord Coordinate) {
	b.Cursor.Row = coord.Row + b.originRow() - 1
	b.Cursor.Col = coord.Col + b.originCol() - 1
	b.clampCursorToBuffer()
	b.wrapPending = false
}

// index moves down one row, scrolling at the bottom margin (IND, spec
// §4.2); unlike Linefeed it never touches the column.
func (b *ScreenBuffer) index() {
	b.wrapPending = false
	if b.Cursor.Row == b.Margin.Vertical.To {
		b.ScrollUp(1, b.currentScrollRegion())
		return
	}
	if b.Cursor.Row < b.Size.Rows {
		b.Cursor.Row++
	}
}

// reverseIndex moves up one row, scrolling down at the top margin (RI,
// spec §4.2).
func (b *ScreenBuffer) reverseIndex() {
	b.wrapPending = false
	if b.Cursor.Row == b.Margin.Vertical.From {
		b.ScrollDown(1, b.currentScrollRegion())
		return
	}
	if b.Cursor.Row > 1 {
		b.Cursor.Row--
	}
}

// backIndex moves left one column, scrolling the region right at the
// left margin (DECBI, spec §4.2).
func (b *ScreenBuffer) backIndex() {
	left := b.leftMarginOrOne()
	if b.Cursor.Col == left {
		b.ScrollColumnsRight(1, b.currentScrollRegion())
		return
	}
	b.Cursor.Col--
}

// forwardIndex is the mirror of backIndex (DECFI, spec §4.2).
func (b *ScreenBuffer) forwardIndex() {
	right := b.rightMarginOrColumns()
	if b.Cursor.Col == right {
		b.ScrollColumnsLeft(1, b.currentScrollRegion())
		return
	}
	b.Cursor.Col++
}
