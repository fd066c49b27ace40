// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_grid.go
// Summary: Grid mutation primitives — AppendChar, ClearAndAdvance, and
// the autowrap state machine (spec §4.1, §4.11).
// Grounded on: apps/texelterm/parser/vterm_memory_buffer.go's WriteWide
// (wide-character placement, wrap-on-last-column) and
// apps/texelterm/parser/vterm_scroll.go's lineFeedInternal (scroll on
// bottom-margin linefeed), reworked around the Cell combining-sequence
// and DECLRMM-aware margins spec §4.1 adds.

package screen

// AppendChar writes a printable code point at the cursor, implementing
// the autowrap/combining/wide-character contract of spec §4.1.
func (b *ScreenBuffer) AppendChar(cp rune, consecutive bool) {
	if b.autoWrap && b.wrapPending {
		b.wrapAdvance()
	}

	w := runeWidth(cp)
	if cp == vs16 {
		w = 2
	}

	if consecutive && w >= 0 {
		if prev := b.previousCellForAppend(); prev != nil && !prev.Empty() {
			base := prev.Runes()
			if isExtender(base, cp) {
				candidateWidth := int(prev.Width)
				if cp == vs16 {
					candidateWidth = 2
				}
				prev.AppendCodepoint(cp, candidateWidth)
				return
			}
		}
	}

	if w == 0 {
		// A combining mark arriving without a precedent base is treated
		// as its own width-1 base cell (spec §4.1: "treat 0-width
		// combining at start-of-cell as width 1 bearing cp as base").
		w = 1
	}

	b.placeNewCell(cp, w)
}

// previousCellForAppend returns the cell a `consecutive` code point
// should be appended to: the base cell placeNewCell most recently wrote,
// tracked explicitly rather than inferred from the cursor position, since
// a wide character leaves the cursor one column past its trailing
// width-0 placeholder, not past the glyph itself.
func (b *ScreenBuffer) previousCellForAppend() *Cell {
	if b.lastWriteRow == 0 || b.lastWriteRow != b.Cursor.Row {
		return nil
	}
	return b.cell(b.lastWriteRow, b.lastWriteCol)
}

// placeNewCell writes a fresh cell of the given width at the cursor,
// handling the wide-character last-column special case and the
// subsequent cursor-advance/wrap-pending logic (spec §4.1).
func (b *ScreenBuffer) placeNewCell(cp rune, w int) {
	right := b.rightMarginOrColumns()
	col := b.Cursor.Col

	if w == 2 && col == right {
		if !b.autoWrap {
			// DECAWM off: overwrite in place, clamped to width 1 since
			// there is no room for the trailing placeholder column.
			c := b.cell(b.Cursor.Row, col)
			c.reset(b.rendition)
			c.numCPs = 0
			c.AppendCodepoint(cp, 1)
			c.linkKey = b.activeHyperlink
			b.lastWriteRow, b.lastWriteCol = b.Cursor.Row, col
			return
		}
		// DECAWM on: wrap first, then place the glyph at the start of the
		// next line.
		b.wrapAdvance()
		col = b.Cursor.Col
	}

	c := b.cell(b.Cursor.Row, col)
	c.reset(b.rendition)
	c.numCPs = 0
	c.AppendCodepoint(cp, w)
	c.linkKey = b.activeHyperlink
	b.lastWriteRow, b.lastWriteCol = b.Cursor.Row, col

	if w == 2 && col+1 <= b.Size.Columns {
		placeholder := b.cell(b.Cursor.Row, col+1)
		placeholder.reset(b.rendition)
		placeholder.Width = 0
		placeholder.linkKey = b.activeHyperlink
	}

	b.advanceCursorAfterWrite(w, right)
}

// advanceCursorAfterWrite implements spec §4.1's final bullet: advance by
// w if it fits before the right margin, else set wrapPending (if
// autowrap) or park the cursor on the last writable column.
func (b *ScreenBuffer) advanceCursorAfterWrite(w, right int) {
	if b.Cursor.Col+w <= right {
		b.Cursor.Col += w
		return
	}
	if b.autoWrap {
		b.wrapPending = true
		return
	}
	b.Cursor.Col = right
}

// wrapAdvance performs the PendingWrap -> Normal transition: a linefeed
// within the vertical margin, then the cursor moves to the left margin
// (spec §4.1, §4.11).
func (b *ScreenBuffer) wrapAdvance() {
	b.wrapPending = false
	b.linefeedAt(b.leftMarginOrOne())
}

// ClearAndAdvance writes n default cells (current rendition, blank code
// point) and advances the cursor with the same wrap/margin rules as
// AppendChar (spec §4.1).
func (b *ScreenBuffer) ClearAndAdvance(n int) {
	for i := 0; i < n; i++ {
		if b.autoWrap && b.wrapPending {
			b.wrapAdvance()
		}
		right := b.rightMarginOrColumns()
		c := b.cell(b.Cursor.Row, b.Cursor.Col)
		*c = BlankCell(b.rendition)
		c.linkKey = b.activeHyperlink
		b.advanceCursorAfterWrite(1, right)
	}
}

// Linefeed moves the cursor to (next-row, column), scrolling the
// vertical margin up by one if the cursor sits on the bottom margin
// (spec §4.1).
func (b *ScreenBuffer) Linefeed(column int) { b.linefeedAt(column) }

func (b *ScreenBuffer) linefeedAt(column int) {
	b.wrapPending = false
	if b.Cursor.Row == b.Margin.Vertical.To {
		b.ScrollUp(1, b.currentScrollRegion())
	} else if b.Cursor.Row < b.Size.Rows {
		b.Cursor.Row++
	}
	b.Cursor.Col = column
	b.clampCursorToBuffer()
}

// currentScrollRegion returns the rectangle scroll/insert/delete
// operations should act on: the full vertical margin when horizontal
// margin mode is off, else the vertical x horizontal margin rectangle
// (spec §4.1 scrollUp/scrollDown).
func (b *ScreenBuffer) currentScrollRegion() Margin {
	if b.modes.has(LeftRightMargin) {
		return b.Margin
	}
	return Margin{Vertical: b.Margin.Vertical, Horizontal: Range{From: 1, To: b.Size.Columns}}
}
