// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_clear.go
// Summary: Line and screen erase operations (spec §4.1) plus DECALN
// (spec's SUPPLEMENTED FEATURES, recovered from
// original_source/src/terminal/Screen.h's fillWithE).
// Grounded on: apps/texelterm/parser/vterm_edit_char.go's
// EraseInLine/EraseInDisplay switch-on-mode shape.

package screen

// eraseCellRange blanks columns [from, to] of row, leaving cells with
// Protected set alone — the minimal DECSCA behavior SPEC_FULL.md's
// SUPPLEMENTED FEATURES calls for.
func (b *ScreenBuffer) eraseCellRange(row, from, to int) {
	for c := from; c <= to; c++ {
		cell := b.cell(row, c)
		if cell.Protected {
			continue
		}
		*cell = BlankCell(b.rendition)
	}
}

func (b *ScreenBuffer) clearToEndOfLine() {
	b.eraseCellRange(b.Cursor.Row, b.Cursor.Col, b.Size.Columns)
}

func (b *ScreenBuffer) clearToBeginOfLine() {
	b.eraseCellRange(b.Cursor.Row, 1, b.Cursor.Col)
}

func (b *ScreenBuffer) clearLine() {
	b.eraseCellRange(b.Cursor.Row, 1, b.Size.Columns)
}

func (b *ScreenBuffer) clearToEndOfScreen() {
	b.clearToEndOfLine()
	for row := b.Cursor.Row + 1; row <= b.Size.Rows; row++ {
		b.eraseCellRange(row, 1, b.Size.Columns)
	}
}

func (b *ScreenBuffer) clearToBeginOfScreen() {
	b.clearToBeginOfLine()
	for row := 1; row < b.Cursor.Row; row++ {
		b.eraseCellRange(row, 1, b.Size.Columns)
	}
}

func (b *ScreenBuffer) clearScreen() {
	for row := 1; row <= b.Size.Rows; row++ {
		b.eraseCellRange(row, 1, b.Size.Columns)
	}
}

// screenAlignmentPattern implements DECALN: fills every cell with 'E',
// resets the margins to full screen, and homes the cursor
// (SPEC_FULL.md's SUPPLEMENTED FEATURES, from Screen.h's fillWithE).
func (b *ScreenBuffer) screenAlignmentPattern() {
	for row := 1; row <= b.Size.Rows; row++ {
		line := b.line(row)
		for c := range line.Cells {
			cell := Cell{Width: 1, Attrs: DefaultGraphicsAttributes()}
			cell.codepoints[0] = 'E'
			cell.numCPs = 1
			line.Cells[c] = cell
		}
	}
	b.Margin = fullScreenMargin(b.Size)
	b.cursorRestrictedToMargin = false
	b.Cursor.Row, b.Cursor.Col = 1, 1
	b.wrapPending = false
}
