// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/resize.go
// Summary: Window resize (spec §4.9): reflow is out of scope (spec's
// Non-goals), so a resize only pads/truncates each line's width and
// grows/shrinks the row count, pulling rows back from (or pushing
// overflow into) the Main buffer's scrollback the way a real terminal's
// "grow the window and see more history" behavior works.
// Grounded on: apps/texelterm/parser/vterm.go's Resize, minus its
// paragraph-reflow pass — dropped per spec's explicit "no reflow of
// wrapped lines on resize" Non-goal.

package screen

// Resize changes both buffers to the new size (spec §4.9: a resize
// always affects both grids, even the one not currently displayed, so
// switching back to it doesn't reveal a stale size).
func (s *Screen) Resize(size WindowSize) {
	s.Primary.resize(size)
	s.Alternate.resize(size)
	s.setScrollOffset(s.scrollOffset)
}

func (b *ScreenBuffer) resize(size WindowSize) {
	if size.Rows < 1 {
		size.Rows = 1
	}
	if size.Columns < 1 {
		size.Columns = 1
	}
	b.resizeColumns(size.Columns)
	b.Size.Columns = size.Columns
	b.resizeRows(size.Rows)
	b.Size = size
	b.Margin = fullScreenMargin(size)
	b.clampCursorToBuffer()
	b.wrapPending = false
}

func (b *ScreenBuffer) resizeColumns(columns int) {
	if columns == b.Size.Columns {
		return
	}
	for i := range b.lines {
		b.lines[i] = b.lines[i].resized(columns, b.rendition)
	}
	if b.savedLines != nil {
		for i := 0; i < b.savedLines.Len(); i++ {
			b.savedLines.lines[i] = b.savedLines.lines[i].resized(columns, b.rendition)
		}
	}
}

// resizeRows grows or shrinks the row count. Growing pulls rows back
// from scrollback (Main only) before padding with blank rows; shrinking
// pushes the top rows that no longer fit into scrollback (Main only)
// before simply truncating (Alternate, which carries no scrollback).
func (b *ScreenBuffer) resizeRows(rows int) {
	current := len(b.lines)
	switch {
	case rows > current:
		grow := rows - current
		pulled := make([]Line, 0, grow)
		for i := 0; i < grow && b.savedLines != nil && b.savedLines.Len() > 0; i++ {
			l, _ := b.savedLines.PopBack()
			pulled = append(pulled, l)
		}
		for i, j := 0, len(pulled)-1; i < j; i, j = i+1, j-1 {
			pulled[i], pulled[j] = pulled[j], pulled[i]
		}
		b.lines = append(pulled, b.lines...)
		for len(b.lines) < rows {
			b.lines = append(b.lines, newLine(b.Size.Columns, b.rendition))
		}
		b.Cursor.Row += len(pulled)
	case rows < current:
		shrink := current - rows
		if b.savedLines != nil {
			for i := 0; i < shrink; i++ {
				b.savedLines.PushBack(b.lines[i])
			}
		}
		b.lines = b.lines[shrink:]
		b.Cursor.Row -= shrink
		if b.Cursor.Row < 1 {
			b.Cursor.Row = 1
		}
	}
}
