// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_scroll.go
// Summary: Region scrolling and line/column insert-delete (spec §4.1,
// §4.4): ScrollUp/ScrollDown push lines into (Main only) or out of
// scrollback; insertLines/deleteLines reuse them with the region's top
// moved to the cursor row, so they reach scrollback only when the cursor
// is on row 1 of the Main buffer and the region spans the full width;
// the column variants shuffle within a margin rectangle without touching
// scrollback.
// Grounded on: apps/texelterm/parser/vterm_scroll.go's scrollRegionUp/
// scrollRegionDown, generalized to the horizontal-margin-aware
// rectangle spec §4.4 (DECLRMM) adds on top of the teacher's
// full-width-only scroll region.

package screen

// ScrollUp shifts n lines out the top of region, discarding lines below
// the horizontal margin's edges and pushing full-width lines into
// scrollback only when region spans the whole width and this is the
// Main buffer at its unmargined top (spec §4.1's "only full-width
// scrolls of the top-level region feed scrollback").
func (b *ScreenBuffer) ScrollUp(n int, region Margin) {
	rows := region.Vertical.Length()
	if n > rows {
		n = rows
	}
	feedsHistory := b.Type == Main && b.savedLines != nil &&
		region.Vertical.From == 1 && region.Horizontal.From == 1 &&
		region.Horizontal.To == b.Size.Columns

	for i := 0; i < n; i++ {
		if feedsHistory {
			b.savedLines.PushBack(b.line(region.Vertical.From).clone())
		}
		b.shiftRowsUp(region)
	}
}

// ScrollDown is ScrollUp's mirror: lines enter at the region's bottom,
// popping from scrollback (Main, full width) if available, else
// inserting blanks (spec §4.1).
func (b *ScreenBuffer) ScrollDown(n int, region Margin) {
	rows := region.Vertical.Length()
	if n > rows {
		n = rows
	}
	popsHistory := b.Type == Main && b.savedLines != nil &&
		region.Vertical.From == 1 && region.Horizontal.From == 1 &&
		region.Horizontal.To == b.Size.Columns

	for i := 0; i < n; i++ {
		var top Line
		if popsHistory {
			if l, ok := b.savedLines.PopBack(); ok {
				top = l
			} else {
				top = newLine(b.Size.Columns, b.rendition)
			}
		} else {
			top = blankSubLine(region.Horizontal.Length(), b.rendition)
		}
		b.shiftRowsDown(region, top)
	}
}

// shiftRowsUp moves every row in region up by one, replacing the last
// row with a fresh blank sub-line restricted to the horizontal span.
func (b *ScreenBuffer) shiftRowsUp(region Margin) {
	from, to := region.Vertical.From, region.Vertical.To
	lo, hi := region.Horizontal.From, region.Horizontal.To
	fullWidth := lo == 1 && hi == b.Size.Columns
	for row := from; row < to; row++ {
		copy(b.line(row).Cells[lo-1:hi], b.line(row+1).Cells[lo-1:hi])
		if fullWidth {
			b.line(row).Marked = b.line(row + 1).Marked
		}
	}
	blank := blankSubLine(hi-lo+1, b.rendition)
	copy(b.line(to).Cells[lo-1:hi], blank.Cells)
	if fullWidth {
		b.line(to).Marked = false
	}
}

func (b *ScreenBuffer) shiftRowsDown(region Margin, top Line) {
	from, to := region.Vertical.From, region.Vertical.To
	lo, hi := region.Horizontal.From, region.Horizontal.To
	fullWidth := lo == 1 && hi == b.Size.Columns
	for row := to; row > from; row-- {
		copy(b.line(row).Cells[lo-1:hi], b.line(row-1).Cells[lo-1:hi])
		if fullWidth {
			b.line(row).Marked = b.line(row - 1).Marked
		}
	}
	n := hi - lo + 1
	if len(top.Cells) < n {
		n = len(top.Cells)
	}
	copy(b.line(from).Cells[lo-1:lo-1+n], top.Cells[:n])
	if fullWidth {
		b.line(from).Marked = top.Marked
	}
}

func blankSubLine(width int, attrs GraphicsAttributes) Line {
	cells := make([]Cell, width)
	for i := range cells {
		cells[i] = BlankCell(attrs)
	}
	return Line{Cells: cells}
}

// clone deep-copies a Line for scrollback storage, so later in-place
// edits to the live grid never alias history (spec §3).
func (l Line) clone() Line {
	cells := make([]Cell, len(l.Cells))
	copy(cells, l.Cells)
	return Line{Cells: cells, Marked: l.Marked}
}

// ScrollColumnsLeft/Right implement DECFI/DECBI's region-wide column
// shift (spec §4.2): unlike ScrollUp/Down these never touch scrollback,
// since they move the *whole* margin rectangle sideways rather than
// admitting fresh rows.
func (b *ScreenBuffer) ScrollColumnsLeft(n int, region Margin) {
	from, to := region.Vertical.From, region.Vertical.To
	lo, hi := region.Horizontal.From, region.Horizontal.To
	width := hi - lo + 1
	if n > width {
		n = width
	}
	for row := from; row <= to; row++ {
		cells := b.line(row).Cells[lo-1 : hi]
		copy(cells, cells[n:])
		blank := blankSubLine(n, b.rendition)
		copy(cells[width-n:], blank.Cells)
	}
}

func (b *ScreenBuffer) ScrollColumnsRight(n int, region Margin) {
	from, to := region.Vertical.From, region.Vertical.To
	lo, hi := region.Horizontal.From, region.Horizontal.To
	width := hi - lo + 1
	if n > width {
		n = width
	}
	for row := from; row <= to; row++ {
		cells := b.line(row).Cells[lo-1 : hi]
		copy(cells[n:], cells[:width-n])
		blank := blankSubLine(n, b.rendition)
		copy(cells[:n], blank.Cells)
	}
}

// insertLines shifts the rows from the cursor to the bottom margin down
// by n, discarding overflow past the margin (IL, spec §4.1). It only
// acts when the cursor row is within the vertical margin.
func (b *ScreenBuffer) insertLines(n int) {
	if b.Cursor.Row < b.Margin.Vertical.From || b.Cursor.Row > b.Margin.Vertical.To {
		return
	}
	region := b.currentScrollRegion()
	region.Vertical.From = b.Cursor.Row
	b.ScrollDown(n, region)
}

// deleteLines shifts rows below the cursor up by n, admitting blanks at
// the bottom margin (DL, spec §4.1).
func (b *ScreenBuffer) deleteLines(n int) {
	if b.Cursor.Row < b.Margin.Vertical.From || b.Cursor.Row > b.Margin.Vertical.To {
		return
	}
	region := b.currentScrollRegion()
	region.Vertical.From = b.Cursor.Row
	b.ScrollUp(n, region)
}

// insertColumns/deleteColumns are DECIC/DECDC: like insertLines/
// deleteLines but shifting columns from the cursor to the right margin
// (spec §4.4).
func (b *ScreenBuffer) insertColumns(n int) {
	region := b.currentScrollRegion()
	region.Horizontal.From = b.Cursor.Col
	b.ScrollColumnsRight(n, region)
}

func (b *ScreenBuffer) deleteColumns(n int) {
	region := b.currentScrollRegion()
	region.Horizontal.From = b.Cursor.Col
	b.ScrollColumnsLeft(n, region)
}
