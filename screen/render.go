// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/render.go
// Summary: Read-only views for a renderer (spec §6): the viewport's
// cells, and plain-text extraction for both the live grid and
// scrollback, honoring the current scroll offset.
// Grounded on: apps/texelterm/parser/vterm_display_buffer.go's
// RenderLine/PlainText pair.

package screen

// Render returns the Lines currently visible in the viewport, oldest
// first: when scrollOffset is 0 this is exactly the live grid; a
// positive offset splices in the tail of scrollback (Main buffer only —
// the alternate screen ignores scrollOffset, spec §4.6).
func (s *Screen) Render() []Line {
	if s.activeType != Main || s.scrollOffset == 0 {
		out := make([]Line, len(s.active.lines))
		copy(out, s.active.lines)
		return out
	}
	rows := s.active.Size.Rows
	hist := s.historyLen()
	fromHistory := s.scrollOffset
	if fromHistory > hist {
		fromHistory = hist
	}
	out := make([]Line, 0, rows)
	start := hist - fromHistory
	for i := start; i < hist && len(out) < rows; i++ {
		out = append(out, s.Primary.savedLines.At(i))
	}
	for i := 0; len(out) < rows && i < len(s.Primary.lines); i++ {
		out = append(out, s.Primary.lines[i])
	}
	return out
}

// Screenshot is Render plus the cursor's viewport-relative position,
// visible only when the offset is 0 (you cannot see the live cursor
// while scrolled into history) and CursorVisible is set (spec §6).
type Screenshot struct {
	Lines       []Line
	CursorRow   int
	CursorCol   int
	CursorShown bool
}

func (s *Screen) Screenshot() Screenshot {
	shot := Screenshot{Lines: s.Render()}
	if s.scrollOffset == 0 && s.active.Cursor.Visible {
		shot.CursorRow = s.active.Cursor.Row
		shot.CursorCol = s.active.Cursor.Col
		shot.CursorShown = true
	}
	return shot
}

// RenderTextLine returns row's text content, stripping trailing blank
// cells and wide-character placeholder columns (spec §6).
func RenderTextLine(l Line) string {
	end := len(l.Cells)
	for end > 0 && isBlankTrailingCell(l.Cells[end-1]) {
		end--
	}
	var out []rune
	for i := 0; i < end; i++ {
		c := l.Cells[i]
		if c.Width == 0 {
			continue // wide-character trailing placeholder.
		}
		out = append(out, c.Runes()...)
	}
	return string(out)
}

// isBlankTrailingCell reports whether c is either an unwritten cell or
// a lone space (whatever its rendition), the two shapes RenderTextLine
// trims from the end of a row.
func isBlankTrailingCell(c Cell) bool {
	return c.Empty() || (c.numCPs == 1 && c.codepoints[0] == ' ')
}

// RenderText concatenates RenderTextLine for every currently visible
// line, newline-separated (spec §6).
func (s *Screen) RenderText() string {
	lines := s.Render()
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += RenderTextLine(l)
	}
	return out
}

// RenderHistoryTextLine is RenderTextLine applied to scrollback rather
// than the live grid, addressed from the oldest line (index 0).
func (s *Screen) RenderHistoryTextLine(index int) (string, bool) {
	if s.Primary.savedLines == nil || index < 0 || index >= s.Primary.savedLines.Len() {
		return "", false
	}
	return RenderTextLine(s.Primary.savedLines.At(index)), true
}
