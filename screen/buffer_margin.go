// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_margin.go
// Summary: DECSTBM/DECSLRM margin setters (spec §4.4): validate the
// requested range, leave the margin and cursor unchanged on an invalid
// one (nothing is logged), and home the cursor per DECOM.
// Grounded on: apps/texelterm/parser/vterm_scroll.go's SetScrollRegion.

package screen

// setTopBottomMargin implements DECSTBM. top/bottom are 1-based and
// inclusive; 0 means "unspecified", taken as the current screen edge.
func (b *ScreenBuffer) setTopBottomMargin(top, bottom int) {
	if top == 0 {
		top = 1
	}
	if bottom == 0 {
		bottom = b.Size.Rows
	}
	if top >= bottom || top < 1 || bottom > b.Size.Rows {
		return
	}
	b.Margin.Vertical = Range{From: top, To: bottom}
	b.moveCursorToOrigin()
}

// setLeftRightMargin implements DECSLRM. It is a no-op unless
// LeftRightMargin mode (DECLRMM) is enabled (spec §4.4).
func (b *ScreenBuffer) setLeftRightMargin(left, right int) {
	if !b.modes.has(LeftRightMargin) {
		return
	}
	if left == 0 {
		left = 1
	}
	if right == 0 {
		right = b.Size.Columns
	}
	if left >= right || left < 1 || right > b.Size.Columns {
		return
	}
	b.Margin.Horizontal = Range{From: left, To: right}
	b.moveCursorToOrigin()
}
