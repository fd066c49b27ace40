// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer.go
// Summary: ScreenBuffer — one grid (main or alternate) and all the state
// that travels with it: cursor, margins, modes, tab stops, rendition,
// saved-state stack, and (main only) scrollback.
// Grounded on: apps/texelterm/parser/vterm.go's VTerm struct fields,
// split into the narrower ScreenBuffer/Screen ownership spec §3 draws.

package screen

// BufferType distinguishes the primary grid from the alternate one
// (spec §3).
type BufferType int

const (
	Main BufferType = iota
	Alternate
)

// defaultTabWidth is the spacing used when no explicit tab stops are set
// (spec §3 "a tab width (default 8)").
const defaultTabWidth = 8

// ScreenBuffer is one of the Screen's two grids plus everything spec §3
// says travels with it.
type ScreenBuffer struct {
	Type BufferType
	Size WindowSize

	// maxHistoryLineCount is nil for unbounded scrollback, and always
	// nil-equivalent-zero for Alternate (spec §3).
	maxHistoryLineCount *int

	Margin Margin
	modes  modeSet
	Cursor Cursor

	lines      []Line
	savedLines *ringBuffer // scrollback; nil for Alternate.

	autoWrap                bool
	wrapPending             bool
	cursorRestrictedToMargin bool // DECOM

	tabWidth  int
	tabStops  map[int]bool // explicit stops, 1-based column.

	rendition GraphicsAttributes

	savedStates []SavedState

	activeHyperlink string // registry key, "" when none active.
	hyperlinks      *hyperlinkRegistry

	// lastWriteRow/-Col record the base cell placeNewCell last wrote to
	// (the wide-character base column, never its trailing placeholder),
	// so a `consecutive` combining mark attaches to the glyph that's
	// actually on screen instead of to whatever cell the cursor happens
	// to be sitting on (original_source/src/terminal/Screen.h's
	// lastColumn/lastCursor pair solves the same problem).
	lastWriteRow, lastWriteCol int
}

// newScreenBuffer constructs a ScreenBuffer of the given type and size,
// with a fresh grid, default modes, and (Main only, when maxHistory is
// non-nil) a bounded scrollback ring.
func newScreenBuffer(typ BufferType, size WindowSize, maxHistory *int) *ScreenBuffer {
	b := &ScreenBuffer{
		Type:      typ,
		Size:      size,
		Margin:    fullScreenMargin(size),
		modes:     newModeSet(),
		Cursor:    Cursor{Row: 1, Col: 1, Visible: true},
		rendition: DefaultGraphicsAttributes(),
		autoWrap:  true,
		tabWidth:  defaultTabWidth,
		tabStops:  make(map[int]bool),
		hyperlinks: newHyperlinkRegistry(),
	}
	b.modes.set(AutoWrap, true)
	b.modes.set(CursorVisible, true)
	if typ == Main {
		b.maxHistoryLineCount = maxHistory
		b.savedLines = newRingBuffer(historyCapOrUnbounded(maxHistory))
	}
	b.lines = make([]Line, size.Rows)
	for i := range b.lines {
		b.lines[i] = newLine(size.Columns, b.rendition)
	}
	return b
}

func historyCapOrUnbounded(max *int) int {
	if max == nil {
		return 0 // unbounded: ringBuffer treats cap==0 as "grow freely".
	}
	return *max
}

// line returns a pointer to row (1-based) of the live grid.
func (b *ScreenBuffer) line(row int) *Line { return &b.lines[row-1] }

// cell returns a pointer to (row, col), both 1-based.
func (b *ScreenBuffer) cell(row, col int) *Cell { return &b.lines[row-1].Cells[col-1] }

// resolveHyperlink looks up key in this buffer's registry.
func (b *ScreenBuffer) resolveHyperlink(key string) *Hyperlink { return b.hyperlinks.resolve(key) }

// clampCursorToBuffer enforces spec §3's cursor-in-bounds invariant,
// restricting to the margin rectangle when DECOM is active (spec §4.2).
func (b *ScreenBuffer) clampCursorToBuffer() {
	minRow, maxRow := 1, b.Size.Rows
	minCol, maxCol := 1, b.Size.Columns
	if b.cursorRestrictedToMargin {
		minRow, maxRow = b.Margin.Vertical.From, b.Margin.Vertical.To
		minCol, maxCol = b.Margin.Horizontal.From, b.Margin.Horizontal.To
	}
	if b.Cursor.Row < minRow {
		b.Cursor.Row = minRow
	} else if b.Cursor.Row > maxRow {
		b.Cursor.Row = maxRow
	}
	if b.Cursor.Col < minCol {
		b.Cursor.Col = minCol
	} else if b.Cursor.Col > maxCol {
		b.Cursor.Col = maxCol
	}
}

// originRow/originCol return the cursor-home position for the current
// DECOM frame (spec §4.2, §4.4).
func (b *ScreenBuffer) originRow() int {
	if b.cursorRestrictedToMargin {
		return b.Margin.Vertical.From
	}
	return 1
}

func (b *ScreenBuffer) originCol() int {
	if b.cursorRestrictedToMargin {
		return b.Margin.Horizontal.From
	}
	return 1
}

// moveCursorToOrigin implements the "always also moves cursor to the
// origin" half of DECOM toggling (spec §4.3).
func (b *ScreenBuffer) moveCursorToOrigin() {
	b.Cursor.Row = b.originRow()
	b.Cursor.Col = b.originCol()
	b.wrapPending = false
}

// rightMarginOrColumns returns the right boundary appendChar/clearAndAdvance
// wrap against: the horizontal margin when DECLRMM is on, else the full
// width (spec §4.1).
func (b *ScreenBuffer) rightMarginOrColumns() int {
	if b.modes.has(LeftRightMargin) {
		return b.Margin.Horizontal.To
	}
	return b.Size.Columns
}

func (b *ScreenBuffer) leftMarginOrOne() int {
	if b.modes.has(LeftRightMargin) {
		return b.Margin.Horizontal.From
	}
	return 1
}

// verifyState checks the invariants spec §3/§8 require. It is a no-op
// unless StrictInvariants is set (see errors.go); the package's own
// tests leave it off.
func (b *ScreenBuffer) verifyState() {
	if !StrictInvariants {
		return
	}
	if len(b.lines) != b.Size.Rows {
		panic("vtscreen: invariant violated: lines.size() != size.rows")
	}
	for _, l := range b.lines {
		if len(l.Cells) != b.Size.Columns {
			panic("vtscreen: invariant violated: line.size() != size.columns")
		}
	}
	if b.Cursor.Row < 1 || b.Cursor.Row > b.Size.Rows {
		panic("vtscreen: invariant violated: cursor.row out of bounds")
	}
	if b.Cursor.Col < 1 || b.Cursor.Col > b.Size.Columns {
		panic("vtscreen: invariant violated: cursor.column out of bounds")
	}
	if b.Margin.Vertical.From > b.Margin.Vertical.To || b.Margin.Vertical.From < 1 || b.Margin.Vertical.To > b.Size.Rows {
		panic("vtscreen: invariant violated: vertical margin invalid")
	}
	if b.Margin.Horizontal.From > b.Margin.Horizontal.To || b.Margin.Horizontal.From < 1 || b.Margin.Horizontal.To > b.Size.Columns {
		panic("vtscreen: invariant violated: horizontal margin invalid")
	}
	if b.wrapPending && (b.Cursor.Col != b.Size.Columns || !b.autoWrap) {
		panic("vtscreen: invariant violated: wrapPending without rightmost column + autoWrap")
	}
	if b.Type == Main && b.maxHistoryLineCount != nil && b.savedLines.Len() > *b.maxHistoryLineCount {
		panic("vtscreen: invariant violated: savedLines exceeds bound")
	}
	if b.Type == Alternate && b.savedLines != nil && b.savedLines.Len() != 0 {
		panic("vtscreen: invariant violated: alternate buffer accumulated scrollback")
	}
}
