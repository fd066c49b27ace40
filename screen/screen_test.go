// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestScreen(rows, cols int) *Screen {
	return NewScreen(WindowSize{Rows: rows, Columns: cols})
}

func apply(s *Screen, cmds ...Command) {
	for _, c := range cmds {
		s.Apply(c)
	}
}

func textOf(cell Cell) rune { return cell.Rune() }

func TestAppendCharAdvancesCursor(t *testing.T) {
	s := newTestScreen(24, 80)
	apply(s, Command{Kind: AppendChar, Rune: 'h'}, Command{Kind: AppendChar, Rune: 'i'})
	require.Equal(t, 3, s.active.Cursor.Col)
	require.Equal(t, 'h', textOf(*s.active.cell(1, 1)))
	require.Equal(t, 'i', textOf(*s.active.cell(1, 2)))
}

func TestAutoWrapAtRightMargin(t *testing.T) {
	s := newTestScreen(24, 4)
	apply(s,
		Command{Kind: AppendChar, Rune: 'a'},
		Command{Kind: AppendChar, Rune: 'b'},
		Command{Kind: AppendChar, Rune: 'c'},
		Command{Kind: AppendChar, Rune: 'd'},
	)
	require.True(t, s.active.wrapPending)
	require.Equal(t, 1, s.active.Cursor.Row)
	apply(s, Command{Kind: AppendChar, Rune: 'e'})
	require.Equal(t, 2, s.active.Cursor.Row)
	require.Equal(t, 2, s.active.Cursor.Col)
	require.Equal(t, 'e', textOf(*s.active.cell(2, 1)))
}

func TestLinefeedScrollsAtBottomMargin(t *testing.T) {
	s := newTestScreen(3, 10)
	apply(s, Command{Kind: AppendChar, Rune: 'x'})
	for i := 0; i < 3; i++ {
		apply(s, Command{Kind: Linefeed})
	}
	require.Equal(t, 3, s.active.Cursor.Row)
	require.Equal(t, 1, s.historyLen())
	line, ok := s.RenderHistoryTextLine(0)
	require.True(t, ok)
	require.Equal(t, "x", line)
}

func TestCarriageReturnGoesToLeftMargin(t *testing.T) {
	s := newTestScreen(24, 80)
	s.active.Margin.Horizontal = Range{From: 5, To: 20}
	s.active.modes.set(LeftRightMargin, true)
	s.active.Cursor.Col = 15
	apply(s, Command{Kind: CarriageReturn})
	require.Equal(t, 5, s.active.Cursor.Col)
}

func TestSetModeAlternateScreenSwitchesActiveBuffer(t *testing.T) {
	s := newTestScreen(24, 80)
	apply(s, Command{Kind: SetMode, Mode: UseAlternateScreen1049, On: true})
	require.Equal(t, Alternate, s.activeType)
	apply(s, Command{Kind: AppendChar, Rune: 'z'})
	apply(s, Command{Kind: SetMode, Mode: UseAlternateScreen1049, On: false})
	require.Equal(t, Main, s.activeType)
	require.NotEqual(t, 'z', textOf(*s.active.cell(1, 1)))
}

func TestSaveRestoreCursor(t *testing.T) {
	s := newTestScreen(24, 80)
	s.active.Cursor.Row, s.active.Cursor.Col = 5, 10
	apply(s, Command{Kind: SaveCursor})
	s.active.Cursor.Row, s.active.Cursor.Col = 1, 1
	apply(s, Command{Kind: RestoreCursor})
	require.Equal(t, 5, s.active.Cursor.Row)
	require.Equal(t, 10, s.active.Cursor.Col)
}

func TestSetGraphicsRenditionBoldAndColor(t *testing.T) {
	s := newTestScreen(24, 80)
	apply(s, Command{Kind: SetGraphicsRendition, Params: []int{1, 31}})
	require.True(t, s.active.rendition.Styles.Has(Bold))
	require.Equal(t, Indexed(1, false), s.active.rendition.ForegroundColor)
	apply(s, Command{Kind: SetGraphicsRendition, Params: []int{0}})
	require.Equal(t, DefaultGraphicsAttributes(), s.active.rendition)
}

func TestClearScreenLeavesCursor(t *testing.T) {
	s := newTestScreen(3, 5)
	apply(s, Command{Kind: AppendChar, Rune: 'x'})
	apply(s, Command{Kind: ClearScreen})
	require.Equal(t, ' ', textOf(*s.active.cell(1, 1)))
	require.Equal(t, 1, s.active.Cursor.Row)
	require.Equal(t, 2, s.active.Cursor.Col)
}

func TestResizeGrowsPullsFromScrollback(t *testing.T) {
	s := newTestScreen(2, 5)
	apply(s, Command{Kind: AppendChar, Rune: 'a'}, Command{Kind: Linefeed}, Command{Kind: Linefeed})
	require.Equal(t, 1, s.historyLen())
	s.Resize(WindowSize{Rows: 3, Columns: 5})
	require.Equal(t, 0, s.historyLen())
}

func TestHardResetClearsScrollbackAndTitle(t *testing.T) {
	s := newTestScreen(2, 5)
	apply(s, Command{Kind: ChangeWindowTitle, Str: "hi"})
	apply(s, Command{Kind: Linefeed}, Command{Kind: Linefeed})
	apply(s, Command{Kind: FullReset})
	require.Equal(t, "", s.title)
	require.Equal(t, 0, s.historyLen())
}

func TestHyperlinkCommandSetsActiveLink(t *testing.T) {
	s := newTestScreen(24, 80)
	apply(s, Command{Kind: HyperlinkCmd, ID: "a", URI: "https://example.com"})
	apply(s, Command{Kind: AppendChar, Rune: 'x'})
	cell := s.active.cell(1, 1)
	link := s.active.resolveHyperlink(cell.linkKey)
	require.NotNil(t, link)
	require.Equal(t, "https://example.com", link.URI)
	apply(s, Command{Kind: HyperlinkCmd})
	require.Equal(t, "", s.active.activeHyperlink)
}

func TestReportCursorPositionRepliesViaCallback(t *testing.T) {
	var replied []byte
	s := NewScreen(WindowSize{Rows: 24, Columns: 80}, WithCallbacks(Callbacks{
		Reply: func(data []byte) { replied = append(replied, data...) },
	}))
	s.active.Cursor.Row, s.active.Cursor.Col = 3, 4
	apply(s, Command{Kind: ReportCursorPosition})
	require.Equal(t, "\x1b[3;4R", string(replied))
}
