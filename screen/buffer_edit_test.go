// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fillRow(s *Screen, text string) {
	for _, r := range text {
		s.Apply(Command{Kind: AppendChar, Rune: r})
	}
}

func rowText(s *Screen, row int) string {
	return RenderTextLine(*s.active.line(row))
}

func TestInsertCharactersShiftsRight(t *testing.T) {
	s := newTestScreen(1, 10)
	fillRow(s, "abcde")
	s.active.Cursor.Col = 2
	apply(s, Command{Kind: InsertCharacters, N: 2})
	require.Equal(t, "a  bcde", rowText(s, 1))
}

func TestDeleteCharactersShiftsLeft(t *testing.T) {
	s := newTestScreen(1, 10)
	fillRow(s, "abcde")
	s.active.Cursor.Col = 2
	apply(s, Command{Kind: DeleteCharacters, N: 2})
	require.Equal(t, "ade", rowText(s, 1))
}

func TestEraseCharactersDoesNotShift(t *testing.T) {
	s := newTestScreen(1, 10)
	fillRow(s, "abcde")
	s.active.Cursor.Col = 2
	apply(s, Command{Kind: EraseCharacters, N: 2})
	require.Equal(t, 'a', textOf(*s.active.cell(1, 1)))
	require.Equal(t, ' ', textOf(*s.active.cell(1, 2)))
	require.Equal(t, ' ', textOf(*s.active.cell(1, 3)))
	require.Equal(t, 'd', textOf(*s.active.cell(1, 4)))
}

func TestInsertDeleteLines(t *testing.T) {
	s := newTestScreen(4, 5)
	for i, r := range []rune{'1', '2', '3', '4'} {
		s.active.Cursor.Row = i + 1
		s.active.Cursor.Col = 1
		apply(s, Command{Kind: AppendChar, Rune: r})
	}
	s.active.Cursor.Row = 2
	apply(s, Command{Kind: InsertLines, N: 1})
	require.Equal(t, "1", rowText(s, 1))
	require.Equal(t, "", rowText(s, 2))
	require.Equal(t, "2", rowText(s, 3))
	require.Equal(t, "3", rowText(s, 4))

	apply(s, Command{Kind: DeleteLines, N: 1})
	require.Equal(t, "2", rowText(s, 2))
	require.Equal(t, "3", rowText(s, 3))
	require.Equal(t, "", rowText(s, 4))
}

func TestSetTopBottomMarginRejectsInvalidRange(t *testing.T) {
	s := newTestScreen(24, 80)
	apply(s, Command{Kind: SetTopBottomMargin, Coord: Coordinate{Row: 10, Col: 5}})
	require.Equal(t, Range{From: 1, To: 24}, s.active.Margin.Vertical)
	apply(s, Command{Kind: SetTopBottomMargin, Coord: Coordinate{Row: 5, Col: 15}})
	require.Equal(t, Range{From: 5, To: 15}, s.active.Margin.Vertical)
}

func TestTabForwardStopsAtDefaultWidth(t *testing.T) {
	s := newTestScreen(1, 40)
	apply(s, Command{Kind: Tab})
	require.Equal(t, 9, s.active.Cursor.Col)
	apply(s, Command{Kind: Tab})
	require.Equal(t, 17, s.active.Cursor.Col)
}

func TestExplicitTabStop(t *testing.T) {
	s := newTestScreen(1, 40)
	s.active.Cursor.Col = 5
	apply(s, Command{Kind: SetTabStop})
	s.active.Cursor.Col = 1
	apply(s, Command{Kind: Tab})
	require.Equal(t, 5, s.active.Cursor.Col)
}
