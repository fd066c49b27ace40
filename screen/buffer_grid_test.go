// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsecutiveCombiningMarkAttachesToWideBase(t *testing.T) {
	s := newTestScreen(1, 10)
	apply(s, Command{Kind: AppendChar, Rune: '中'})
	apply(s, Command{Kind: AppendChar, Rune: 0x0301, Consecutive: true})
	require.Equal(t, []rune{'中', 0x0301}, s.active.cell(1, 1).Runes())
	require.Equal(t, uint8(0), s.active.cell(1, 2).Width)
}

func TestScreenAlignmentPatternFillsSolidE(t *testing.T) {
	s := newTestScreen(2, 3)
	apply(s, Command{Kind: ScreenAlignmentPattern})
	for row := 1; row <= 2; row++ {
		require.Equal(t, "EEE", rowText(s, row))
		for col := 1; col <= 3; col++ {
			require.Equal(t, []rune{'E'}, s.active.cell(row, col).Runes())
		}
	}
	require.Equal(t, 1, s.active.Cursor.Row)
	require.Equal(t, 1, s.active.Cursor.Col)
}
