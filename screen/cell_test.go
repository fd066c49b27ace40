// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlankCellIsASpace(t *testing.T) {
	c := BlankCell(DefaultGraphicsAttributes())
	require.Equal(t, ' ', c.Rune())
	require.Equal(t, uint8(1), c.Width)
	require.False(t, c.Empty())
}

func TestAppendCodepointGrowsWidthNeverShrinks(t *testing.T) {
	c := BlankCell(DefaultGraphicsAttributes())
	c.numCPs = 0
	require.Equal(t, 0, c.AppendCodepoint('a', 1))
	require.Equal(t, 0, c.AppendCodepoint(0x0301, 1)) // combining acute accent
	require.Equal(t, uint8(1), c.Width)
	require.Equal(t, []rune{'a', 0x0301}, c.Runes())
	require.Equal(t, 0, c.AppendCodepoint(vs16, 2))
	require.Equal(t, uint8(2), c.Width)
	require.Equal(t, 0, c.AppendCodepoint(0x0302, 1))
	require.Equal(t, uint8(2), c.Width)
}

func TestAppendCodepointOverflowIsCountedNotFatal(t *testing.T) {
	c := BlankCell(DefaultGraphicsAttributes())
	c.numCPs = 0
	for i := 0; i < MaxCodepoints; i++ {
		require.Equal(t, 0, c.AppendCodepoint('a', 1))
	}
	require.Equal(t, 1, c.AppendCodepoint('b', 1))
	require.Equal(t, uint8(1), c.overflowed)
}
