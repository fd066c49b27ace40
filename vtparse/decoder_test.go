// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package vtparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texelcore/vtscreen/screen"
)

func collect(t *testing.T, input string) []screen.Command {
	t.Helper()
	var got []screen.Command
	d := New(func(c screen.Command) { got = append(got, c) })
	_, err := d.Write([]byte(input))
	require.NoError(t, err)
	return got
}

func TestGroundControlCharacters(t *testing.T) {
	cmds := collect(t, "A\r\n\tB\b")
	require.Equal(t, []screen.Kind{
		screen.AppendChar, screen.CarriageReturn, screen.Linefeed,
		screen.Tab, screen.AppendChar, screen.Backspace,
	}, kinds(cmds))
}

func TestCSICursorMotion(t *testing.T) {
	cmds := collect(t, "\x1b[5A\x1b[;3H")
	require.Len(t, cmds, 2)
	require.Equal(t, screen.CursorUp, cmds[0].Kind)
	require.Equal(t, 5, cmds[0].N)
	require.Equal(t, screen.CursorTo, cmds[1].Kind)
	require.Equal(t, screen.Coordinate{Row: 1, Col: 3}, cmds[1].Coord)
}

func TestSGRParams(t *testing.T) {
	cmds := collect(t, "\x1b[1;38;5;196m")
	require.Len(t, cmds, 1)
	require.Equal(t, screen.SetGraphicsRendition, cmds[0].Kind)
	require.Equal(t, []int{1, 38, 5, 196}, cmds[0].Params)
}

func TestDECPrivateModeSet(t *testing.T) {
	cmds := collect(t, "\x1b[?1049h")
	require.Len(t, cmds, 1)
	require.Equal(t, screen.SetMode, cmds[0].Kind)
	require.Equal(t, screen.UseAlternateScreen1049, cmds[0].Mode)
	require.True(t, cmds[0].On)
}

func TestOSCWindowTitle(t *testing.T) {
	cmds := collect(t, "\x1b]2;my session\x07")
	require.Len(t, cmds, 1)
	require.Equal(t, screen.ChangeWindowTitle, cmds[0].Kind)
	require.Equal(t, "my session", cmds[0].Str)
}

func TestOSCHyperlink(t *testing.T) {
	cmds := collect(t, "\x1b]8;id=x1;https://example.com\x1b\\")
	require.Len(t, cmds, 1)
	require.Equal(t, screen.HyperlinkCmd, cmds[0].Kind)
	require.Equal(t, "x1", cmds[0].ID)
	require.Equal(t, "https://example.com", cmds[0].URI)
}

func TestOSCDynamicColorQuery(t *testing.T) {
	cmds := collect(t, "\x1b]11;?\x07")
	require.Len(t, cmds, 1)
	require.Equal(t, screen.RequestDynamicColor, cmds[0].Kind)
	require.Equal(t, "background", cmds[0].ColorName)
}

func TestUTF8MultiByteRune(t *testing.T) {
	cmds := collect(t, "café")
	require.Len(t, cmds, 4)
	require.Equal(t, 'é', cmds[3].Rune)
}

func kinds(cmds []screen.Command) []screen.Kind {
	out := make([]screen.Kind, len(cmds))
	for i, c := range cmds {
		out[i] = c.Kind
	}
	return out
}
