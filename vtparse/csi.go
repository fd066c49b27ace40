// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/csi.go
// Summary: Maps a completed CSI sequence (final byte + params +
// private/intermediate markers) onto screen.Command values.
// Grounded on: apps/texelterm/parser/vterm.go's ProcessCSI switch,
// restructured as a table of final-byte handlers instead of one giant
// switch, and extended with the DEC private-mode and margin sequences
// the teacher's simpler terminal never needed.

package vtparse

import "github.com/texelcore/vtscreen/screen"

func (d *Decoder) param(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

func (d *Decoder) dispatchCSI(final byte, params []int) {
	switch {
	case d.intermediate == '\'' && final == '}':
		d.emit(screen.Command{Kind: screen.InsertColumns, N: d.param(params, 0, 1)})
		return
	case d.intermediate == '\'' && final == '~':
		d.emit(screen.Command{Kind: screen.DeleteColumns, N: d.param(params, 0, 1)})
		return
	case d.intermediate == '$' && final == 'p':
		d.emitRequestMode(params)
		return
	case d.intermediate == ' ' && final == 'q':
		d.emit(screen.Command{Kind: screen.SetCursorStyle, CursorShape: d.param(params, 0, 0)})
		return
	}

	switch final {
	case 'A':
		d.emit(screen.Command{Kind: screen.CursorUp, N: d.param(params, 0, 1)})
	case 'B':
		d.emit(screen.Command{Kind: screen.CursorDown, N: d.param(params, 0, 1)})
	case 'C', 'a':
		d.emit(screen.Command{Kind: screen.CursorForward, N: d.param(params, 0, 1)})
	case 'D':
		d.emit(screen.Command{Kind: screen.CursorBackward, N: d.param(params, 0, 1)})
	case 'E':
		d.emit(screen.Command{Kind: screen.CursorNextLine, N: d.param(params, 0, 1)})
	case 'F':
		d.emit(screen.Command{Kind: screen.CursorPreviousLine, N: d.param(params, 0, 1)})
	case 'G', '`':
		d.emit(screen.Command{Kind: screen.CursorToColumn, N: d.param(params, 0, 1)})
	case 'd':
		d.emit(screen.Command{Kind: screen.CursorToLine, N: d.param(params, 0, 1)})
	case 'H', 'f':
		d.emit(screen.Command{Kind: screen.CursorTo, Coord: screen.Coordinate{
			Row: d.param(params, 0, 1), Col: d.param(params, 1, 1),
		}})
	case 'I':
		d.emit(screen.Command{Kind: screen.CursorForwardTab, N: d.param(params, 0, 1)})
	case 'Z':
		d.emit(screen.Command{Kind: screen.CursorBackwardTab, N: d.param(params, 0, 1)})

	case 'J':
		switch d.param(params, 0, 0) {
		case 0:
			d.emit(screen.Command{Kind: screen.ClearToEndOfScreen})
		case 1:
			d.emit(screen.Command{Kind: screen.ClearToBeginOfScreen})
		case 2:
			d.emit(screen.Command{Kind: screen.ClearScreen})
		case 3:
			d.emit(screen.Command{Kind: screen.ClearScrollbackBuffer})
		}
	case 'K':
		switch d.param(params, 0, 0) {
		case 0:
			d.emit(screen.Command{Kind: screen.ClearToEndOfLine})
		case 1:
			d.emit(screen.Command{Kind: screen.ClearToBeginOfLine})
		case 2:
			d.emit(screen.Command{Kind: screen.ClearLine})
		}
	case 'X':
		d.emit(screen.Command{Kind: screen.EraseCharacters, N: d.param(params, 0, 1)})

	case '@':
		d.emit(screen.Command{Kind: screen.InsertCharacters, N: d.param(params, 0, 1)})
	case 'P':
		d.emit(screen.Command{Kind: screen.DeleteCharacters, N: d.param(params, 0, 1)})
	case 'L':
		d.emit(screen.Command{Kind: screen.InsertLines, N: d.param(params, 0, 1)})
	case 'M':
		d.emit(screen.Command{Kind: screen.DeleteLines, N: d.param(params, 0, 1)})

	case 'S':
		d.emit(screen.Command{Kind: screen.ScrollUp, N: d.param(params, 0, 1)})
	case 'T':
		d.emit(screen.Command{Kind: screen.ScrollDown, N: d.param(params, 0, 1)})

	case 'r':
		d.emit(screen.Command{Kind: screen.SetTopBottomMargin, Coord: screen.Coordinate{
			Row: d.param(params, 0, 0), Col: d.param(params, 1, 0),
		}})
	case 's':
		if d.private == '?' {
			return
		}
		if len(params) >= 2 {
			d.emit(screen.Command{Kind: screen.SetLeftRightMargin, Coord: screen.Coordinate{
				Row: d.param(params, 0, 0), Col: d.param(params, 1, 0),
			}})
		} else {
			d.emit(screen.Command{Kind: screen.SaveCursor})
		}
	case 'u':
		d.emit(screen.Command{Kind: screen.RestoreCursor})

	case 'm':
		d.emitSGR(params)

	case 'n':
		switch d.param(params, 0, 0) {
		case 5:
			d.emit(screen.Command{Kind: screen.DeviceStatusReport})
		case 6:
			d.emit(screen.Command{Kind: screen.ReportCursorPosition})
		}
	case 'c':
		switch d.private {
		case '>':
			d.emit(screen.Command{Kind: screen.SendTerminalId})
		default:
			d.emit(screen.Command{Kind: screen.SendDeviceAttributes})
		}

	case 'h', 'l':
		d.emitModeSet(params, final == 'h')

	case 'g':
		d.emit(screen.Command{Kind: screen.ClearTabStop, N: d.param(params, 0, 0)})

	case 't':
		d.emitWindowOp(params)
	}
}

func (d *Decoder) emitSGR(params []int) {
	ps := make([]int, len(params))
	copy(ps, params)
	d.emit(screen.Command{Kind: screen.SetGraphicsRendition, Params: ps})
}

func (d *Decoder) emitWindowOp(params []int) {
	switch d.param(params, 0, 0) {
	case 8:
		d.emit(screen.Command{Kind: screen.ResizeWindow,
			Height: d.param(params, 1, 0), Width: d.param(params, 2, 0)})
	case 22:
		d.emit(screen.Command{Kind: screen.SaveWindowTitle})
	case 23:
		d.emit(screen.Command{Kind: screen.RestoreWindowTitle})
	}
}

func (d *Decoder) emitRequestMode(params []int) {
	n := d.param(params, 0, 0)
	if mode, ok := modeFromNumber(n, d.private == '?'); ok {
		d.emit(screen.Command{Kind: screen.RequestMode, Mode: mode, RawMode: n})
		return
	}
	d.emit(screen.Command{Kind: screen.RequestMode, RawMode: n})
}

func (d *Decoder) emitModeSet(params []int, on bool) {
	private := d.private == '?'
	for _, n := range params {
		if mode, ok := modeFromNumber(n, private); ok {
			d.emit(screen.Command{Kind: screen.SetMode, Mode: mode, RawMode: n, On: on})
			continue
		}
		d.emit(screen.Command{Kind: screen.SetMode, RawMode: n, On: on})
	}
}

// modeFromNumber maps a numeric SM/RM or DECSET/DECRST argument to a
// screen.Mode. private distinguishes the DEC-private (CSI ?) namespace
// from the ANSI one, since the two share numbers with different
// meanings (spec §4.3).
func modeFromNumber(n int, private bool) (screen.Mode, bool) {
	if !private {
		switch n {
		case 4:
			return screen.InsertReplace, true
		case 20:
			return screen.LineFeedNewLine, true
		}
		return 0, false
	}
	switch n {
	case 1:
		return screen.ApplicationCursorKeys, true
	case 5:
		return screen.ReverseVideoScreen, true
	case 6:
		return screen.Origin, true
	case 7:
		return screen.AutoWrap, true
	case 9:
		return screen.MouseX10, true
	case 25:
		return screen.CursorVisible, true
	case 47:
		return screen.UseAlternateScreen47, true
	case 66:
		return screen.ApplicationKeypad, true
	case 69:
		return screen.LeftRightMargin, true
	case 1000:
		return screen.MouseVT200, true
	case 1002:
		return screen.MouseButtonEvent, true
	case 1003:
		return screen.MouseAnyEvent, true
	case 1004:
		return screen.FocusEvents, true
	case 1005:
		return screen.MouseUTF8, true
	case 1006:
		return screen.MouseSGR, true
	case 1015:
		return screen.MouseURXVT, true
	case 1047:
		return screen.UseAlternateScreen1047, true
	case 1049:
		return screen.UseAlternateScreen1049, true
	case 2004:
		return screen.BracketedPaste, true
	case 2026:
		return screen.SynchronizedOutput, true
	}
	return 0, false
}
