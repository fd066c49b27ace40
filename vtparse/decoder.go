// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/decoder.go
// Summary: The C0/ESC/CSI/OSC/DCS state machine, one rune at a time.
// Grounded on: apps/texelterm/parser/parser.go's Parser.Parse switch,
// generalized to emit screen.Command values instead of calling directly
// into a *VTerm.

package vtparse

import (
	"unicode/utf8"

	"github.com/texelcore/vtscreen/screen"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
	stateDCS
	stateDCSEscape
	stateCharset
	stateHash
)

// Decoder is a stateful byte-to-Command translator. It is not safe for
// concurrent use; feed it from a single reader goroutine per pty, the
// same way a Parser is owned by one reader loop in the teacher.
type Decoder struct {
	state state

	params       []int
	currentParam int
	hasParam     bool
	private      byte // '?', '>', '<', or 0
	intermediate byte

	oscBuf []byte
	dcsBuf []byte

	utf8Buf [utf8.UTFMax]byte
	utf8Len int

	emit func(screen.Command)
}

// New returns a Decoder that calls emit for every Command it decodes.
func New(emit func(screen.Command)) *Decoder {
	return &Decoder{
		params: make([]int, 0, 16),
		emit:   emit,
	}
}

// Write feeds raw pty bytes to the decoder, satisfying io.Writer so a
// Decoder can sit directly at the end of an io.Copy from a pty.
func (d *Decoder) Write(p []byte) (int, error) {
	for _, b := range p {
		d.feedByte(b)
	}
	return len(p), nil
}

func (d *Decoder) feedByte(b byte) {
	// Multi-byte UTF-8 sequences only ever appear as printable ground
	// text; every C0/C1 control and every ESC/CSI/OSC byte is ASCII.
	if d.utf8Len > 0 {
		d.utf8Buf[d.utf8Len] = b
		d.utf8Len++
		if !utf8.FullRune(d.utf8Buf[:d.utf8Len]) {
			if d.utf8Len < utf8.UTFMax {
				return
			}
		}
		r, _ := utf8.DecodeRune(d.utf8Buf[:d.utf8Len])
		d.utf8Len = 0
		d.feedRune(r)
		return
	}
	if b >= 0x80 && d.state == stateGround {
		d.utf8Buf[0] = b
		d.utf8Len = 1
		return
	}
	d.feedRune(rune(b))
}

func (d *Decoder) feedRune(r rune) {
	switch d.state {
	case stateGround:
		d.ground(r)
	case stateEscape:
		d.escape(r)
	case stateCSI:
		d.csi(r)
	case stateOSC:
		if r == '\x07' {
			d.handleOSC(d.oscBuf)
			d.state = stateGround
		} else if r == '\x1b' {
			d.state = stateOSCEscape
		} else {
			d.oscBuf = append(d.oscBuf, byte(r))
		}
	case stateOSCEscape:
		if r == '\\' {
			d.handleOSC(d.oscBuf)
			d.state = stateGround
		} else {
			d.state = stateOSC
			d.oscBuf = append(d.oscBuf, '\x1b', byte(r))
		}
	case stateDCS:
		if r == '\x1b' {
			d.state = stateDCSEscape
		} else {
			d.dcsBuf = append(d.dcsBuf, byte(r))
		}
	case stateDCSEscape:
		if r == '\\' {
			d.state = stateGround
			// DCS payloads (DECRQSS and friends) are acknowledged but not
			// interpreted; nothing in the Command set represents them.
		} else {
			d.state = stateDCS
			d.dcsBuf = append(d.dcsBuf, '\x1b', byte(r))
		}
	case stateCharset:
		d.state = stateGround
	case stateHash:
		d.state = stateGround
		if r == '8' {
			d.emit(screen.Command{Kind: screen.ScreenAlignmentPattern})
		}
	}
}

func (d *Decoder) ground(r rune) {
	switch r {
	case '\x1b':
		d.state = stateEscape
	case '\n', '\v', '\f':
		d.emit(screen.Command{Kind: screen.Linefeed})
	case '\r':
		d.emit(screen.Command{Kind: screen.CarriageReturn})
	case '\b':
		d.emit(screen.Command{Kind: screen.Backspace})
	case '\t':
		d.emit(screen.Command{Kind: screen.Tab})
	case '\a':
		d.emit(screen.Command{Kind: screen.Bell})
	default:
		if r >= ' ' || r > 0x9f {
			d.emit(screen.Command{Kind: screen.AppendChar, Rune: r})
		}
	}
}

func (d *Decoder) escape(r rune) {
	switch r {
	case '[':
		d.state = stateCSI
		d.resetCSI()
	case ']':
		d.state = stateOSC
		d.oscBuf = d.oscBuf[:0]
	case 'P':
		d.state = stateDCS
		d.dcsBuf = d.dcsBuf[:0]
	case '(', ')', '*', '+':
		d.state = stateCharset
	case 'c':
		d.emit(screen.Command{Kind: screen.FullReset})
		d.state = stateGround
	case 'D':
		d.emit(screen.Command{Kind: screen.Index})
		d.state = stateGround
	case 'M':
		d.emit(screen.Command{Kind: screen.ReverseIndex})
		d.state = stateGround
	case 'E':
		d.emit(screen.Command{Kind: screen.Linefeed})
		d.emit(screen.Command{Kind: screen.CarriageReturn})
		d.state = stateGround
	case '7':
		d.emit(screen.Command{Kind: screen.SaveCursor})
		d.state = stateGround
	case '8':
		d.emit(screen.Command{Kind: screen.RestoreCursor})
		d.state = stateGround
	case '#':
		d.state = stateHash // consume one more byte; only '8' (DECALN) matters
	case '=', '>':
		d.state = stateGround
	default:
		d.state = stateGround
	}
}

func (d *Decoder) resetCSI() {
	d.params = d.params[:0]
	d.currentParam = 0
	d.hasParam = false
	d.private = 0
	d.intermediate = 0
}

func (d *Decoder) csi(r rune) {
	switch {
	case r >= '0' && r <= '9':
		d.currentParam = d.currentParam*10 + int(r-'0')
		d.hasParam = true
	case r == ';':
		d.params = append(d.params, d.currentParam)
		d.currentParam = 0
		d.hasParam = false
	case r == '?' || r == '>' || r == '<' || r == '=':
		d.private = byte(r)
	case r >= ' ' && r <= '/':
		d.intermediate = byte(r)
	case r >= '@' && r <= '~':
		d.params = append(d.params, d.currentParam)
		d.dispatchCSI(byte(r), d.params)
		d.state = stateGround
	default:
		d.state = stateGround
	}
}
