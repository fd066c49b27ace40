// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/reports.go
// Summary: Outbound status reports (spec §4.7): DSR, CPR/DECXCPR, DA/
// DA2, DECRQM's reply, DECRQTABSR, and the XTGETTCOLOR family. Every
// reply is written through Callbacks.Reply, never returned, matching
// the "reports are just more output" framing spec §6 uses.
// Grounded on: apps/texelterm/parser/vterm.go's writeResponse helper and
// the DECXCPR-always-page-1 behavior SPEC_FULL.md's SUPPLEMENTED
// FEATURES recovers from original_source's Screen::reportCursorPosition.

package screen

import "fmt"

func (s *Screen) reply(format string, args ...any) {
	if s.cb.Reply == nil {
		return
	}
	s.cb.Reply([]byte(fmt.Sprintf(format, args...)))
}

// replyOK answers DSR 5 ("are you OK") with "terminal OK".
func (s *Screen) replyOK() {
	s.reply("\x1b[0n")
}

// replyCursorPosition answers DSR 6 (CPR) or DECXCPR. DECXCPR always
// reports page 1, since this implementation has no paging support
// (SPEC_FULL.md's SUPPLEMENTED FEATURES).
func (s *Screen) replyCursorPosition(extended bool) {
	b := s.active
	row, col := b.Cursor.Row, b.Cursor.Col
	if b.cursorRestrictedToMargin {
		row = row - b.Margin.Vertical.From + 1
		col = col - b.Margin.Horizontal.From + 1
	}
	if extended {
		s.reply("\x1b[%d;%d;1R", row, col)
		return
	}
	s.reply("\x1b[%d;%dR", row, col)
}

// replyDeviceAttributes answers DA (Primary Device Attributes) with a
// VT220 conformance level (62) and the extension codes 6 (selective
// erase), 9 (national replacement character sets), 15 (technical
// character set) and 22 (ANSI color). Code 1 (132 columns) and code 28
// (rectangular editing) are not reported.
func (s *Screen) replyDeviceAttributes() {
	s.reply("\x1b[?62;6;9;15;22c")
}

// replyTerminalID answers DA2 (Secondary Device Attributes): a VT220
// identity with a made-up but stable firmware revision.
func (s *Screen) replyTerminalID() {
	s.reply("\x1b[>1;10;0c")
}

// replyModeState answers DECRQM: mode number and its four-state code.
func (s *Screen) replyModeState(mode int, state ModeReplyState) {
	s.reply("\x1b[?%d;%d$y", mode, int(state))
}

// replyTabStops answers DECRQTABSR: the sorted list of explicit tab
// stop columns for the active buffer's row.
func (s *Screen) replyTabStops() {
	b := s.active
	cols := make([]int, 0, len(b.tabStops))
	for c := range b.tabStops {
		cols = append(cols, c)
	}
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j-1] > cols[j]; j-- {
			cols[j-1], cols[j] = cols[j], cols[j-1]
		}
	}
	if len(cols) == 0 {
		s.reply("\x1bP2$u\x1b\\")
		return
	}
	out := "\x1bP2$u"
	for i, c := range cols {
		if i > 0 {
			out += "/"
		}
		out += fmt.Sprintf("%d", c)
	}
	s.reply("%s\x1b\\", out)
}

// replyDynamicColor answers an XTGETTCOLOR-family query (OSC 10/11/...)
// by asking the embedder to resolve the current value of a named
// dynamic color (foreground, background, cursor, ...); it stays silent
// if the embedder doesn't know or doesn't implement the hook, matching
// spec §7's ignore-with-log posture for unanswerable queries.
func (s *Screen) replyDynamicColor(name string) {
	if s.cb.RequestDynamicColor == nil {
		return
	}
	c, ok := s.cb.RequestDynamicColor(name)
	if !ok {
		return
	}
	rgb := s.profile.Resolve(c, false, TargetForeground)
	r, g, b := rgb.RGB255()
	s.reply("\x1b]%s;rgb:%02x%02x/%02x%02x/%02x%02x\x1b\\", name, r, r, g, g, b, b)
}
