// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/osc.go
// Summary: OSC (Operating System Command) payload handling: window
// title (0/1/2), hyperlinks (8), dynamic colors (10/11/12), and desktop
// notifications (777).
// Grounded on: apps/texelterm/parser/parser.go's handleOSC/parseOSCColor,
// extended with OSC 8 (absent from the teacher) per spec §4.6's
// hyperlink model.

package vtparse

import (
	"strconv"
	"strings"

	"github.com/texelcore/vtscreen/screen"
)

func (d *Decoder) handleOSC(payload []byte) {
	s := string(payload)
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return
	}
	code, err := strconv.Atoi(s[:semi])
	if err != nil {
		return
	}
	rest := s[semi+1:]

	switch code {
	case 0, 1, 2:
		d.emit(screen.Command{Kind: screen.ChangeWindowTitle, Str: rest})
	case 8:
		d.handleHyperlink(rest)
	case 10, 11, 12:
		d.handleDynamicColor(code, rest)
	case 777:
		d.handleNotify(rest)
	}
}

// handleHyperlink parses OSC 8 ; params ; uri. params is a
// semicolon-free, colon-separated key=value list; only id= is
// recognized (spec §4.6).
func (d *Decoder) handleHyperlink(rest string) {
	semi := strings.IndexByte(rest, ';')
	if semi < 0 {
		return
	}
	params, uri := rest[:semi], rest[semi+1:]
	var id string
	for _, kv := range strings.Split(params, ":") {
		if strings.HasPrefix(kv, "id=") {
			id = strings.TrimPrefix(kv, "id=")
		}
	}
	d.emit(screen.Command{Kind: screen.HyperlinkCmd, ID: id, URI: uri})
}

func (d *Decoder) handleDynamicColor(code int, payload string) {
	name := dynamicColorName(code)
	if payload == "?" {
		d.emit(screen.Command{Kind: screen.RequestDynamicColor, ColorName: name})
		return
	}
	if c, ok := parseRGBSpec(payload); ok {
		d.emit(screen.Command{Kind: screen.SetDynamicColor, ColorName: name, Color: c})
	}
}

func dynamicColorName(code int) string {
	switch code {
	case 10:
		return "foreground"
	case 11:
		return "background"
	case 12:
		return "cursor"
	default:
		return ""
	}
}

// parseRGBSpec parses an X11-style "rgb:RRRR/GGGG/BBBB" color spec,
// scaling arbitrary hex-digit-width channels down to 8 bits.
func parseRGBSpec(spec string) (screen.Color, bool) {
	if !strings.HasPrefix(spec, "rgb:") {
		return screen.Color{}, false
	}
	parts := strings.Split(strings.TrimPrefix(spec, "rgb:"), "/")
	if len(parts) != 3 {
		return screen.Color{}, false
	}
	chans := make([]uint8, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return screen.Color{}, false
		}
		maxVal := (uint64(1) << (4 * len(p))) - 1
		chans[i] = uint8(uint64(v) * 255 / maxVal)
	}
	return screen.RGB(chans[0], chans[1], chans[2]), true
}

// handleNotify parses the common OSC 777;notify;title;body convention.
func (d *Decoder) handleNotify(rest string) {
	parts := strings.SplitN(rest, ";", 2)
	if len(parts) < 1 || parts[0] != "notify" {
		return
	}
	title, body := "", ""
	if len(parts) == 2 {
		tb := strings.SplitN(parts[1], ";", 2)
		title = tb[0]
		if len(tb) == 2 {
			body = tb[1]
		}
	}
	d.emit(screen.Command{Kind: screen.Notify, Title: title, Content: body})
}
