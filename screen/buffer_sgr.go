// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer_sgr.go
// Summary: SetGraphicsRendition (spec §4.5) — the SGR parameter
// sequence that updates the buffer's current rendition, including the
// 256-color and truecolor extended forms.
// Grounded on: apps/texelterm/parser/vterm_sgr.go's ProcessSGR switch,
// with the Bold-bright / explicit-Bright distinction SPEC_FULL.md's
// SUPPLEMENTED FEATURES recovers from original_source's ColorProfile.

package screen

// setGraphicsRendition applies an SGR parameter list to the buffer's
// current rendition. An empty list is treated as a single implicit 0
// (reset), matching every VT100-family terminal.
func (b *ScreenBuffer) setGraphicsRendition(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			b.rendition = DefaultGraphicsAttributes()
		case p == 1:
			b.rendition.Styles = b.rendition.Styles.Set(Bold)
		case p == 2:
			b.rendition.Styles = b.rendition.Styles.Set(Faint)
		case p == 3:
			b.rendition.Styles = b.rendition.Styles.Set(Italic)
		case p == 4:
			b.rendition.Styles = b.rendition.Styles.setUnderline(Underline)
		case p == 5 || p == 6:
			b.rendition.Styles = b.rendition.Styles.Set(Blinking)
		case p == 7:
			b.rendition.Styles = b.rendition.Styles.Set(Inverse)
		case p == 8:
			b.rendition.Styles = b.rendition.Styles.Set(Hidden)
		case p == 9:
			b.rendition.Styles = b.rendition.Styles.Set(CrossedOut)
		case p == 21:
			b.rendition.Styles = b.rendition.Styles.setUnderline(DoublyUnderlined)
		case p == 22:
			b.rendition.Styles = b.rendition.Styles.Clear(Bold).Clear(Faint)
		case p == 23:
			b.rendition.Styles = b.rendition.Styles.Clear(Italic)
		case p == 24:
			b.rendition.Styles = b.rendition.Styles.Clear(underlineVariants)
		case p == 25:
			b.rendition.Styles = b.rendition.Styles.Clear(Blinking)
		case p == 27:
			b.rendition.Styles = b.rendition.Styles.Clear(Inverse)
		case p == 28:
			b.rendition.Styles = b.rendition.Styles.Clear(Hidden)
		case p == 29:
			b.rendition.Styles = b.rendition.Styles.Clear(CrossedOut)
		case p == 51:
			b.rendition.Styles = b.rendition.Styles.Set(Framed)
		case p == 52:
			b.rendition.Styles = b.rendition.Styles.Set(Encircled)
		case p == 54:
			b.rendition.Styles = b.rendition.Styles.Clear(Framed).Clear(Encircled)
		case p >= 30 && p <= 37:
			b.rendition.ForegroundColor = Indexed(uint8(p-30), false)
		case p == 38:
			c, consumed := parseExtendedColor(params[i+1:])
			b.rendition.ForegroundColor = c
			i += consumed
		case p == 39:
			b.rendition.ForegroundColor = Default
		case p >= 40 && p <= 47:
			b.rendition.BackgroundColor = Indexed(uint8(p-40), false)
		case p == 48:
			c, consumed := parseExtendedColor(params[i+1:])
			b.rendition.BackgroundColor = c
			i += consumed
		case p == 49:
			b.rendition.BackgroundColor = Default
		case p == 58:
			c, consumed := parseExtendedColor(params[i+1:])
			b.rendition.UnderlineColor = c
			i += consumed
		case p == 59:
			b.rendition.UnderlineColor = Default
		case p >= 90 && p <= 97:
			b.rendition.ForegroundColor = Indexed(uint8(p-90), true)
		case p >= 100 && p <= 107:
			b.rendition.BackgroundColor = Indexed(uint8(p-100), true)
		default:
			// Unrecognized SGR sub-parameter: ignored, nothing is logged.
		}
	}
}

// parseExtendedColor consumes the 5;n or 2;r;g;b tail that follows an
// SGR 38/48/58 introducer, returning the resolved Color and how many
// extra elements of rest were consumed.
func parseExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return Default, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Default, len(rest)
		}
		return Palette(uint8(rest[1])), 2
	case 2:
		if len(rest) < 4 {
			return Default, len(rest)
		}
		return RGB(uint8(rest[1]), uint8(rest[2]), uint8(rest[3])), 4
	default:
		return Default, len(rest)
	}
}
