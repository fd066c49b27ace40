// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/color.go
// Summary: Color variant and the ColorProfile that resolves it to RGB.
// Grounded on: codelaboratoryltd-terminal/color.go (256-color cube
// bands, bright/basic ANSI tables) and the teacher's cell.go ColorMode.

package screen

import "github.com/lucasb-eyer/go-colorful"

// ColorKind discriminates the Color tagged variant (spec §3: DefaultColor,
// IndexedColor, PaletteColor, RGBColor).
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed           // Index in 0..7; Bright selects the 8..15 half of the table.
	ColorPalette            // Index in 0..255 (xterm 256-color palette).
	ColorRGB
)

// Color is the tagged color variant used throughout GraphicsAttributes.
// IndexedColor(0..15 with a Bright flag) from spec §3 is represented as
// Kind == ColorIndexed with Index in 0..7 and Bright selecting the upper
// half of the 16-color table; this is the same representation spec §4.5
// calls IndexedColor(0..7) / BrightIndexed(8..15).
type Color struct {
	Kind    ColorKind
	Index   uint8 // ColorIndexed: 0-7. ColorPalette: 0-255.
	Bright  bool  // ColorIndexed only.
	R, G, B uint8 // ColorRGB only.
}

// Default is the zero value DefaultColor.
var Default = Color{Kind: ColorDefault}

// Indexed constructs a basic ANSI color, 0-7, optionally bright (8-15).
func Indexed(i uint8, bright bool) Color {
	return Color{Kind: ColorIndexed, Index: i % 8, Bright: bright}
}

// Palette constructs a 256-color palette entry.
func Palette(i uint8) Color {
	return Color{Kind: ColorPalette, Index: i}
}

// RGB constructs a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// ColorProfile maps non-RGB colors to RGB given a target (foreground or
// background) and a brightness hint, per spec §3. The default profile
// mirrors the xterm/VT220 16-color table and the standard 6x6x6 + 24-step
// grayscale 256-color cube.
type ColorProfile struct {
	// Basic holds the 8 non-bright ANSI colors (index 0-7).
	Basic [8]colorful.Color
	// Bright holds the 8 bright ANSI colors (index 8-15).
	Bright [8]colorful.Color
	// DefaultFG / DefaultBG are used for Color{Kind: ColorDefault}.
	DefaultFG, DefaultBG colorful.Color
}

// colourBands are the six intensity steps used by the 6x6x6 color cube,
// the same table codelaboratoryltd-terminal/color.go calls colourBands.
var colourBands = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func rgb8(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// DefaultColorProfile returns the standard VT220/xterm 16-color table
// with a black default background and light-gray default foreground.
func DefaultColorProfile() ColorProfile {
	return ColorProfile{
		Basic: [8]colorful.Color{
			rgb8(0, 0, 0), rgb8(170, 0, 0), rgb8(0, 170, 0), rgb8(170, 170, 0),
			rgb8(0, 0, 170), rgb8(170, 0, 170), rgb8(0, 170, 170), rgb8(170, 170, 170),
		},
		Bright: [8]colorful.Color{
			rgb8(85, 85, 85), rgb8(255, 85, 85), rgb8(85, 255, 85), rgb8(255, 255, 85),
			rgb8(85, 85, 255), rgb8(255, 85, 255), rgb8(85, 255, 255), rgb8(255, 255, 255),
		},
		DefaultFG: rgb8(229, 229, 229),
		DefaultBG: rgb8(0, 0, 0),
	}
}

// ColorTarget distinguishes foreground from background resolution, since
// the two may use different default colors.
type ColorTarget int

const (
	TargetForeground ColorTarget = iota
	TargetBackground
)

// Resolve converts c to RGB under this profile. boldBright, when true,
// promotes a ColorIndexed(0-7, Bright=false) color into the bright half
// of the table — spec §3's "if Bold, resolve indexed colors using the
// bright palette". An already-Bright color, or a bold background
// (terminals do not bold-promote backgrounds), is unaffected.
func (p ColorProfile) Resolve(c Color, boldBright bool, target ColorTarget) colorful.Color {
	switch c.Kind {
	case ColorIndexed:
		bright := c.Bright || (boldBright && target == TargetForeground)
		if bright {
			return p.Bright[c.Index%8]
		}
		return p.Basic[c.Index%8]
	case ColorPalette:
		return p.resolvePalette(c.Index)
	case ColorRGB:
		return rgb8(c.R, c.G, c.B)
	default:
		if target == TargetBackground {
			return p.DefaultBG
		}
		return p.DefaultFG
	}
}

func (p ColorProfile) resolvePalette(idx uint8) colorful.Color {
	switch {
	case idx < 8:
		return p.Basic[idx]
	case idx < 16:
		return p.Bright[idx-8]
	case idx <= 231:
		n := int(idx) - 16
		b := n % 6
		n = (n - b) / 6
		g := n % 6
		r := (n - g) / 6
		return rgb8(colourBands[r], colourBands[g], colourBands[b])
	default: // 232-255: 24-step grayscale ramp
		step := int(idx) - 232
		y := uint8(8 + step*10)
		return rgb8(y, y, y)
	}
}

// ResolvedRendition is the fully-derived paint for a cell: concrete RGB
// foreground/background after bold-bright promotion, inverse swap, and
// faint blending have all been applied (spec §3 "Rendering derivation").
type ResolvedRendition struct {
	Foreground, Background, Underline colorful.Color
}

// Resolve derives the final paint colors for attrs under profile,
// applying the three rendering rules in the order spec §3 implies:
// bold-bright promotion happens inside color resolution itself, inverse
// swaps foreground/background, and faint blends the (possibly swapped)
// foreground 50% toward black — "before opacity is applied" means the
// swap must happen first.
func (attrs GraphicsAttributes) Resolve(profile ColorProfile) ResolvedRendition {
	bold := attrs.Styles.Has(Bold)
	fg := profile.Resolve(attrs.ForegroundColor, bold, TargetForeground)
	bg := profile.Resolve(attrs.BackgroundColor, false, TargetBackground)
	ul := profile.Resolve(attrs.UnderlineColor, bold, TargetForeground)

	if attrs.Styles.Has(Inverse) {
		fg, bg = bg, fg
	}
	if attrs.Styles.Has(Faint) {
		fg = fg.BlendRgb(colorful.Color{R: 0, G: 0, B: 0}, 0.5)
	}
	return ResolvedRendition{Foreground: fg, Background: bg, Underline: ul}
}
