// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/attributes.go
// Summary: CharacterStyleMask bitset and GraphicsAttributes (SGR state).
// Grounded on: apps/texelterm/parser/cell.go (Attribute bitset pattern),
// extended to the full style set spec §3 names.

package screen

// CharacterStyleMask is a bitset over the style flags spec §3 names.
type CharacterStyleMask uint16

const (
	Bold CharacterStyleMask = 1 << iota
	Faint
	Italic
	Underline
	Blinking
	Inverse
	Hidden
	CrossedOut
	DoublyUnderlined
	CurlyUnderlined
	DottedUnderline
	DashedUnderline
	Framed
	Encircled
)

// underlineVariants are mutually exclusive per spec §4.5: setting one
// clears the others.
const underlineVariants = Underline | DoublyUnderlined | CurlyUnderlined | DottedUnderline | DashedUnderline

// Has reports whether all bits in flag are set.
func (m CharacterStyleMask) Has(flag CharacterStyleMask) bool { return m&flag == flag }

// Set returns m with flag set.
func (m CharacterStyleMask) Set(flag CharacterStyleMask) CharacterStyleMask { return m | flag }

// Clear returns m with flag cleared.
func (m CharacterStyleMask) Clear(flag CharacterStyleMask) CharacterStyleMask { return m &^ flag }

// setUnderline sets one underline variant, clearing the others — the
// exclusivity spec §4.5 requires.
func (m CharacterStyleMask) setUnderline(flag CharacterStyleMask) CharacterStyleMask {
	return m.Clear(underlineVariants).Set(flag)
}

// GraphicsAttributes is the terminal's current graphic rendition: the
// SGR state that new cells inherit when written (spec §3).
type GraphicsAttributes struct {
	ForegroundColor Color
	BackgroundColor Color
	UnderlineColor  Color
	Styles          CharacterStyleMask
}

// DefaultGraphicsAttributes is the all-default rendition (SGR 0).
func DefaultGraphicsAttributes() GraphicsAttributes {
	return GraphicsAttributes{ForegroundColor: Default, BackgroundColor: Default, UnderlineColor: Default}
}
