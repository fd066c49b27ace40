// Copyright © 2025 vtscreen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/width.go
// Summary: Unicode width and grapheme-extender helpers delegated to
// external, table-driven libraries (spec §9 "Unicode width and grapheme
// segmentation are delegated to an external library").
// Grounded on: teacher's Cell.Wide bool (apps/texelterm/parser/cell.go),
// generalized to the three-valued width contract spec §3/§9 require.

package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// vs16 is the variant selector that forces emoji-style wide rendering
// (spec §3: "Appending U+FE0F forces width 2").
const vs16 rune = 0xFE0F

// runeWidth returns the column width of a single code point: 0, 1, or 2.
// go-runewidth supplies the primary East-Asian-width classification;
// golang.org/x/text/width breaks ties for the "ambiguous" class by
// checking the Unicode East Asian Width property directly, since
// go-runewidth's ambiguous-width default (1) doesn't always agree with
// a strict EastAsianWidth table lookup.
func runeWidth(r rune) int {
	if r == vs16 {
		return 2
	}
	w := runewidth.RuneWidth(r)
	if w == 1 && runewidth.IsAmbiguousWidth(r) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			return 2
		}
	}
	return w
}

// isExtender reports whether appending cp to the code points already in
// base would keep them in a single grapheme cluster, i.e. cp extends
// (combines with) the cluster rather than starting a new one. This backs
// appendChar's `consecutive` handling (spec §4.1, §9).
func isExtender(base []rune, cp rune) bool {
	if len(base) == 0 {
		return false
	}
	s := string(base) + string(cp)
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cluster) == len(s)
}
