package sheets

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Header cells are manually authored and drift release to release:
// decorative emoji come and go, NBSP sneaks in from copy-paste, accents
// get dropped when retyped. NormalizeLabel reduces a label to the part
// that survives all of that, so "📅 Date de paiement" and
// "Date   de  paiement" compare equal.
//
// The reduction: NFD-decompose and drop combining marks (diacritics),
// drop pictographs and emoji plumbing (variation selectors, ZWJ, skin
// tone modifiers), drop whitespace and punctuation, lowercase.
var labelStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // combining marks: accents, U+FE0F
	runes.Remove(runes.In(unicode.So)), // pictographs
	runes.Remove(runes.In(unicode.Sk)), // modifier symbols: skin tones
	runes.Remove(runes.In(unicode.Cf)), // format: ZWJ
	runes.Remove(runes.In(unicode.White_Space)), // all spaces, NBSP included
	runes.Remove(runes.In(unicode.P)),  // punctuation
	norm.NFC,
)

// NormalizeLabel canonicalizes a header cell or display label for
// matching. Deterministic: equal inputs always produce equal outputs.
func NormalizeLabel(s string) string {
	out, _, err := transform.String(labelStripper, s)
	if err != nil {
		// Malformed UTF-8; fall back to a crude lowering so matching
		// still cannot error out.
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
