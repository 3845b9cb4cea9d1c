/*
Package normalize wraps the Unicode normalization steps used by the
contextual-forms conversion.

The forward direction canonicalizes a handful of idiosyncratic regional
letter variants and punctuation marks, then applies compatibility
decomposition (NFKD). Decomposition splits precomposed letters like alef
with hamza above into base letter plus combining mark, and dissolves any
stray presentation-form code point, so that the shaping tables only ever
have to deal with base letters.

The reverse direction applies compatibility composition (NFKC), which
recombines decomposed sequences into their precomposed letters.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Idiosyncratic letter variants and punctuation which we canonicalize
// before decomposition. These are literal one-to-one substitutions, not
// Unicode-canonical equivalences.
var variants = strings.NewReplacer(
	"ہ", "ه", // ARABIC LETTER HEH GOAL → ARABIC LETTER HEH
	"ە", "ه", // ARABIC LETTER AE → ARABIC LETTER HEH
	"ھ", "ه", // ARABIC LETTER HEH DOACHASHMEE → ARABIC LETTER HEH
	"ٴ", "ٔ", // ARABIC LETTER HIGH HAMZA → ARABIC HAMZA ABOVE
	"۔", ".", // ARABIC FULL STOP → FULL STOP
	"∗", "*", // ASTERISK OPERATOR → ASTERISK
	"ݣ", "ڭ", // ARABIC LETTER KEHEH WITH THREE DOTS ABOVE → ARABIC LETTER NG
)

// Substitute applies the variant substitution table alone, without any
// decomposition. This is the degraded forward path for environments where
// decomposition is to be skipped; shaping still succeeds on its output,
// merely without precomposed letters being split first.
func Substitute(text string) string {
	return variants.Replace(text)
}

// Forward normalizes text for shaping: variant substitution followed by
// compatibility decomposition (NFKD). Forward is a pure function and
// cannot fail.
func Forward(text string) string {
	return norm.NFKD.String(Substitute(text))
}

// Reverse recombines canonically decomposed sequences into precomposed
// code points (NFKC). Reverse is a pure function and cannot fail.
func Reverse(text string) string {
	return norm.NFKC.String(text)
}
