package shape

import (
	"strings"

	"github.com/npillmayer/arabic"
	"github.com/npillmayer/arabic/normalize"
)

// Decontextualize turns the positional presentation forms of text back
// into general Arabic letter forms.
//
// Positional shaping encodes letter connectivity, but not word
// boundaries: when two independently shaped words are concatenated
// without a separator, the word-final glyph of the first still marks the
// seam. Decontextualize re-inserts a space after every word-final "tail"
// glyph which directly abuts a following letter glyph, then maps every
// presentation form to its general letter and recomposes canonically
// decomposed sequences. Characters outside the reverse table pass through
// unchanged. Decontextualize never fails; for empty input it returns the
// empty string.
func Decontextualize(text string) string {
	arabic.SetupLetterClasses()
	text = insertBlockBoundaries(text)
	text = generalize(text)
	return normalize.Reverse(text)
}

// insertBlockBoundaries scans for occurrences of a tail glyph, followed by
// zero or more diacritics, followed by a letter glyph, and inserts one
// space after the diacritics. The letter glyph is not consumed; it may
// start a match of its own. The hamza-isolated glyph does not qualify as
// a following letter, since hamza regularly attaches to the preceding
// word-final letter with no boundary in-between.
func insertBlockBoundaries(text string) string {
	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))
	i := 0
	for i < len(runes) {
		r := runes[i]
		sb.WriteRune(r)
		i++
		if !tailGlyphs[r] {
			continue
		}
		for i < len(runes) && arabic.ClassForRune(runes[i]) == arabic.Diacritic {
			sb.WriteRune(runes[i])
			i++
		}
		if i < len(runes) && isLetterGlyph(runes[i]) {
			tracer().P("tail", string(r)).Debugf("boundary: re-inserting space before %#U", runes[i])
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// isLetterGlyph reports whether r is a known presentation form which can
// start a letter block. The hamza-isolated glyph is excluded.
func isLetterGlyph(r rune) bool {
	_, ok := generalForm[r]
	return ok && r != hamzaIsolated
}

// generalize replaces every presentation form by its general letter(s).
func generalize(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if general, ok := generalForm[r]; ok {
			sb.WriteString(general)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
