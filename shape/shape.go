package shape

import (
	"strings"

	"github.com/npillmayer/arabic"
	"github.com/npillmayer/arabic/normalize"
)

// Presentation forms participating in the lam-alef ligature collapse.
const (
	lamInitial    rune = 0xFEDF // ARABIC LETTER LAM INITIAL FORM
	lamMedial     rune = 0xFEE0 // ARABIC LETTER LAM MEDIAL FORM
	alefFinal     rune = 0xFE8E // ARABIC LETTER ALEF FINAL FORM
	lamAlefIso    rune = 0xFEFB // ARABIC LIGATURE LAM WITH ALEF ISOLATED FORM
	lamAlefFinal  rune = 0xFEFC // ARABIC LIGATURE LAM WITH ALEF FINAL FORM
	hamzaIsolated rune = 0xFE80 // ARABIC LETTER HAMZA ISOLATED FORM
)

// Contextualize turns the general Arabic letter forms of text into their
// positional presentation forms.
//
// The input is normalized first (variant substitution plus compatibility
// decomposition), then partitioned into letter blocks; every letter of a
// block receives the glyph for its positional role. Characters outside
// the known letter and diacritic sets pass through unchanged, as do
// letters lacking a form for the required role. Contextualize never
// fails; for empty input it returns the empty string.
func Contextualize(text string) string {
	text = normalize.Forward(text)
	seg := NewSegmenter()
	seg.Init(strings.NewReader(text))
	var sb strings.Builder
	sb.Grow(len(text))
	for seg.Next() {
		if seg.IsLetterBlock() {
			sb.WriteString(string(shapeBlock(seg.runes(), seg.LetterCount())))
		} else {
			sb.WriteString(seg.Text())
		}
	}
	return sb.String()
}

// shapeBlock converts one letter block into its shaped glyph sequence.
// letters is the block's non-diacritic character count.
//
// A letter's role depends only on its position within the block, not on
// the letter's identity: terminators and hamza need no code path of their
// own, as their initial/medial table entries simply fall back to the
// isolated/final glyphs.
func shapeBlock(block []rune, letters int) []rune {
	if letters == 0 {
		// disconnected diacritics; nothing to shape
		return block
	}
	shaped := make([]rune, 0, len(block))
	if letters == 1 {
		// a lone letter, possibly with diacritics: isolated form
		for _, r := range block {
			if iso, ok := isolatedForm[r]; ok {
				shaped = append(shaped, iso)
			} else {
				shaped = append(shaped, r)
			}
		}
		return shaped
	}
	core, suffix := splitTrailingDiacritics(block)
	// The Initial role belongs to the first character that can take it;
	// leading diacritics (a combining hamza opening the block, say) pass
	// through without consuming it.
	first := true
	for i, r := range core {
		var form rune
		var ok bool
		switch {
		case i == len(core)-1:
			form, ok = finalForm[r]
		case first:
			form, ok = initialForm[r]
			if ok {
				first = false
			}
		default:
			form, ok = medialForm[r]
		}
		if !ok {
			form = r
		}
		shaped = append(shaped, form)
	}
	shaped = collapseLigatures(shaped)
	return append(shaped, suffix...)
}

// splitTrailingDiacritics strips the maximal trailing run of diacritics
// off a block.
func splitTrailingDiacritics(block []rune) (core []rune, suffix []rune) {
	i := len(block)
	for i > 0 && arabic.ClassForRune(block[i-1]) == arabic.Diacritic {
		i--
	}
	return block[:i], block[i:]
}

// collapseLigatures replaces adjacent shaped-glyph pairs which Arabic
// typography always renders as a single ligature glyph. This runs on the
// shaped output of a single block only, never across block boundaries.
func collapseLigatures(shaped []rune) []rune {
	out := shaped[:0]
	for i := 0; i < len(shaped); i++ {
		if i+1 < len(shaped) && shaped[i+1] == alefFinal {
			if shaped[i] == lamMedial {
				tracer().Debugf("shaper: collapsing lam-alef to final ligature")
				out = append(out, lamAlefFinal)
				i++
				continue
			}
			if shaped[i] == lamInitial {
				tracer().Debugf("shaper: collapsing lam-alef to isolated ligature")
				out = append(out, lamAlefIso)
				i++
				continue
			}
		}
		out = append(out, shaped[i])
	}
	return out
}
