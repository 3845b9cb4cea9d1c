package arabic

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// LetterClass is the classification of a code point with respect to
// letter-block segmentation. Every code point belongs to exactly one class.
type LetterClass int8

// These are all the letter classes relevant for block segmentation.
// Joiners connect to both neighbours, terminators connect to their
// predecessor only and thus end a letter block. Diacritics attach to the
// preceding letter without being counted as letters themselves. Hamza is
// special in that it possesses just a single (isolated) presentation form.
// Everything else (whitespace, punctuation, foreign script) is Other.
const (
	Joiner LetterClass = iota
	Terminator
	Diacritic
	Hamza
	Other
)

const _LetterClass_name = "JoinerTerminatorDiacriticHamzaOther"

var _LetterClass_index = [...]uint8{0, 6, 16, 25, 30, 35}

func (c LetterClass) String() string {
	if c < 0 || int(c) >= len(_LetterClass_index)-1 {
		return "LetterClass(?)"
	}
	return _LetterClass_name[_LetterClass_index[c]:_LetterClass_index[c+1]]
}

// Range tables for the letter classes. Will be initialized with
// SetupLetterClasses(). Clients can check with unicode.Is(..., rune).
var Joiners, Terminators, Diacritics *unicode.RangeTable

// HamzaLetter is the one letter of class Hamza.
const HamzaLetter rune = 0x0621 // ARABIC LETTER HAMZA

var setupOnce sync.Once

// SetupLetterClasses is the top-level preparation function:
// Create the code-point range tables for letter-block segmentation.
// (Concurrency-safe).
func SetupLetterClasses() {
	setupOnce.Do(setupLetterClasses)
}

func setupLetterClasses() {
	Joiners = rangetable.New(joinerLetters...)
	Terminators = rangetable.New(terminatorLetters...)
	Diacritics = rangetable.New(diacriticMarks...)
}

// ClassForRune gets the letter class for a Unicode code point.
// ClassForRune is a total function; code points outside the known letter
// and diacritic sets are classified as Other.
//
// Clients have to call SetupLetterClasses() before using ClassForRune.
func ClassForRune(r rune) LetterClass {
	switch {
	case r == HamzaLetter:
		return Hamza
	case unicode.Is(Diacritics, r):
		return Diacritic
	case unicode.Is(Terminators, r):
		return Terminator
	case unicode.Is(Joiners, r):
		return Joiner
	}
	return Other
}

// Letters which terminate a letter block: they connect to their
// predecessor, but never to a following letter.
var terminatorLetters = []rune{
	0x0622, // ARABIC LETTER ALEF WITH MADDA ABOVE
	0x0623, // ARABIC LETTER ALEF WITH HAMZA ABOVE
	0x0624, // ARABIC LETTER WAW WITH HAMZA ABOVE
	0x0625, // ARABIC LETTER ALEF WITH HAMZA BELOW
	0x0627, // ARABIC LETTER ALEF
	0x0629, // ARABIC LETTER TEH MARBUTA
	0x062F, // ARABIC LETTER DAL
	0x0630, // ARABIC LETTER THAL
	0x0631, // ARABIC LETTER REH
	0x0632, // ARABIC LETTER ZAIN
	0x0648, // ARABIC LETTER WAW
	0x0649, // ARABIC LETTER ALEF MAKSURA
	0x0671, // ARABIC LETTER ALEF WASLA
	0x0688, // ARABIC LETTER DDAL
	0x0691, // ARABIC LETTER RREH
	0x0698, // ARABIC LETTER JEH
	0x06BA, // ARABIC LETTER NOON GHUNNA
	0x06D2, // ARABIC LETTER YEH BARREE
}

// Letters which connect to both their predecessor and their successor.
// The bulk of the Arabic alphabet, plus the dual-joining letters of
// Persian and Urdu.
var joinerLetters = []rune{
	0x0626, // ARABIC LETTER YEH WITH HAMZA ABOVE
	0x0628, // ARABIC LETTER BEH
	0x062A, // ARABIC LETTER TEH
	0x062B, // ARABIC LETTER THEH
	0x062C, // ARABIC LETTER JEEM
	0x062D, // ARABIC LETTER HAH
	0x062E, // ARABIC LETTER KHAH
	0x0633, // ARABIC LETTER SEEN
	0x0634, // ARABIC LETTER SHEEN
	0x0635, // ARABIC LETTER SAD
	0x0636, // ARABIC LETTER DAD
	0x0637, // ARABIC LETTER TAH
	0x0638, // ARABIC LETTER ZAH
	0x0639, // ARABIC LETTER AIN
	0x063A, // ARABIC LETTER GHAIN
	0x0641, // ARABIC LETTER FEH
	0x0642, // ARABIC LETTER QAF
	0x0643, // ARABIC LETTER KAF
	0x0644, // ARABIC LETTER LAM
	0x0645, // ARABIC LETTER MEEM
	0x0646, // ARABIC LETTER NOON
	0x0647, // ARABIC LETTER HEH
	0x064A, // ARABIC LETTER YEH
	0x066E, // ARABIC LETTER DOTLESS BEH
	0x0679, // ARABIC LETTER TTEH
	0x067E, // ARABIC LETTER PEH
	0x0686, // ARABIC LETTER TCHEH
	0x06A9, // ARABIC LETTER KEHEH
	0x06AD, // ARABIC LETTER NG
	0x06AF, // ARABIC LETTER GAF
	0x06CC, // ARABIC LETTER FARSI YEH
}

// Combining marks and the tatweel. They extend the current letter block
// but do not count as letters for positional shaping.
var diacriticMarks = []rune{
	0x0640, // ARABIC TATWEEL
	0x064B, // ARABIC FATHATAN
	0x064C, // ARABIC DAMMATAN
	0x064D, // ARABIC KASRATAN
	0x064E, // ARABIC FATHA
	0x064F, // ARABIC DAMMA
	0x0650, // ARABIC KASRA
	0x0651, // ARABIC SHADDA
	0x0652, // ARABIC SUKUN
	0x0653, // ARABIC MADDAH ABOVE
	0x0654, // ARABIC HAMZA ABOVE
	0x0655, // ARABIC HAMZA BELOW
	0x0670, // ARABIC LETTER SUPERSCRIPT ALEF
}
