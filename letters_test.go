package arabic

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLetterClasses(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	SetupLetterClasses()
	if c := Joiner; c.String() != "Joiner" {
		t.Errorf("String(Joiner) should be 'Joiner', is %s", c)
	}
	if !unicode.Is(Terminators, 'ا') {
		t.Error("alef should be in the terminator range table")
	}
	cases := []struct {
		r rune
		c LetterClass
	}{
		{'ب', Joiner},     // beh
		{'ل', Joiner},     // lam
		{'ئ', Joiner},     // yeh with hamza above
		{'ا', Terminator}, // alef
		{'د', Terminator}, // dal
		{'و', Terminator}, // waw
		{'ة', Terminator}, // teh marbuta
		{'ء', Hamza},
		{'َ', Diacritic}, // fatha
		{'ّ', Diacritic}, // shadda
		{'ـ', Diacritic}, // tatweel
		{' ', Other},
		{'.', Other},
		{'x', Other},
		{'7', Other},
	}
	for _, tc := range cases {
		if c := ClassForRune(tc.r); c != tc.c {
			t.Errorf("ClassForRune(%#U) = %s, want %s", tc.r, c, tc.c)
		}
	}
}

func TestClassesDisjoint(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	SetupLetterClasses()
	for _, r := range joinerLetters {
		if unicode.Is(Terminators, r) || unicode.Is(Diacritics, r) || r == HamzaLetter {
			t.Errorf("joiner %#U is member of a second class", r)
		}
	}
	for _, r := range terminatorLetters {
		if unicode.Is(Diacritics, r) || r == HamzaLetter {
			t.Errorf("terminator %#U is member of a second class", r)
		}
	}
}
