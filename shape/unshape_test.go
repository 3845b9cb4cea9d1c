package shape

import (
	"testing"

	"github.com/npillmayer/arabic"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDecontextualizeIsolated(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := Decontextualize("ﺏ"); out != "ب" {
		t.Errorf("an isolated beh should map back to the general beh, have %+q", out)
	}
}

func TestDecontextualizeInitMedialFinal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := Decontextualize("ﺑﺒﺐ"); out != "ببب" {
		t.Errorf("expected ببب, have %+q", out)
	}
}

// Every presentation form of the tables maps back to its general letter.
// Word-final-only glyphs followed by another letter glyph get a space
// inserted, marking the word boundary the glyph implies.
func TestDecontextualizeAllLetters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arabic.SetupLetterClasses()
	for base, iso := range isolatedForm {
		var input, want string
		switch arabic.ClassForRune(base) {
		case arabic.Terminator, arabic.Hamza:
			input = string([]rune{iso, iso, iso})
			if tailGlyphs[iso] && iso != hamzaIsolated {
				want = string([]rune{base, ' ', base, ' ', base})
			} else {
				want = string([]rune{base, base, base})
			}
		default:
			input = string([]rune{initialForm[base], medialForm[base], finalForm[base]})
			want = string([]rune{base, base, base})
		}
		if got := Decontextualize(input); got != want {
			t.Errorf("Decontextualize(%+q) = %+q, want %+q", input, got, want)
		}
	}
}

func TestDecontextualizeLigature(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := Decontextualize("ﻻ"); out != "لا" {
		t.Errorf("lam-alef ligature should expand to lam+alef, have %+q", out)
	}
	if out := Decontextualize("ﺑﻼ"); out != "بلا" {
		t.Errorf("Decontextualize(beh+lam-alef-final) = %+q, want بلا", out)
	}
}

func TestDecontextualizeRecomposes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// alef-final plus combining hamza recomposes to alef-with-hamza
	if out := Decontextualize("ﺳﺎٔﻝ"); out != "سأل" {
		t.Errorf("expected سأل, have %+q", out)
	}
}

func TestDecontextualizeTailBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// shaping two words separately and concatenating the results loses the
	// space; the word-final yeh glyph lets us reinsert it
	glued := Contextualize("ولا تردي") + Contextualize("به")
	if out := Decontextualize(glued); out != "ولا تردي به" {
		t.Errorf("expected the elided space to be reinserted, have %+q", out)
	}
}

func TestDecontextualizeNoBoundaryAfterInnerGlyph(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// dal has a single shape for word-final and word-internal positions, so
	// no boundary may be guessed after it
	glued := Contextualize("ولا تردد") + Contextualize("به")
	if out := Decontextualize(glued); out != "ولا ترددبه" {
		t.Errorf("expected no space after the dal, have %+q", out)
	}
}

func TestDecontextualizeHamzaNoBoundary(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the isolated hamza frequently ends a word; a word-final glyph before
	// it must not be taken as a word boundary
	cases := []string{"شيء", "كفء", "المقرىء"}
	for _, tc := range cases {
		if out := Decontextualize(Contextualize(tc)); out != tc {
			t.Errorf("round trip of %s = %+q, want input back", tc, out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []string{
		"",
		"ولا تردد به",
		"ولا تردي به",
		"ولا ترددبه",
		"ســـأل",
		"لا إله إلا الله",
		"hello — مرحبا",
	}
	for _, tc := range cases {
		if out := Decontextualize(Contextualize(tc)); out != tc {
			t.Errorf("round trip of %+q = %+q, want input back", tc, out)
		}
	}
}

// Shaping followed by unshaping keeps every character of the input, modulo
// canonical reordering of combining marks.
func TestRoundTripConservesCharacters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const sample = "قُلْ هُوَ اللَّهُ أَحَدٌ، اللَّهُ الصَّمَدُ. لَمْ يَلِدْ وَلَمْ يُولَدْ، وَلَمْ يَكُن لَّهُ كُفُوًا أَحَدٌ"
	out := Decontextualize(Contextualize(sample))
	want := histogram(sample)
	have := histogram(out)
	for r, n := range want {
		if have[r] != n {
			t.Errorf("%#U: %d in input, %d after round trip", r, n, have[r])
		}
	}
	for r := range have {
		if _, ok := want[r]; !ok {
			t.Errorf("%#U appeared out of nowhere", r)
		}
	}
}

func histogram(s string) map[rune]int {
	h := make(map[rune]int)
	for _, r := range s {
		h[r]++
	}
	return h
}
