package shape

import (
	"strings"
	"testing"

	"github.com/npillmayer/arabic"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegmenterNotInitialized(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	if seg.Next() {
		t.Error("segmenter without input source should not produce a segment")
	}
	if seg.Err() != ErrNotInitialized {
		t.Errorf("expected ErrNotInitialized, have %v", seg.Err())
	}
}

func TestSegmenterBlocks(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("ولا تردي به"))
	want := []struct {
		text    string
		isBlock bool
		letters int
	}{
		{"و", true, 1},  // waw terminates its own block
		{"لا", true, 2}, // lam + alef
		{" ", false, 0},
		{"تر", true, 2}, // teh + reh
		{"د", true, 1},  // dal
		{"ي", true, 1},  // yeh, closed by the space
		{" ", false, 0},
		{"به", true, 2}, // beh + heh, closed at end of input
	}
	i := 0
	for seg.Next() {
		if i >= len(want) {
			t.Fatalf("more segments than expected; superfluous segment '%s'", seg.Text())
		}
		w := want[i]
		if seg.Text() != w.text || seg.IsLetterBlock() != w.isBlock || seg.LetterCount() != w.letters {
			t.Errorf("segment #%d = ('%s', %v, %d), want ('%s', %v, %d)", i,
				seg.Text(), seg.IsLetterBlock(), seg.LetterCount(), w.text, w.isBlock, w.letters)
		}
		i++
	}
	if seg.Err() != nil {
		t.Errorf("segmenter.Next() failed with error: %s", seg.Err())
	}
	if i != len(want) {
		t.Errorf("expected %d segments, have %d", len(want), i)
	}
}

func TestSegmenterDiacriticsAfterTerminator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	// terminator closes its block; a following diacritic opens a new one
	seg.Init(strings.NewReader("رَب"))
	var texts []string
	var letters []int
	for seg.Next() {
		texts = append(texts, seg.Text())
		letters = append(letters, seg.LetterCount())
	}
	if len(texts) != 2 || texts[0] != "ر" || texts[1] != "َب" {
		t.Errorf("expected blocks [ر] [fatha+ب], have %q", texts)
	}
	if len(letters) != 2 || letters[0] != 1 || letters[1] != 1 {
		t.Errorf("expected letter counts [1 1], have %v", letters)
	}
}

func TestContextualizeIsolated(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := Contextualize("ب"); out != "ﺏ" {
		t.Errorf("a lone beh should shape to its isolated form, have %+q", out)
	}
}

func TestContextualizeInitMedialFinal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := Contextualize("ببب"); out != "ﺑﺒﺐ" {
		t.Errorf("beh+beh+beh should shape initial+medial+final, have %+q", out)
	}
}

// Every letter of the tables, tripled: terminators (and hamza) shape to
// three isolated forms, joiners to initial+medial+final.
func TestContextualizeAllLetters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	arabic.SetupLetterClasses()
	for base, iso := range isolatedForm {
		input := string([]rune{base, base, base})
		var want string
		switch arabic.ClassForRune(base) {
		case arabic.Terminator, arabic.Hamza:
			want = string([]rune{iso, iso, iso})
		default:
			want = string([]rune{initialForm[base], medialForm[base], finalForm[base]})
		}
		if got := Contextualize(input); got != want {
			t.Errorf("Contextualize(%#U tripled) = %+q, want %+q", base, got, want)
		}
	}
}

func TestContextualizeDecomposed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// alef-with-hamza decomposes before shaping: the alef of سأل terminates
	// the first block, the combining hamza joins the block of the lam
	if out := Contextualize("سأل"); out != "ﺳﺎٔﻝ" {
		t.Errorf("Contextualize(سأل) = %+q, want seen-initial, alef-final, hamza above, lam-isolated", out)
	}
}

func TestContextualizeHamzaSeatedWordStart(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// words starting with a hamza-seated letter decompose into a lone alef
	// block plus a combining hamza opening the next block; the hamza must
	// not rob the following letter of its initial form
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"alef hamza above", "أحد", "ﺍٔﺣﺪ"},
		{"alef hamza below", "إله", "ﺍٕﻟﻪ"},
	}
	for _, tc := range cases {
		if got := Contextualize(tc.in); got != tc.out {
			t.Errorf("%s: Contextualize(%s) = %+q, want %+q", tc.name, tc.in, got, tc.out)
		}
	}
}

func TestContextualizeTatweel(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// tatweel stretches the word but has no positional form of its own
	if out := Contextualize("ســـأل"); out != "ﺳـــﺎٔﻝ" {
		t.Errorf("Contextualize(ســـأل) = %+q", out)
	}
}

func TestContextualizeLigature(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"isolated lam-alef", "لا", "ﻻ"},
		{"final lam-alef", "بلا", "ﺑﻼ"},
		{"lam-alef after waw", "ولا", "ﻭﻻ"},
	}
	for _, tc := range cases {
		if got := Contextualize(tc.in); got != tc.out {
			t.Errorf("%s: Contextualize(%s) = %+q, want %+q", tc.name, tc.in, got, tc.out)
		}
	}
}

func TestContextualizePassthrough(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []string{"", "hello, world!", "123 + 456"}
	for _, tc := range cases {
		if got := Contextualize(tc); got != tc {
			t.Errorf("non-Arabic input should pass through, have %+q for %+q", got, tc)
		}
	}
}
