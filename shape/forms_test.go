package shape

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Every positional form must be reachable by the reverse mapping, otherwise
// Decontextualize would not be a left inverse of Contextualize.
func TestFormsReversible(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tables := []struct {
		name  string
		forms map[rune]rune
	}{
		{"isolated", isolatedForm},
		{"initial", initialForm},
		{"medial", medialForm},
		{"final", finalForm},
	}
	for _, tbl := range tables {
		for base, form := range tbl.forms {
			general, ok := generalForm[form]
			if !ok {
				t.Errorf("%s form %#U of %#U has no reverse mapping", tbl.name, form, base)
				continue
			}
			if general != string(base) {
				t.Errorf("%s form %#U maps back to %+q, want %#U", tbl.name, form, general, base)
			}
		}
	}
}

func TestLigaturesReversible(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, lig := range []rune{lamAlefIso, lamAlefFinal} {
		if generalForm[lig] != "لا" {
			t.Errorf("ligature %#U maps back to %+q, want lam+alef", lig, generalForm[lig])
		}
	}
}

// A tail glyph must be a known presentation form, otherwise the boundary
// scan could never encounter it.
func TestTailGlyphsKnown(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for glyph := range tailGlyphs {
		if _, ok := generalForm[glyph]; !ok {
			t.Errorf("tail glyph %#U is not a presentation form", glyph)
		}
	}
}

// Letters with positional variants need all four of them, with the
// isolated form as the anchor.
func TestFormTablesCoherent(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for base := range isolatedForm {
		if _, ok := initialForm[base]; !ok {
			t.Errorf("%#U has an isolated form but no initial form", base)
		}
		if _, ok := medialForm[base]; !ok {
			t.Errorf("%#U has an isolated form but no medial form", base)
		}
		if _, ok := finalForm[base]; !ok {
			t.Errorf("%#U has an isolated form but no final form", base)
		}
	}
}
