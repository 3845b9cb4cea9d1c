package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{"heh goal", "ہ", "ه"},
		{"heh doachashmee", "ھ", "ه"},
		{"ae", "ە", "ه"},
		{"high hamza", "ٴ", "ٔ"},
		{"arabic full stop", "۔", "."},
		{"asterisk operator", "∗", "*"},
		{"keheh three dots", "ݣ", "ڭ"},
		{"untouched", "سلام", "سلام"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.out, Substitute(tc.in), tc.name)
	}
}

func TestForwardDecomposes(t *testing.T) {
	// alef with hamza above splits into alef + combining hamza above
	assert.Equal(t, "أ", Forward("أ"))
	// alef with madda above splits into alef + combining maddah
	assert.Equal(t, "آ", Forward("آ"))
	// a stray presentation form dissolves into its general letter
	assert.Equal(t, "ب", Forward("ﺏ"))
	// the lam-alef ligature glyph dissolves into two general letters
	assert.Equal(t, "لا", Forward("ﻻ"))
}

func TestReverseComposes(t *testing.T) {
	assert.Equal(t, "أ", Reverse("أ"))
	assert.Equal(t, "آ", Reverse("آ"))
}

func TestRoundTrip(t *testing.T) {
	words := []string{"سأل", "شيء", "مؤمن", "قرآن", ""}
	for _, w := range words {
		assert.Equal(t, w, Reverse(Forward(w)), w)
	}
}
