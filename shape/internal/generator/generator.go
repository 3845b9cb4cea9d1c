/*
Generator for the Arabic presentation-form tables of package shape.

The positional forms of Arabic letters are recorded in the Unicode
character database as tagged compatibility decompositions of the
Arabic Presentation Forms blocks (U+FB50..U+FDFF, U+FE70..U+FEFF):

   FE91;ARABIC LETTER BEH INITIAL FORM;Lo;0;AL;<initial> 0628;...

This generator inverts these decompositions into per-role lookup tables
(isolated/initial/medial/final), a reverse table back to general letters,
and the set of word-final "tail" glyphs.

Letters which carry a canonical (untagged) decomposition (the hamza-seat
letters and alef with madda) are skipped for the forward tables: the
NFKD normalization step in front of the shaper splits them into base
letter plus combining mark, so their presentation forms can never be
needed as shaping output.

Usage

   generator -ucd path/to/UnicodeData.txt [-o forms.go]

It is designed to be called from the "shape" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

var logger = log.New(os.Stderr, "forms generator: ", log.LstdFlags)

// Letters whose final or isolated forms regularly occur word-internally
// (they terminate letter blocks inside a word) or are otherwise unreliable
// as a word-boundary signal. Their glyphs are excluded from the tail set.
var nonTailLetters = map[rune]bool{
	0x0621: true, // ARABIC LETTER HAMZA
	0x0627: true, // ARABIC LETTER ALEF
	0x0671: true, // ARABIC LETTER ALEF WASLA
	0x062F: true, // ARABIC LETTER DAL
	0x0630: true, // ARABIC LETTER THAL
	0x0631: true, // ARABIC LETTER REH
	0x0632: true, // ARABIC LETTER ZAIN
	0x0637: true, // ARABIC LETTER TAH
	0x0638: true, // ARABIC LETTER ZAH
	0x0648: true, // ARABIC LETTER WAW
	0x0688: true, // ARABIC LETTER DDAL
	0x0691: true, // ARABIC LETTER RREH
	0x0698: true, // ARABIC LETTER JEH
}

// Stray presentation forms kept in the reverse table although their base
// letters are excluded from the forward tables, plus the two lam-alef
// ligature glyphs produced by the shaper's ligature step.
var reverseExtras = map[rune]string{
	0xFE81: "آ",       // ARABIC LETTER ALEF WITH MADDA ABOVE ISOLATED FORM
	0xFE82: "آ",       // ARABIC LETTER ALEF WITH MADDA ABOVE FINAL FORM
	0xFEFB: "لا", // ARABIC LIGATURE LAM WITH ALEF ISOLATED FORM
	0xFEFC: "لا", // ARABIC LIGATURE LAM WITH ALEF FINAL FORM
}

type entry struct {
	glyph rune   // presentation-form code point
	base  rune   // general letter
	name  string // character name of the glyph
}

func main() {
	ucdname := flag.String("ucd", "UnicodeData.txt", "path to the UCD main file")
	outname := flag.String("o", "forms.go", "output file name")
	flag.Parse()
	lines, err := readUCD(*ucdname)
	if err != nil {
		log.Fatal(err)
	}
	decomposable := map[rune]bool{}
	byRole := map[string][]entry{}
	names := map[rune]string{}
	for _, fields := range lines {
		code, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			continue
		}
		r := rune(code)
		names[r] = fields[1]
		decomp := fields[5]
		if decomp == "" {
			continue
		}
		if !strings.HasPrefix(decomp, "<") {
			decomposable[r] = true
			continue
		}
		if r < 0xFB50 || r > 0xFEFF {
			continue
		}
		tag, bases := splitDecomp(decomp)
		if len(bases) != 1 {
			continue // multi-letter ligature; not a positional form
		}
		byRole[tag] = append(byRole[tag], entry{glyph: r, base: bases[0], name: fields[1]})
	}
	out, err := os.Create(*outname)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	fmt.Fprint(out, fileHeader)
	for _, role := range []string{"isolated", "initial", "medial", "final"} {
		emitRoleTable(out, role, byRole, decomposable, names)
	}
	emitReverseTable(out, byRole, decomposable, names)
	emitTailTable(out, byRole, decomposable, names)
	logger.Printf("wrote %s", *outname)
}

func readUCD(fname string) ([][]string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var lines [][]string
	scan := bufio.NewScanner(file)
	for scan.Scan() {
		fields := strings.Split(scan.Text(), ";")
		if len(fields) < 6 {
			continue
		}
		lines = append(lines, fields)
	}
	return lines, scan.Err()
}

func splitDecomp(decomp string) (string, []rune) {
	parts := strings.Fields(decomp)
	tag := strings.Trim(parts[0], "<>")
	var bases []rune
	for _, p := range parts[1:] {
		code, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return tag, nil
		}
		bases = append(bases, rune(code))
	}
	return tag, bases
}

// forTable collects the forward entries of a role: positional forms of
// letters without a canonical decomposition, keyed and sorted by base
// letter. For roles a letter lacks, fallbackRoles are consulted in order;
// terminators get their isolated form as "initial" and their final form
// as "medial", hamza its isolated form everywhere.
func forTable(role string, byRole map[string][]entry, decomposable map[rune]bool) []entry {
	fallbackRoles := map[string][]string{
		"isolated": {},
		"initial":  {"isolated"},
		"medial":   {"final", "isolated"},
		"final":    {"isolated"},
	}
	have := map[rune]entry{}
	for _, roleName := range append([]string{role}, fallbackRoles[role]...) {
		for _, e := range byRole[roleName] {
			if decomposable[e.base] {
				continue
			}
			if _, ok := have[e.base]; !ok {
				have[e.base] = e
			}
		}
	}
	entries := make([]entry, 0, len(have))
	for _, e := range have {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].base < entries[j].base })
	return entries
}

func emitRoleTable(out *os.File, role string, byRole map[string][]entry,
	decomposable map[rune]bool, names map[rune]string) {
	fmt.Fprintf(out, "%svar %sForm = map[rune]rune{\n", roleComments[role], role)
	for _, e := range forTable(role, byRole, decomposable) {
		fmt.Fprintf(out, "\t0x%04X: 0x%04X, // %s\n", e.base, e.glyph, names[e.base])
	}
	fmt.Fprint(out, "}\n\n")
}

func emitReverseTable(out *os.File, byRole map[string][]entry,
	decomposable map[rune]bool, names map[rune]string) {
	reverse := map[rune]string{}
	for _, entries := range byRole {
		for _, e := range entries {
			if decomposable[e.base] {
				continue
			}
			reverse[e.glyph] = string(e.base)
		}
	}
	for glyph, base := range reverseExtras {
		reverse[glyph] = base
	}
	glyphs := sortedKeys(reverse)
	fmt.Fprint(out, reverseComment)
	fmt.Fprint(out, "var generalForm = map[rune]string{\n")
	for _, g := range glyphs {
		fmt.Fprintf(out, "\t0x%04X: %s, // %s\n", g, goString(reverse[g]), names[g])
	}
	fmt.Fprint(out, "}\n\n")
}

func emitTailTable(out *os.File, byRole map[string][]entry,
	decomposable map[rune]bool, names map[rune]string) {
	tails := map[rune]bool{}
	for _, role := range []string{"isolated", "final"} {
		for _, e := range byRole[role] {
			if decomposable[e.base] || nonTailLetters[e.base] {
				continue
			}
			tails[e.glyph] = true
		}
	}
	fmt.Fprint(out, tailComment)
	fmt.Fprint(out, "var tailGlyphs = map[rune]bool{\n")
	for _, g := range sortedBoolKeys(tails) {
		fmt.Fprintf(out, "\t0x%04X: true, // %s\n", g, names[g])
	}
	fmt.Fprint(out, "}\n")
}

func sortedKeys(m map[rune]string) []rune {
	keys := make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedBoolKeys(m map[rune]bool) []rune {
	keys := make([]rune, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func goString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		fmt.Fprintf(&sb, "\\u%04x", r)
	}
	sb.WriteByte('"')
	return sb.String()
}

// --- Templates --------------------------------------------------------

var fileHeader = `package shape

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
//
// Per-letter presentation forms of the Arabic script, derived from the
// compatibility decompositions of the Unicode Arabic Presentation Forms
// blocks (U+FB50..U+FDFF, U+FE70..U+FEFF).

`

var roleComments = map[string]string{
	"isolated": "// Isolated presentation form per general letter.\n",
	"initial": "// Initial presentation form per general letter. Letters which never join\n" +
		"// forward (terminators, hamza) carry their isolated form here.\n",
	"medial": "// Medial presentation form per general letter. Letters which never join\n" +
		"// forward carry their final form here.\n",
	"final": "// Final presentation form per general letter.\n",
}

var reverseComment = "// General letter(s) per presentation form. The reverse direction of the\n" +
	"// four positional tables; ligature glyphs map back to two letters.\n"

var tailComment = "// Presentation forms which only ever occur at the end of a word. Their\n" +
	"// occurrence directly before another letter glyph signals an elided word\n" +
	"// boundary.\n"
