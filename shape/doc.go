/*
Package shape converts Arabic-script text between general letter forms and
positional presentation forms.

Description

Arabic typography assigns every letter one of four positional shapes:
isolated, initial, medial or final. Which shape applies depends solely on
the letter's position within its letter block, i.e. its run of visually
connected letters. Package shape implements both directions of the
conversion between the general (logical) encoding and the glyph (shaped)
encoding:

  shaped := shape.Contextualize("ألف باء")
  logical := shape.Decontextualize(shaped)

Contextualize normalizes its input (see package normalize), partitions it
into letter blocks and passthrough characters, and maps every letter of a
block to the presentation form for its positional role. Decontextualize
maps presentation forms back to general letters; additionally it
re-inserts word boundaries wherever a word-final "tail" glyph abuts the
next word's first letter with no separator in between, a situation which
arises whenever independently shaped fragments are concatenated.

Both conversions are total: characters without a table entry for the
required role pass through unchanged, and arbitrary non-Arabic input is
preserved as is.

Clients needing finer control over block partitioning can drive the
Segmenter directly; it follows the scanner protocol of bufio.Scanner:

  seg := shape.NewSegmenter()
  seg.Init(strings.NewReader(text))
  for seg.Next() {
    // seg.Text(), seg.IsLetterBlock(), seg.LetterCount()
  }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package shape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

//go:generate go run ./internal/generator -o forms.go

// tracer traces to a global core tracer
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
