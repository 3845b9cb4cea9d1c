/*
Command arabiforms converts Arabic text between general letters and
contextual presentation forms.

Usage

   arabiforms [-d] [-o outfile] -i input

Flag -i accepts either a file name or a literal piece of text. The
converted text is written to stdout, or to a file given with -o.
By default the input is shaped into presentation forms; flag -d reverses
the direction and recovers general letters, guessing elided word
boundaries from word-final glyph shapes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/npillmayer/arabic/shape"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var logger = log.New(os.Stderr, "arabiforms ", log.Ltime)

func main() {
	input := flag.String("i", "", "input text or input file name")
	output := flag.String("o", "", "output file name (default stdout)")
	reverse := flag.Bool("d", false, "decontextualize: map presentation forms back to general letters")
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if *doVerbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}
	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	text := *input
	if stat, err := os.Stat(text); err == nil && stat.Mode().IsRegular() {
		raw, ioerr := os.ReadFile(text)
		checkFatal(ioerr)
		text = string(raw)
	}
	var converted string
	if *reverse {
		converted = shape.Decontextualize(text)
	} else {
		converted = shape.Contextualize(text)
	}
	w := os.Stdout
	if *output != "" {
		f, ioerr := os.Create(*output)
		checkFatal(ioerr)
		defer f.Close()
		w = f
	}
	_, err := fmt.Fprintln(w, converted)
	checkFatal(err)
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
