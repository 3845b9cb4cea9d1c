package shape

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/arabic"
)

// A Segmenter receives a sequence of code points from an io.RuneReader and
// partitions it into letter blocks and passthrough characters, preserving
// input order.
//
// A letter block is a maximal run of connected Arabic letters together
// with their diacritics. Joiners and hamza extend the current block,
// terminators extend and then close it, diacritics attach without counting
// as letters. Any other character closes an open block and is emitted as a
// passthrough segment of its own.
type Segmenter struct {
	reader        io.RuneReader
	queue         *arraylist.List // segments ready for delivery
	block         []rune          // accumulator for the open letter block
	blockLetters  int             // non-diacritic count of the open block
	activeSegment segment
	err           error
	atEOF         bool
}

type segment struct {
	runes   []rune
	letters int
	isBlock bool
}

// ErrNotInitialized is returned if a segmenter's Next-function is called
// without first setting an input source.
var ErrNotInitialized = errors.New("arabic segmenter not initialized; must call Init(...) first")

// NewSegmenter creates a new Segmenter. Clients will have to call
// Init(...) on it before use. NewSegmenter initializes the letter-class
// range tables as a side effect.
func NewSegmenter() *Segmenter {
	arabic.SetupLetterClasses()
	return &Segmenter{queue: arraylist.New()}
}

// Init initializes a Segmenter with an io.RuneReader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reader = reader
	s.queue.Clear()
	s.block = s.block[:0]
	s.blockLetters = 0
	s.activeSegment = segment{}
	s.err = nil
	s.atEOF = false
}

// Err returns the first non-EOF error that was encountered by the
// Segmenter.
func (s *Segmenter) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}

// Next advances the Segmenter to the next segment, which will then be
// available through the Text() or Bytes() method. It returns false when
// the segmenting stops, either by reaching the end of the input or an
// error. After Next() returns false, the Err() method will return any
// error that occurred during scanning, except for io.EOF.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.err = ErrNotInitialized
		return false
	}
	for s.queue.Empty() && !s.atEOF {
		s.readRune()
	}
	if s.queue.Empty() {
		s.activeSegment = segment{}
		return false
	}
	seg, _ := s.queue.Get(0)
	s.queue.Remove(0)
	s.activeSegment = seg.(segment)
	tracer().P("letters", fmt.Sprintf("%d", s.activeSegment.letters)).Debugf(
		"Next() = \"%v\"", string(s.activeSegment.runes))
	return true
}

// Text returns the most recent segment generated by a call to Next()
// as a newly allocated string holding its runes.
func (s *Segmenter) Text() string {
	return string(s.activeSegment.runes)
}

// Bytes returns the most recent segment generated by a call to Next()
// as a byte slice.
func (s *Segmenter) Bytes() []byte {
	return []byte(string(s.activeSegment.runes))
}

// IsLetterBlock returns whether the most recent segment is a letter block,
// as opposed to a passthrough character.
func (s *Segmenter) IsLetterBlock() bool {
	return s.activeSegment.isBlock
}

// LetterCount returns the number of non-diacritic characters of the most
// recent segment. It is 0 for passthrough segments.
func (s *Segmenter) LetterCount() int {
	return s.activeSegment.letters
}

// runes returns the rune content of the most recent segment. The slice is
// owned by the segmenter and only valid until the next call to Next().
func (s *Segmenter) runes() []rune {
	return s.activeSegment.runes
}

func (s *Segmenter) readRune() {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		s.closeBlock()
		s.atEOF = true
		if err != io.EOF {
			tracer().Errorf("ReadRune() error: %s", err)
			s.err = err
		}
		return
	}
	switch c := arabic.ClassForRune(r); c {
	case arabic.Terminator:
		// a terminator always ends the block, even a block of its own
		s.block = append(s.block, r)
		s.blockLetters++
		s.closeBlock()
	case arabic.Joiner, arabic.Hamza:
		s.block = append(s.block, r)
		s.blockLetters++
	case arabic.Diacritic:
		s.block = append(s.block, r)
	default: // Other breaks the block and passes through unchanged
		s.closeBlock()
		s.queue.Add(segment{runes: []rune{r}})
	}
}

func (s *Segmenter) closeBlock() {
	if len(s.block) == 0 {
		return
	}
	block := make([]rune, len(s.block))
	copy(block, s.block)
	tracer().Debugf("segmenter: closing block \"%v\" with %d letter(s)",
		string(block), s.blockLetters)
	s.queue.Add(segment{runes: block, letters: s.blockLetters, isBlock: true})
	s.block = s.block[:0]
	s.blockLetters = 0
}
