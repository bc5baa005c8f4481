package textbuf

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Sentinel errors for buffer mutation helpers.
var (
	// ErrInvalidWordIndex indicates a word index outside [0, WordCount).
	ErrInvalidWordIndex = errors.New("textbuf: invalid word index")

	// ErrInvalidCharRange indicates a rune range outside the buffer.
	ErrInvalidCharRange = errors.New("textbuf: invalid character range")
)

// Kind classifies the role of a Segment inside a Buffer.
type Kind uint8

const (
	// Word is a token containing at least one non-whitespace rune.
	Word Kind = iota

	// Separator is a run of whitespace between words.
	Separator
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Separator:
		return "Separator"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is a contiguous slice of buffer text tagged with its Kind.
// Segments have no identity beyond their position in the buffer.
type Segment struct {
	kind Kind
	text string
}

// Text returns the segment's text content.
func (s Segment) Text() string { return s.text }

// Kind returns the segment's classification.
func (s Segment) Kind() Kind { return s.kind }

// newSegment builds a segment with an explicit kind.
func newSegment(text string, kind Kind) Segment {
	return Segment{kind: kind, text: text}
}

// inferSegment classifies text by content: all-whitespace → Separator.
func inferSegment(text string) Segment {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return Segment{kind: Word, text: text}
		}
	}

	return Segment{kind: Separator, text: text}
}

// Span describes where a segment lives inside the overall buffer.
// Spans are derived metadata: recomputed on reindex, never hand-edited.
type Span struct {
	// Segment is the index of the described segment.
	Segment int

	// Kind mirrors the segment's classification.
	Kind Kind

	// CharStart and CharEnd delimit the segment in rune coordinates.
	CharStart, CharEnd int

	// ByteStart and ByteEnd delimit the segment in byte coordinates.
	ByteStart, ByteEnd int
}

// WordEdit pairs a word index with its replacement text for bulk edits.
type WordEdit struct {
	Word int
	Text string
}

// SegmentEdit pairs a raw segment index with its replacement text.
type SegmentEdit struct {
	Segment int
	Text    string
}

// WordSplit describes rewriting one word as First+Sep+Second, used by
// reduplication-style steps that duplicate a word in place.
type WordSplit struct {
	Word   int
	First  string
	Sep    string
	Second string
}

// tokenize splits text into word/separator segments, preserving the
// exact separator runs. Empty input yields no segments.
func tokenize(text string) []Segment {
	if text == "" {
		return nil
	}

	segments := make([]Segment, 0, utf8.RuneCountInString(text)/4+1)
	start := 0
	inSpace := false
	for i, r := range text {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			kind := Word
			if inSpace {
				kind = Separator
			}
			segments = append(segments, newSegment(text[start:i], kind))
			start = i
			inSpace = isSpace
		}
	}

	kind := Word
	if inSpace {
		kind = Separator
	}
	segments = append(segments, newSegment(text[start:], kind))

	return segments
}
