package textbuf

import (
	"strings"
	"unicode/utf8"
)

// Buffer owns an ordered sequence of segments plus derived position
// metadata. See the package documentation for the invariants.
type Buffer struct {
	segments []Segment

	// Derived metadata, rebuilt by reindex.
	spans      []Span
	wordOfSeg  []int // segment index per word index, dense
	totalChars int
	totalBytes int

	dirty bool
}

// New constructs a buffer from raw text. Tokenization splits on
// whitespace boundaries and preserves exact separator runs, so
// New(text).String() == text for every input.
func New(text string) *Buffer {
	b := &Buffer{segments: tokenize(text), dirty: true}
	b.Reindex()

	return b
}

// Segments returns the tracked segments. The returned slice aliases the
// buffer's internal state and must not be modified by the caller.
func (b *Buffer) Segments() []Segment {
	return b.segments
}

// Spans returns derived position metadata for every segment.
// The returned slice must not be modified by the caller.
func (b *Buffer) Spans() []Span {
	b.ensureIndex()

	return b.spans
}

// Len returns the number of runes across the entire buffer.
func (b *Buffer) Len() int {
	b.ensureIndex()

	return b.totalChars
}

// ByteLen returns the number of bytes across the entire buffer.
func (b *Buffer) ByteLen() int {
	b.ensureIndex()

	return b.totalBytes
}

// WordCount returns the number of Word segments.
func (b *Buffer) WordCount() int {
	b.ensureIndex()

	return len(b.wordOfSeg)
}

// WordSegment returns the segment addressed by word index, and false
// when the index is out of range.
func (b *Buffer) WordSegment(word int) (Segment, bool) {
	b.ensureIndex()
	if word < 0 || word >= len(b.wordOfSeg) {
		return Segment{}, false
	}

	return b.segments[b.wordOfSeg[word]], true
}

// WordSegmentIndex maps a word index to its raw segment index, and
// false when the index is out of range.
func (b *Buffer) WordSegmentIndex(word int) (int, bool) {
	b.ensureIndex()
	if word < 0 || word >= len(b.wordOfSeg) {
		return 0, false
	}

	return b.wordOfSeg[word], true
}

// WordIndexBySegment returns a reverse map from segment index to word
// index covering every Word segment.
func (b *Buffer) WordIndexBySegment() map[int]int {
	b.ensureIndex()
	reverse := make(map[int]int, len(b.wordOfSeg))
	for word, seg := range b.wordOfSeg {
		reverse[seg] = word
	}

	return reverse
}

// String materializes the full text represented by the buffer.
func (b *Buffer) String() string {
	var sb strings.Builder
	for i := range b.segments {
		sb.WriteString(b.segments[i].text)
	}

	return sb.String()
}

// Reindex rebuilds spans, the word index and the length totals.
// It is a no-op when no structural edit happened since the last call.
func (b *Buffer) Reindex() {
	if !b.dirty {
		return
	}

	b.spans = b.spans[:0]
	b.wordOfSeg = b.wordOfSeg[:0]
	charCursor, byteCursor := 0, 0
	for i := range b.segments {
		text := b.segments[i].text
		charLen := utf8.RuneCountInString(text)
		byteLen := len(text)
		b.spans = append(b.spans, Span{
			Segment:   i,
			Kind:      b.segments[i].kind,
			CharStart: charCursor,
			CharEnd:   charCursor + charLen,
			ByteStart: byteCursor,
			ByteEnd:   byteCursor + byteLen,
		})
		if b.segments[i].kind == Word {
			b.wordOfSeg = append(b.wordOfSeg, i)
		}
		charCursor += charLen
		byteCursor += byteLen
	}
	b.totalChars = charCursor
	b.totalBytes = byteCursor
	b.dirty = false
}

// ensureIndex refreshes derived metadata before a span-derived read.
func (b *Buffer) ensureIndex() {
	if b.dirty {
		b.Reindex()
	}
}

// markDirty invalidates derived metadata after a structural edit.
func (b *Buffer) markDirty() {
	b.dirty = true
}

// charToByteIndex translates a rune offset into a byte offset, using
// spans to avoid scanning the whole buffer. Returns false when the rune
// offset lies outside [0, Len()].
func (b *Buffer) charToByteIndex(charIndex int) (int, bool) {
	b.ensureIndex()
	if charIndex < 0 || charIndex > b.totalChars {
		return 0, false
	}
	if charIndex == b.totalChars {
		return b.totalBytes, true
	}
	for i := range b.spans {
		span := &b.spans[i]
		if charIndex < span.CharStart || charIndex >= span.CharEnd {
			continue
		}
		relative := charIndex - span.CharStart
		offset := 0
		for range relative {
			_, size := utf8.DecodeRuneInString(b.segments[span.Segment].text[offset:])
			offset += size
		}

		return span.ByteStart + offset, true
	}

	return 0, false
}
