package textbuf

import (
	"fmt"
	"strings"
)

// ReplaceWord replaces the text of the word at the given word index.
func (b *Buffer) ReplaceWord(word int, replacement string) error {
	seg, ok := b.WordSegmentIndex(word)
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidWordIndex, word)
	}
	b.segments[seg] = newSegment(replacement, Word)
	b.markDirty()

	return nil
}

// ReplaceWordsBulk replaces multiple words in a single pass, paying for
// one reindex instead of one per edit. The buffer is left unchanged
// when any index is invalid.
func (b *Buffer) ReplaceWordsBulk(edits []WordEdit) error {
	b.ensureIndex()
	for _, edit := range edits {
		if edit.Word < 0 || edit.Word >= len(b.wordOfSeg) {
			return fmt.Errorf("%w: %d", ErrInvalidWordIndex, edit.Word)
		}
	}
	for _, edit := range edits {
		b.segments[b.wordOfSeg[edit.Word]] = newSegment(edit.Text, Word)
	}
	if len(edits) > 0 {
		b.markDirty()
	}

	return nil
}

// DeleteWord removes the word segment at the given word index. The
// surrounding separators are left in place; callers wanting collapsed
// whitespace follow up with Normalize.
func (b *Buffer) DeleteWord(word int) error {
	seg, ok := b.WordSegmentIndex(word)
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidWordIndex, word)
	}
	b.segments = append(b.segments[:seg], b.segments[seg+1:]...)
	b.markDirty()

	return nil
}

// InsertWordAfter inserts a new word directly after the addressed word.
// A non-empty sep is inserted between the two words as a separator
// segment, letting callers control whitespace exactly.
func (b *Buffer) InsertWordAfter(word int, text, sep string) error {
	seg, ok := b.WordSegmentIndex(word)
	if !ok {
		return fmt.Errorf("%w: %d", ErrInvalidWordIndex, word)
	}

	insertAt := seg + 1
	tail := make([]Segment, 0, 2)
	if sep != "" {
		tail = append(tail, newSegment(sep, Separator))
	}
	tail = append(tail, newSegment(text, Word))

	b.segments = append(b.segments[:insertAt], append(tail, b.segments[insertAt:]...)...)
	b.markDirty()

	return nil
}

// SplitWordsBulk rewrites each addressed word as First+Sep+Second in a
// single pass over the segment slice. Splits must be sorted by
// ascending word index; duplicates are rejected alongside invalid
// indices.
func (b *Buffer) SplitWordsBulk(splits []WordSplit) error {
	if len(splits) == 0 {
		return nil
	}
	b.ensureIndex()
	for i, split := range splits {
		if split.Word < 0 || split.Word >= len(b.wordOfSeg) {
			return fmt.Errorf("%w: %d", ErrInvalidWordIndex, split.Word)
		}
		if i > 0 && split.Word <= splits[i-1].Word {
			return fmt.Errorf("%w: %d (splits must strictly ascend)", ErrInvalidWordIndex, split.Word)
		}
	}

	rebuilt := make([]Segment, 0, len(b.segments)+2*len(splits))
	next := 0
	for seg := range b.segments {
		if next < len(splits) && b.wordOfSeg[splits[next].Word] == seg {
			split := splits[next]
			rebuilt = append(rebuilt, newSegment(split.First, Word))
			if split.Sep != "" {
				rebuilt = append(rebuilt, newSegment(split.Sep, Separator))
			}
			rebuilt = append(rebuilt, newSegment(split.Second, Word))
			next++
			continue
		}
		rebuilt = append(rebuilt, b.segments[seg])
	}
	b.segments = rebuilt
	b.markDirty()

	return nil
}

// ReplaceSegment replaces the text of a segment addressed by raw
// segment index, preserving its kind. Out-of-range indices are ignored,
// matching the bulk variant.
func (b *Buffer) ReplaceSegment(seg int, text string) {
	if seg < 0 || seg >= len(b.segments) {
		return
	}
	b.segments[seg] = newSegment(text, b.segments[seg].kind)
	b.markDirty()
}

// ReplaceSegmentsBulk replaces multiple segments in one pass,
// preserving each segment's kind. Out-of-range indices are skipped.
func (b *Buffer) ReplaceSegmentsBulk(edits []SegmentEdit) {
	replaced := false
	for _, edit := range edits {
		if edit.Segment < 0 || edit.Segment >= len(b.segments) {
			continue
		}
		b.segments[edit.Segment] = newSegment(edit.Text, b.segments[edit.Segment].kind)
		replaced = true
	}
	if replaced {
		b.markDirty()
	}
}

// ReplaceCharRange replaces the rune range [start, end) with new text,
// re-tokenizing the buffer. Used by steps whose edits cross segment
// boundaries.
func (b *Buffer) ReplaceCharRange(start, end int, replacement string) error {
	b.ensureIndex()
	if start < 0 || start > end || end > b.totalChars {
		return fmt.Errorf("%w: %d..%d of %d chars", ErrInvalidCharRange, start, end, b.totalChars)
	}
	if start == end && replacement == "" {
		return nil
	}

	startByte, ok := b.charToByteIndex(start)
	if !ok {
		return fmt.Errorf("%w: %d..%d of %d chars", ErrInvalidCharRange, start, end, b.totalChars)
	}
	endByte, ok := b.charToByteIndex(end)
	if !ok {
		return fmt.Errorf("%w: %d..%d of %d chars", ErrInvalidCharRange, start, end, b.totalChars)
	}

	text := b.String()
	b.Rebuild(text[:startByte] + replacement + text[endByte:])

	return nil
}

// Rebuild replaces the buffer contents with a full re-tokenization of
// text. Steps whose edits are easier to express as a complete rewrite
// (character-level passes over the whole buffer) use this instead of
// segment patches.
func (b *Buffer) Rebuild(text string) {
	b.segments = tokenize(text)
	b.markDirty()
	b.Reindex()
}

// gluePunct reports whether a word starts with punctuation that glues
// to the preceding word without a space.
func gluePunct(text string) bool {
	if text == "" {
		return false
	}
	switch text[0] {
	case '.', ',', ':', ';':
		return true
	default:
		return false
	}
}

// Normalize collapses consecutive separators into single spaces,
// removes spaces before glue punctuation (.,:;), and trims leading and
// trailing whitespace. It works on segments directly, avoiding a full
// String+Rebuild round trip.
func (b *Buffer) Normalize() {
	normalized := make([]Segment, 0, len(b.segments))
	pending := false
	for i := range b.segments {
		seg := b.segments[i]
		if seg.kind == Separator {
			pending = true
			continue
		}
		if pending && len(normalized) > 0 && !gluePunct(seg.text) {
			normalized = append(normalized, newSegment(" ", Separator))
		}
		pending = false
		normalized = append(normalized, seg)
	}

	b.segments = normalized
	b.markDirty()
	b.Reindex()
}

// repeatedToken reports whether text consists entirely of repeated
// copies of token.
func repeatedToken(text, token string) bool {
	if text == "" || len(text)%len(token) != 0 {
		return false
	}
	for len(text) > 0 {
		if !strings.HasPrefix(text, token) {
			return false
		}
		text = text[len(token):]
	}

	return true
}

// MergeRepeatedTokenWords collapses runs of Word segments each composed
// entirely of repeats of token, joined only by separators, into one
// merged word. Redaction uses this to make adjacent redacted words read
// as a single contiguous block.
func (b *Buffer) MergeRepeatedTokenWords(token string) {
	if len(b.segments) == 0 || token == "" {
		return
	}

	merged := make([]Segment, 0, len(b.segments))
	i := 0
	for i < len(b.segments) {
		seg := b.segments[i]
		if seg.kind != Word || !repeatedToken(seg.text, token) {
			merged = append(merged, seg)
			i++
			continue
		}

		count := len(seg.text) / len(token)
		j := i + 1
		for j+1 < len(b.segments) &&
			b.segments[j].kind == Separator &&
			b.segments[j+1].kind == Word &&
			repeatedToken(b.segments[j+1].text, token) {
			count += len(b.segments[j+1].text) / len(token)
			j += 2
		}

		merged = append(merged, newSegment(strings.Repeat(token, count), Word))
		i = j
	}

	b.segments = merged
	b.markDirty()
	b.Reindex()
}
