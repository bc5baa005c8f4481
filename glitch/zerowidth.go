package glitch

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// DefaultZeroWidthCharacters is the palette injected by ZeroWidth when
// the caller supplies none.
func DefaultZeroWidthCharacters() []string {
	return []string{
		"\u200B", // zero width space
		"\u200C", // zero width non-joiner
		"\u200D", // zero width joiner
		"\uFEFF", // zero width no-break space
		"\u2060", // word joiner
	}
}

// ZeroWidth injects invisible characters between adjacent non-space
// characters. The insertion count is rate*positions with the
// fractional remainder resolved by one extra draw, so the expected
// count matches the rate exactly.
type ZeroWidth struct {
	Rate       float64
	Characters []string
}

func (op ZeroWidth) Apply(buf *textbuf.Buffer, r Rng) error {
	source := op.Characters
	if source == nil {
		source = DefaultZeroWidthCharacters()
	}
	palette := make([]string, 0, len(source))
	for _, ch := range source {
		if ch != "" {
			palette = append(palette, ch)
		}
	}
	if len(palette) == 0 {
		return nil
	}

	segments := buf.Segments()
	if len(segments) == 0 {
		return nil
	}

	// Insertion points sit between two non-space runes, recorded as
	// (segment, rune index of the right-hand rune).
	type position struct {
		seg     int
		charIdx int
	}
	var positions []position
	for segIdx, seg := range segments {
		chars := []rune(seg.Text())
		if len(chars) < 2 {
			continue
		}
		for i := 0; i+1 < len(chars); i++ {
			if !unicode.IsSpace(chars[i]) && !unicode.IsSpace(chars[i+1]) {
				positions = append(positions, position{seg: segIdx, charIdx: i + 1})
			}
		}
	}
	if len(positions) == 0 {
		return nil
	}

	rate := op.Rate
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	if rate <= 0 {
		return nil
	}

	total := len(positions)
	target := rate * float64(total)
	count := int(math.Floor(target))
	if remainder := target - float64(count); remainder > 0 && r.Float64() < remainder {
		count++
	}
	if count > total {
		count = total
	}
	if count == 0 {
		return nil
	}

	sampled, err := r.SampleIndices(total, count)
	if err != nil {
		return err
	}
	sort.Ints(sampled)

	type insertion struct {
		charIdx int
		text    string
	}
	bySegment := make(map[int][]insertion)
	for _, sampleIdx := range sampled {
		pos := positions[sampleIdx]
		glyph := palette[r.IntN(len(palette))]
		bySegment[pos.seg] = append(bySegment[pos.seg], insertion{charIdx: pos.charIdx, text: glyph})
	}

	segIndices := make([]int, 0, len(bySegment))
	for seg := range bySegment {
		segIndices = append(segIndices, seg)
	}
	sort.Ints(segIndices)

	edits := make([]textbuf.SegmentEdit, 0, len(segIndices))
	for _, segIdx := range segIndices {
		insertions := bySegment[segIdx]
		sort.Slice(insertions, func(i, j int) bool { return insertions[i].charIdx < insertions[j].charIdx })

		chars := []rune(segments[segIdx].Text())
		var out strings.Builder
		prev := 0
		for _, ins := range insertions {
			out.WriteString(string(chars[prev:ins.charIdx]))
			out.WriteString(ins.text)
			prev = ins.charIdx
		}
		out.WriteString(string(chars[prev:]))

		edits = append(edits, textbuf.SegmentEdit{Segment: segIdx, Text: out.String()})
	}

	buf.ReplaceSegmentsBulk(edits)
	buf.Reindex()

	return nil
}
