package glitch

import (
	"sort"
	"strings"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// QuoteOption is one decorative open/close pair a straight quote may
// become.
type QuoteOption struct {
	Left  string
	Right string
}

// DefaultQuoteTable maps the three straight quote characters to their
// decorative replacements.
func DefaultQuoteTable() map[byte][]QuoteOption {
	return map[byte][]QuoteOption{
		'"': {
			{Left: "“", Right: "”"},
			{Left: "„", Right: "“"},
			{Left: "«", Right: "»"},
		},
		'\'': {
			{Left: "‘", Right: "’"},
			{Left: "‚", Right: "‘"},
		},
		'`': {
			{Left: "‘", Right: "’"},
			{Left: "`", Right: "´"},
		},
	}
}

type quotePair struct {
	start int
	end   int
	key   byte
}

// collectQuotePairs pairs straight quotes by kind using one open slot
// per kind; an unmatched opener stays unchanged.
func collectQuotePairs(text string) []quotePair {
	var pairs []quotePair
	open := map[byte]int{}
	for idx := 0; idx < len(text); idx++ {
		ch := text[idx]
		if ch != '"' && ch != '\'' && ch != '`' {
			continue
		}
		if start, ok := open[ch]; ok {
			pairs = append(pairs, quotePair{start: start, end: idx, key: ch})
			delete(open, ch)
		} else {
			open[ch] = idx
		}
	}

	return pairs
}

// QuotePairs swaps paired straight quotes, apostrophes, and backticks
// for decorative counterparts. Each pair draws one choice from the
// table and both ends are replaced together.
type QuotePairs struct {
	Table map[byte][]QuoteOption
}

func (op QuotePairs) Apply(buf *textbuf.Buffer, r Rng) error {
	segments := buf.Segments()
	if len(segments) == 0 {
		return nil
	}

	text := buf.String()
	pairs := collectQuotePairs(text)
	if len(pairs) == 0 {
		return nil
	}

	table := op.Table
	if table == nil {
		table = DefaultQuoteTable()
	}

	type replacement struct {
		start int
		end   int
		value string
	}
	var replacements []replacement
	for _, pair := range pairs {
		options := table[pair.key]
		if len(options) == 0 {
			continue
		}
		choice := options[r.IntN(len(options))]
		replacements = append(replacements,
			replacement{start: pair.start, end: pair.start + 1, value: choice.Left},
			replacement{start: pair.end, end: pair.end + 1, value: choice.Right},
		)
	}
	if len(replacements) == 0 {
		return nil
	}

	segStart := make([]int, len(segments))
	offset := 0
	for i, seg := range segments {
		segStart[i] = offset
		offset += len(seg.Text())
	}

	bySegment := make(map[int][]replacement)
	for _, rep := range replacements {
		segIdx := sort.Search(len(segStart), func(i int) bool { return segStart[i] > rep.start }) - 1
		if segIdx < 0 {
			continue
		}
		rep.start -= segStart[segIdx]
		rep.end -= segStart[segIdx]
		bySegment[segIdx] = append(bySegment[segIdx], rep)
	}

	segIndices := make([]int, 0, len(bySegment))
	for segIdx := range bySegment {
		segIndices = append(segIndices, segIdx)
	}
	sort.Ints(segIndices)

	edits := make([]textbuf.SegmentEdit, 0, len(segIndices))
	for _, segIdx := range segIndices {
		reps := bySegment[segIdx]
		sort.Slice(reps, func(i, j int) bool { return reps[i].start < reps[j].start })

		segText := segments[segIdx].Text()
		var out strings.Builder
		cursor := 0
		for _, rep := range reps {
			out.WriteString(segText[cursor:rep.start])
			out.WriteString(rep.value)
			cursor = rep.end
		}
		out.WriteString(segText[cursor:])

		edits = append(edits, textbuf.SegmentEdit{Segment: segIdx, Text: out.String()})
	}

	buf.ReplaceSegmentsBulk(edits)
	buf.Reindex()

	return nil
}
