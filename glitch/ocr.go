package glitch

import (
	"sort"
	"strings"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// Confusion maps a source pattern to the glyph sequences an optical
// scanner commonly mistakes it for.
type Confusion struct {
	Pattern string
	Choices []string
}

// DefaultConfusions is the built-in OCR confusion table. Multi-rune
// patterns come first so leftmost matching prefers them over their
// single-rune prefixes.
func DefaultConfusions() []Confusion {
	return []Confusion{
		{Pattern: "rn", Choices: []string{"m"}},
		{Pattern: "cl", Choices: []string{"d"}},
		{Pattern: "vv", Choices: []string{"w"}},
		{Pattern: "nn", Choices: []string{"m"}},
		{Pattern: "ri", Choices: []string{"n"}},
		{Pattern: "m", Choices: []string{"rn", "nn"}},
		{Pattern: "w", Choices: []string{"vv"}},
		{Pattern: "d", Choices: []string{"cl"}},
		{Pattern: "l", Choices: []string{"1", "I"}},
		{Pattern: "I", Choices: []string{"l", "1"}},
		{Pattern: "1", Choices: []string{"l", "I"}},
		{Pattern: "O", Choices: []string{"0"}},
		{Pattern: "0", Choices: []string{"O"}},
		{Pattern: "S", Choices: []string{"5"}},
		{Pattern: "5", Choices: []string{"S"}},
		{Pattern: "B", Choices: []string{"8"}},
		{Pattern: "8", Choices: []string{"B"}},
		{Pattern: "Z", Choices: []string{"2"}},
		{Pattern: "2", Choices: []string{"Z"}},
		{Pattern: "g", Choices: []string{"q", "9"}},
		{Pattern: "q", Choices: []string{"g"}},
		{Pattern: "G", Choices: []string{"6"}},
		{Pattern: "6", Choices: []string{"G"}},
		{Pattern: "e", Choices: []string{"c"}},
		{Pattern: "c", Choices: []string{"e"}},
	}
}

// OCR substitutes confusable glyph sequences the way optical character
// recognition misreads a scan. Candidate occurrences are collected per
// segment, shuffled, and applied in shuffled order until
// floor(candidates*rate) substitutions land, skipping any that would
// overlap an earlier one.
//
// A nil Table uses DefaultConfusions.
type OCR struct {
	Rate  float64
	Table []Confusion
}

type ocrCandidate struct {
	seg     int
	start   int
	end     int
	pattern int
}

func (op OCR) Apply(buf *textbuf.Buffer, r Rng) error {
	segments := buf.Segments()
	if len(segments) == 0 {
		return nil
	}

	table := op.Table
	if table == nil {
		table = DefaultConfusions()
	}

	var candidates []ocrCandidate
	for segIdx, seg := range segments {
		collectConfusions(&candidates, segIdx, seg.Text(), table)
	}
	if len(candidates) == 0 {
		return nil
	}

	toSelect := int(float64(len(candidates)) * op.Rate)
	if toSelect <= 0 {
		return nil
	}

	// Full shuffle regardless of how many get selected, so the draw
	// stream depends only on the candidate count.
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i >= 1; i-- {
		j := r.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	type chosenReplacement struct {
		start int
		end   int
		text  string
	}
	occupied := make(map[int][][2]int)
	chosen := make(map[int][]chosenReplacement)
	picked := 0

	for _, candidateIdx := range order {
		if picked >= toSelect {
			break
		}
		c := candidates[candidateIdx]
		choices := table[c.pattern].Choices
		if len(choices) == 0 {
			continue
		}

		overlaps := false
		for _, span := range occupied[c.seg] {
			if c.end > span[0] && span[1] > c.start {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		choice := r.IntN(len(choices))
		chosen[c.seg] = append(chosen[c.seg], chosenReplacement{start: c.start, end: c.end, text: choices[choice]})
		occupied[c.seg] = append(occupied[c.seg], [2]int{c.start, c.end})
		picked++
	}
	if picked == 0 {
		return nil
	}

	segIndices := make([]int, 0, len(chosen))
	for seg := range chosen {
		segIndices = append(segIndices, seg)
	}
	sort.Ints(segIndices)

	edits := make([]textbuf.SegmentEdit, 0, len(segIndices))
	for _, segIdx := range segIndices {
		replacements := chosen[segIdx]
		sort.Slice(replacements, func(i, j int) bool { return replacements[i].start < replacements[j].start })

		text := segments[segIdx].Text()
		var out strings.Builder
		out.Grow(len(text))
		cursor := 0
		for _, rep := range replacements {
			out.WriteString(text[cursor:rep.start])
			out.WriteString(rep.text)
			cursor = rep.end
		}
		out.WriteString(text[cursor:])

		edits = append(edits, textbuf.SegmentEdit{Segment: segIdx, Text: out.String()})
	}

	buf.ReplaceSegmentsBulk(edits)
	buf.Reindex()

	return nil
}

// collectConfusions finds non-overlapping leftmost matches of the
// table's patterns, preferring earlier table entries on ties.
func collectConfusions(out *[]ocrCandidate, segIdx int, text string, table []Confusion) {
	for pos := 0; pos < len(text); {
		matched := false
		for patternIdx, confusion := range table {
			p := confusion.Pattern
			if p == "" || !strings.HasPrefix(text[pos:], p) {
				continue
			}
			*out = append(*out, ocrCandidate{seg: segIdx, start: pos, end: pos + len(p), pattern: patternIdx})
			pos += len(p)
			matched = true
			break
		}
		if !matched {
			pos++
		}
	}
}
