package glitch

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/glitchkit/rng"
	"github.com/katalvlaran/glitchkit/textbuf"
)

// Redact replaces word cores with repeated copies of Replacement,
// preserving affix punctuation. Unlike Delete, the count is exact:
// max(1, floor(candidates*rate)) words are redacted, chosen by
// weighted sampling without replacement. Weights favor long cores
// unless Unweighted is set.
//
// MergeAdjacent collapses runs of fully redacted words separated only
// by whitespace into one contiguous block.
type Redact struct {
	Replacement   string
	Rate          float64
	MergeAdjacent bool
	Unweighted    bool
}

type redactCandidate struct {
	word      int
	coreStart int
	coreEnd   int
	repeat    int
	weight    float64
}

func (op Redact) Apply(buf *textbuf.Buffer, r Rng) error {
	if buf.WordCount() == 0 {
		return ErrNoRedactableWords
	}

	var candidates []redactCandidate
	for word := 0; word < buf.WordCount(); word++ {
		seg, ok := buf.WordSegment(word)
		if !ok {
			continue
		}
		text := seg.Text()
		start, end, ok := AffixBounds(text)
		if !ok || start == end {
			continue
		}
		core := text[start:end]
		repeat := utf8.RuneCountInString(core)
		if repeat == 0 {
			continue
		}
		weight := 1.0
		if !op.Unweighted {
			weight = directLengthWeight(core, text)
		}
		candidates = append(candidates, redactCandidate{
			word:      word,
			coreStart: start,
			coreEnd:   end,
			repeat:    repeat,
			weight:    weight,
		})
	}
	if len(candidates) == 0 {
		return ErrNoRedactableWords
	}

	rate := op.Rate
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	count := int(float64(len(candidates)) * rate)
	if count < 1 {
		count = 1
	}
	if count > len(candidates) {
		return &ExcessiveRedactionError{Requested: count, Available: len(candidates)}
	}

	pool := make([]rng.Candidate, len(candidates))
	for i, c := range candidates {
		pool[i] = rng.Candidate{Index: i, Weight: c.weight}
	}
	selected, err := rng.SampleWithoutReplacement(r, pool, count)
	if err != nil {
		return &ExcessiveRedactionError{Requested: count, Available: len(candidates)}
	}
	sort.Slice(selected, func(i, j int) bool {
		return candidates[selected[i]].word < candidates[selected[j]].word
	})

	edits := make([]textbuf.WordEdit, 0, len(selected))
	for _, sel := range selected {
		c := candidates[sel]
		seg, ok := buf.WordSegment(c.word)
		if !ok {
			continue
		}
		text := seg.Text()
		edits = append(edits, textbuf.WordEdit{
			Word: c.word,
			Text: text[:c.coreStart] + strings.Repeat(op.Replacement, c.repeat) + text[c.coreEnd:],
		})
	}
	if err := buf.ReplaceWordsBulk(edits); err != nil {
		return err
	}

	if op.MergeAdjacent {
		buf.MergeRepeatedTokenWords(op.Replacement)
	}
	buf.Reindex()

	return nil
}
