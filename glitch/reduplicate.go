package glitch

import (
	"github.com/katalvlaran/glitchkit/textbuf"
)

// Reduplicate repeats words to simulate stuttered speech: "hello," is
// rewritten as "hello hello," with the trailing punctuation kept on
// the second copy.
//
// Selection is an independent per-word draw with probability
// rate*weight/mean, capped at one. Weights favor short cores unless
// Unweighted is set.
type Reduplicate struct {
	Rate       float64
	Unweighted bool
}

type reduplicateCandidate struct {
	word   int
	prefix string
	core   string
	suffix string
	weight float64
}

func (op Reduplicate) Apply(buf *textbuf.Buffer, r Rng) error {
	if buf.WordCount() == 0 {
		return nil
	}

	var candidates []reduplicateCandidate
	for word := 0; word < buf.WordCount(); word++ {
		seg, ok := buf.WordSegment(word)
		if !ok {
			continue
		}
		original := seg.Text()
		if isWhitespaceOnly(original) {
			continue
		}
		prefix, core, suffix := SplitAffixes(original)
		weight := 1.0
		if !op.Unweighted {
			weight = inverseLengthWeight(core, original)
		}
		candidates = append(candidates, reduplicateCandidate{
			word:   word,
			prefix: prefix,
			core:   core,
			suffix: suffix,
			weight: weight,
		})
	}
	if len(candidates) == 0 {
		return nil
	}

	rate := clampRate(op.Rate)
	if rate <= 0 {
		return nil
	}

	total := 0.0
	for _, c := range candidates {
		total += c.weight
	}
	mean := total / float64(len(candidates))

	var splits []textbuf.WordSplit
	for _, c := range candidates {
		// Draw even on the saturated path so the stream stays aligned
		// across rates.
		if r.Float64() >= selectionProbability(rate, c.weight, mean) {
			continue
		}

		splits = append(splits, textbuf.WordSplit{
			Word:   c.word,
			First:  c.prefix + c.core,
			Sep:    " ",
			Second: c.core + c.suffix,
		})
	}

	if err := buf.SplitWordsBulk(splits); err != nil {
		return err
	}
	buf.Reindex()

	return nil
}
