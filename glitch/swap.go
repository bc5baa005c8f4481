package glitch

import (
	"github.com/katalvlaran/glitchkit/textbuf"
)

// SwapAdjacent swaps the cores of non-overlapping adjacent word pairs
// while keeping each word's punctuation and the spacing between them
// intact: "left, right." becomes "right, left.".
type SwapAdjacent struct {
	Rate float64
}

func (op SwapAdjacent) Apply(buf *textbuf.Buffer, r Rng) error {
	total := buf.WordCount()
	if total < 2 {
		return nil
	}

	rate := clampRate(op.Rate)
	if rate <= 0 {
		return nil
	}

	var edits []textbuf.WordEdit
	for index := 0; index+1 < total; index += 2 {
		left, ok := buf.WordSegment(index)
		if !ok {
			break
		}
		right, ok := buf.WordSegment(index + 1)
		if !ok {
			break
		}

		leftPrefix, leftCore, leftSuffix := SplitAffixes(left.Text())
		rightPrefix, rightCore, rightSuffix := SplitAffixes(right.Text())
		if leftCore == "" || rightCore == "" {
			continue
		}

		// A saturated rate swaps unconditionally without a draw.
		if rate < 1 && r.Float64() >= rate {
			continue
		}

		edits = append(edits,
			textbuf.WordEdit{Word: index, Text: leftPrefix + rightCore + leftSuffix},
			textbuf.WordEdit{Word: index + 1, Text: rightPrefix + leftCore + rightSuffix},
		)
	}

	if len(edits) == 0 {
		return nil
	}
	if err := buf.ReplaceWordsBulk(edits); err != nil {
		return err
	}
	buf.Reindex()

	return nil
}
