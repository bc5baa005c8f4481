package glitch

import (
	"strings"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// Delete removes random words, keeping their affix punctuation and
// collapsing the surrounding whitespace. The first word is never a
// candidate, so the text keeps its opening anchor.
//
// The rate is approximate: each candidate gets an independent draw
// with probability rate*weight/mean, and deletions stop once
// floor(candidates*rate) words are gone.
type Delete struct {
	Rate       float64
	Unweighted bool
}

func (op Delete) Apply(buf *textbuf.Buffer, r Rng) error {
	if buf.WordCount() <= 1 {
		return nil
	}

	type candidate struct {
		word   int
		weight float64
	}
	var candidates []candidate
	for word := 1; word < buf.WordCount(); word++ {
		seg, ok := buf.WordSegment(word)
		if !ok {
			continue
		}
		text := seg.Text()
		if text == "" || isWhitespaceOnly(text) {
			continue
		}
		weight := 1.0
		if !op.Unweighted {
			_, core, _ := SplitAffixes(text)
			weight = inverseLengthWeight(core, text)
		}
		candidates = append(candidates, candidate{word: word, weight: weight})
	}
	if len(candidates) == 0 {
		return nil
	}

	rate := clampRate(op.Rate)
	if rate <= 0 {
		return nil
	}

	allowed := int(float64(len(candidates)) * rate)
	if allowed == 0 {
		return nil
	}

	total := 0.0
	for _, c := range candidates {
		total += c.weight
	}
	mean := total / float64(len(candidates))

	deleted := make(map[int]bool, allowed)
	for _, c := range candidates {
		if len(deleted) >= allowed {
			break
		}
		if r.Float64() >= selectionProbability(rate, c.weight, mean) {
			continue
		}
		deleted[c.word] = true
	}

	// Rebuild in one pass: deleted words shrink to their affixes,
	// separators collapse to single spaces, glue punctuation attaches
	// without a space.
	var out strings.Builder
	needsSep := false
	word := -1

	emit := func(text string) {
		if text == "" {
			return
		}
		if needsSep && !gluePunct(text) {
			out.WriteByte(' ')
		}
		out.WriteString(text)
		needsSep = true
	}

	for _, seg := range buf.Segments() {
		switch seg.Kind() {
		case textbuf.Word:
			word++
			if deleted[word] {
				prefix, _, suffix := SplitAffixes(seg.Text())
				emit(strings.TrimSpace(prefix) + strings.TrimSpace(suffix))
				continue
			}
			emit(seg.Text())
		case textbuf.Separator:
			sep := seg.Text()
			if strings.ContainsRune(sep, '\n') || strings.TrimSpace(sep) != "" {
				needsSep = true
			}
		}
	}

	buf.Rebuild(strings.TrimSpace(out.String()))

	return nil
}

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
