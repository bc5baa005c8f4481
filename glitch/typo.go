package glitch

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/glitchkit/keyboard"
	"github.com/katalvlaran/glitchkit/textbuf"
)

// typoAction is one of the eight corruptions Typo can apply per draw.
type typoAction int

const (
	actionSwapAdjacent typoAction = iota
	actionDelete
	actionInsertNeighbor
	actionReplaceNeighbor
	actionRemoveSpace
	actionInsertSpace
	actionCollapseDuplicate
	actionRepeatChar

	actionCount
)

func (a typoAction) charLevel() bool {
	switch a {
	case actionSwapAdjacent, actionDelete, actionInsertNeighbor, actionReplaceNeighbor:
		return true
	default:
		return false
	}
}

// Typo simulates fat-finger typing errors. Each of ceil(chars*rate)
// rounds draws one of eight actions: four character-level edits inside
// words (transposition, deletion, neighbor insertion or replacement),
// plus space removal, space insertion, duplicate collapsing, and
// character repetition.
//
// Layout supplies keyboard adjacency for neighbor actions; Slip, when
// set, runs the stuck-shift pass first; Motor biases neighbor choice
// by finger travel.
type Typo struct {
	Rate   float64
	Layout keyboard.NeighborMap
	Slip   *ShiftSlip
	Motor  MotorWeighting
}

func (op Typo) Apply(buf *textbuf.Buffer, r Rng) error {
	if op.Slip != nil {
		var edits []textbuf.SegmentEdit
		for i, seg := range buf.Segments() {
			slipped := op.Slip.apply(seg.Text(), r)
			if slipped != seg.Text() {
				edits = append(edits, textbuf.SegmentEdit{Segment: i, Text: slipped})
			}
		}
		if len(edits) > 0 {
			buf.ReplaceSegmentsBulk(edits)
			buf.Reindex()
		}
	}

	totalChars := buf.Len()
	if totalChars == 0 {
		return nil
	}

	rate := op.Rate
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	if rate <= 0 {
		return nil
	}

	maxChanges := int(math.Ceil(float64(totalChars) * rate))
	if maxChanges == 0 {
		return nil
	}

	segments := buf.Segments()
	var wordSegs, sepSegs []int
	for i, seg := range segments {
		switch seg.Kind() {
		case textbuf.Word:
			wordSegs = append(wordSegs, i)
		case textbuf.Separator:
			sepSegs = append(sepSegs, i)
		}
	}

	modified := make(map[int][]rune)
	charsFor := func(seg int) []rune {
		if chars, ok := modified[seg]; ok {
			return chars
		}
		chars := []rune(segments[seg].Text())
		modified[seg] = chars

		return chars
	}

	for round := 0; round < maxChanges; round++ {
		action := typoAction(r.IntN(int(actionCount)))

		if action.charLevel() {
			if len(wordSegs) == 0 {
				continue
			}
			seg := wordSegs[r.IntN(len(wordSegs))]
			chars := charsFor(seg)
			idx, ok := drawEligibleIndex(r, chars, 16)
			if !ok {
				continue
			}
			switch action {
			case actionSwapAdjacent:
				if idx+1 < len(chars) {
					chars[idx], chars[idx+1] = chars[idx+1], chars[idx]
				}
			case actionDelete:
				modified[seg] = append(chars[:idx], chars[idx+1:]...)
			case actionInsertNeighbor:
				ch := chars[idx]
				var insert []rune
				if neighbors := op.neighborsFor(ch); len(neighbors) > 0 {
					choice := op.selectWeightedNeighbor(chars[idx-1], neighbors, r)
					insert = []rune(neighbors[choice])
				} else {
					// Wasted draw keeps the stream aligned with the
					// neighbor path.
					r.IntN(1)
					insert = []rune{ch}
				}
				if len(insert) > 0 {
					modified[seg] = append(chars[:idx:idx], append(insert, chars[idx:]...)...)
				}
			case actionReplaceNeighbor:
				if neighbors, present := op.Layout[lowerKey(chars[idx])]; present {
					if len(neighbors) > 0 {
						choice := op.selectWeightedNeighbor(chars[idx-1], neighbors, r)
						replacement := []rune(neighbors[choice])
						if len(replacement) > 0 {
							modified[seg] = append(chars[:idx:idx], append(replacement, chars[idx+1:]...)...)
						}
					} else {
						r.IntN(1)
					}
				}
			}
			continue
		}

		switch action {
		case actionRemoveSpace:
			if len(sepSegs) == 0 {
				continue
			}
			seg := sepSegs[r.IntN(len(sepSegs))]
			modified[seg] = removeSpace(r, charsFor(seg))
		case actionInsertSpace:
			if len(wordSegs) == 0 {
				continue
			}
			seg := wordSegs[r.IntN(len(wordSegs))]
			modified[seg] = insertSpace(r, charsFor(seg))
		case actionCollapseDuplicate:
			if len(wordSegs) == 0 {
				continue
			}
			seg := wordSegs[r.IntN(len(wordSegs))]
			modified[seg] = collapseDuplicate(r, charsFor(seg))
		case actionRepeatChar:
			if len(wordSegs) == 0 {
				continue
			}
			seg := wordSegs[r.IntN(len(wordSegs))]
			modified[seg] = repeatChar(r, charsFor(seg))
		}
	}

	if len(modified) == 0 {
		return nil
	}

	var out strings.Builder
	for i, seg := range segments {
		if chars, ok := modified[i]; ok {
			out.WriteString(string(chars))
			continue
		}
		out.WriteString(seg.Text())
	}
	buf.Rebuild(out.String())

	return nil
}

func lowerKey(ch rune) string {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}

	return string(ch)
}

func (op Typo) neighborsFor(ch rune) []string {
	return op.Layout[lowerKey(ch)]
}

// selectWeightedNeighbor picks a neighbor index, biased by the motor
// transition from the previous character when weighting is active.
func (op Typo) selectWeightedNeighbor(prev rune, neighbors []string, r Rng) int {
	if op.Motor == MotorUniform {
		return r.IntN(len(neighbors))
	}

	weights := make([]float64, len(neighbors))
	total := 0.0
	for i, neighbor := range neighbors {
		neighborCh := ' '
		if neighbor != "" {
			neighborCh, _ = utf8.DecodeRuneInString(neighbor)
		}
		weights[i] = op.Motor.weightFor(classifyTransition(prev, neighborCh))
		total += weights[i]
	}
	if total <= 0 {
		return r.IntN(len(neighbors))
	}

	threshold := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= threshold {
			return i
		}
	}

	return len(neighbors) - 1
}

func eligibleIdx(chars []rune, idx int) bool {
	if idx == 0 || idx+1 >= len(chars) {
		return false
	}

	return isWordChar(chars[idx]) && isWordChar(chars[idx-1]) && isWordChar(chars[idx+1])
}

// drawEligibleIndex probes random positions, then falls back to a
// circular scan from a random start so a sparse segment still gets a
// bounded number of draws.
func drawEligibleIndex(r Rng, chars []rune, maxTries int) (int, bool) {
	n := len(chars)
	if n == 0 {
		return 0, false
	}

	for try := 0; try < maxTries; try++ {
		idx := r.IntN(n)
		if eligibleIdx(chars, idx) {
			return idx, true
		}
	}

	start := r.IntN(n)
	if eligibleIdx(chars, start) {
		return start, true
	}
	for i := (start + 1) % n; i != start; i = (i + 1) % n {
		if eligibleIdx(chars, i) {
			return i, true
		}
	}

	return 0, false
}

func removeSpace(r Rng, chars []rune) []rune {
	count := 0
	for _, ch := range chars {
		if ch == ' ' {
			count++
		}
	}
	if count == 0 {
		return chars
	}

	choice := r.IntN(count)
	seen := 0
	for idx, ch := range chars {
		if ch != ' ' {
			continue
		}
		if seen == choice {
			return append(chars[:idx], chars[idx+1:]...)
		}
		seen++
	}

	return chars
}

func insertSpace(r Rng, chars []rune) []rune {
	if len(chars) < 2 {
		return chars
	}
	idx := r.IntN(len(chars)-1) + 1

	return append(chars[:idx:idx], append([]rune{' '}, chars[idx:]...)...)
}

func repeatChar(r Rng, chars []rune) []rune {
	count := 0
	for _, ch := range chars {
		if !unicode.IsSpace(ch) {
			count++
		}
	}
	if count == 0 {
		return chars
	}

	choice := r.IntN(count)
	seen := 0
	for idx, ch := range chars {
		if unicode.IsSpace(ch) {
			continue
		}
		if seen == choice {
			return append(chars[:idx:idx], append([]rune{ch}, chars[idx:]...)...)
		}
		seen++
	}

	return chars
}

func collapseDuplicate(r Rng, chars []rune) []rune {
	if len(chars) < 3 {
		return chars
	}

	var matches []int
	for i := 0; i+2 < len(chars); {
		if chars[i] == chars[i+1] && isWordChar(chars[i+2]) {
			matches = append(matches, i)
			i += 2
			continue
		}
		i++
	}
	if len(matches) == 0 {
		return chars
	}

	idx := matches[r.IntN(len(matches))]

	return append(chars[:idx+1], chars[idx+2:]...)
}

