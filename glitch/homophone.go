package glitch

import (
	"math"
	"strings"
	"unicode"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// defaultHomophoneGroups lists words that sound alike. Every member of
// a group is a legal replacement for every other member.
var defaultHomophoneGroups = [][]string{
	{"their", "there", "they're"},
	{"to", "too", "two"},
	{"your", "you're"},
	{"its", "it's"},
	{"hear", "here"},
	{"bare", "bear"},
	{"brake", "break"},
	{"piece", "peace"},
	{"weather", "whether"},
	{"whose", "who's"},
	{"affect", "effect"},
	{"accept", "except"},
	{"allowed", "aloud"},
	{"board", "bored"},
	{"buy", "by", "bye"},
	{"cell", "sell"},
	{"principal", "principle"},
	{"right", "write", "rite"},
	{"sight", "site", "cite"},
	{"stationary", "stationery"},
	{"than", "then"},
	{"threw", "through"},
	{"waist", "waste"},
	{"weak", "week"},
	{"wear", "where"},
}

func homophoneIndex() map[string][]string {
	index := make(map[string][]string)
	for _, group := range defaultHomophoneGroups {
		for _, word := range group {
			index[word] = group
		}
	}

	return index
}

// Homophone replaces words with sound-alike alternatives. Each word
// found in a homophone group draws once; the word is replaced when the
// draw lands below Rate, with the original casing pattern reapplied.
type Homophone struct {
	Rate float64
}

func (op Homophone) Apply(buf *textbuf.Buffer, r Rng) error {
	rate := op.Rate
	if math.IsNaN(rate) {
		return nil
	}
	rate = math.Min(math.Max(rate, 0), 1)
	if rate <= epsilon {
		return nil
	}

	index := homophoneIndex()
	var edits []textbuf.WordEdit
	for i := 0; i < buf.WordCount(); i++ {
		seg, ok := buf.WordSegment(i)
		if !ok {
			continue
		}
		prefix, core, suffix := SplitAffixes(seg.Text())
		if core == "" {
			continue
		}
		lowered := strings.ToLower(core)
		group, ok := index[lowered]
		if !ok {
			continue
		}
		if r.Float64() >= rate {
			continue
		}

		var alternatives []string
		for _, member := range group {
			if member != lowered {
				alternatives = append(alternatives, member)
			}
		}
		if len(alternatives) == 0 {
			continue
		}
		chosen := alternatives[r.IntN(len(alternatives))]
		edits = append(edits, textbuf.WordEdit{
			Word: i,
			Text: prefix + applyCasing(core, chosen) + suffix,
		})
	}
	if len(edits) == 0 {
		return nil
	}

	return buf.ReplaceWordsBulk(edits)
}

// applyCasing reshapes replacement to follow the casing pattern of
// source: all upper, all lower, capitalised, or left untouched for
// mixed patterns.
func applyCasing(source, replacement string) string {
	runes := []rune(source)
	letters := 0
	uppers := 0
	for _, ch := range runes {
		if unicode.IsLetter(ch) {
			letters++
			if unicode.IsUpper(ch) {
				uppers++
			}
		}
	}
	switch {
	case letters == 0:
		return replacement
	case uppers == letters:
		return strings.ToUpper(replacement)
	case uppers == 0:
		return strings.ToLower(replacement)
	case uppers == 1 && unicode.IsUpper(runes[0]):
		lowered := strings.ToLower(replacement)
		head := []rune(lowered)
		if len(head) > 0 {
			head[0] = unicode.ToUpper(head[0])
		}

		return string(head)
	default:
		return replacement
	}
}
