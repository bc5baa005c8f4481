package glitch

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// Stretch elongates words by repeating their last vowel, as in
// "sooooo" or "heeeey". Only words of at most WordLengthThreshold
// bytes that contain a vowel are eligible, so a zero threshold makes
// every word too long; floor(eligible*rate) of them are stretched,
// each by a repeat count drawn from [ExtensionMin, ExtensionMax].
type Stretch struct {
	Rate                float64
	ExtensionMin        int
	ExtensionMax        int
	WordLengthThreshold int
}

func isStretchVowel(ch rune) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}

	return false
}

func hasAlnum(token string) bool {
	for _, ch := range token {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			return true
		}
	}

	return false
}

// splitRuns tokenizes text into alternating runs of word and non-word
// characters.
func splitRuns(text string) []string {
	var tokens []string
	start := 0
	var prev bool
	for i, ch := range text {
		curr := isWordChar(ch)
		if i == 0 {
			prev = curr
			continue
		}
		if curr != prev {
			tokens = append(tokens, text[start:i])
			start = i
			prev = curr
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}

	return tokens
}

func (op Stretch) Apply(buf *textbuf.Buffer, r Rng) error {
	rate := clampRate(op.Rate)
	if rate <= epsilon {
		return nil
	}
	text := buf.String()
	if text == "" {
		return nil
	}

	tokens := splitRuns(text)
	var eligible []int
	for i, token := range tokens {
		if !hasAlnum(token) {
			continue
		}
		if len(token) > op.WordLengthThreshold {
			continue
		}
		if strings.ContainsFunc(token, isStretchVowel) {
			eligible = append(eligible, i)
		}
	}
	num := int(float64(len(eligible)) * rate)
	if num <= 0 {
		return nil
	}

	for i := len(eligible) - 1; i >= 1; i-- {
		j := r.IntN(i + 1)
		eligible[i], eligible[j] = eligible[j], eligible[i]
	}
	if num > len(eligible) {
		num = len(eligible)
	}
	chosen := eligible[:num]

	extMin := op.ExtensionMin
	extMax := op.ExtensionMax
	if extMin < 0 {
		extMin = 0
	}
	if extMax < extMin {
		extMax = extMin
	}

	for _, pos := range chosen {
		token := tokens[pos]
		vowelAt := -1
		vowelLen := 0
		for i, ch := range token {
			if isStretchVowel(ch) {
				vowelAt = i
				vowelLen = len(string(ch))
			}
		}
		if vowelAt < 0 {
			continue
		}
		extra := extMin
		if extMax > extMin {
			extra = extMin + r.IntN(extMax-extMin+1)
		}
		if extra <= 0 {
			continue
		}
		vowel := token[vowelAt : vowelAt+vowelLen]
		tokens[pos] = token[:vowelAt+vowelLen] + strings.Repeat(vowel, extra) + token[vowelAt+vowelLen:]
	}

	result := strings.Join(tokens, "")
	if result != text {
		buf.Rebuild(result)
	}

	return nil
}
