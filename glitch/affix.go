package glitch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isWordChar matches the \w class: letters, digits, underscore.
func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWhitespaceOnly(text string) bool {
	return strings.TrimSpace(text) == ""
}

// AffixBounds returns the byte range of a word's core: the text with
// leading and trailing non-word characters stripped. The range is
// empty (start == end) when the word has no word characters. Reports
// false only for the empty string.
func AffixBounds(text string) (start, end int, ok bool) {
	if text == "" {
		return 0, 0, false
	}

	start = 0
	for start < len(text) {
		r, size := utf8.DecodeRuneInString(text[start:])
		if isWordChar(r) {
			break
		}
		start += size
	}

	end = len(text)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[:end])
		if isWordChar(r) {
			break
		}
		end -= size
	}

	return start, end, true
}

// SplitAffixes splits a word into leading punctuation, core, and
// trailing punctuation.
func SplitAffixes(text string) (prefix, core, suffix string) {
	start, end, ok := AffixBounds(text)
	if !ok {
		return "", "", ""
	}

	return text[:start], text[start:end], text[end:]
}

// coreLengthForWeight resolves the length used for selection weights.
// Falls back from core to original to trimmed original, bottoming out
// at one so weights stay finite.
func coreLengthForWeight(core, original string) int {
	length := utf8.RuneCountInString(core)
	if length == 0 {
		length = utf8.RuneCountInString(original)
	}
	if length == 0 {
		trimmed := strings.TrimSpace(original)
		if trimmed == "" {
			length = utf8.RuneCountInString(original)
		} else {
			length = utf8.RuneCountInString(trimmed)
		}
	}
	if length == 0 {
		length = 1
	}

	return length
}

// inverseLengthWeight favors short words.
func inverseLengthWeight(core, original string) float64 {
	return 1.0 / float64(coreLengthForWeight(core, original))
}

// directLengthWeight favors long words.
func directLengthWeight(core, original string) float64 {
	return float64(coreLengthForWeight(core, original))
}
