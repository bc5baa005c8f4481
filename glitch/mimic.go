package glitch

import (
	"math"
	"strings"
	"unicode"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// Homoglyph is one visually confusable stand-in for a source rune,
// tagged with the script class it belongs to.
type Homoglyph struct {
	Glyph rune
	Class string
}

// Script class tags used by the built-in homoglyph table.
const (
	ClassLatin    = "LATIN"
	ClassGreek    = "GREEK"
	ClassCyrillic = "CYRILLIC"
)

// defaultHomoglyphs maps source runes to their confusable stand-ins.
var defaultHomoglyphs = map[rune][]Homoglyph{
	'a': {{Glyph: 'а', Class: ClassCyrillic}, {Glyph: 'α', Class: ClassGreek}},
	'c': {{Glyph: 'с', Class: ClassCyrillic}},
	'e': {{Glyph: 'е', Class: ClassCyrillic}, {Glyph: 'ε', Class: ClassGreek}},
	'i': {{Glyph: 'і', Class: ClassCyrillic}, {Glyph: 'ι', Class: ClassGreek}},
	'j': {{Glyph: 'ј', Class: ClassCyrillic}},
	'o': {{Glyph: 'о', Class: ClassCyrillic}, {Glyph: 'ο', Class: ClassGreek}},
	'p': {{Glyph: 'р', Class: ClassCyrillic}, {Glyph: 'ρ', Class: ClassGreek}},
	's': {{Glyph: 'ѕ', Class: ClassCyrillic}},
	'x': {{Glyph: 'х', Class: ClassCyrillic}, {Glyph: 'χ', Class: ClassGreek}},
	'y': {{Glyph: 'у', Class: ClassCyrillic}, {Glyph: 'γ', Class: ClassGreek}},
	'A': {{Glyph: 'А', Class: ClassCyrillic}, {Glyph: 'Α', Class: ClassGreek}},
	'B': {{Glyph: 'В', Class: ClassCyrillic}, {Glyph: 'Β', Class: ClassGreek}},
	'C': {{Glyph: 'С', Class: ClassCyrillic}},
	'E': {{Glyph: 'Е', Class: ClassCyrillic}, {Glyph: 'Ε', Class: ClassGreek}},
	'H': {{Glyph: 'Н', Class: ClassCyrillic}, {Glyph: 'Η', Class: ClassGreek}},
	'I': {{Glyph: 'І', Class: ClassCyrillic}, {Glyph: 'Ι', Class: ClassGreek}},
	'K': {{Glyph: 'К', Class: ClassCyrillic}, {Glyph: 'Κ', Class: ClassGreek}},
	'M': {{Glyph: 'М', Class: ClassCyrillic}, {Glyph: 'Μ', Class: ClassGreek}},
	'N': {{Glyph: 'Ν', Class: ClassGreek}},
	'O': {{Glyph: 'О', Class: ClassCyrillic}, {Glyph: 'Ο', Class: ClassGreek}},
	'P': {{Glyph: 'Р', Class: ClassCyrillic}, {Glyph: 'Ρ', Class: ClassGreek}},
	'S': {{Glyph: 'Ѕ', Class: ClassCyrillic}},
	'T': {{Glyph: 'Т', Class: ClassCyrillic}, {Glyph: 'Τ', Class: ClassGreek}},
	'X': {{Glyph: 'Х', Class: ClassCyrillic}, {Glyph: 'Χ', Class: ClassGreek}},
	'Y': {{Glyph: 'У', Class: ClassCyrillic}, {Glyph: 'Υ', Class: ClassGreek}},
	'Z': {{Glyph: 'Ζ', Class: ClassGreek}},
	'0': {{Glyph: 'O', Class: ClassLatin}},
	'1': {{Glyph: 'l', Class: ClassLatin}},
}

// ClassSelection restricts which script classes Mimic may draw
// replacement glyphs from.
type ClassSelection struct {
	all     bool
	allowed []string
}

// AllClasses permits every class in the table.
func AllClasses() ClassSelection { return ClassSelection{all: true} }

// DefaultClasses permits the Latin, Greek, and Cyrillic classes.
func DefaultClasses() ClassSelection {
	return Classes(ClassLatin, ClassGreek, ClassCyrillic)
}

// Classes permits exactly the named classes.
func Classes(names ...string) ClassSelection {
	return ClassSelection{allowed: names}
}

func (s ClassSelection) allows(class string) bool {
	if s.all {
		return true
	}
	for _, name := range s.allowed {
		if name == class {
			return true
		}
	}

	return false
}

// Mimic swaps alphanumeric characters for visually identical glyphs
// from other scripts. floor(targets*rate) successful swaps are
// attempted, drawing targets without replacement; characters whose
// every stand-in is banned or class-filtered burn the target draw
// without counting toward the total.
type Mimic struct {
	Rate    float64
	Classes ClassSelection
	Banned  []string
}

func (op Mimic) Apply(buf *textbuf.Buffer, r Rng) error {
	original := buf.String()
	if original == "" {
		return nil
	}

	var targets []rune
	for _, ch := range original {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			continue
		}
		if _, ok := defaultHomoglyphs[ch]; ok {
			targets = append(targets, ch)
		}
	}
	if len(targets) == 0 {
		return nil
	}

	rate := op.Rate
	if math.IsNaN(rate) || rate < 0 {
		rate = 0
	}
	if rate == 0 {
		return nil
	}

	classes := op.Classes
	if !classes.all && classes.allowed == nil {
		classes = DefaultClasses()
	}

	banned := make(map[rune]bool, len(op.Banned))
	for _, value := range op.Banned {
		for _, ch := range value {
			banned[ch] = true
		}
	}

	requested := int(float64(len(targets)) * rate)
	type swap struct {
		target      rune
		replacement rune
	}
	var swaps []swap

	attempts := 0
	for attempts < requested && len(targets) > 0 {
		idx := r.IntN(len(targets))
		ch := targets[idx]
		targets[idx] = targets[len(targets)-1]
		targets = targets[:len(targets)-1]

		var filtered []rune
		for _, entry := range defaultHomoglyphs[ch] {
			if classes.allows(entry.Class) && !banned[entry.Glyph] && entry.Glyph != ch {
				filtered = append(filtered, entry.Glyph)
			}
		}
		if len(filtered) == 0 {
			continue
		}

		choice := r.IntN(len(filtered))
		swaps = append(swaps, swap{target: ch, replacement: filtered[choice]})
		attempts++
	}
	if len(swaps) == 0 {
		return nil
	}

	result := original
	for _, s := range swaps {
		if idx := strings.IndexRune(result, s.target); idx >= 0 {
			result = result[:idx] + string(s.replacement) + result[idx+len(string(s.target)):]
		}
	}
	if result != original {
		buf.Rebuild(result)
	}

	return nil
}
