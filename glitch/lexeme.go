package glitch

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// LexemeMode selects how a matching word picks its replacement.
type LexemeMode uint8

const (
	// LexemeDrift draws a random alternative per matching word.
	LexemeDrift LexemeMode = iota
	// LexemeLiteral always takes the first alternative and consumes
	// no draws, so the mapping is a pure function of the input.
	LexemeLiteral
)

// ParseLexemeMode maps a mode keyword ("drift" or "literal") to its
// LexemeMode.
func ParseLexemeMode(value string) (LexemeMode, error) {
	switch strings.ToLower(value) {
	case "drift":
		return LexemeDrift, nil
	case "literal":
		return LexemeLiteral, nil
	default:
		return 0, fmt.Errorf("glitch: unsupported lexeme mode: %s", value)
	}
}

// Bundled lexeme dictionary names.
const (
	LexemeColors    = "colors"
	LexemeSynonyms  = "synonyms"
	LexemeCorporate = "corporate"
	LexemeAcademic  = "academic"
)

// lexemeDictionaries maps each bundled dictionary to its word table.
// Values list alternatives in priority order; literal mode takes the
// first entry.
var lexemeDictionaries = map[string]map[string][]string{
	LexemeColors: {
		"red":    {"blue", "green", "orange"},
		"blue":   {"red", "green", "violet"},
		"green":  {"blue", "yellow", "teal"},
		"yellow": {"orange", "green", "gold"},
		"orange": {"red", "yellow", "amber"},
		"purple": {"violet", "magenta", "blue"},
		"black":  {"white", "gray"},
		"white":  {"black", "ivory"},
		"pink":   {"magenta", "rose"},
		"brown":  {"tan", "beige"},
		"gray":   {"silver", "black"},
	},
	LexemeSynonyms: {
		"quick": {"swift", "speedy", "rapid"},
		"fast":  {"rapid", "swift", "brisk"},
		"slow":  {"sluggish", "gradual", "unhurried"},
		"big":   {"large", "huge", "vast"},
		"small": {"tiny", "little", "minute"},
		"good":  {"fine", "solid", "decent"},
		"bad":   {"poor", "awful", "dreadful"},
		"happy": {"glad", "cheerful", "delighted"},
		"sad":   {"unhappy", "gloomy", "downcast"},
		"smart": {"clever", "bright", "sharp"},
		"easy":  {"simple", "effortless"},
		"hard":  {"difficult", "tough", "arduous"},
		"old":   {"ancient", "aged"},
		"new":   {"fresh", "recent", "novel"},
		"begin": {"start", "commence"},
		"end":   {"finish", "conclude"},
	},
	LexemeCorporate: {
		"use":      {"leverage", "utilize"},
		"help":     {"facilitate", "enable"},
		"improve":  {"optimize", "streamline"},
		"plan":     {"roadmap", "strategy"},
		"idea":     {"initiative", "proposal"},
		"problem":  {"blocker", "challenge"},
		"discuss":  {"align", "sync"},
		"result":   {"outcome", "impact"},
		"customer": {"stakeholder", "client"},
		"finish":   {"ship", "deliver"},
		"goal":     {"target", "deliverable"},
		"money":    {"capital", "budget"},
	},
	LexemeAcademic: {
		"use":    {"utilize", "employ"},
		"show":   {"demonstrate", "illustrate"},
		"big":    {"substantial", "considerable"},
		"think":  {"posit", "contend"},
		"say":    {"assert", "articulate"},
		"find":   {"ascertain", "discern"},
		"prove":  {"substantiate", "corroborate"},
		"change": {"alter", "modify"},
		"start":  {"initiate", "commence"},
		"end":    {"terminate", "conclude"},
		"many":   {"numerous", "myriad"},
		"about":  {"regarding", "concerning"},
	},
}

// LexemeDictionaries lists the bundled dictionary names in sorted
// order.
func LexemeDictionaries() []string {
	names := make([]string, 0, len(lexemeDictionaries))
	for name := range lexemeDictionaries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// LexemeTable returns the word table of a bundled dictionary.
func LexemeTable(name string) (map[string][]string, error) {
	table, ok := lexemeDictionaries[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("glitch: unknown lexeme dictionary: %s", name)
	}

	return table, nil
}

// Lexeme swaps words for alternatives from a dictionary, preserving
// affixes and casing. Drift mode gates each matching word on one draw
// against Rate and picks a random alternative; literal mode ignores
// Rate and rewrites every match to its first alternative.
type Lexeme struct {
	Rate  float64
	Table map[string][]string
	Mode  LexemeMode
}

func (op Lexeme) Apply(buf *textbuf.Buffer, r Rng) error {
	table := op.Table
	if table == nil {
		table = lexemeDictionaries[LexemeSynonyms]
	}

	drift := op.Mode == LexemeDrift
	rate := op.Rate
	if drift {
		if math.IsNaN(rate) {
			return nil
		}
		rate = math.Min(math.Max(rate, 0), 1)
		if rate <= epsilon {
			return nil
		}
	}

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
		alternatives, ok := table[strings.ToLower(core)]
		if !ok || len(alternatives) == 0 {
			continue
		}

		chosen := alternatives[0]
		if drift {
			if r.Float64() >= rate {
				continue
			}
			chosen = alternatives[r.IntN(len(alternatives))]
		}
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
