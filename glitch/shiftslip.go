package glitch

import (
	"strings"

	"github.com/katalvlaran/glitchkit/keyboard"
)

// ShiftSlip simulates a stuck shift key as a two-state machine walked
// over the characters of a segment. Each character while released
// rolls EnterRate to press shift; once pressed, at least MinHold
// characters are shifted before ExitRate rolls can release it.
type ShiftSlip struct {
	EnterRate float64
	ExitRate  float64
	MinHold   int
	Shift     keyboard.ShiftMap
}

// NewShiftSlip builds a slip config with the hold floor the state
// machine assumes. A nil shift map falls back to plain uppercasing.
func NewShiftSlip(enterRate, exitRate float64, shift keyboard.ShiftMap) *ShiftSlip {
	if enterRate < 0 {
		enterRate = 0
	}
	if exitRate < 0 {
		exitRate = 0
	}

	return &ShiftSlip{
		EnterRate: enterRate,
		ExitRate:  exitRate,
		MinHold:   1,
		Shift:     shift,
	}
}

func (s *ShiftSlip) shiftedFor(ch rune) string {
	key := strings.ToLower(string(ch))
	if mapped, ok := s.Shift[key]; ok {
		return mapped
	}

	return strings.ToUpper(string(ch))
}

// apply walks the slip machine over text, consuming one draw per
// released character and one per shifted character past the hold
// floor.
func (s *ShiftSlip) apply(text string, r Rng) string {
	enter := s.EnterRate
	if enter <= 0 || text == "" {
		return text
	}
	exit := s.ExitRate

	var out strings.Builder
	out.Grow(len(text))

	held := enter >= 1
	activated := held
	guaranteed := 0
	if held {
		guaranteed = s.MinHold
	}

	for _, ch := range text {
		if !activated && enter > 0 && enter < 1 {
			if r.Float64() < enter {
				held = true
				activated = true
				guaranteed = s.MinHold
			}
		}

		if !held {
			out.WriteRune(ch)
			continue
		}

		out.WriteString(s.shiftedFor(ch))
		if guaranteed > 0 {
			guaranteed--
		} else if exit >= 1 || (exit > 0 && r.Float64() < exit) {
			held = false
		}
	}

	return out.String()
}
