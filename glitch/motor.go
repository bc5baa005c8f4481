package glitch

import (
	"fmt"
	"strings"
)

// MotorWeighting biases neighbor-key selection by the finger travel
// between consecutive keys, following error distributions observed in
// large keystroke corpora.
type MotorWeighting uint8

const (
	// MotorUniform treats all neighbors as equally likely.
	MotorUniform MotorWeighting = iota
	// MotorWetInk models uncorrected output: same-finger errors get
	// caught and fixed, cross-hand slips survive.
	MotorWetInk
	// MotorHastilyEdited models raw typing before correction, where
	// same-finger errors dominate.
	MotorHastilyEdited
)

// ParseMotorWeighting maps a mode keyword ("uniform", "wet_ink",
// "hastily_edited", hyphens accepted) to its MotorWeighting.
func ParseMotorWeighting(value string) (MotorWeighting, error) {
	switch strings.ReplaceAll(strings.ToLower(value), "-", "_") {
	case "uniform":
		return MotorUniform, nil
	case "wet_ink":
		return MotorWetInk, nil
	case "hastily_edited":
		return MotorHastilyEdited, nil
	default:
		return 0, fmt.Errorf("glitch: unsupported motor weighting: %s", value)
	}
}

type transition uint8

const (
	transitionSameFinger transition = iota
	transitionSameHand
	transitionCrossHand
	transitionSpace
	transitionUnknown
)

func (w MotorWeighting) weightFor(t transition) float64 {
	switch w {
	case MotorWetInk:
		switch t {
		case transitionSameFinger:
			return 0.858
		case transitionSameHand:
			return 0.965
		default:
			return 1.0
		}
	case MotorHastilyEdited:
		switch t {
		case transitionSameFinger:
			return 3.031
		case transitionSameHand:
			return 1.101
		default:
			return 1.0
		}
	default:
		return 1.0
	}
}

const (
	handLeft  = 0
	handRight = 1
	handThumb = 2
)

// fingerFor assigns (hand, finger) on a standard QWERTY touch-typing
// chart. Finger 0 is the pinky, 3 the index, 4 the thumb.
func fingerFor(ch rune) (hand, finger int, ok bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	switch ch {
	case '`', '1', 'q', 'a', 'z', '~', '!':
		return handLeft, 0, true
	case '2', 'w', 's', 'x', '@':
		return handLeft, 1, true
	case '3', 'e', 'd', 'c', '#':
		return handLeft, 2, true
	case '4', 'r', 'f', 'v', '5', 't', 'g', 'b', '$', '%':
		return handLeft, 3, true
	case '6', 'y', 'h', 'n', '7', 'u', 'j', 'm', '^', '&':
		return handRight, 3, true
	case '8', 'i', 'k', ',', '*', '<':
		return handRight, 2, true
	case '9', 'o', 'l', '.', '(', '>':
		return handRight, 1, true
	case '0', 'p', ';', '/', '-', '[', '\'', ')', ':', '?', '_', '{', '"', '=', ']', '\\', '+', '}', '|':
		return handRight, 0, true
	case ' ':
		return handThumb, 4, true
	default:
		return 0, 0, false
	}
}

func classifyTransition(prev, curr rune) transition {
	prevHand, prevFinger, ok := fingerFor(prev)
	if !ok {
		return transitionUnknown
	}
	currHand, currFinger, ok := fingerFor(curr)
	if !ok {
		return transitionUnknown
	}

	switch {
	case prevHand == handThumb || currHand == handThumb:
		return transitionSpace
	case prevHand != currHand:
		return transitionCrossHand
	case prevFinger == currFinger:
		return transitionSameFinger
	default:
		return transitionSameHand
	}
}
