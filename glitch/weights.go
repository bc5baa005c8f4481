package glitch

import "math"

const epsilon = 0x1p-52

func clampRate(rate float64) float64 {
	if math.IsNaN(rate) {
		return 0
	}

	return math.Min(1, math.Max(0, rate))
}

// selectionProbability scales the base rate by how far a candidate's
// weight sits from the population mean, capped at one. A degenerate
// mean falls back to the flat rate.
func selectionProbability(rate, weight, mean float64) float64 {
	switch {
	case rate >= 1:
		return 1
	case mean <= epsilon:
		return rate
	default:
		return math.Min(1, rate*(weight/mean))
	}
}
