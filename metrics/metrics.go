// Package metrics scores how far a corrupted token stream drifted
// from its source. All functions take the original tokens first and
// the corrupted tokens second, and return values normalized into
// stable ranges so scores compare across texts of different lengths.
package metrics

import (
	"errors"
	"fmt"
	"math"
)

// ErrBatchLengthMismatch reports batch inputs and outputs of unequal
// length.
var ErrBatchLengthMismatch = errors.New("metrics: batch inputs and outputs must have the same length")

func counts(tokens []string) map[string]float64 {
	c := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		c[token]++
	}

	return c
}

// JensenShannonDivergence measures distributional drift between the
// two token multisets, in bits. 0 means identical distributions; 1 is
// the maximum for disjoint vocabularies.
func JensenShannonDivergence(input, output []string) float64 {
	if len(input) == 0 && len(output) == 0 {
		return 0
	}

	counts1 := counts(input)
	counts2 := counts(output)

	norm1 := float64(len(input))
	if norm1 == 0 {
		norm1 = 1
	}
	norm2 := float64(len(output))
	if norm2 == 0 {
		norm2 = 1
	}

	var klPM float64
	for token, count := range counts1 {
		p := count / norm1
		q := counts2[token] / norm2
		m := 0.5 * (p + q)
		if p > 0 {
			klPM += p * math.Log2(p/m)
		}
	}

	var klQM float64
	for token, count := range counts2 {
		q := count / norm2
		if q == 0 {
			continue
		}
		p := counts1[token] / norm1
		m := 0.5 * (p + q)
		klQM += q * math.Log2(q/m)
	}

	return 0.5 * (klPM + klQM)
}

// NormalizedEditDistance is the token-level Levenshtein distance
// divided by the longer sequence length, so 0 means identical and 1
// means nothing survived.
func NormalizedEditDistance(input, output []string) float64 {
	n := len(input)
	m := len(output)

	if n == 0 {
		if m > 0 {
			return 1
		}

		return 0
	}
	if m == 0 {
		return 1
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i, t1 := range input {
		curr[0] = i + 1
		for j, t2 := range output {
			cost := 1
			if t1 == t2 {
				cost = 0
			}
			curr[j+1] = min(min(curr[j]+1, prev[j+1]+1), prev[j]+cost)
		}
		copy(prev, curr)
	}

	return float64(prev[m]) / float64(max(n, m))
}

// SubsequenceRetention is the fraction of original tokens that
// survive, in order, as a subsequence of the output. 1 means full
// retention.
func SubsequenceRetention(input, output []string) float64 {
	n := len(input)
	if n == 0 {
		return 1
	}

	return float64(lcsLength(input, output)) / float64(n)
}

// EntropyDelta is the change in Shannon entropy from input to output,
// normalized by the entropy ceiling of the combined vocabulary.
// Positive values mean the corruption added variety; negative values
// mean it collapsed it.
func EntropyDelta(input, output []string) float64 {
	delta := shannonEntropy(output) - shannonEntropy(input)

	vocab := make(map[string]struct{}, len(input)+len(output))
	for _, token := range input {
		vocab[token] = struct{}{}
	}
	for _, token := range output {
		vocab[token] = struct{}{}
	}
	if len(vocab) == 0 {
		return 0
	}

	maxEntropy := 1.0
	if len(vocab) > 1 {
		maxEntropy = math.Log2(float64(len(vocab)))
	}
	if maxEntropy <= 0 {
		return 0
	}

	return delta / maxEntropy
}

// MergeSplitIndex estimates how much token restructuring happened.
// Substitutions leave it at 0; merges (k tokens into 1) and splits
// (1 token into k) raise it toward 1.
func MergeSplitIndex(input, output []string) float64 {
	m := len(input)
	n := len(output)

	if m == 0 && n == 0 {
		return 0
	}
	if m == 0 || n == 0 {
		return 1
	}

	lcs := lcsLength(input, output)
	origChanged := m - lcs
	corrChanged := n - lcs

	events := origChanged - corrChanged
	if events < 0 {
		events = -events
	}

	return float64(events) / float64(max(m, n))
}

func shannonEntropy(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	total := float64(len(tokens))
	var entropy float64
	for _, count := range counts(tokens) {
		p := count / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

func lcsLength(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for _, t1 := range a {
		for j, t2 := range b {
			if t1 == t2 {
				curr[j+1] = prev[j] + 1
			} else {
				curr[j+1] = max(prev[j+1], curr[j])
			}
		}
		copy(prev, curr)
	}

	return prev[len(b)]
}

func batch(inputs, outputs [][]string, fn func(a, b []string) float64) ([]float64, error) {
	if len(inputs) != len(outputs) {
		return nil, fmt.Errorf("%w (got %d and %d)", ErrBatchLengthMismatch, len(inputs), len(outputs))
	}
	out := make([]float64, len(inputs))
	for i := range inputs {
		out[i] = fn(inputs[i], outputs[i])
	}

	return out, nil
}

// BatchJensenShannonDivergence scores paired token sequences.
func BatchJensenShannonDivergence(inputs, outputs [][]string) ([]float64, error) {
	return batch(inputs, outputs, JensenShannonDivergence)
}

// BatchNormalizedEditDistance scores paired token sequences.
func BatchNormalizedEditDistance(inputs, outputs [][]string) ([]float64, error) {
	return batch(inputs, outputs, NormalizedEditDistance)
}

// BatchSubsequenceRetention scores paired token sequences.
func BatchSubsequenceRetention(inputs, outputs [][]string) ([]float64, error) {
	return batch(inputs, outputs, SubsequenceRetention)
}

// BatchEntropyDelta scores paired token sequences.
func BatchEntropyDelta(inputs, outputs [][]string) ([]float64, error) {
	return batch(inputs, outputs, EntropyDelta)
}

// BatchMergeSplitIndex scores paired token sequences.
func BatchMergeSplitIndex(inputs, outputs [][]string) ([]float64, error) {
	return batch(inputs, outputs, MergeSplitIndex)
}
