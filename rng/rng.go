package rng

import (
	"errors"
	"fmt"
	randv2 "math/rand/v2"
)

// ErrExcessiveSample indicates a request for more samples than the
// population holds.
var ErrExcessiveSample = errors.New("rng: sample size exceeds population")

// RNG is a deterministic generator seeded once and consumed as a draw
// stream. It is not safe for concurrent use; each mutation step owns a
// fresh instance.
type RNG struct {
	src *randv2.Rand
}

// New returns a generator seeded with the given value. Equal seeds
// produce identical draw streams.
func New(seed uint64) *RNG {
	return &RNG{src: randv2.New(randv2.NewPCG(seed, 0))}
}

// Float64 draws a uniform value in [0, 1). Consumes one draw.
func (r *RNG) Float64() float64 {
	return r.src.Float64()
}

// IntN draws a uniform integer in [0, n). It panics when n <= 0; a
// non-positive bound is a logic error in the caller, not a recoverable
// condition.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: IntN called with non-positive bound %d", n))
	}

	return r.src.IntN(n)
}

// SampleIndices draws k distinct indices from [0, population) using a
// partial Fisher-Yates shuffle. Exactly k draws are consumed. The
// returned order is the selection order, not sorted.
func (r *RNG) SampleIndices(population, k int) ([]int, error) {
	if k > population {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrExcessiveSample, k, population)
	}
	if k == 0 {
		return []int{}, nil
	}

	pool := make([]int, population)
	for i := range pool {
		pool[i] = i
	}

	selected := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + r.src.IntN(population-i)
		pool[i], pool[j] = pool[j], pool[i]
		selected[i] = pool[i]
	}

	return selected, nil
}
