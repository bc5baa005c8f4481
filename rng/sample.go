package rng

import (
	"container/heap"
	"fmt"
	"math"
)

// Uniform is the single-draw surface required by weighted sampling.
// *RNG satisfies it; tests substitute scripted sources.
type Uniform interface {
	Float64() float64
}

// Candidate pairs an opaque index with its selection weight.
type Candidate struct {
	Index  int
	Weight float64
}

// weightEpsilon is the smallest weight used for key computation.
// Machine epsilon for float64.
const weightEpsilon = 0x1p-52

type keyed struct {
	index int
	key   float64
}

// keyedHeap is a min-heap on key, holding the current k best
// candidates with the weakest at the root.
type keyedHeap []keyed

func (h keyedHeap) Len() int           { return len(h) }
func (h keyedHeap) Less(i, j int) bool { return h[i].key < h[j].key }
func (h keyedHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *keyedHeap) Push(x any)        { *h = append(*h, x.(keyed)) }
func (h *keyedHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// SampleWithoutReplacement selects k candidates without replacement,
// biased by weight, using the Efraimidis-Spirakis one-pass algorithm.
//
// Each candidate receives a key log(u)/w from one uniform draw, with
// the weight clamped to a small positive epsilon, and the k largest
// keys win. A size-k min-heap tracks the running winners, so the cost
// is O(N log k) rather than a full sort. Exactly len(candidates)
// draws are consumed when k > 0, one per candidate in input order;
// k == 0 consumes none. Selected indices are returned in descending
// key order.
//
// Returns ErrExcessiveSample when k exceeds the candidate count.
func SampleWithoutReplacement(src Uniform, candidates []Candidate, k int) ([]int, error) {
	if k == 0 || len(candidates) == 0 {
		return []int{}, nil
	}
	if k > len(candidates) {
		return nil, fmt.Errorf("%w: requested %d of %d", ErrExcessiveSample, k, len(candidates))
	}

	winners := make(keyedHeap, 0, k)
	for _, c := range candidates {
		w := math.Max(c.Weight, weightEpsilon)
		u := src.Float64()
		key := math.Inf(-1)
		if u > 0 {
			// log-domain key for numerical stability
			key = math.Log(u) / w
		}
		switch {
		case len(winners) < k:
			heap.Push(&winners, keyed{index: c.Index, key: key})
		case key > winners[0].key:
			winners[0] = keyed{index: c.Index, key: key}
			heap.Fix(&winners, 0)
		}
	}

	// Popping drains weakest first; filling back to front leaves the
	// result in descending key order.
	selected := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		selected[i] = heap.Pop(&winners).(keyed).index
	}

	return selected, nil
}
