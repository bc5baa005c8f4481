package pipeline

import "github.com/katalvlaran/glitchkit/rng"

// PlanItem names one prospective step with its scope and order hints.
type PlanItem struct {
	Name  string
	Scope int64
	Order int64
}

// PlanEntry pairs an input item's position with its derived seed.
type PlanEntry struct {
	Index int
	Seed  uint64
}

// Plan computes the seed every item would receive from Compile under
// the given master seed, without building or running anything. Entries
// come back in input order.
func Plan(master int64, items []PlanItem) []PlanEntry {
	entries := make([]PlanEntry, len(items))
	for i, item := range items {
		entries[i] = PlanEntry{
			Index: i,
			Seed:  rng.DeriveSeed(master, item.Name, item.Scope, item.Order),
		}
	}

	return entries
}
