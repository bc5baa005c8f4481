// Package keyboard carries physical layout data for typo simulation:
// per-key neighbor lists derived from staggered row grids, and shift
// maps pairing each key with its shifted character.
//
// Neighbor maps are keyed by lowercase single-character strings.
// Derived maps are memoized; repeated lookups for the same layout
// return the same shared map, which callers must treat as read-only.
package keyboard
