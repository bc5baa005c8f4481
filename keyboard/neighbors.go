package keyboard

import (
	"sort"
	"strings"
	"unicode"

	"github.com/katalvlaran/glitchkit/cache"
)

// NeighborMap lists the physically adjacent keys for each lowercase
// key character.
type NeighborMap map[string][]string

// ShiftMap pairs each key character with the character produced while
// shift is held.
type ShiftMap map[string]string

// BuildNeighborMap derives key adjacency from staggered row strings.
// Each row is a horizontal line of keys; leading spaces encode the row
// stagger and space cells are dead positions, never keys or neighbors.
// Two keys are adjacent when their grid cells touch horizontally,
// vertically, or diagonally. Keys and neighbors are lowercased.
func BuildNeighborMap(rows []string) NeighborMap {
	grid := make([][]rune, len(rows))
	for i, row := range rows {
		grid[i] = []rune(strings.ToLower(row))
	}

	keyAt := func(r, c int) (string, bool) {
		if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
			return "", false
		}
		ch := grid[r][c]
		if unicode.IsSpace(ch) {
			return "", false
		}

		return string(ch), true
	}

	neighbors := make(NeighborMap)
	for r := range grid {
		for c := range grid[r] {
			key, ok := keyAt(r, c)
			if !ok {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if n, ok := keyAt(r+dr, c+dc); ok {
						neighbors[key] = append(neighbors[key], n)
					}
				}
			}
			if _, present := neighbors[key]; !present {
				neighbors[key] = []string{}
			}
		}
	}

	return neighbors
}

var neighborCache = cache.New[string, NeighborMap]()

// Neighbors returns the memoized neighbor map for a named layout.
func Neighbors(layout string) (NeighborMap, bool) {
	if layout == LayoutCuratorQWERTY {
		return neighborCache.GetOrInsert(layout, curatorQWERTY), true
	}
	rows, ok := layoutRows[layout]
	if !ok {
		return nil, false
	}

	return neighborCache.GetOrInsert(layout, func() NeighborMap {
		return BuildNeighborMap(rows)
	}), true
}

var shiftCache = cache.New[string, ShiftMap]()

// Shift returns the memoized shift map for a named layout: the
// layout's symbol pairs plus uppercase mappings for every letter key.
func Shift(layout string) (ShiftMap, bool) {
	symbols, ok := shiftSymbols[layout]
	if !ok {
		return nil, false
	}

	return shiftCache.GetOrInsert(layout, func() ShiftMap {
		keys, _ := Neighbors(layout)
		mapping := make(ShiftMap, len(symbols)+len(keys))
		for k, v := range symbols {
			mapping[k] = v
		}
		for key := range keys {
			r := []rune(key)[0]
			if unicode.IsLetter(r) {
				mapping[key] = strings.ToUpper(key)
			}
		}

		return mapping
	}), true
}

// Layouts lists every registered layout name, sorted.
func Layouts() []string {
	names := make([]string, 0, len(layoutRows)+1)
	names = append(names, LayoutCuratorQWERTY)
	for name := range layoutRows {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
