package glitch

import (
	"fmt"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// ComboMode names one leg of a Combo sequence.
type ComboMode uint8

const (
	ComboDelete ComboMode = iota
	ComboDuplicate
	ComboSwap
)

// ParseComboMode maps a mode keyword to its ComboMode.
func ParseComboMode(value string) (ComboMode, error) {
	switch value {
	case "delete":
		return ComboDelete, nil
	case "duplicate":
		return ComboDuplicate, nil
	case "swap":
		return ComboSwap, nil
	default:
		return 0, fmt.Errorf("glitch: unsupported combo mode: %s", value)
	}
}

// Combo sequences delete, duplicate, and swap legs over one shared
// draw stream. Each leg runs only when listed in Modes and configured;
// later legs see the text left by earlier ones.
type Combo struct {
	Modes     []ComboMode
	Delete    *Delete
	Duplicate *Reduplicate
	Swap      *SwapAdjacent
}

func (op Combo) Apply(buf *textbuf.Buffer, r Rng) error {
	for _, mode := range op.Modes {
		var step Op
		switch mode {
		case ComboDelete:
			if op.Delete != nil {
				step = *op.Delete
			}
		case ComboDuplicate:
			if op.Duplicate != nil {
				step = *op.Duplicate
			}
		case ComboSwap:
			if op.Swap != nil {
				step = *op.Swap
			}
		}
		if step == nil {
			continue
		}
		if err := step.Apply(buf, r); err != nil {
			return err
		}
	}

	return nil
}
