package pipeline

import (
	"fmt"

	"github.com/katalvlaran/glitchkit/glitch"
	"github.com/katalvlaran/glitchkit/keyboard"
)

// defaultWordLengthThreshold is the hokey eligibility cap used when a
// step configuration leaves WordLengthThreshold unset.
const defaultWordLengthThreshold = 6

// UnsupportedOpError reports a step configuration whose kind keyword
// is not in the catalog.
type UnsupportedOpError struct {
	Kind string
}

func (e *UnsupportedOpError) Error() string {
	return fmt.Sprintf("pipeline: unsupported operation type: %s", e.Kind)
}

// ComboLeg configures one leg of a combo step.
type ComboLeg struct {
	Rate       float64
	Unweighted bool
}

// OpSpec is the tagged configuration of a single step. Kind selects
// the operation; the remaining fields apply only to the kinds that
// read them.
type OpSpec struct {
	Kind string

	Rate       float64
	Unweighted bool

	// rushmore_combo
	Modes     []string
	Delete    *ComboLeg
	Duplicate *ComboLeg
	Swap      *ComboLeg

	// redact
	ReplacementChar string
	MergeAdjacent   bool

	// typo
	Layout            string
	ShiftSlipRate     float64
	ShiftSlipExitRate *float64
	ShiftMap          keyboard.ShiftMap
	MotorWeighting    string

	// mimic
	AllClasses       bool
	Classes          []string
	BannedCharacters []string

	// zwj
	Characters []string

	// jargoyle
	Lexemes string
	Mode    string

	// hokey
	ExtensionMin        int
	ExtensionMax        int
	WordLengthThreshold int
}

// BuildOp materializes the operation an OpSpec describes. Unknown
// kinds fail with UnsupportedOpError; the known kinds form a closed
// catalog.
func BuildOp(spec OpSpec) (glitch.Op, error) {
	switch spec.Kind {
	case "reduplicate":
		return glitch.Reduplicate{Rate: spec.Rate, Unweighted: spec.Unweighted}, nil

	case "delete":
		return glitch.Delete{Rate: spec.Rate, Unweighted: spec.Unweighted}, nil

	case "swap_adjacent":
		return glitch.SwapAdjacent{Rate: spec.Rate}, nil

	case "rushmore_combo":
		combo := glitch.Combo{}
		for _, raw := range spec.Modes {
			mode, err := glitch.ParseComboMode(raw)
			if err != nil {
				return nil, err
			}
			combo.Modes = append(combo.Modes, mode)
		}
		if spec.Delete != nil {
			combo.Delete = &glitch.Delete{Rate: spec.Delete.Rate, Unweighted: spec.Delete.Unweighted}
		}
		if spec.Duplicate != nil {
			combo.Duplicate = &glitch.Reduplicate{Rate: spec.Duplicate.Rate, Unweighted: spec.Duplicate.Unweighted}
		}
		if spec.Swap != nil {
			combo.Swap = &glitch.SwapAdjacent{Rate: spec.Swap.Rate}
		}

		return combo, nil

	case "redact":
		return glitch.Redact{
			Replacement:   spec.ReplacementChar,
			Rate:          spec.Rate,
			MergeAdjacent: spec.MergeAdjacent,
			Unweighted:    spec.Unweighted,
		}, nil

	case "ocr":
		return glitch.OCR{Rate: spec.Rate}, nil

	case "typo":
		return buildTypo(spec)

	case "mimic":
		op := glitch.Mimic{Rate: spec.Rate, Banned: spec.BannedCharacters}
		switch {
		case spec.AllClasses:
			op.Classes = glitch.AllClasses()
		case len(spec.Classes) > 0:
			op.Classes = glitch.Classes(spec.Classes...)
		default:
			op.Classes = glitch.DefaultClasses()
		}

		return op, nil

	case "zwj":
		return glitch.ZeroWidth{Rate: spec.Rate, Characters: spec.Characters}, nil

	case "quote_pairs", "apostrofae":
		return glitch.QuotePairs{}, nil

	case "wherewolf":
		return glitch.Homophone{Rate: spec.Rate}, nil

	case "jargoyle":
		return buildLexeme(spec)

	case "hokey":
		threshold := spec.WordLengthThreshold
		if threshold == 0 {
			threshold = defaultWordLengthThreshold
		}

		return glitch.Stretch{
			Rate:                spec.Rate,
			ExtensionMin:        spec.ExtensionMin,
			ExtensionMax:        spec.ExtensionMax,
			WordLengthThreshold: threshold,
		}, nil

	default:
		return nil, &UnsupportedOpError{Kind: spec.Kind}
	}
}

func buildLexeme(spec OpSpec) (glitch.Op, error) {
	name := spec.Lexemes
	if name == "" {
		name = glitch.LexemeSynonyms
	}
	table, err := glitch.LexemeTable(name)
	if err != nil {
		return nil, err
	}

	mode := glitch.LexemeDrift
	if spec.Mode != "" {
		mode, err = glitch.ParseLexemeMode(spec.Mode)
		if err != nil {
			return nil, err
		}
	}

	return glitch.Lexeme{Rate: spec.Rate, Table: table, Mode: mode}, nil
}

func buildTypo(spec OpSpec) (glitch.Op, error) {
	layoutName := spec.Layout
	if layoutName == "" {
		layoutName = keyboard.LayoutQWERTY
	}
	layout, ok := keyboard.Neighbors(layoutName)
	if !ok {
		return nil, fmt.Errorf("pipeline: unknown keyboard layout: %s", layoutName)
	}

	op := glitch.Typo{Rate: spec.Rate, Layout: layout}

	if spec.MotorWeighting != "" {
		motor, err := glitch.ParseMotorWeighting(spec.MotorWeighting)
		if err != nil {
			return nil, err
		}
		op.Motor = motor
	}

	if spec.ShiftSlipRate > 0 {
		exit := spec.ShiftSlipRate * 0.5
		if spec.ShiftSlipExitRate != nil {
			exit = *spec.ShiftSlipExitRate
		}
		shift := spec.ShiftMap
		if shift == nil {
			shift, _ = keyboard.Shift(layoutName)
		}
		op.Slip = glitch.NewShiftSlip(spec.ShiftSlipRate, exit, shift)
	}

	return op, nil
}
