package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glitchkit/glitch"
	"github.com/katalvlaran/glitchkit/keyboard"
	"github.com/katalvlaran/glitchkit/pipeline"
)

func TestBuildOp_KnownKinds(t *testing.T) {
	specs := []pipeline.OpSpec{
		{Kind: "reduplicate", Rate: 0.5},
		{Kind: "delete", Rate: 0.5, Unweighted: true},
		{Kind: "swap_adjacent", Rate: 0.5},
		{Kind: "redact", Rate: 0.5, ReplacementChar: "█", MergeAdjacent: true},
		{Kind: "ocr", Rate: 0.5},
		{Kind: "typo", Rate: 0.5, Layout: keyboard.LayoutColemak},
		{Kind: "mimic", Rate: 0.5, Classes: []string{glitch.ClassGreek}},
		{Kind: "zwj", Rate: 0.5},
		{Kind: "quote_pairs"},
		{Kind: "apostrofae"},
		{Kind: "wherewolf", Rate: 0.5},
		{Kind: "jargoyle", Rate: 0.5, Lexemes: "corporate", Mode: "literal"},
		{Kind: "hokey", Rate: 0.5, ExtensionMin: 1, ExtensionMax: 3, WordLengthThreshold: 8},
	}
	for _, spec := range specs {
		op, err := pipeline.BuildOp(spec)
		require.NoError(t, err, spec.Kind)
		assert.NotNil(t, op, spec.Kind)
	}
}

func TestBuildOp_HokeyDefaultsThreshold(t *testing.T) {
	op, err := pipeline.BuildOp(pipeline.OpSpec{Kind: "hokey", Rate: 0.3})
	require.NoError(t, err)

	stretch, ok := op.(glitch.Stretch)
	require.True(t, ok)
	assert.Equal(t, 6, stretch.WordLengthThreshold)
}

func TestBuildOp_LexemeDefaults(t *testing.T) {
	op, err := pipeline.BuildOp(pipeline.OpSpec{Kind: "jargoyle", Rate: 0.01})
	require.NoError(t, err)

	lexeme, ok := op.(glitch.Lexeme)
	require.True(t, ok)
	assert.Equal(t, glitch.LexemeDrift, lexeme.Mode)
	assert.NotNil(t, lexeme.Table)
}

func TestBuildOp_LexemeRejectsUnknownDictionary(t *testing.T) {
	_, err := pipeline.BuildOp(pipeline.OpSpec{Kind: "jargoyle", Lexemes: "pirate"})

	assert.EqualError(t, err, "glitch: unknown lexeme dictionary: pirate")
}

func TestBuildOp_Combo(t *testing.T) {
	op, err := pipeline.BuildOp(pipeline.OpSpec{
		Kind:   "rushmore_combo",
		Modes:  []string{"swap", "duplicate"},
		Swap:   &pipeline.ComboLeg{Rate: 1},
		Delete: &pipeline.ComboLeg{Rate: 1},
	})
	require.NoError(t, err)

	combo, ok := op.(glitch.Combo)
	require.True(t, ok)
	assert.Equal(t, []glitch.ComboMode{glitch.ComboSwap, glitch.ComboDuplicate}, combo.Modes)
	assert.NotNil(t, combo.Swap)
	assert.NotNil(t, combo.Delete)
	assert.Nil(t, combo.Duplicate)
}

func TestBuildOp_ComboRejectsUnknownMode(t *testing.T) {
	_, err := pipeline.BuildOp(pipeline.OpSpec{
		Kind:  "rushmore_combo",
		Modes: []string{"scramble"},
	})

	assert.ErrorContains(t, err, "unsupported combo mode: scramble")
}

func TestBuildOp_TypoDefaultsToQWERTY(t *testing.T) {
	op, err := pipeline.BuildOp(pipeline.OpSpec{Kind: "typo", Rate: 0.2})
	require.NoError(t, err)

	typo, ok := op.(glitch.Typo)
	require.True(t, ok)
	assert.NotEmpty(t, typo.Layout)
	assert.Nil(t, typo.Slip)
}

func TestBuildOp_TypoShiftSlipDefaults(t *testing.T) {
	op, err := pipeline.BuildOp(pipeline.OpSpec{
		Kind:          "typo",
		Rate:          0.2,
		ShiftSlipRate: 0.4,
	})
	require.NoError(t, err)

	typo := op.(glitch.Typo)
	require.NotNil(t, typo.Slip)
	assert.InDelta(t, 0.4, typo.Slip.EnterRate, 1e-12)
	assert.InDelta(t, 0.2, typo.Slip.ExitRate, 1e-12)
	assert.NotNil(t, typo.Slip.Shift)
}

func TestBuildOp_TypoUnknownLayout(t *testing.T) {
	_, err := pipeline.BuildOp(pipeline.OpSpec{Kind: "typo", Rate: 0.2, Layout: "STENOTYPE"})

	assert.ErrorContains(t, err, "unknown keyboard layout: STENOTYPE")
}

func TestBuildOp_TypoRejectsUnknownMotorWeighting(t *testing.T) {
	_, err := pipeline.BuildOp(pipeline.OpSpec{
		Kind:           "typo",
		Rate:           0.2,
		MotorWeighting: "psychic",
	})

	assert.ErrorContains(t, err, "unsupported motor weighting: psychic")
}
