package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glitchkit/pipeline"
)

func reduple(rate float64) pipeline.OpSpec {
	return pipeline.OpSpec{Kind: "reduplicate", Rate: rate}
}

func TestCompileRun_SingleStep(t *testing.T) {
	p, err := pipeline.Compile(42, []pipeline.Descriptor{
		{Name: "Reduple", Scope: 1, Order: 0, Spec: reduple(1)},
	}, nil, nil)
	require.NoError(t, err)

	out, err := p.Run("Hello world")
	require.NoError(t, err)
	assert.Equal(t, "Hello Hello world world", out)
}

func TestRun_Deterministic(t *testing.T) {
	descriptors := []pipeline.Descriptor{
		{Name: "Typogre", Scope: 2, Order: 0, Spec: pipeline.OpSpec{Kind: "typo", Rate: 0.3}},
		{Name: "Reduple", Scope: 1, Order: 0, Spec: reduple(0.5)},
	}
	p, err := pipeline.Compile(7, descriptors, nil, nil)
	require.NoError(t, err)

	text := "the quick brown fox jumps over the lazy dog"
	first, err := p.Run(text)
	require.NoError(t, err)
	second, err := p.Run(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompile_SeedStableUnderFiltering(t *testing.T) {
	all := []pipeline.Descriptor{
		{Name: "Rushmore", Scope: 1, Order: 0, Spec: pipeline.OpSpec{Kind: "delete", Rate: 0.2}},
		{Name: "Reduple", Scope: 1, Order: 1, Spec: reduple(0.2)},
		{Name: "Scannequin", Scope: 3, Order: 0, Spec: pipeline.OpSpec{Kind: "ocr", Rate: 0.2}},
	}

	full, err := pipeline.Compile(99, all, nil, nil)
	require.NoError(t, err)
	filtered, err := pipeline.Compile(99, all, []string{"Reduple"}, nil)
	require.NoError(t, err)

	require.Len(t, filtered.Steps(), 1)
	var fromFull pipeline.Step
	for _, step := range full.Steps() {
		if step.Name == "Reduple" {
			fromFull = step
		}
	}
	assert.Equal(t, fromFull.Seed, filtered.Steps()[0].Seed)
}

func TestCompile_IncludeAndExcludePatterns(t *testing.T) {
	all := []pipeline.Descriptor{
		{Name: "Reduple", Spec: reduple(0.2)},
		{Name: "Redact", Spec: pipeline.OpSpec{Kind: "redact", Rate: 0.2, ReplacementChar: "#"}},
		{Name: "Scannequin", Spec: pipeline.OpSpec{Kind: "ocr", Rate: 0.2}},
	}

	p, err := pipeline.Compile(1, all, []string{"Red*"}, []string{"Redact"})
	require.NoError(t, err)

	require.Len(t, p.Steps(), 1)
	assert.Equal(t, "Reduple", p.Steps()[0].Name)
}

func TestCompile_BadPattern(t *testing.T) {
	_, err := pipeline.Compile(1, []pipeline.Descriptor{
		{Name: "Reduple", Spec: reduple(0.2)},
	}, []string{"[unclosed"}, nil)

	assert.Error(t, err)
}

func TestCompile_ExplicitSeedWins(t *testing.T) {
	seed := uint64(12345)
	p, err := pipeline.Compile(1, []pipeline.Descriptor{
		{Name: "Reduple", Seed: &seed, Spec: reduple(0.2)},
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, seed, p.Steps()[0].Seed)
}

func TestCompile_UnknownKind(t *testing.T) {
	_, err := pipeline.Compile(1, []pipeline.Descriptor{
		{Name: "Mystery", Spec: pipeline.OpSpec{Kind: "frobnicate"}},
	}, nil, nil)

	require.Error(t, err)
	var unsupported *pipeline.UnsupportedOpError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "frobnicate", unsupported.Kind)
	assert.Contains(t, err.Error(), "unsupported operation type: frobnicate")
}

func TestPlan_InputOrderMatchesCompile(t *testing.T) {
	items := []pipeline.PlanItem{
		{Name: "Typogre", Scope: 2, Order: 0},
		{Name: "Reduple", Scope: 1, Order: 1},
	}
	entries := pipeline.Plan(5, items)

	require.Len(t, entries, 2)
	assert.Equal(t, 0, entries[0].Index)
	assert.Equal(t, 1, entries[1].Index)

	p, err := pipeline.Compile(5, []pipeline.Descriptor{
		{Name: "Typogre", Scope: 2, Order: 0, Spec: pipeline.OpSpec{Kind: "typo", Rate: 0.1}},
		{Name: "Reduple", Scope: 1, Order: 1, Spec: reduple(0.1)},
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, entries[0].Seed, p.Steps()[0].Seed)
	assert.Equal(t, entries[1].Seed, p.Steps()[1].Seed)
}

func TestPlan_SeedsDifferByName(t *testing.T) {
	entries := pipeline.Plan(5, []pipeline.PlanItem{
		{Name: "One", Scope: 1, Order: 1},
		{Name: "Two", Scope: 1, Order: 1},
	})

	assert.NotEqual(t, entries[0].Seed, entries[1].Seed)
}
