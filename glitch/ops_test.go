package glitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glitchkit/glitch"
	"github.com/katalvlaran/glitchkit/rng"
	"github.com/katalvlaran/glitchkit/textbuf"
)

// apply runs op over text with a fresh seeded source and returns the
// rebuilt string.
func apply(t *testing.T, op glitch.Op, text string, seed uint64) string {
	t.Helper()
	buf := textbuf.New(text)
	require.NoError(t, op.Apply(buf, rng.New(seed)))

	return buf.String()
}

// countingRng tallies draws so tests can pin the draw budget of an
// operation.
type countingRng struct {
	floats  int
	ints    int
	samples int
}

func (c *countingRng) Float64() float64 { c.floats++; return 0.5 }

func (c *countingRng) IntN(n int) int {
	if n <= 0 {
		panic("IntN on empty range")
	}
	c.ints++

	return 0
}

func (c *countingRng) SampleIndices(population, k int) ([]int, error) {
	c.samples++
	if k > population {
		return nil, rng.ErrExcessiveSample
	}
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

func TestReduplicate_FullRateDoublesEveryWord(t *testing.T) {
	op := glitch.Reduplicate{Rate: 1}

	assert.Equal(t, "Hello Hello world world", apply(t, op, "Hello world", 1))
	assert.Equal(t, "Hi Hi, there there!", apply(t, op, "Hi, there!", 1))
}

func TestReduplicate_ZeroRateIsNoOp(t *testing.T) {
	op := glitch.Reduplicate{Rate: 0}

	assert.Equal(t, "leave me alone", apply(t, op, "leave me alone", 7))
}

func TestReduplicate_DrawsOncePerWordEvenAtFullRate(t *testing.T) {
	buf := textbuf.New("one two three")
	r := &countingRng{}

	require.NoError(t, glitch.Reduplicate{Rate: 1}.Apply(buf, r))
	assert.Equal(t, 3, r.floats)
}

func TestDelete_FullRateKeepsOnlyFirstWord(t *testing.T) {
	op := glitch.Delete{Rate: 1}

	assert.Equal(t, "one", apply(t, op, "one two three", 3))
}

func TestDelete_SingleWordIsNoOp(t *testing.T) {
	buf := textbuf.New("alone")
	r := &countingRng{}

	require.NoError(t, glitch.Delete{Rate: 1}.Apply(buf, r))
	assert.Equal(t, "alone", buf.String())
	assert.Zero(t, r.floats)
}

func TestDelete_PartialRateShrinksWordCount(t *testing.T) {
	buf := textbuf.New("the quick brown fox jumps over the lazy dog")
	before := buf.WordCount()

	require.NoError(t, glitch.Delete{Rate: 0.9}.Apply(buf, rng.New(9)))
	assert.Less(t, buf.WordCount(), before)
	assert.NotContains(t, buf.String(), "  ")
}

func TestSwapAdjacent_FullRateSwapsEveryPair(t *testing.T) {
	op := glitch.SwapAdjacent{Rate: 1}

	assert.Equal(t, "two one four three", apply(t, op, "one two three four", 5))
	assert.Equal(t, "b a c", apply(t, op, "a b c", 5))
}

func TestSwapAdjacent_FullRateDrawsNothing(t *testing.T) {
	buf := textbuf.New("one two three four")
	r := &countingRng{}

	require.NoError(t, glitch.SwapAdjacent{Rate: 1}.Apply(buf, r))
	assert.Zero(t, r.floats)
	assert.Zero(t, r.ints)
}

func TestSwapAdjacent_ZeroRateIsByteIdentical(t *testing.T) {
	input := "Tabs\tstay, spaces  stay; so does punctuation!"
	buf := textbuf.New(input)

	require.NoError(t, glitch.SwapAdjacent{Rate: 0}.Apply(buf, rng.New(9)))
	assert.Equal(t, input, buf.String())
}

func TestParseComboMode(t *testing.T) {
	mode, err := glitch.ParseComboMode("swap")
	require.NoError(t, err)
	assert.Equal(t, glitch.ComboSwap, mode)

	_, err = glitch.ParseComboMode("scramble")
	assert.EqualError(t, err, "glitch: unsupported combo mode: scramble")
}

func TestCombo_RunsModesInOrder(t *testing.T) {
	op := glitch.Combo{
		Modes:     []glitch.ComboMode{glitch.ComboSwap},
		Swap:      &glitch.SwapAdjacent{Rate: 1},
		Delete:    &glitch.Delete{Rate: 1},
		Duplicate: &glitch.Reduplicate{Rate: 1},
	}

	assert.Equal(t, "two one", apply(t, op, "one two", 11))
}
