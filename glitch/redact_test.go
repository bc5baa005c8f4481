package glitch_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glitchkit/glitch"
	"github.com/katalvlaran/glitchkit/rng"
	"github.com/katalvlaran/glitchkit/textbuf"
)

func TestRedact_FullRateCoversEveryCore(t *testing.T) {
	op := glitch.Redact{Replacement: "█", Rate: 1}

	assert.Equal(t, "█████, █████!", apply(t, op, "Hello, world!", 2))
}

func TestRedact_LowRateStillRedactsOneWord(t *testing.T) {
	buf := textbuf.New("one two three four")
	require.NoError(t, glitch.Redact{Replacement: "*", Rate: 0}.Apply(buf, rng.New(4)))

	assert.Contains(t, buf.String(), "*")
}

func TestRedact_NaNRateActsAsZero(t *testing.T) {
	buf := textbuf.New("one two three four")
	require.NoError(t, glitch.Redact{Replacement: "*", Rate: math.NaN()}.Apply(buf, rng.New(4)))

	redacted := 0
	for _, field := range strings.Fields(buf.String()) {
		if strings.Count(field, "*") == len(field) {
			redacted++
		}
	}
	assert.Equal(t, 1, redacted)
}

func TestRedact_WhitespaceOnlyInput(t *testing.T) {
	buf := textbuf.New("   \t  ")
	err := glitch.Redact{Replacement: "█", Rate: 1}.Apply(buf, rng.New(1))

	assert.ErrorIs(t, err, glitch.ErrNoRedactableWords)
}

func TestRedact_ExcessiveRate(t *testing.T) {
	buf := textbuf.New("just two")
	err := glitch.Redact{Replacement: "█", Rate: 2}.Apply(buf, rng.New(1))

	var excessive *glitch.ExcessiveRedactionError
	require.ErrorAs(t, err, &excessive)
	assert.Equal(t, 4, excessive.Requested)
	assert.Equal(t, 2, excessive.Available)
}

func TestRedact_MergeAdjacent(t *testing.T) {
	op := glitch.Redact{Replacement: "█", Rate: 1, MergeAdjacent: true}

	assert.Equal(t, "████", apply(t, op, "aa bb", 6))
}

func TestRedact_PreservesAffixes(t *testing.T) {
	op := glitch.Redact{Replacement: "#", Rate: 1, Unweighted: true}

	assert.Equal(t, "(####) #####.", apply(t, op, "(word) slang.", 8))
}
