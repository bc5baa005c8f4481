package glitch_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glitchkit/glitch"
)

func TestMimic_FullRateSwapsEveryTarget(t *testing.T) {
	op := glitch.Mimic{Rate: 1}
	out := apply(t, op, "pass", 17)

	assert.NotEqual(t, "pass", out)
	assert.Equal(t, 4, utf8.RuneCountInString(out))
	for _, ch := range out {
		assert.Greater(t, int(ch), 127)
	}
}

func TestMimic_ZeroRateIsNoOp(t *testing.T) {
	op := glitch.Mimic{Rate: 0}

	assert.Equal(t, "plain ascii", apply(t, op, "plain ascii", 1))
}

func TestMimic_BannedGlyphsBlockSwaps(t *testing.T) {
	op := glitch.Mimic{Rate: 1, Banned: []string{"аα"}}

	assert.Equal(t, "aaaa", apply(t, op, "aaaa", 5))
}

func TestMimic_ClassFilterBlocksSwaps(t *testing.T) {
	op := glitch.Mimic{Rate: 1, Classes: glitch.Classes(glitch.ClassLatin)}

	assert.Equal(t, "aaaa", apply(t, op, "aaaa", 5))
}

func TestMimic_SameSeedSameOutput(t *testing.T) {
	op := glitch.Mimic{Rate: 0.5}
	text := "suspiciously ordinary paragraph"

	assert.Equal(t, apply(t, op, text, 33), apply(t, op, text, 33))
}

func TestMimic_NoTableEntries(t *testing.T) {
	op := glitch.Mimic{Rate: 1}

	// None of these characters have confusable stand-ins.
	assert.Equal(t, "bdfg", apply(t, op, "bdfg", 1))
}
