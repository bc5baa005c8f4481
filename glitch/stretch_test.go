package glitch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glitchkit/glitch"
)

func TestStretch_ExtendsLastVowel(t *testing.T) {
	op := glitch.Stretch{Rate: 1, ExtensionMin: 2, ExtensionMax: 2, WordLengthThreshold: 8}

	assert.Equal(t, "sooo", apply(t, op, "so", 1))
}

func TestStretch_LastVowelWins(t *testing.T) {
	op := glitch.Stretch{Rate: 1, ExtensionMin: 1, ExtensionMax: 1, WordLengthThreshold: 8}

	assert.Equal(t, "heyaa", apply(t, op, "heya", 1))
}

func TestStretch_LongWordsAreSkipped(t *testing.T) {
	op := glitch.Stretch{Rate: 1, ExtensionMin: 3, ExtensionMax: 3, WordLengthThreshold: 4}

	assert.Equal(t, "seriously", apply(t, op, "seriously", 1))
}

func TestStretch_VowellessTokensAreSkipped(t *testing.T) {
	op := glitch.Stretch{Rate: 1, ExtensionMin: 2, ExtensionMax: 2, WordLengthThreshold: 8}

	assert.Equal(t, "hmm pfft", apply(t, op, "hmm pfft", 1))
}

func TestStretch_ZeroThresholdCapsEveryWord(t *testing.T) {
	op := glitch.Stretch{Rate: 1, ExtensionMin: 2, ExtensionMax: 2}

	assert.Equal(t, "so much yes", apply(t, op, "so much yes", 1))
}

func TestStretch_ZeroRateIsNoOp(t *testing.T) {
	op := glitch.Stretch{Rate: 0, ExtensionMin: 2, ExtensionMax: 4}

	assert.Equal(t, "so much yes", apply(t, op, "so much yes", 1))
}

func TestStretch_SameSeedSameOutput(t *testing.T) {
	op := glitch.Stretch{Rate: 0.6, ExtensionMin: 1, ExtensionMax: 4, WordLengthThreshold: 7}
	text := "come on you are so very close now"

	assert.Equal(t, apply(t, op, text, 29), apply(t, op, text, 29))
}
