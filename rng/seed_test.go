package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/glitchkit/rng"
)

func TestDeriveSeed_Stable(t *testing.T) {
	a := rng.DeriveSeed(42, "typo", 0, 3)
	b := rng.DeriveSeed(42, "typo", 0, 3)
	assert.Equal(t, a, b)
}

func TestDeriveSeed_SensitiveToEveryComponent(t *testing.T) {
	base := rng.DeriveSeed(42, "typo", 0, 3)

	assert.NotEqual(t, base, rng.DeriveSeed(43, "typo", 0, 3), "master seed")
	assert.NotEqual(t, base, rng.DeriveSeed(42, "redact", 0, 3), "name")
	assert.NotEqual(t, base, rng.DeriveSeed(42, "typo", 1, 3), "scope")
	assert.NotEqual(t, base, rng.DeriveSeed(42, "typo", 0, 4), "order")
}

func TestDeriveSeed_NegativeMaster(t *testing.T) {
	a := rng.DeriveSeed(-7, "delete", 0, 0)
	b := rng.DeriveSeed(-7, "delete", 0, 0)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, rng.DeriveSeed(7, "delete", 0, 0))
}

// Name components must not collide with adjacent fields: ("ab", ...)
// and ("a", ...) with shifted bytes are distinct identities.
func TestDeriveSeed_NoFieldBleed(t *testing.T) {
	assert.NotEqual(t,
		rng.DeriveSeed(0, "ab", 0, 0),
		rng.DeriveSeed(0, "a", 0, 0),
	)
	assert.NotEqual(t,
		rng.DeriveSeed(0, "", 1, 0),
		rng.DeriveSeed(0, "", 0, 1),
	)
}
