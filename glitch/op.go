package glitch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// ErrNoRedactableWords indicates redaction was asked to run on text
// with no redactable word content.
var ErrNoRedactableWords = errors.New("glitch: no redactable words")

// ExcessiveRedactionError reports a redaction request that exceeds the
// number of eligible words.
type ExcessiveRedactionError struct {
	Requested int
	Available int
}

func (e *ExcessiveRedactionError) Error() string {
	return fmt.Sprintf("glitch: cannot redact %d of %d available words", e.Requested, e.Available)
}

// Rng is the draw surface steps consume. *rng.RNG satisfies it; tests
// substitute scripted implementations.
type Rng interface {
	Float64() float64
	IntN(n int) int
	SampleIndices(population, k int) ([]int, error)
}

// Op is a single mutation step. Apply either mutates the buffer in
// place or returns an error leaving it unchanged.
type Op interface {
	Apply(buf *textbuf.Buffer, r Rng) error
}
