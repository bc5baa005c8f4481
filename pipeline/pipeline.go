package pipeline

import (
	"fmt"
	"path"

	"github.com/katalvlaran/glitchkit/glitch"
	"github.com/katalvlaran/glitchkit/rng"
	"github.com/katalvlaran/glitchkit/textbuf"
)

// Descriptor declares one step before compilation. A nil Seed asks
// the pipeline to derive one from the master seed and the step's
// name, scope, and order.
type Descriptor struct {
	Name  string
	Scope int64
	Order int64
	Seed  *uint64
	Spec  OpSpec
}

// Step is a compiled, seeded operation.
type Step struct {
	Name string
	Seed uint64
	Op   glitch.Op
}

// Pipeline is an immutable, compiled sequence of steps. Compile once,
// run against many texts.
type Pipeline struct {
	steps []Step
}

// Compile validates every descriptor, assigns seeds, applies the
// name-pattern filters, and returns the ordered pipeline. Seeds are
// assigned before filtering, so excluding a step never changes the
// seed of any other. Empty include means include everything; an
// exclude match always wins.
func Compile(master int64, descriptors []Descriptor, include, exclude []string) (*Pipeline, error) {
	steps := make([]Step, 0, len(descriptors))
	for _, d := range descriptors {
		op, err := BuildOp(d.Spec)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", d.Name, err)
		}

		seed := rng.DeriveSeed(master, d.Name, d.Scope, d.Order)
		if d.Seed != nil {
			seed = *d.Seed
		}

		keep, err := matchesFilters(d.Name, include, exclude)
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}

		steps = append(steps, Step{Name: d.Name, Seed: seed, Op: op})
	}

	return &Pipeline{steps: steps}, nil
}

// Steps returns the compiled steps in execution order.
func (p *Pipeline) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)

	return out
}

// Run corrupts text by executing every step in order against one
// shared buffer. Each step gets a fresh source seeded from its own
// seed, so a step's draws never leak into the next. The first failing
// step aborts the run.
func (p *Pipeline) Run(text string) (string, error) {
	buf := textbuf.New(text)
	for _, step := range p.steps {
		if err := step.Op.Apply(buf, rng.New(step.Seed)); err != nil {
			return "", fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	return buf.String(), nil
}

func matchesFilters(name string, include, exclude []string) (bool, error) {
	if len(include) > 0 {
		matched := false
		for _, pattern := range include {
			ok, err := path.Match(pattern, name)
			if err != nil {
				return false, fmt.Errorf("pipeline: bad include pattern %q: %w", pattern, err)
			}
			if ok {
				matched = true
				break
			}
		}
		if !matched {
			return false, nil
		}
	}
	for _, pattern := range exclude {
		ok, err := path.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("pipeline: bad exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}

	return true, nil
}
