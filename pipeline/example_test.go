package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/glitchkit/pipeline"
)

// ExampleCompile builds a one-step pipeline that duplicates every word
// and runs it twice to show that compiled pipelines are reusable and
// deterministic.
func ExampleCompile() {
	descriptors := []pipeline.Descriptor{
		{
			Name:  "Reduple",
			Scope: 1,
			Spec:  pipeline.OpSpec{Kind: "reduplicate", Rate: 1},
		},
	}

	p, err := pipeline.Compile(42, descriptors, nil, nil)
	if err != nil {
		fmt.Println("compile:", err)
		return
	}

	first, _ := p.Run("Hello world")
	second, _ := p.Run("Hello world")
	fmt.Println(first)
	fmt.Println(first == second)
	// Output:
	// Hello Hello world world
	// true
}

// ExamplePlan shows seed planning without running any corruption.
func ExamplePlan() {
	entries := pipeline.Plan(42, []pipeline.PlanItem{
		{Name: "Typogre", Scope: 2, Order: 0},
		{Name: "Reduple", Scope: 1, Order: 0},
	})

	for _, entry := range entries {
		fmt.Println(entry.Index, entry.Seed != 0)
	}
	// Output:
	// 0 true
	// 1 true
}
