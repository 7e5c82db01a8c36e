package pipeline

import "context"

// Runner executes a deployed pipeline. The execution engine itself lives
// outside this module; embedders inject one per pipeline through a
// RunnerFactory.
type Runner interface {
	Run(ctx context.Context, inputs map[string]any) (map[string]any, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, inputs map[string]any) (map[string]any, error)

func (f RunnerFunc) Run(ctx context.Context, inputs map[string]any) (map[string]any, error) {
	return f(ctx, inputs)
}

// RunnerFactory builds a Runner for a freshly deployed pipeline.
type RunnerFactory func(def *Definition) (Runner, error)
