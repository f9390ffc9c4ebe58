package workflow

import "context"

// Stage is one step of a pipeline: it takes a state and returns the next
// state. Stages must be pure with respect to the state value; a stage that
// observes a prior failure passes the state through unchanged.
type Stage[S any] func(ctx context.Context, state S) S

// Run threads a state through the stages in order.
func Run[S any](ctx context.Context, state S, stages ...Stage[S]) S {
	for _, stage := range stages {
		state = stage(ctx, state)
	}
	return state
}
