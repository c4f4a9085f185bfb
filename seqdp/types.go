// Package seqdp defines the function sets, program descriptions, options
// and error definitions for the sequential dynamic-programming engine.
package seqdp

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for engine configuration and execution.
var (
	// ErrNoInitialStates is returned when a program has no initial states.
	ErrNoInitialStates = errors.New("seqdp: no initial states")

	// ErrNoTransitions is returned when a program has no transition functions.
	ErrNoTransitions = errors.New("seqdp: no transition functions")

	// ErrNilValue is returned when a program has no value function.
	ErrNilValue = errors.New("seqdp: Value function is nil")

	// ErrLengthMismatch is returned when the filter or construction set is
	// not index-aligned with the transition set.
	ErrLengthMismatch = errors.New("seqdp: function sets must be index-aligned with Transitions")

	// ErrNoLiveStates is returned when every state of a generation was
	// filtered out, leaving nothing to aggregate over.
	ErrNoLiveStates = errors.New("seqdp: no live states remain")

	// ErrStateLimit is returned when the number of processed state records
	// exceeds the limit set via WithStateLimit.
	ErrStateLimit = errors.New("seqdp: state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("seqdp: invalid option supplied")
)

// Transition maps a live state and the current input to a successor state.
type Transition[S, I any] func(state S, input I) S

// Filter gates whether its paired Transition may fire for (state, input).
type Filter[S, I any] func(state S, input I) bool

// Construction extends a partial solution with the current input; it is
// replayed, index-aligned with Transitions, only along the winning path.
type Construction[Sol, I any] func(solution Sol, input I) Sol

// Program describes a sequential dynamic program for value-only queries.
//
// Fields:
//   - InitialStates — the live set before any input is processed.
//     Generations are flat: duplicates are not merged, so pre-deduplicate
//     here if the transition set maps distinct states onto each other.
//   - Transitions   — the fixed decision set applied at every input step.
//   - Value         — maps a state to the scalar being maximized.
//   - Filters       — optional, index-aligned with Transitions; nil means
//     every transition is permitted for every (state, input) pair.
type Program[S, I any] struct {
	InitialStates []S
	Transitions   []Transition[S, I]
	Value         func(state S) float64
	Filters       []Filter[S, I]
}

// validate reports the first configuration error, eagerly.
func (p Program[S, I]) validate() error {
	if len(p.InitialStates) == 0 {
		return ErrNoInitialStates
	}
	if len(p.Transitions) == 0 {
		return ErrNoTransitions
	}
	if p.Value == nil {
		return ErrNilValue
	}
	if p.Filters != nil && len(p.Filters) != len(p.Transitions) {
		return fmt.Errorf("%w: %d filters for %d transitions", ErrLengthMismatch, len(p.Filters), len(p.Transitions))
	}

	return nil
}

// filters returns the effective filter set: the program's own, or an
// accept-all set of matching length.
func (p Program[S, I]) filters() []Filter[S, I] {
	if p.Filters != nil {
		return p.Filters
	}
	all := make([]Filter[S, I], len(p.Transitions))
	for k := range all {
		all[k] = func(S, I) bool { return true }
	}

	return all
}

// SolutionProgram extends Program with the machinery to materialize the
// winning solution: a starting solution and a construction set that is
// index-aligned with Transitions.
//
// Decoupling state tracking from solution construction keeps heavyweight
// solution objects out of the per-generation records; the solution is
// built exactly once, by replaying the winning transition indices.
type SolutionProgram[S, I, Sol any] struct {
	Program[S, I]

	InitialSolution Sol
	Constructions   []Construction[Sol, I]
}

// validate extends Program.validate with construction-set alignment.
func (p SolutionProgram[S, I, Sol]) validate() error {
	if err := p.Program.validate(); err != nil {
		return err
	}
	if len(p.Constructions) != len(p.Transitions) {
		return fmt.Errorf("%w: %d constructions for %d transitions", ErrLengthMismatch, len(p.Constructions), len(p.Transitions))
	}

	return nil
}

// Result holds the outcome of MaxValueSolution:
//   - State, Value: the best-valued state of the last generation.
//   - Solution: the replayed solution object for that state.
//   - Processed: total state records created, initial states included.
type Result[S, Sol any] struct {
	State     S
	Value     float64
	Solution  Sol
	Processed int
}

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters and hooks to customize a run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per input step.
	Ctx context.Context

	// OnStep is called after each input step with the step index and the
	// size of the generation it produced.
	OnStep func(step, produced int)

	// StateLimit, if > 0, aborts with ErrStateLimit once more than this
	// many state records have been processed. 0 disables the guard.
	StateLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnStep hook
//   - no state limit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnStep:     func(int, int) {},
		StateLimit: 0,
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a progress hook, invoked after each input step.
func WithOnStep(fn func(step, produced int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithStateLimit bounds the total number of state records a run may
// process.
//
//	n > 0: abort with ErrStateLimit beyond n records
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithStateLimit(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: StateLimit cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.StateLimit = n
		}
	}
}

// buildOptions folds opts over DefaultOptions and returns the result.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
