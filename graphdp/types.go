// Package graphdp defines the configuration, options and error
// definitions for the general worklist dynamic-programming engine.
package graphdp

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for engine configuration and execution.
var (
	// ErrNilInitial is returned when Config.Initial is nil.
	ErrNilInitial = errors.New("graphdp: Initial callback is nil")

	// ErrNilNeighbors is returned when Config.Neighbors is nil.
	ErrNilNeighbors = errors.New("graphdp: Neighbors callback is nil")

	// ErrNoFinalPredicate is returned when neither IsFinal nor Finals is set.
	ErrNoFinalPredicate = errors.New("graphdp: either IsFinal or Finals must be set")

	// ErrNoFinalStates is returned when the traversal reaches no final state,
	// including the degenerate case of an empty set of initial states.
	ErrNoFinalStates = errors.New("graphdp: no final state reached")

	// ErrStateLimit is returned when the number of discovered states
	// exceeds the limit set via WithStateLimit.
	ErrStateLimit = errors.New("graphdp: state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphdp: invalid option supplied")
)

// Candidate couples a state with the value of the path that produced it
// and an arbitrary reconstruction payload.
//
// State is the deduplication key: two candidates with equal states are
// merged, keeping the better value. Data never participates in identity
// or value comparison; it only rides along so the winning solution can
// be materialized. Value-only problems use D = struct{}.
type Candidate[S comparable, D any] struct {
	State S
	Value float64
	Data  D
}

// Config describes a state graph implicitly, through callbacks.
//
// Fields:
//   - Initial   — produces the seed candidates. Required.
//   - Neighbors — produces the successor candidates of an expanded
//     candidate. Required. Returning nil/empty marks a dead end.
//   - IsFinal   — predicate form of final-state classification.
//   - Finals    — enumeration form; takes precedence over IsFinal when
//     both are set. At least one of the two is required.
//
// The graph is never materialized: states live only in the worklist and
// in the best-value table while the traversal runs.
type Config[S comparable, D any] struct {
	Initial   func() []Candidate[S, D]
	Neighbors func(c Candidate[S, D]) []Candidate[S, D]
	IsFinal   func(s S) bool
	Finals    func() []S
}

// validate reports the first configuration error, eagerly, before any
// traversal work happens.
func (c Config[S, D]) validate() error {
	if c.Initial == nil {
		return ErrNilInitial
	}
	if c.Neighbors == nil {
		return ErrNilNeighbors
	}
	if c.IsFinal == nil && c.Finals == nil {
		return ErrNoFinalPredicate
	}

	return nil
}

// Result holds the outcome of MaxValueSolution:
//   - State, Value, Data: the best-valued final candidate.
//   - Path: ancestry of states from an initial state to State, inclusive.
//   - Expanded: number of worklist expansions performed.
type Result[S comparable, D any] struct {
	State    S
	Value    float64
	Data     D
	Path     []S
	Expanded int
}

// Option configures engine behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the engine is invoked.
type Option func(*Options)

// Options holds parameters and hooks to customize a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// OnExpand is called after each expansion with the running number of
	// expansions and the current worklist length.
	OnExpand func(expanded, open int)

	// StateLimit, if > 0, aborts with ErrStateLimit once more than this
	// many distinct states have been discovered. 0 disables the guard.
	StateLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op OnExpand hook
//   - no state limit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnExpand:   func(int, int) {},
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

// WithOnExpand registers a progress hook, invoked after each expansion.
func WithOnExpand(fn func(expanded, open int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithStateLimit bounds the number of distinct states the traversal may
// discover.
//
//	n > 0: abort with ErrStateLimit beyond n states
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
