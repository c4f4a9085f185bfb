// Package seqdp provides a sequential dynamic-programming engine for
// problems that consume a fixed ordered list of inputs through a fixed
// set of decisions.
//
// What
//
//   - A problem supplies a Program: initial states, a transition set
//     (one function per possible decision), a value function, and an
//     optional index-aligned filter set.
//   - The engine sweeps the inputs in order. At each step, every live
//     state is combined with every transition whose paired filter
//     accepts it; the results form the next generation. Two buffers —
//     the current generation and the one being built — are the only
//     mutable state, so no generation is ever observed half-updated.
//   - MaxValue returns the best value over the final generation.
//     MaxValueSolution additionally wraps each live state in a record
//     (state, predecessor, transition index) held in a flat arena with
//     -1 as the root sentinel, walks backpointers from the best final
//     record, and replays the index-aligned Constructions forward from
//     InitialSolution to materialize the winning solution once.
//
// Why
//
//   - This is the "simple DP" shape of Woeginger (2000): subset-sum,
//     knapsack, partitioning and allocation problems all reduce to
//     "for each item, pick one of k decisions".
//   - Separating the cheap per-state value tracking from the heavyweight
//     solution object keeps memory proportional to states, not to
//     partially-built solutions.
//
// Semantics
//
//   - Generations are flat slices: duplicate states are NOT merged.
//     Growth is bounded by |generation| × |transitions| per step — which
//     is also exact when no filter rejects — so the live set can grow
//     combinatorially; deduplicate in transitions/initial states, or use
//     WithStateLimit, when that bites.
//   - Next-generation order is transition-major (all states under
//     transition 0, then all under transition 1, ...), and value ties
//     resolve to the first record in that order, so runs are
//     deterministic and reproducible.
//   - An empty inputs slice returns the best initial state's value; a
//     program with no initial states is a configuration error.
//
// Usage
//
//	v, err := seqdp.MaxValue(items, seqdp.Program[int, int]{
//	    InitialStates: []int{0},
//	    Transitions: []seqdp.Transition[int, int]{
//	        func(s, item int) int { return s + item },
//	        func(s, _ int) int { return s },
//	    },
//	    Value:   func(s int) float64 { return float64(s) },
//	    Filters: []seqdp.Filter[int, int]{
//	        func(s, item int) bool { return s+item <= capacity },
//	        func(int, int) bool { return true },
//	    },
//	})
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no state limit.
//   - WithContext(ctx):   cancellation, checked once per input step.
//   - WithOnStep(fn):     progress hook (step index, generation size).
//   - WithStateLimit(n):  abort with ErrStateLimit beyond n records (n>0).
//
// Errors
//
//   - ErrNoInitialStates, ErrNoTransitions, ErrNilValue or
//     ErrLengthMismatch for a bad program, reported before any sweep.
//   - ErrOptionViolation for an invalid Option.
//   - ErrNoLiveStates when a generation is completely filtered out.
//   - ErrStateLimit when WithStateLimit is exceeded.
//   - The context's error when cancelled.
package seqdp
