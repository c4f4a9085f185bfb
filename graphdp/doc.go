// Package graphdp provides a generic dynamic-programming engine over
// state graphs that are defined implicitly, by callbacks, and never
// materialized.
//
// What
//
//   - A problem supplies a Config: seed candidates (Initial), a successor
//     generator (Neighbors), and a final-state classifier (IsFinal
//     predicate or Finals enumeration).
//   - The engine runs a FIFO worklist over the induced graph, keeping one
//     row per distinct state: best value seen, reconstruction payload,
//     and a backpointer to the predecessor that produced it.
//   - MaxValue returns the best value over reached final states;
//     MaxValueSolution also returns the winning candidate's payload and
//     the ancestry path of states from an initial state to it.
//
// Why
//
//   - Many optimization problems (interval DP, allocation DP, game DP)
//     have state spaces that are natural to describe by "here are my
//     seeds, here is how a state grows" without ever building a graph.
//   - Tracking backpointers alongside values turns the same sweep that
//     computes the optimum into a constructive proof of it.
//
// Relaxation policy
//
//	Both queries share one explicit merge rule: when a successor reaches
//	an already-known state with a strictly greater value, the state's
//	value, payload and backpointer are updated and the state is
//	re-enqueued, so the improvement propagates onward. Ties and worse
//	values are ignored — the earlier discovery wins, which makes the
//	reconstructed path deterministic. Termination therefore requires a
//	state graph with no cycle along which values strictly improve;
//	DAG-shaped spaces (all catalogue problems in this module) satisfy
//	this trivially.
//
// Values
//
//	Values are float64 and may be ±Inf. Clients conventionally use
//	math.Inf(-1) as a "dead state" sentinel for states that can never be
//	part of a feasible answer; the engine propagates it uninterpreted,
//	and translating a −Inf result into a domain error is the client's
//	job (see fairdiv).
//
// Complexity (S = distinct states, E = generated successor candidates)
//
//   - Time:   O(S + E) for DAG-shaped spaces with one discovery pass;
//     re-expansions add work proportional to the improvements found.
//   - Memory: O(S) for the table plus the worklist. State spaces grow
//     combinatorially in many encodings — WithStateLimit bounds the
//     damage during exploratory runs.
//
// Usage
//
//	cfg := graphdp.Config[[2]int, string]{
//	    Initial:   func() []graphdp.Candidate[[2]int, string] { ... },
//	    Neighbors: func(c graphdp.Candidate[[2]int, string]) []graphdp.Candidate[[2]int, string] { ... },
//	    Finals:    func() [][2]int { return [][2]int{{0, n}} },
//	}
//	res, err := graphdp.MaxValueSolution(cfg,
//	    graphdp.WithStateLimit(1_000_000),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no state limit.
//   - WithContext(ctx):   cancellation, checked once per expansion.
//   - WithOnExpand(fn):   progress hook (expansions done, worklist size).
//   - WithStateLimit(n):  abort with ErrStateLimit beyond n states (n>0).
//
// Errors
//
//   - ErrNilInitial, ErrNilNeighbors, ErrNoFinalPredicate for a bad
//     Config, reported before any traversal work.
//   - ErrOptionViolation for an invalid Option.
//   - ErrNoFinalStates when the traversal reaches no final state.
//   - ErrStateLimit when WithStateLimit is exceeded.
//   - The context's error when cancelled.
package graphdp
