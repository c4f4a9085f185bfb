// Package graphdp provides a generic worklist dynamic-programming engine
// over implicitly defined state graphs, tracking the best value and a
// backpointer per state and reconstructing an optimal path of states.
package graphdp

// entry is the per-state bookkeeping row: the best value and payload seen
// so far, the predecessor state that produced them, and queue membership.
type entry[S comparable, D any] struct {
	value   float64
	data    D
	parent  S
	hasPrev bool // false for initial states
	queued  bool
}

// walker encapsulates the mutable traversal state.
type walker[S comparable, D any] struct {
	cfg       Config[S, D]
	opts      Options
	queue     []S
	entries   map[S]entry[S, D]
	finals    []S // reached final states, in first-dequeue order
	finalSeen map[S]bool
	expanded  int
}

// MaxValue returns the maximum value among all final states reachable in
// the state graph described by cfg.
//
// The traversal is a FIFO worklist with strict-improvement relaxation: a
// successor carrying a strictly greater value than the recorded one for
// its state updates the record and re-enqueues the state, so improvements
// propagate to its successors. Ties keep the earlier discovery. The graph
// must contain no cycle along which values strictly improve, or the
// relaxation will not terminate.
//
// Returns ErrNilInitial, ErrNilNeighbors or ErrNoFinalPredicate for a bad
// Config, ErrOptionViolation for bad options, ErrNoFinalStates when no
// final state is reached, ErrStateLimit when WithStateLimit is exceeded,
// or the context error when cancelled.
func MaxValue[S comparable, D any](cfg Config[S, D], opts ...Option) (float64, error) {
	best, err := run(cfg, opts)
	if err != nil {
		return 0, err
	}

	return best.Value, nil
}

// MaxValueSolution behaves like MaxValue but additionally returns the
// best-valued final candidate itself — state, value and payload — along
// with the ancestry path of states leading to it and the number of
// expansions performed.
//
// Determinism: with equal values the earlier discovery wins, both when
// merging candidates for one state and when selecting among final states,
// so repeated runs over the same callbacks reconstruct the same path.
func MaxValueSolution[S comparable, D any](cfg Config[S, D], opts ...Option) (Result[S, D], error) {
	best, err := run(cfg, opts)
	if err != nil {
		return Result[S, D]{}, err
	}

	return best, nil
}

// run validates inputs, drains the worklist, and selects the best final
// candidate. Shared by MaxValue and MaxValueSolution.
func run[S comparable, D any](cfg Config[S, D], opts []Option) (Result[S, D], error) {
	var zero Result[S, D]
	if err := cfg.validate(); err != nil {
		return zero, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}

	w := &walker[S, D]{
		cfg:       cfg,
		opts:      o,
		entries:   make(map[S]entry[S, D]),
		finalSeen: make(map[S]bool),
	}
	for _, c := range cfg.Initial() {
		if err = w.relax(c, c.State, false); err != nil {
			return zero, err
		}
	}
	if err = w.loop(); err != nil {
		return zero, err
	}

	return w.best()
}

// loop drains the queue, expanding one state per iteration.
func (w *walker[S, D]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		s := w.queue[0]
		w.queue = w.queue[1:]
		e := w.entries[s]
		e.queued = false
		w.entries[s] = e
		w.expanded++

		if w.isFinal(s) && !w.finalSeen[s] {
			w.finalSeen[s] = true
			w.finals = append(w.finals, s)
		}

		cur := Candidate[S, D]{State: s, Value: e.value, Data: e.data}
		for _, nb := range w.cfg.Neighbors(cur) {
			if err := w.relax(nb, s, true); err != nil {
				return err
			}
		}
		w.opts.OnExpand(w.expanded, len(w.queue))
	}

	return nil
}

// relax merges candidate c into the best-value table. Unseen states are
// recorded and enqueued; known states are updated and re-enqueued only
// when c carries a strictly greater value.
func (w *walker[S, D]) relax(c Candidate[S, D], parent S, hasPrev bool) error {
	e, seen := w.entries[c.State]
	if seen && c.Value <= e.value {
		return nil
	}
	e.value = c.Value
	e.data = c.Data
	e.parent = parent
	e.hasPrev = hasPrev
	if !e.queued {
		e.queued = true
		w.queue = append(w.queue, c.State)
	}
	w.entries[c.State] = e
	if !seen && w.opts.StateLimit > 0 && len(w.entries) > w.opts.StateLimit {
		return ErrStateLimit
	}

	return nil
}

// isFinal applies the predicate form; the enumeration form is resolved
// lazily in best, so Finals-only configs skip per-dequeue checks.
func (w *walker[S, D]) isFinal(s S) bool {
	if w.cfg.Finals != nil {
		return false
	}

	return w.cfg.IsFinal(s)
}

// best selects the maximum-value final state — over the Finals
// enumeration when present, otherwise over the final states recorded in
// dequeue order — and reconstructs its ancestry path.
func (w *walker[S, D]) best() (Result[S, D], error) {
	candidates := w.finals
	if w.cfg.Finals != nil {
		candidates = candidates[:0]
		for _, s := range w.cfg.Finals() {
			if _, ok := w.entries[s]; ok {
				candidates = append(candidates, s)
			}
		}
	}

	found := false
	var res Result[S, D]
	for _, s := range candidates {
		e := w.entries[s]
		if !found || e.value > res.Value {
			found = true
			res = Result[S, D]{State: s, Value: e.value, Data: e.data}
		}
	}
	if !found {
		return res, ErrNoFinalStates
	}

	res.Path = w.pathTo(res.State)
	res.Expanded = w.expanded

	return res, nil
}

// pathTo walks backpointers from s to an initial state and returns the
// forward-ordered ancestry, s included.
func (w *walker[S, D]) pathTo(s S) []S {
	path := []S{s}
	for {
		e := w.entries[s]
		if !e.hasPrev {
			break
		}
		s = e.parent
		path = append(path, s)
	}
	// reverse to get initial → final
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
