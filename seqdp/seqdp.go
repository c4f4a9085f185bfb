// Package seqdp provides a sequential dynamic-programming engine: an
// ordered list of inputs is pushed through a fixed set of transition
// functions, one full generation of live states per input, and the best
// final state's decision path can be replayed into a concrete solution.
package seqdp

// MaxValue processes every input in order and returns the maximum of
// p.Value over the final generation of live states.
//
// At each step every live state is combined with every transition whose
// paired filter accepts the (state, input) pair; the results, in
// transition-major order, form the next generation. Generations are flat
// slices — duplicate states are not merged. An empty inputs slice is
// legal and yields the best initial state's value.
//
// Returns ErrNoInitialStates, ErrNoTransitions, ErrNilValue or
// ErrLengthMismatch for a bad program (checked eagerly),
// ErrOptionViolation for bad options, ErrNoLiveStates when a generation
// empties out, ErrStateLimit when WithStateLimit is exceeded, or the
// context error when cancelled.
func MaxValue[S, I any](inputs []I, p Program[S, I], opts ...Option) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}

	filters := p.filters()
	current := p.InitialStates
	processed := len(current)
	for step, in := range inputs {
		// cancellation check (once per input step)
		select {
		case <-o.Ctx.Done():
			return 0, o.Ctx.Err()
		default:
		}

		next := make([]S, 0, len(current)*len(p.Transitions))
		for k, f := range p.Transitions {
			h := filters[k]
			for _, s := range current {
				if !h(s, in) {
					continue
				}
				next = append(next, f(s, in))
			}
		}
		processed += len(next)
		o.OnStep(step, len(next))
		if o.StateLimit > 0 && processed > o.StateLimit {
			return 0, ErrStateLimit
		}
		if len(next) == 0 {
			return 0, ErrNoLiveStates
		}
		current = next
	}

	best := p.Value(current[0])
	for _, s := range current[1:] {
		if v := p.Value(s); v > best {
			best = v
		}
	}

	return best, nil
}

// record is one node of the backpointer forest, stored in a flat arena.
// prev indexes the arena; -1 marks a root (an initial state).
type record[S any] struct {
	state      S
	prev       int
	transition int
}

// MaxValueSolution behaves like MaxValue but additionally reconstructs
// the winning solution: each live state is wrapped in a record carrying
// the arena index of its predecessor and the transition index that
// produced it. After the last input, the best-valued record of the final
// generation is selected (first one wins on ties, in transition-major
// order, so reruns are reproducible), its transition-index path is
// recovered by walking backpointers, and p.Constructions is replayed
// forward from p.InitialSolution along that path.
//
// The Result carries the best final state, its value, the constructed
// solution, and the total number of records processed.
func MaxValueSolution[S, I, Sol any](inputs []I, p SolutionProgram[S, I, Sol], opts ...Option) (Result[S, Sol], error) {
	var zero Result[S, Sol]
	if err := p.validate(); err != nil {
		return zero, err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return zero, err
	}

	filters := p.filters()
	arena := make([]record[S], 0, len(p.InitialStates))
	current := make([]int, 0, len(p.InitialStates))
	for _, s := range p.InitialStates {
		arena = append(arena, record[S]{state: s, prev: -1, transition: -1})
		current = append(current, len(arena)-1)
	}
	for step, in := range inputs {
		// cancellation check (once per input step)
		select {
		case <-o.Ctx.Done():
			return zero, o.Ctx.Err()
		default:
		}

		next := make([]int, 0, len(current)*len(p.Transitions))
		for k, f := range p.Transitions {
			h := filters[k]
			for _, idx := range current {
				s := arena[idx].state
				if !h(s, in) {
					continue
				}
				arena = append(arena, record[S]{state: f(s, in), prev: idx, transition: k})
				next = append(next, len(arena)-1)
			}
		}
		o.OnStep(step, len(next))
		if o.StateLimit > 0 && len(arena) > o.StateLimit {
			return zero, ErrStateLimit
		}
		if len(next) == 0 {
			return zero, ErrNoLiveStates
		}
		current = next
	}

	// pick the best record of the final generation
	bestIdx := current[0]
	bestVal := p.Value(arena[bestIdx].state)
	for _, idx := range current[1:] {
		if v := p.Value(arena[idx].state); v > bestVal {
			bestIdx, bestVal = idx, v
		}
	}

	// recover the transition-index path, root → leaf; a record of the
	// final generation has exactly len(inputs) ancestors
	path := make([]int, len(inputs))
	for idx, i := bestIdx, len(path)-1; arena[idx].prev >= 0; idx, i = arena[idx].prev, i-1 {
		path[i] = arena[idx].transition
	}

	// replay the chosen constructions over the inputs, forward
	solution := p.InitialSolution
	for i, in := range inputs {
		solution = p.Constructions[path[i]](solution, in)
	}

	return Result[S, Sol]{
		State:     arena[bestIdx].state,
		Value:     bestVal,
		Solution:  solution,
		Processed: len(arena),
	}, nil
}
