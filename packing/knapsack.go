package packing

import (
	"github.com/katalvlaran/dynprog/seqdp"
)

// Item is one knapsack input: what it weighs and what it is worth.
type Item struct {
	Weight int
	Value  int
}

// knapsackState tracks the total weight and total value taken so far.
type knapsackState struct {
	weight int
	value  int
}

// Knapsack returns the largest total value of a subset of items whose
// total weight does not exceed capacity.
func Knapsack(items []Item, capacity int) (int, error) {
	v, err := seqdp.MaxValue(items, knapsackProgram(capacity))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// KnapsackSolution returns the subset of items achieving Knapsack, in
// input order.
func KnapsackSolution(items []Item, capacity int) ([]Item, error) {
	res, err := seqdp.MaxValueSolution(items, seqdp.SolutionProgram[knapsackState, Item, []Item]{
		Program:         knapsackProgram(capacity),
		InitialSolution: []Item{},
		Constructions: []seqdp.Construction[[]Item, Item]{
			func(sol []Item, it Item) []Item { return append(sol, it) }, // take
			func(sol []Item, _ Item) []Item { return sol },              // skip
		},
	})
	if err != nil {
		return nil, err
	}

	return res.Solution, nil
}

// knapsackProgram has two decisions per item: take it, bounded by the
// weight capacity, or skip it. The value being maximized is the value
// component of the state.
func knapsackProgram(capacity int) seqdp.Program[knapsackState, Item] {
	return seqdp.Program[knapsackState, Item]{
		InitialStates: []knapsackState{{}},
		Transitions: []seqdp.Transition[knapsackState, Item]{
			func(s knapsackState, it Item) knapsackState {
				return knapsackState{weight: s.weight + it.Weight, value: s.value + it.Value}
			},
			func(s knapsackState, _ Item) knapsackState { return s },
		},
		Value: func(s knapsackState) float64 { return float64(s.value) },
		Filters: []seqdp.Filter[knapsackState, Item]{
			func(s knapsackState, it Item) bool { return s.weight+it.Weight <= capacity },
			func(knapsackState, Item) bool { return true },
		},
	}
}
