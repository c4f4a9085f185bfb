// Package packing solves item-packing and partitioning problems on top
// of the seqdp engine.
package packing

import (
	"github.com/katalvlaran/dynprog/seqdp"
)

// SubsetSum returns the largest sum of a subset of items that does not
// exceed capacity. Items are visited in order; the state is the running
// sum of the items taken so far.
func SubsetSum(items []int, capacity int) (int, error) {
	v, err := seqdp.MaxValue(items, subsetSumProgram(capacity))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// SubsetSumSolution returns the subset achieving SubsetSum, in input
// order.
func SubsetSumSolution(items []int, capacity int) ([]int, error) {
	res, err := seqdp.MaxValueSolution(items, seqdp.SolutionProgram[int, int, []int]{
		Program:         subsetSumProgram(capacity),
		InitialSolution: []int{},
		Constructions: []seqdp.Construction[[]int, int]{
			func(sol []int, item int) []int { return append(sol, item) }, // take
			func(sol []int, _ int) []int { return sol },                  // skip
		},
	})
	if err != nil {
		return nil, err
	}

	return res.Solution, nil
}

// subsetSumProgram has two decisions per item: take it, bounded by the
// capacity, or skip it.
func subsetSumProgram(capacity int) seqdp.Program[int, int] {
	return seqdp.Program[int, int]{
		InitialStates: []int{0},
		Transitions: []seqdp.Transition[int, int]{
			func(s, item int) int { return s + item }, // take
			func(s, _ int) int { return s },           // skip
		},
		Value: func(s int) float64 { return float64(s) },
		Filters: []seqdp.Filter[int, int]{
			func(s, item int) bool { return s+item <= capacity }, // take only if it fits
			func(int, int) bool { return true },                  // skip is always allowed
		},
	}
}
