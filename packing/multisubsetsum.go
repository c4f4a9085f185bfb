package packing

import (
	"github.com/katalvlaran/dynprog/seqdp"
)

// MultipleSubsetSum returns the largest total sum of items that can be
// packed into bins with the given individual capacities. Each item goes
// into at most one bin.
func MultipleSubsetSum(items []int, capacities []int) (int, error) {
	v, err := seqdp.MaxValue(items, multipleSubsetSumProgram(capacities))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// MultipleSubsetSumSolution returns the per-bin item lists achieving
// MultipleSubsetSum; bin j of the result fits within capacities[j].
func MultipleSubsetSumSolution(items []int, capacities []int) ([][]int, error) {
	bins := len(capacities)
	constructions := []seqdp.Construction[[][]int, int]{
		func(sol [][]int, _ int) [][]int { return sol }, // leave the item out
	}
	for j := 0; j < bins; j++ {
		constructions = append(constructions, func(sol [][]int, item int) [][]int {
			return appendToBin(sol, j, item)
		})
	}

	res, err := seqdp.MaxValueSolution(items, seqdp.SolutionProgram[[]int, int, [][]int]{
		Program:         multipleSubsetSumProgram(capacities),
		InitialSolution: emptyBins(bins),
		Constructions:   constructions,
	})
	if err != nil {
		return nil, err
	}

	return res.Solution, nil
}

// multipleSubsetSumProgram tracks one running sum per bin. Decisions:
// leave the item out, or put it into bin j — capacity permitting.
func multipleSubsetSumProgram(capacities []int) seqdp.Program[[]int, int] {
	bins := len(capacities)
	transitions := []seqdp.Transition[[]int, int]{
		func(s []int, _ int) []int { return s }, // leave the item out
	}
	filters := []seqdp.Filter[[]int, int]{
		func([]int, int) bool { return true },
	}
	for j := 0; j < bins; j++ {
		transitions = append(transitions, func(s []int, item int) []int {
			return addToSum(s, j, item)
		})
		filters = append(filters, func(s []int, item int) bool {
			return s[j]+item <= capacities[j]
		})
	}

	return seqdp.Program[[]int, int]{
		InitialStates: [][]int{make([]int, bins)},
		Transitions:   transitions,
		Value: func(s []int) float64 {
			total := 0
			for _, v := range s {
				total += v
			}
			return float64(total)
		},
		Filters: filters,
	}
}

// addToSum copies sums and adds item to slot j; states are shared across
// records, so in-place mutation is off the table.
func addToSum(sums []int, j, item int) []int {
	next := make([]int, len(sums))
	copy(next, sums)
	next[j] += item

	return next
}

// appendToBin copies the bin layout (shallow, rebinding only bin j) and
// appends item to it.
func appendToBin(bins [][]int, j, item int) [][]int {
	next := make([][]int, len(bins))
	copy(next, bins)
	next[j] = append(next[j][:len(next[j]):len(next[j])], item)

	return next
}

// emptyBins returns n distinct empty bins.
func emptyBins(n int) [][]int {
	bins := make([][]int, n)
	for i := range bins {
		bins[i] = []int{}
	}

	return bins
}
