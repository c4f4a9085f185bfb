package fairdiv

import (
	"math"

	"github.com/katalvlaran/dynprog/seqdp"
)

// EgalitarianValue returns the egalitarian (max-min) value of the
// valuation matrix: the largest achievable minimum, over agents, of the
// value each agent assigns to its own bundle.
func EgalitarianValue(matrix [][]int) (int, error) {
	v, err := seqdp.MaxValue(ItemValueVectors(matrix), egalitarianProgram(len(matrix)))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// EgalitarianAllocation returns the egalitarian value together with an
// allocation achieving it: one bundle of item indices per agent, indices
// in input order within each bundle.
func EgalitarianAllocation(matrix [][]int) (int, [][]int, error) {
	agents := len(matrix)
	res, err := seqdp.MaxValueSolution(ItemValueVectors(matrix), seqdp.SolutionProgram[[]int, []int, [][]int]{
		Program:         egalitarianProgram(agents),
		InitialSolution: emptyBundles(agents),
		Constructions:   bundleConstructions(agents),
	})
	if err != nil {
		return 0, nil, err
	}

	return int(res.Value), res.Solution, nil
}

// egalitarianProgram: states are per-agent bundle values; one decision
// per agent — give the current item to that agent. The objective is the
// minimum bundle value.
func egalitarianProgram(agents int) seqdp.Program[[]int, []int] {
	transitions := make([]seqdp.Transition[[]int, []int], agents)
	for i := 0; i < agents; i++ {
		transitions[i] = func(s []int, item []int) []int {
			return addValue(s, i, item[i])
		}
	}

	return seqdp.Program[[]int, []int]{
		InitialStates: [][]int{make([]int, agents)},
		Transitions:   transitions,
		Value: func(s []int) float64 {
			low := math.Inf(1)
			for _, v := range s {
				if f := float64(v); f < low {
					low = f
				}
			}
			return low
		},
	}
}
