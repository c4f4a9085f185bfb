package fairdiv

import (
	"math"

	"github.com/katalvlaran/dynprog/seqdp"
)

// UtilitarianProportionalValue returns the largest sum of bundle values
// over all proportional allocations — allocations giving every agent at
// least a 1/n share of its total value. Returns negative infinity when
// no proportional allocation exists.
func UtilitarianProportionalValue(matrix [][]int) (float64, error) {
	return seqdp.MaxValue(ItemValueVectors(matrix), proportionalProgram(matrix))
}

// UtilitarianProportionalAllocation returns the utilitarian-maximum
// proportional allocation and its value, or ErrNoAllocation when no
// proportional allocation exists.
func UtilitarianProportionalAllocation(matrix [][]int) (int, [][]int, error) {
	agents := len(matrix)
	res, err := seqdp.MaxValueSolution(ItemValueVectors(matrix), seqdp.SolutionProgram[[]int, []int, [][]int]{
		Program:         proportionalProgram(matrix),
		InitialSolution: emptyBundles(agents),
		Constructions:   bundleConstructions(agents),
	})
	if err != nil {
		return 0, nil, err
	}
	if math.IsInf(res.Value, -1) {
		return 0, nil, ErrNoAllocation
	}

	return int(res.Value), res.Solution, nil
}

// proportionalProgram shares its state shape and transitions with the
// egalitarian program; the objective is the sum of bundle values, gated
// to negative infinity while any agent sits below its fair share.
func proportionalProgram(matrix [][]int) seqdp.Program[[]int, []int] {
	p := egalitarianProgram(len(matrix))
	thresholds := proportionalThresholds(matrix)
	p.Value = func(s []int) float64 {
		total := 0
		for i, v := range s {
			if float64(v) < thresholds[i] {
				return math.Inf(-1)
			}
			total += v
		}
		return float64(total)
	}

	return p
}
