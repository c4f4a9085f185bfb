// EF1 and EFx relax envy-freeness: agent i may envy agent j as long as
// removing one item from j's bundle would cancel the envy — some item
// for EF1, any item for EFx.
package fairdiv

import (
	"math"

	"github.com/katalvlaran/dynprog/graphdp"
)

// ef1State keys a traversal node on the number of allocated items plus a
// rendering of the pairwise envy matrix and the per-pair removable-item
// matrix.
type ef1State struct {
	item int
	key  string
}

// ef1Data carries the decoded matrices: diffs[i][j] is agent i's value
// for its own bundle minus its value for agent j's bundle; removable[i][j]
// is the value (to agent i) of the item that would be removed from
// bundle j when checking the criterion.
type ef1Data struct {
	diffs     [][]int
	removable [][]float64
}

// UtilitarianEF1Value returns the largest utilitarian value over all EF1
// allocations, normalized the same way as UtilitarianEnvyFreeValue, or
// ErrNoAllocation when none exists.
func UtilitarianEF1Value(matrix [][]int) (float64, error) {
	return ef1Value(matrix, false)
}

// UtilitarianEFXValue is UtilitarianEF1Value under the stronger EFx
// criterion.
func UtilitarianEFXValue(matrix [][]int) (float64, error) {
	return ef1Value(matrix, true)
}

func ef1Value(matrix [][]int, efx bool) (float64, error) {
	v, err := graphdp.MaxValue(ef1Config(matrix, efx))
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, -1) {
		return 0, ErrNoAllocation
	}

	return (v + float64(matrixTotal(matrix))) / float64(len(matrix)), nil
}

// ef1Config allocates items one by one. The tracked state is the envy
// matrix of pairwise bundle-value differences plus, per ordered agent
// pair, the value of the item the criterion may discount.
func ef1Config(matrix [][]int, efx bool) graphdp.Config[ef1State, ef1Data] {
	agents := len(matrix)
	items := 0
	if agents > 0 {
		items = len(matrix[0])
	}

	return graphdp.Config[ef1State, ef1Data]{
		Initial: func() []graphdp.Candidate[ef1State, ef1Data] {
			d := ef1Data{
				diffs:     zeroIntMatrix(agents),
				removable: constFloatMatrix(agents, initialRemovable(efx)),
			}

			return []graphdp.Candidate[ef1State, ef1Data]{{
				State: ef1State{item: 0, key: ef1Key(d)},
				Value: math.Inf(-1),
				Data:  d,
			}}
		},
		Neighbors: func(c graphdp.Candidate[ef1State, ef1Data]) []graphdp.Candidate[ef1State, ef1Data] {
			j := c.State.item
			if j >= items {
				return nil
			}
			next := make([]graphdp.Candidate[ef1State, ef1Data], 0, agents)
			for a := 0; a < agents; a++ {
				diffs := giveItemDiffs(c.Data.diffs, matrix, a, j)
				removable := copyFloatMatrix(c.Data.removable)
				for o := 0; o < agents; o++ {
					if o == a {
						continue
					}
					ov := float64(matrix[o][j])
					if replaceCandidateItem(ov, removable[o][a], efx) {
						removable[o][a] = ov
					}
				}
				d := ef1Data{diffs: diffs, removable: removable}

				value := math.Inf(-1)
				if j+1 == items && envyCancellable(diffs, removable) {
					value = float64(matrixSum(diffs))
				}

				next = append(next, graphdp.Candidate[ef1State, ef1Data]{
					State: ef1State{item: j + 1, key: ef1Key(d)},
					Value: value,
					Data:  d,
				})
			}

			return next
		},
		IsFinal: func(s ef1State) bool { return s.item == items },
	}
}

// initialRemovable: before any item lands in a bundle, EF1 discounts
// nothing (0), while EFx tracks the least valuable owned item, which
// starts at +Inf and vacuously passes.
func initialRemovable(efx bool) float64 {
	if efx {
		return math.Inf(1)
	}

	return 0
}

// envyCancellable reports whether every pairwise envy is covered by the
// tracked removable item.
func envyCancellable(diffs [][]int, removable [][]float64) bool {
	for i := range diffs {
		for j := range diffs[i] {
			if float64(diffs[i][j])+removable[i][j] < 0 {
				return false
			}
		}
	}

	return true
}

// giveItemDiffs updates the envy matrix for granting item j to agent a:
// a's advantage over everyone else grows by a's value for the item, and
// every other agent's advantage over a shrinks by its own value for it.
func giveItemDiffs(diffs [][]int, matrix [][]int, a, j int) [][]int {
	next := copyIntMatrix(diffs)
	for o := range next {
		if o == a {
			continue
		}
		next[a][o] += matrix[a][j]
		next[o][a] -= matrix[o][j]
	}

	return next
}

func ef1Key(d ef1Data) string {
	return intMatrixKey(d.diffs) + "|" + floatMatrixKey(d.removable)
}

func zeroIntMatrix(n int) [][]int {
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	return m
}

func constFloatMatrix(n int, v float64) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = v
		}
	}

	return m
}

func copyIntMatrix(m [][]int) [][]int {
	next := make([][]int, len(m))
	for i, row := range m {
		next[i] = make([]int, len(row))
		copy(next[i], row)
	}

	return next
}

func copyFloatMatrix(m [][]float64) [][]float64 {
	next := make([][]float64, len(m))
	for i, row := range m {
		next[i] = make([]float64, len(row))
		copy(next[i], row)
	}

	return next
}

func matrixSum(m [][]int) int {
	total := 0
	for _, row := range m {
		for _, v := range row {
			total += v
		}
	}

	return total
}
