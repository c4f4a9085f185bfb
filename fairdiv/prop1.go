// PROP1 and PROPx relax proportionality: an agent may fall short of its
// fair share as long as one item owned by somebody else would close the
// gap — the best such item for PROP1, the worst for PROPx.
package fairdiv

import (
	"math"

	"github.com/katalvlaran/dynprog/graphdp"
)

// prop1State keys a traversal node: how many items have been allocated,
// plus a rendering of the per-agent bundle values and of the largest
// (smallest, for PROPx) item value each agent sees in other bundles.
type prop1State struct {
	item int
	key  string
}

// prop1Data carries the decoded state alongside the allocation built so
// far; only the winning candidate's allocation is ever returned.
type prop1Data struct {
	values  []int
	missing []float64
	bundles [][]int
}

// UtilitarianPROP1Value returns the largest sum of bundle values over
// all PROP1 allocations, or ErrNoAllocation when none exists.
func UtilitarianPROP1Value(matrix [][]int) (int, error) {
	return prop1Value(matrix, false)
}

// UtilitarianPROPXValue is UtilitarianPROP1Value under the stronger
// PROPx criterion.
func UtilitarianPROPXValue(matrix [][]int) (int, error) {
	return prop1Value(matrix, true)
}

// UtilitarianPROP1Allocation returns the utilitarian-maximum PROP1
// allocation and its value, or ErrNoAllocation when none exists.
func UtilitarianPROP1Allocation(matrix [][]int) (int, [][]int, error) {
	return prop1Allocation(matrix, false)
}

// UtilitarianPROPXAllocation is UtilitarianPROP1Allocation under the
// stronger PROPx criterion.
func UtilitarianPROPXAllocation(matrix [][]int) (int, [][]int, error) {
	return prop1Allocation(matrix, true)
}

func prop1Value(matrix [][]int, propx bool) (int, error) {
	v, err := graphdp.MaxValue(prop1Config(matrix, propx))
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, -1) {
		return 0, ErrNoAllocation
	}

	return int(v), nil
}

func prop1Allocation(matrix [][]int, propx bool) (int, [][]int, error) {
	res, err := graphdp.MaxValueSolution(prop1Config(matrix, propx))
	if err != nil {
		return 0, nil, err
	}
	if math.IsInf(res.Value, -1) {
		return 0, nil, ErrNoAllocation
	}

	return int(res.Value), res.Data.bundles, nil
}

// prop1Config allocates items one by one to every agent in turn. A node
// becomes valuable only once all items are out and the PROP1 (or PROPx)
// condition holds for every agent.
func prop1Config(matrix [][]int, propx bool) graphdp.Config[prop1State, prop1Data] {
	agents := len(matrix)
	items := 0
	if agents > 0 {
		items = len(matrix[0])
	}
	thresholds := proportionalThresholds(matrix)

	return graphdp.Config[prop1State, prop1Data]{
		Initial: func() []graphdp.Candidate[prop1State, prop1Data] {
			missing := make([]float64, agents)
			if propx {
				for i := range missing {
					missing[i] = math.Inf(1)
				}
			}
			d := prop1Data{
				values:  make([]int, agents),
				missing: missing,
				bundles: emptyBundles(agents),
			}

			return []graphdp.Candidate[prop1State, prop1Data]{{
				State: prop1State{item: 0, key: prop1Key(d.values, d.missing)},
				Value: math.Inf(-1),
				Data:  d,
			}}
		},
		Neighbors: func(c graphdp.Candidate[prop1State, prop1Data]) []graphdp.Candidate[prop1State, prop1Data] {
			j := c.State.item
			if j >= items {
				return nil
			}
			next := make([]graphdp.Candidate[prop1State, prop1Data], 0, agents)
			for a := 0; a < agents; a++ {
				values := addValue(c.Data.values, a, matrix[a][j])
				missing := make([]float64, agents)
				copy(missing, c.Data.missing)
				for o := 0; o < agents; o++ {
					if o == a {
						continue
					}
					ov := float64(matrix[o][j])
					if replaceCandidateItem(ov, missing[o], propx) {
						missing[o] = ov
					}
				}

				value := math.Inf(-1)
				if j+1 == items && withinOneItem(values, missing, thresholds) {
					value = float64(sumInts(values))
				}

				next = append(next, graphdp.Candidate[prop1State, prop1Data]{
					State: prop1State{item: j + 1, key: prop1Key(values, missing)},
					Value: value,
					Data: prop1Data{
						values:  values,
						missing: missing,
						bundles: addIndex(c.Data.bundles, a, j),
					},
				})
			}

			return next
		},
		IsFinal: func(s prop1State) bool { return s.item == items },
	}
}

// replaceCandidateItem decides whether an item another agent just
// received displaces the currently tracked one: PROP1 tracks the most
// valuable such item, PROPx the least valuable.
func replaceCandidateItem(v, current float64, propx bool) bool {
	if propx {
		return v < current
	}

	return v > current
}

// withinOneItem reports whether every agent reaches its fair share once
// granted its tracked candidate item.
func withinOneItem(values []int, missing []float64, thresholds []float64) bool {
	for i := range values {
		if float64(values[i])+missing[i] < thresholds[i] {
			return false
		}
	}

	return true
}

func prop1Key(values []int, missing []float64) string {
	return intsKey(values) + "|" + floatsKey(missing)
}

func sumInts(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}

	return total
}
