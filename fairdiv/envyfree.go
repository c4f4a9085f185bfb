package fairdiv

import (
	"math"

	"github.com/katalvlaran/dynprog/graphdp"
)

// envyState keys a traversal node on the number of allocated items plus
// a rendering of the pairwise envy matrix.
type envyState struct {
	item int
	key  string
}

type envyData struct {
	diffs [][]int
}

// UtilitarianEnvyFreeValue returns the largest utilitarian value over
// all envy-free allocations, normalized so the result is comparable with
// raw bundle-value sums: (best envy-matrix total + matrix total) divided
// by the number of agents. Returns negative infinity when no envy-free
// allocation exists.
func UtilitarianEnvyFreeValue(matrix [][]int) (float64, error) {
	v, err := graphdp.MaxValue(envyFreeConfig(matrix))
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, -1) {
		return math.Inf(-1), nil
	}

	return (v + float64(matrixTotal(matrix))) / float64(len(matrix)), nil
}

// envyFreeConfig allocates items one by one, tracking only the envy
// matrix. A node becomes valuable once all items are out and no ordered
// agent pair is envious.
func envyFreeConfig(matrix [][]int) graphdp.Config[envyState, envyData] {
	agents := len(matrix)
	items := 0
	if agents > 0 {
		items = len(matrix[0])
	}

	return graphdp.Config[envyState, envyData]{
		Initial: func() []graphdp.Candidate[envyState, envyData] {
			d := envyData{diffs: zeroIntMatrix(agents)}

			return []graphdp.Candidate[envyState, envyData]{{
				State: envyState{item: 0, key: intMatrixKey(d.diffs)},
				Value: math.Inf(-1),
				Data:  d,
			}}
		},
		Neighbors: func(c graphdp.Candidate[envyState, envyData]) []graphdp.Candidate[envyState, envyData] {
			j := c.State.item
			if j >= items {
				return nil
			}
			next := make([]graphdp.Candidate[envyState, envyData], 0, agents)
			for a := 0; a < agents; a++ {
				diffs := giveItemDiffs(c.Data.diffs, matrix, a, j)

				value := math.Inf(-1)
				if j+1 == items && envyFree(diffs) {
					value = float64(matrixSum(diffs))
				}

				next = append(next, graphdp.Candidate[envyState, envyData]{
					State: envyState{item: j + 1, key: intMatrixKey(diffs)},
					Value: value,
					Data:  envyData{diffs: diffs},
				})
			}

			return next
		},
		IsFinal: func(s envyState) bool { return s.item == items },
	}
}

// envyFree reports whether no agent values another bundle above its own.
func envyFree(diffs [][]int) bool {
	for i := range diffs {
		for j := range diffs[i] {
			if diffs[i][j] < 0 {
				return false
			}
		}
	}

	return true
}
