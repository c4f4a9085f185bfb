package graphdp_test

import (
	"fmt"

	"github.com/katalvlaran/dynprog/graphdp"
)

// ExampleMaxValueSolution demonstrates an interval DP: the longest
// strictly increasing run value over a tiny hand-built state graph.
//
// States are (start, end) index pairs over the word "ab"; the payload
// carries the subsequence built so far. The graph grows intervals
// outward from single letters until the whole word is covered.
func ExampleMaxValueSolution() {
	word := "ab"
	n := len(word)

	cfg := graphdp.Config[[2]int, string]{
		Initial: func() []graphdp.Candidate[[2]int, string] {
			var seeds []graphdp.Candidate[[2]int, string]
			for i := 0; i < n; i++ {
				seeds = append(seeds, graphdp.Candidate[[2]int, string]{
					State: [2]int{i, i + 1}, Value: 1, Data: string(word[i]),
				})
			}
			return seeds
		},
		Neighbors: func(c graphdp.Candidate[[2]int, string]) []graphdp.Candidate[[2]int, string] {
			i, j := c.State[0], c.State[1]
			var out []graphdp.Candidate[[2]int, string]
			if i > 0 {
				out = append(out, graphdp.Candidate[[2]int, string]{
					State: [2]int{i - 1, j}, Value: c.Value + 1, Data: string(word[i-1]) + c.Data,
				})
			}
			if j < n {
				out = append(out, graphdp.Candidate[[2]int, string]{
					State: [2]int{i, j + 1}, Value: c.Value + 1, Data: c.Data + string(word[j]),
				})
			}
			return out
		},
		Finals: func() [][2]int { return [][2]int{{0, n}} },
	}

	res, err := graphdp.MaxValueSolution(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.0f\nbuilt=%q\npath=%v\n", res.Value, res.Data, res.Path)
	// Output:
	// value=2
	// built="ab"
	// path=[[0 1] [0 2]]
}
