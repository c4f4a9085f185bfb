// Package coingame computes the optimal take-from-either-end strategy
// for a row of coins, as a graphdp client.
//
// A state {i, j, mine} stands for the remaining row between indices i
// and j-1 with the turn flag telling whose move reached it. The graph is
// walked backwards: seeds are the empty rows, and a transition prepends
// or appends one coin while negating the accumulated value, so the
// single maximization implements the opponent's minimization too. The
// final state is the full row with the original turn flag.
package coingame

import (
	"errors"

	"github.com/katalvlaran/dynprog/graphdp"
)

// ErrNoCoins is returned for an empty row of coins.
var ErrNoCoins = errors.New("coingame: no coins to pick")

type position struct {
	i, j int
	mine bool
}

// BestValue returns the total value an optimal player collects from
// coins, taking one coin from either end per turn against an optimal
// opponent. movesFirst tells whether that player takes the first turn.
func BestValue(coins []int, movesFirst bool) (int, error) {
	if len(coins) == 0 {
		return 0, ErrNoCoins
	}
	v, err := graphdp.MaxValue(config(coins, movesFirst))
	if err != nil {
		return 0, err
	}
	if !movesFirst {
		v = -v
	}

	return int(v), nil
}

func config(coins []int, movesFirst bool) graphdp.Config[position, struct{}] {
	n := len(coins)
	// Empty rows alternate parity with the full row: with an even number
	// of coins the seed turn flag matches the final one.
	seedTurn := movesFirst
	if n%2 != 0 {
		seedTurn = !movesFirst
	}

	return graphdp.Config[position, struct{}]{
		Initial: func() []graphdp.Candidate[position, struct{}] {
			seeds := make([]graphdp.Candidate[position, struct{}], n)
			for i := 0; i < n; i++ {
				seeds[i] = graphdp.Candidate[position, struct{}]{
					State: position{i: i, j: i, mine: seedTurn},
					Value: 0,
				}
			}

			return seeds
		},
		Neighbors: func(c graphdp.Candidate[position, struct{}]) []graphdp.Candidate[position, struct{}] {
			var next []graphdp.Candidate[position, struct{}]
			p := c.State
			if p.mine {
				// the move that shrank the larger row to this one was
				// the opponent's; it contributes nothing to our total
				if p.i > 0 {
					next = append(next, graphdp.Candidate[position, struct{}]{
						State: position{i: p.i - 1, j: p.j, mine: false},
						Value: -c.Value,
					})
				}
				if p.j < n {
					next = append(next, graphdp.Candidate[position, struct{}]{
						State: position{i: p.i, j: p.j + 1, mine: false},
						Value: -c.Value,
					})
				}

				return next
			}
			if p.i > 0 {
				next = append(next, graphdp.Candidate[position, struct{}]{
					State: position{i: p.i - 1, j: p.j, mine: true},
					Value: -c.Value + float64(coins[p.i-1]),
				})
			}
			if p.j < n {
				next = append(next, graphdp.Candidate[position, struct{}]{
					State: position{i: p.i, j: p.j + 1, mine: true},
					Value: -c.Value + float64(coins[p.j]),
				})
			}

			return next
		},
		Finals: func() []position {
			return []position{{i: 0, j: n, mine: movesFirst}}
		},
	}
}
