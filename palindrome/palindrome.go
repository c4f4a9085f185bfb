// Package palindrome finds longest palindromic subsequences by growing
// string intervals outwards on the graphdp engine.
//
// A state [2]int{i, j} stands for the substring between rune positions
// i and j-1. Seeds are the single-rune and empty intervals; an interval
// grows by one rune on either side, or by both at once when the two new
// runes match and extend the palindrome. The single final state is the
// whole string.
package palindrome

import (
	"errors"

	"github.com/katalvlaran/dynprog/graphdp"
)

// ErrEmptyInput is returned for the empty string, which spans no
// interval to grow.
var ErrEmptyInput = errors.New("palindrome: input string is empty")

// Length returns the length of the longest palindromic subsequence of s.
// Positions count runes, not bytes.
func Length(s string) (int, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, ErrEmptyInput
	}
	v, err := graphdp.MaxValue(config(runes))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// Longest returns the length of the longest palindromic subsequence of
// s together with the subsequence itself.
func Longest(s string) (int, string, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, "", ErrEmptyInput
	}
	res, err := graphdp.MaxValueSolution(config(runes))
	if err != nil {
		return 0, "", err
	}

	return int(res.Value), res.Data, nil
}

// config builds the interval-growth graph over runes. The candidate
// payload carries the palindrome collected so far.
func config(runes []rune) graphdp.Config[[2]int, string] {
	n := len(runes)

	return graphdp.Config[[2]int, string]{
		Initial: func() []graphdp.Candidate[[2]int, string] {
			seeds := make([]graphdp.Candidate[[2]int, string], 0, 2*n)
			for i := 0; i < n; i++ {
				seeds = append(seeds, graphdp.Candidate[[2]int, string]{
					State: [2]int{i, i + 1},
					Value: 1,
					Data:  string(runes[i]),
				})
			}
			for i := 0; i < n; i++ {
				seeds = append(seeds, graphdp.Candidate[[2]int, string]{
					State: [2]int{i, i},
					Value: 0,
					Data:  "",
				})
			}

			return seeds
		},
		Neighbors: func(c graphdp.Candidate[[2]int, string]) []graphdp.Candidate[[2]int, string] {
			i, j := c.State[0], c.State[1]
			if i > 0 && j < n && runes[i-1] == runes[j] {
				// both new runes match: the palindrome grows by two
				return []graphdp.Candidate[[2]int, string]{{
					State: [2]int{i - 1, j + 1},
					Value: c.Value + 2,
					Data:  string(runes[i-1]) + c.Data + string(runes[j]),
				}}
			}
			var next []graphdp.Candidate[[2]int, string]
			if i > 0 {
				next = append(next, graphdp.Candidate[[2]int, string]{
					State: [2]int{i - 1, j},
					Value: c.Value,
					Data:  c.Data,
				})
			}
			if j < n {
				next = append(next, graphdp.Candidate[[2]int, string]{
					State: [2]int{i, j + 1},
					Value: c.Value,
					Data:  c.Data,
				})
			}

			return next
		},
		Finals: func() [][2]int {
			return [][2]int{{0, n}}
		},
	}
}
