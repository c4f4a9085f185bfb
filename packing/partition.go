package packing

import (
	"errors"
	"math"

	"github.com/katalvlaran/dynprog/seqdp"
)

// ErrNoParts is returned when a partition is requested into fewer than
// one part.
var ErrNoParts = errors.New("packing: number of parts must be positive")

// MaxMinValue returns the best achievable minimum part sum when items
// are split into exactly parts parts (empty parts allowed).
func MaxMinValue(items []int, parts int) (int, error) {
	if parts <= 0 {
		return 0, ErrNoParts
	}
	v, err := seqdp.MaxValue(items, maxMinProgram(parts))
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// MaxMinPartition returns the minimum part sum achieved by MaxMinValue
// together with the partition itself: parts lists of items, in input
// order within each part.
func MaxMinPartition(items []int, parts int) (int, [][]int, error) {
	if parts <= 0 {
		return 0, nil, ErrNoParts
	}
	constructions := make([]seqdp.Construction[[][]int, int], parts)
	for j := 0; j < parts; j++ {
		constructions[j] = func(sol [][]int, item int) [][]int {
			return appendToBin(sol, j, item)
		}
	}

	res, err := seqdp.MaxValueSolution(items, seqdp.SolutionProgram[[]int, int, [][]int]{
		Program:         maxMinProgram(parts),
		InitialSolution: emptyBins(parts),
		Constructions:   constructions,
	})
	if err != nil {
		return 0, nil, err
	}

	return int(res.Value), res.Solution, nil
}

// maxMinProgram has one decision per part — add the item to part j —
// and maximizes the minimum part sum.
func maxMinProgram(parts int) seqdp.Program[[]int, int] {
	transitions := make([]seqdp.Transition[[]int, int], parts)
	for j := 0; j < parts; j++ {
		transitions[j] = func(s []int, item int) []int {
			return addToSum(s, j, item)
		}
	}

	return seqdp.Program[[]int, int]{
		InitialStates: [][]int{make([]int, parts)},
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
