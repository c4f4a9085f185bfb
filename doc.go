// Package dynprog is your in-memory toolkit for solving optimization
// problems with explicit-state dynamic programming — from the generic
// engines down to a catalogue of ready-made solvers.
//
// 🚀 What is dynprog?
//
//	A modern, zero-dependency library that brings together:
//		• graphdp — worklist DP over implicitly defined state graphs,
//		  with value relaxation, backpointers and path reconstruction
//		• seqdp — sequential DP that feeds an ordered list of inputs
//		  through a fixed set of transition functions, generation by
//		  generation, and replays the winning decisions into a solution
//		• packing — subset-sum, knapsack, multiple-subset-sum and
//		  max-min partitioning, built on seqdp
//		• fairdiv — egalitarian, proportional, PROP1, EF1/EFx and
//		  envy-free allocation of indivisible items, built on both engines
//		• palindrome — longest palindromic subsequence via graphdp
//		• coingame — optimal play for the row-of-coins picking game
//
// ✨ Why choose dynprog?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – reproducible traversal order and tie-breaking,
//     so reconstructed solutions are stable across runs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – generic over state, input, payload and solution
//     types; hooks (OnExpand, OnStep…) for custom progress logic
//
// The two engines share one conceptual contract: track the best value
// ever seen per state together with a backpointer, then rebuild the
// optimal solution — not merely its value — by walking the pointers.
// Everything else (state shape, transitions, filters, what a "solution"
// is) belongs to the client problem encoding.
//
// Quick taste — subset-sum in four lines:
//
//	best, _ := packing.SubsetSumSolution(
//	    []int{100, 200, 400, 700, 1100, 1600, 2200, 2900, 3700},
//	    4005,
//	)
//	fmt.Println(best) // [100 200 3700]
//
// Dive into the package docs of graphdp and seqdp for the engine
// contracts, and into packing/fairdiv for worked problem encodings.
//
//	go get github.com/katalvlaran/dynprog
package dynprog
