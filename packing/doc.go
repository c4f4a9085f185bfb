// Package packing solves classic item-packing and partitioning problems
// on top of the seqdp engine.
//
// What
//
//   - SubsetSum / SubsetSumSolution: the largest sum of a subset of
//     items that fits a capacity, and the subset achieving it.
//   - Knapsack / KnapsackSolution: the most valuable subset of weighted
//     items under a weight capacity.
//   - MultipleSubsetSum / MultipleSubsetSumSolution: the same with
//     several bins of individual capacities.
//   - MaxMinValue / MaxMinPartition: split items into k parts so the
//     smallest part sum is as large as possible.
//
// Why
//
//	Each problem is one Program: a state shape, a decision per
//	transition function ("skip", "take", "put into bin j", ...), a
//	filter for capacity checks, and a construction that rebuilds the
//	human-readable answer along the winning path. The engine is
//	invariant across all of them.
//
// Complexity
//
//	The live set grows by a factor of |transitions| per item (minus
//	filtered pairs), so these solvers are exponential in the worst
//	case — suitable for the modest instance sizes the tests show, not
//	for production-scale inputs without additional pruning.
//
// Errors
//
//	Engine errors pass through unchanged (see seqdp); packing adds
//	ErrNoParts for a non-positive part count. Empty item lists are legal
//	and yield the empty packing (value 0).
package packing
