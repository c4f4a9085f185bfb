// Package fairdiv finds fair allocations of indivisible items among
// agents with different valuations, on top of the seqdp and graphdp
// engines.
//
// What
//
//	The input everywhere is a valuation matrix: matrix[i][j] is the
//	value agent i assigns to item j. An allocation gives every item to
//	exactly one agent; bundles may be empty.
//
//   - EgalitarianValue / EgalitarianAllocation: maximize the minimum,
//     over agents, of the value each agent assigns to its own bundle.
//   - UtilitarianProportionalValue / UtilitarianProportionalAllocation:
//     maximize the sum of bundle values over allocations giving every
//     agent at least a 1/n share of its total value.
//   - UtilitarianPROP1Value / UtilitarianPROP1Allocation (and the PROPX
//     variants): the same under proportionality-up-to-one-item.
//   - UtilitarianEF1Value / UtilitarianEFXValue: maximize utilitarian
//     value under envy-freeness-up-to-one-item.
//   - UtilitarianEnvyFreeValue: maximize utilitarian value over
//     envy-free allocations.
//
// Why two engines
//
//	Egalitarian and proportional programs depend only on per-agent
//	bundle values, a state shape that fits the sequential engine
//	directly. The PROP1/EF1/envy-free family additionally tracks
//	pairwise envy or removable-item matrices, and runs on the general
//	worklist engine with string-rendered state keys so equal states
//	merge regardless of how they were reached.
//
// Complexity
//
//	All solvers enumerate agent-value states and are exponential in the
//	worst case; intended for small instances (a few agents, around ten
//	items), matching their role as engine clients.
//
// Errors
//
//	Engine errors pass through unchanged. Operations whose criterion can
//	be unsatisfiable return ErrNoAllocation, except
//	UtilitarianProportionalValue and UtilitarianEnvyFreeValue, which
//	report the infeasible case as negative infinity.
package fairdiv
