package fairdiv_test

import (
	"fmt"

	"github.com/katalvlaran/dynprog/fairdiv"
)

// ExampleEgalitarianAllocation divides four items between two agents
// with opposite preferences, maximizing the worse-off agent's value.
func ExampleEgalitarianAllocation() {
	matrix := [][]int{
		{11, 22, 33, 44}, // agent 0 prefers the later items
		{44, 33, 22, 11}, // agent 1 prefers the earlier items
	}

	value, bundles, err := fairdiv.EgalitarianAllocation(matrix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("max-min value:", value)
	fmt.Println("bundles:", bundles)
	// Output:
	// max-min value: 77
	// bundles: [[2 3] [0 1]]
}

// ExampleUtilitarianPROP1Allocation finds the most valuable allocation
// that keeps every agent within one item of its proportional share.
func ExampleUtilitarianPROP1Allocation() {
	matrix := [][]int{
		{11, 0, 11},
		{33, 44, 55},
	}

	value, bundles, err := fairdiv.UtilitarianPROP1Allocation(matrix)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("utilitarian value:", value)
	fmt.Println("bundles:", bundles)
	// Output:
	// utilitarian value: 132
	// bundles: [[] [0 1 2]]
}
