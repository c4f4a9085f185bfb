package packing_test

import (
	"testing"

	"github.com/katalvlaran/dynprog/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultipleSubsetSum_Small sweeps bin capacities over two items.
func TestMultipleSubsetSum_Small(t *testing.T) {
	items := []int{3, 5}
	cases := []struct {
		capacities []int
		want       int
	}{
		{capacities: []int{2, 2}, want: 0},
		{capacities: []int{4, 4}, want: 3},
		{capacities: []int{6, 6}, want: 8},
		{capacities: []int{8, 8}, want: 8},
	}
	for _, tc := range cases {
		got, err := packing.MultipleSubsetSum(items, tc.capacities)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "capacities %v", tc.capacities)
	}
}

// TestMultipleSubsetSumSolution_Small pins per-bin reconstructions.
func TestMultipleSubsetSumSolution_Small(t *testing.T) {
	items := []int{3, 5}
	cases := []struct {
		capacities []int
		want       [][]int
	}{
		{capacities: []int{2, 2}, want: [][]int{{}, {}}},
		{capacities: []int{4, 4}, want: [][]int{{3}, {}}},
		{capacities: []int{6, 6}, want: [][]int{{5}, {3}}},
		{capacities: []int{8, 8}, want: [][]int{{3, 5}, {}}},
	}
	for _, tc := range cases {
		got, err := packing.MultipleSubsetSumSolution(items, tc.capacities)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "capacities %v", tc.capacities)
	}
}

// TestMultipleSubsetSum_Reference pins the nine-item two-bin instance,
// value and packing.
func TestMultipleSubsetSum_Reference(t *testing.T) {
	items := []int{100, 200, 400, 700, 1100, 1600, 2200, 2900, 3700}
	capacities := []int{2005, 2006}

	got, err := packing.MultipleSubsetSum(items, capacities)
	require.NoError(t, err)
	assert.Equal(t, 4000, got)

	bins, err := packing.MultipleSubsetSumSolution(items, capacities)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{400, 1600}, {200, 700, 1100}}, bins)
}

// TestMultipleSubsetSum_NoBins: with no bins the only decision is to
// leave every item out.
func TestMultipleSubsetSum_NoBins(t *testing.T) {
	got, err := packing.MultipleSubsetSum([]int{3, 5}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}
