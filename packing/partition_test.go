package packing_test

import (
	"testing"

	"github.com/katalvlaran/dynprog/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxMin_BadParts: a partition needs at least one part.
func TestMaxMin_BadParts(t *testing.T) {
	_, err := packing.MaxMinValue([]int{1, 2}, 0)
	assert.ErrorIs(t, err, packing.ErrNoParts)

	_, _, err = packing.MaxMinPartition([]int{1, 2}, -1)
	assert.ErrorIs(t, err, packing.ErrNoParts)
}

// TestMaxMinValue_Small pins the optimum minimum part sum.
func TestMaxMinValue_Small(t *testing.T) {
	cases := []struct {
		items []int
		parts int
		want  int
	}{
		{items: []int{1, 2, 3, 4}, parts: 2, want: 5},
		{items: []int{1, 2, 3, 4, 5}, parts: 2, want: 7},
		{items: []int{11, 22, 33, 44, 55, 66, 77, 88, 99}, parts: 3, want: 165},
	}
	for _, tc := range cases {
		got, err := packing.MaxMinValue(tc.items, tc.parts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "items %v into %d parts", tc.items, tc.parts)
	}
}

// TestMaxMinPartition_Small pins both the value and the parts.
func TestMaxMinPartition_Small(t *testing.T) {
	cases := []struct {
		items []int
		parts int
		want  int
		split [][]int
	}{
		{
			items: []int{1, 2, 3, 4},
			parts: 2,
			want:  5,
			split: [][]int{{1, 4}, {2, 3}},
		},
		{
			items: []int{1, 2, 3, 4, 5},
			parts: 2,
			want:  7,
			split: [][]int{{3, 5}, {1, 2, 4}},
		},
		{
			items: []int{11, 22, 33, 44, 55, 66, 77, 88, 99},
			parts: 3,
			want:  165,
			split: [][]int{{66, 99}, {77, 88}, {11, 22, 33, 44, 55}},
		},
	}
	for _, tc := range cases {
		got, split, err := packing.MaxMinPartition(tc.items, tc.parts)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "items %v into %d parts", tc.items, tc.parts)
		assert.Equal(t, tc.split, split, "items %v into %d parts", tc.items, tc.parts)
	}
}

// TestMaxMin_SinglePart: one part gets everything, so the minimum is
// the total.
func TestMaxMin_SinglePart(t *testing.T) {
	got, split, err := packing.MaxMinPartition([]int{2, 4, 6}, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
	assert.Equal(t, [][]int{{2, 4, 6}}, split)
}
