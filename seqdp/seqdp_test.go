package seqdp_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dynprog/seqdp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subsetSum builds the canonical two-decision program: take the input
// (bounded by capacity) or skip it; the state is the running sum.
func subsetSum(capacity int) seqdp.Program[int, int] {
	return seqdp.Program[int, int]{
		InitialStates: []int{0},
		Transitions: []seqdp.Transition[int, int]{
			func(s, item int) int { return s + item },
			func(s, _ int) int { return s },
		},
		Value: func(s int) float64 { return float64(s) },
		Filters: []seqdp.Filter[int, int]{
			func(s, item int) bool { return s+item <= capacity },
			func(int, int) bool { return true },
		},
	}
}

// subsetSumSolution extends subsetSum with chosen-item collection.
func subsetSumSolution(capacity int) seqdp.SolutionProgram[int, int, []int] {
	return seqdp.SolutionProgram[int, int, []int]{
		Program:         subsetSum(capacity),
		InitialSolution: nil,
		Constructions: []seqdp.Construction[[]int, int]{
			func(sol []int, item int) []int { return append(sol, item) },
			func(sol []int, _ int) []int { return sol },
		},
	}
}

// TestMaxValue_SubsetSum pins the reference subset-sum instance.
func TestMaxValue_SubsetSum(t *testing.T) {
	inputs := []int{100, 200, 400, 700, 1100, 1600, 2200, 2900, 3700}

	v, err := seqdp.MaxValue(inputs, subsetSum(4005))
	require.NoError(t, err)
	assert.Equal(t, 4000.0, v)
}

// TestMaxValueSolution_SubsetSum pins value, solution, state and record
// count for the reference instance.
func TestMaxValueSolution_SubsetSum(t *testing.T) {
	inputs := []int{100, 200, 400, 700, 1100, 1600, 2200, 2900, 3700}

	res, err := seqdp.MaxValueSolution(inputs, subsetSumSolution(4005))
	require.NoError(t, err)
	assert.Equal(t, 4000.0, res.Value)
	assert.Equal(t, 4000, res.State, "state is the chosen sum")
	assert.Equal(t, []int{100, 200, 3700}, res.Solution, "replay must rebuild the chosen items in input order")
	assert.Positive(t, res.Processed)
}

// TestMaxValue_GenerationGrowth verifies |gen i| == |gen i-1| × |transitions|
// when no filter rejects, via the OnStep hook.
func TestMaxValue_GenerationGrowth(t *testing.T) {
	p := subsetSum(1 << 30) // capacity high enough that no pair is filtered
	inputs := []int{1, 2, 3, 4}

	var sizes []int
	_, err := seqdp.MaxValue(inputs, p, seqdp.WithOnStep(func(step, produced int) {
		assert.Equal(t, len(sizes), step)
		sizes = append(sizes, produced)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 8, 16}, sizes, "each generation doubles with two unfiltered transitions")
}

// TestMaxValue_EmptyInputs checks the boundary: no inputs returns the
// best initial state's value.
func TestMaxValue_EmptyInputs(t *testing.T) {
	p := subsetSum(10)
	p.InitialStates = []int{3, 7, 5}

	v, err := seqdp.MaxValue(nil, p)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	res, err := seqdp.MaxValueSolution(nil, seqdp.SolutionProgram[int, int, []int]{
		Program:         p,
		InitialSolution: []int{42},
		Constructions: []seqdp.Construction[[]int, int]{
			func(sol []int, item int) []int { return append(sol, item) },
			func(sol []int, _ int) []int { return sol },
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Value)
	assert.Equal(t, []int{42}, res.Solution, "no inputs leaves the initial solution untouched")
}

// TestMaxValue_BadProgram covers eager configuration validation.
func TestMaxValue_BadProgram(t *testing.T) {
	noInitial := subsetSum(10)
	noInitial.InitialStates = nil
	_, err := seqdp.MaxValue([]int{1}, noInitial)
	assert.ErrorIs(t, err, seqdp.ErrNoInitialStates)

	noTransitions := subsetSum(10)
	noTransitions.Transitions = nil
	noTransitions.Filters = nil
	_, err = seqdp.MaxValue([]int{1}, noTransitions)
	assert.ErrorIs(t, err, seqdp.ErrNoTransitions)

	noValue := subsetSum(10)
	noValue.Value = nil
	_, err = seqdp.MaxValue([]int{1}, noValue)
	assert.ErrorIs(t, err, seqdp.ErrNilValue)

	shortFilters := subsetSum(10)
	shortFilters.Filters = shortFilters.Filters[:1]
	_, err = seqdp.MaxValue([]int{1}, shortFilters)
	assert.ErrorIs(t, err, seqdp.ErrLengthMismatch, "filter set must align with transitions")

	shortConstructions := subsetSumSolution(10)
	shortConstructions.Constructions = shortConstructions.Constructions[:1]
	_, err = seqdp.MaxValueSolution([]int{1}, shortConstructions)
	assert.ErrorIs(t, err, seqdp.ErrLengthMismatch, "construction set must align with transitions")
}

// TestMaxValue_AllFiltered verifies the empty-generation error.
func TestMaxValue_AllFiltered(t *testing.T) {
	p := subsetSum(10)
	p.Filters = []seqdp.Filter[int, int]{
		func(int, int) bool { return false },
		func(int, int) bool { return false },
	}

	_, err := seqdp.MaxValue([]int{1}, p)
	assert.ErrorIs(t, err, seqdp.ErrNoLiveStates)
}

// TestMaxValue_NilFiltersAcceptAll verifies the filter default.
func TestMaxValue_NilFiltersAcceptAll(t *testing.T) {
	p := subsetSum(0)
	p.Filters = nil // without the capacity filter every sum is reachable

	v, err := seqdp.MaxValue([]int{3, 5}, p)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
}

// TestMaxValue_StateLimit verifies the record guard.
func TestMaxValue_StateLimit(t *testing.T) {
	inputs := []int{1, 2, 3, 4, 5, 6, 7, 8}

	_, err := seqdp.MaxValue(inputs, subsetSum(1<<30), seqdp.WithStateLimit(100))
	assert.ErrorIs(t, err, seqdp.ErrStateLimit)

	_, err = seqdp.MaxValueSolution(inputs, subsetSumSolution(1<<30), seqdp.WithStateLimit(100))
	assert.ErrorIs(t, err, seqdp.ErrStateLimit)
}

// TestMaxValue_ContextCancelled verifies cancellation surfaces the
// context error.
func TestMaxValue_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := seqdp.MaxValue([]int{1, 2}, subsetSum(10), seqdp.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMaxValue_BadOption ensures a negative state limit is rejected.
func TestMaxValue_BadOption(t *testing.T) {
	_, err := seqdp.MaxValue([]int{1}, subsetSum(10), seqdp.WithStateLimit(-5))
	assert.ErrorIs(t, err, seqdp.ErrOptionViolation)
}

// TestMaxValueSolution_Deterministic re-runs one instance and expects
// identical results.
func TestMaxValueSolution_Deterministic(t *testing.T) {
	inputs := []int{3, 5, 7}

	first, err := seqdp.MaxValueSolution(inputs, subsetSumSolution(11))
	require.NoError(t, err)
	second, err := seqdp.MaxValueSolution(inputs, subsetSumSolution(11))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{3, 7}, first.Solution)
}
