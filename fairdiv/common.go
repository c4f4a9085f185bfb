// Package fairdiv holds the shared vocabulary of the fair-division
// programs: valuation matrices, item value vectors, and the copy-on-write
// helpers that grow states and bundles.
package fairdiv

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/dynprog/seqdp"
)

// ErrNoAllocation is returned when no allocation satisfies the requested
// fairness criterion.
var ErrNoAllocation = errors.New("fairdiv: no allocation satisfies the fairness criterion")

// ItemValueVectors converts a valuation matrix — matrix[i][j] is the
// value of item j to agent i — into one vector per item: the per-agent
// values of that item, with the item index appended as the last element.
// The trailing index is what solution construction records in bundles.
func ItemValueVectors(matrix [][]int) [][]int {
	agents := len(matrix)
	items := 0
	if agents > 0 {
		items = len(matrix[0])
	}
	vectors := make([][]int, items)
	for j := 0; j < items; j++ {
		vec := make([]int, agents+1)
		for i := 0; i < agents; i++ {
			vec[i] = matrix[i][j]
		}
		vec[agents] = j
		vectors[j] = vec
	}

	return vectors
}

// proportionalThresholds returns, per agent, the proportional fair share:
// the agent's value for the whole item set divided by the number of
// agents.
func proportionalThresholds(matrix [][]int) []float64 {
	agents := len(matrix)
	thresholds := make([]float64, agents)
	for i, row := range matrix {
		total := 0
		for _, v := range row {
			total += v
		}
		thresholds[i] = float64(total) / float64(agents)
	}

	return thresholds
}

// matrixTotal sums every entry of the valuation matrix.
func matrixTotal(matrix [][]int) int {
	total := 0
	for _, row := range matrix {
		for _, v := range row {
			total += v
		}
	}

	return total
}

// addValue copies values and credits agent with amount; states are
// shared across records, so in-place mutation is off the table.
func addValue(values []int, agent, amount int) []int {
	next := make([]int, len(values))
	copy(next, values)
	next[agent] += amount

	return next
}

// addIndex copies the bundle layout (shallow, rebinding only the
// receiving bundle) and appends the item index to it.
func addIndex(bundles [][]int, agent, index int) [][]int {
	next := make([][]int, len(bundles))
	copy(next, bundles)
	next[agent] = append(next[agent][:len(next[agent]):len(next[agent])], index)

	return next
}

// emptyBundles returns n distinct empty bundles.
func emptyBundles(n int) [][]int {
	bundles := make([][]int, n)
	for i := range bundles {
		bundles[i] = []int{}
	}

	return bundles
}

// bundleConstructions gives one construction per agent: receive the item
// whose index rides in the last slot of the item vector.
func bundleConstructions(agents int) []seqdp.Construction[[][]int, []int] {
	constructions := make([]seqdp.Construction[[][]int, []int], agents)
	for i := 0; i < agents; i++ {
		constructions[i] = func(sol [][]int, item []int) [][]int {
			return addIndex(sol, i, item[len(item)-1])
		}
	}

	return constructions
}

// intsKey renders an integer vector as a compact string, so that
// variable-length vectors can participate in comparable state keys.
func intsKey(v []int) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}

	return b.String()
}

// floatsKey is intsKey for float vectors; infinities render as +Inf/-Inf.
func floatsKey(v []float64) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}

	return b.String()
}

// intMatrixKey renders a matrix row-wise, rows separated by semicolons.
func intMatrixKey(m [][]int) string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(intsKey(row))
	}

	return b.String()
}

// floatMatrixKey is intMatrixKey for float matrices.
func floatMatrixKey(m [][]float64) string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(floatsKey(row))
	}

	return b.String()
}
