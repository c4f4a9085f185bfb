package seqdp_test

import (
	"testing"

	"github.com/katalvlaran/dynprog/seqdp"
)

// benchmarkSubsetSum runs the two-decision subset-sum program over n
// inputs. Without a binding capacity the live set doubles per step, so
// this measures raw generation churn.
func benchmarkSubsetSum(b *testing.B, n, capacity int) {
	inputs := make([]int, n)
	for i := range inputs {
		inputs[i] = i + 1
	}
	p := subsetSum(capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seqdp.MaxValue(inputs, p); err != nil {
			b.Fatalf("MaxValue failed: %v", err)
		}
	}
}

// BenchmarkMaxValue_Tight benchmarks a binding capacity that prunes most
// take-branches early.
func BenchmarkMaxValue_Tight(b *testing.B) {
	benchmarkSubsetSum(b, 18, 20)
}

// BenchmarkMaxValue_Loose benchmarks near-unfiltered doubling over 14
// inputs (2^14 final records).
func BenchmarkMaxValue_Loose(b *testing.B) {
	benchmarkSubsetSum(b, 14, 1<<30)
}

// BenchmarkMaxValueSolution_Tight measures the record arena plus replay
// on the pruned instance.
func BenchmarkMaxValueSolution_Tight(b *testing.B) {
	inputs := make([]int, 18)
	for i := range inputs {
		inputs[i] = i + 1
	}
	p := subsetSumSolution(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := seqdp.MaxValueSolution(inputs, p); err != nil {
			b.Fatalf("MaxValueSolution failed: %v", err)
		}
	}
}
