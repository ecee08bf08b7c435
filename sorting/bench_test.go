package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsviz/sorting"
)

// randomInts returns n deterministic pseudo-random values in [1,100].
func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(1))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(100) + 1
	}
	return out
}

// BenchmarkBubbleSort_100 measures a run at the visualizer's maximum size.
func BenchmarkBubbleSort_100(b *testing.B) {
	in := randomInts(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sorting.BubbleSort(in)
	}
}

// BenchmarkSelectionSort_100 measures a run at the visualizer's maximum size.
func BenchmarkSelectionSort_100(b *testing.B) {
	in := randomInts(100)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sorting.SelectionSort(in)
	}
}

// BenchmarkBubbleSort_Observed includes one snapshot copy per pass.
func BenchmarkBubbleSort_Observed(b *testing.B) {
	in := randomInts(100)
	onPass := sorting.WithOnPass(func([]int, int, int, int) {})
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = sorting.BubbleSort(in, onPass)
	}
}
