package sorting

import (
	"cmp"
	"fmt"
	"slices"
)

// sorter carries the mutable state of one run: the working array, the counters
// and the resolved options.
type sorter[T cmp.Ordered] struct {
	a           []T
	comparisons int
	swaps       int
	passes      int
	opts        Options[T]
}

// Sort runs alg over data and returns the sorted values with final counters.
// Returns ErrUnknownAlgorithm if alg is neither Bubble nor Selection.
func Sort[T cmp.Ordered](data []T, alg Algorithm, opts ...Option[T]) (Result[T], error) {
	switch alg {
	case Bubble:
		return BubbleSort(data, opts...), nil
	case Selection:
		return SelectionSort(data, opts...), nil
	default:
		return Result[T]{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, alg)
	}
}

func newSorter[T cmp.Ordered](data []T, opts []Option[T]) *sorter[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	a := data
	if !o.InPlace {
		a = slices.Clone(data)
	}
	return &sorter[T]{a: a, opts: o}
}

// less counts one comparison and reports a[i] < a[j].
func (s *sorter[T]) less(i, j int) bool {
	s.comparisons++
	return cmp.Less(s.a[i], s.a[j])
}

func (s *sorter[T]) swap(i, j int) {
	s.a[i], s.a[j] = s.a[j], s.a[i]
	s.swaps++
}

// endPass hands the observer an independent snapshot of the working array.
func (s *sorter[T]) endPass() {
	s.passes++
	s.opts.OnPass(slices.Clone(s.a), s.passes, s.comparisons, s.swaps)
}

func (s *sorter[T]) result() Result[T] {
	return Result[T]{
		Sorted:      s.a,
		Comparisons: s.comparisons,
		Swaps:       s.swaps,
		Passes:      s.passes,
	}
}
