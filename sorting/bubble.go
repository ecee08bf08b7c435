package sorting

import "cmp"

// BubbleSort sorts data ascending by adjacent exchanges.
//
// Every pass runs, even once the array is already ordered, so the observer is
// called exactly len(data) times.
func BubbleSort[T cmp.Ordered](data []T, opts ...Option[T]) Result[T] {
	s := newSorter(data, opts)
	n := len(s.a)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			// a[j] > a[j+1]
			if s.less(j+1, j) {
				s.swap(j, j+1)
			}
		}
		s.endPass()
	}
	return s.result()
}
