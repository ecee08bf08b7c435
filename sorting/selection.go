package sorting

import "cmp"

// SelectionSort sorts data ascending by moving the minimum of the unsorted
// suffix into position i on pass i.
//
// Each scanned candidate counts as one comparison whether or not it becomes the
// new minimum; a swap is counted only when the minimum is not already at i.
func SelectionSort[T cmp.Ordered](data []T, opts ...Option[T]) Result[T] {
	s := newSorter(data, opts)
	n := len(s.a)
	for i := 0; i < n; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if s.less(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			s.swap(i, minIdx)
		}
		s.endPass()
	}
	return s.result()
}
