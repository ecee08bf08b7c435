// Package sorting implements bubble sort and selection sort instrumented for
// step-by-step visualization.
//
// What
//
//   - Sort ascending any slice of cmp.Ordered values.
//   - Count every element comparison and every element-pair exchange.
//   - Report progress after each outer-loop pass through an optional observer
//     (WithOnPass), which receives an independent snapshot of the array, the
//     1-based pass number and the running counters.
//
// Counting conventions
//
//	Bubble:    pass i ∈ [0,n) compares a[j] > a[j+1] for j ∈ [0, n-i-1).
//	           There is no early exit: a sorted input still runs all n passes.
//	Selection: pass i ∈ [0,n) scans j ∈ [i+1, n), one comparison per scanned
//	           candidate; a swap is counted only when the minimum moved.
//
//	Both therefore perform exactly n(n-1)/2 comparisons and report n passes.
//
// Determinism
//
//	Observers run synchronously, in pass order, on the calling goroutine. The
//	sort resumes only after the observer returns; the package never sleeps or
//	spawns goroutines. Any pacing for display belongs to the caller.
//
// Aliasing
//
//	By default the input is copied and left untouched. WithInPlace sorts the
//	caller's slice directly; Result.Sorted then aliases it.
//
// Complexity (n = len(data))
//
//   - Time:   O(n²) comparisons for both algorithms.
//   - Memory: O(n) for the working copy, plus O(n) per snapshot when observed.
//
// Usage
//
//	res, err := sorting.Sort([]int{5, 3, 8, 1}, sorting.Bubble,
//	    sorting.WithOnPass(func(s []int, pass, cmps, swaps int) {
//	        fmt.Printf("Pass %d: %v\n", pass, s)
//	    }),
//	)
//	// res.Sorted == [1 3 5 8], res.Comparisons == 6, res.Swaps == 4
//
// Errors
//
//   - ErrUnknownAlgorithm  if Sort or ParseAlgorithm receive an unsupported algorithm.
package sorting
