// Package dsviz is a small teaching engine for two elementary ideas: a
// double-ended queue on a singly linked list, and O(n²) comparison sorts that
// report their progress pass by pass.
//
// What is inside?
//
//	deque/      generic Deque[T] with O(1) front operations, O(n) rear removal
//	            and an append-only, timestamped operation history
//	sorting/    bubble and selection sort over cmp.Ordered, counting comparisons
//	            and swaps, with a synchronous per-pass observer (WithOnPass)
//	sequence/   seeded input generation and parsing for sort runs
//	cmd/dsviz   terminal front-end: `dsviz deque`, `dsviz sort`, `dsviz generate`
//
// The engines are pure: no goroutines, no sleeping, no global state. Pacing,
// formatting and input validation belong to the caller.
//
// Quick ASCII example:
//
//	front                     rear
//	  │                         │
//	  ▼                         ▼
//	[ 3 ] ──► [ 1 ] ──► [ 2 ] ──► nil
//
//	insertFront(1), insertRear(2), insertFront(3)
//
//	go install github.com/katalvlaran/dsviz/cmd/dsviz@latest
package dsviz
