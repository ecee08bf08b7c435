package deque_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/dsviz/deque"
)

// ExampleDeque_mixedEnds inserts at both ends and drains from the rear.
func ExampleDeque_mixedEnds() {
	d := deque.New[int]()
	d.InsertFront(1)
	d.InsertRear(2)
	d.InsertFront(3)
	fmt.Println(d.Values(), d.Size())

	var drained []int
	for !d.IsEmpty() {
		v, _ := d.RemoveRear()
		drained = append(drained, v)
	}
	fmt.Println(drained)

	if _, err := d.RemoveFront(); errors.Is(err, deque.ErrEmpty) {
		fmt.Println("empty:", err)
	}
	// Output:
	// [3 1 2] 3
	// [2 1 3]
	// empty: deque: structure is empty
}

// ExampleDeque_HistoryLines shows the operation log with a pinned clock.
func ExampleDeque_HistoryLines() {
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	d := deque.New[string](deque.WithClock(func() time.Time { return at }))
	d.InsertRear("x")
	_, _ = d.RemoveFront()

	for _, line := range d.HistoryLines() {
		fmt.Println(line)
	}
	// Output:
	// [09:30:00] Dequeue created
	// [09:30:00] Inserted x at rear
	// [09:30:00] Removed x from front
}
