// Package deque provides a double-ended queue built on a singly linked list,
// with an append-only, timestamped history of every operation applied to it.
//
// What
//
//   - InsertFront / InsertRear add a value at either end in O(1).
//   - RemoveFront removes the first value in O(1).
//   - RemoveRear removes the last value in O(n): nodes carry no back-link, so the
//     predecessor of the rear node is found by walking forward from the front.
//   - Values renders the contents front to rear; History returns the log.
//   - Create resets the structure and its history, leaving a single
//     "Dequeue created" entry.
//
// Why
//
//	The structure is deliberately textbook: it exists to show pointer rewiring at
//	both list boundaries, including the one-element case where front and rear
//	must be cleared together.
//
// Complexity (n = Size())
//
//   - InsertFront, InsertRear, RemoveFront, Size: O(1)
//   - RemoveRear, Values:                         O(n)
//   - History:                                    O(h), h = number of entries
//
// Usage
//
//	d := deque.New[int]()
//	d.InsertFront(1)
//	d.InsertRear(2)
//	d.InsertFront(3)
//	fmt.Println(d.Values()) // [3 1 2]
//
//	v, err := d.RemoveRear()
//	if errors.Is(err, deque.ErrEmpty) {
//	    // nothing to remove
//	}
//
// Options
//
//   - WithClock(fn):   time source for history timestamps (default time.Now).
//   - WithLogger(l):   slog logger; every operation is logged at Debug level.
//
// Errors
//
//   - ErrEmpty  if RemoveFront or RemoveRear is called on an empty deque.
//     The deque is left untouched.
//
// A Deque is not safe for concurrent use.
package deque
