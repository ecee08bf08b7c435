package deque

import (
	"fmt"
	"log/slog"
	"time"
)

// node holds one value and the link to its successor; the last node has next == nil.
type node[T comparable] struct {
	value T
	next  *node[T]
}

// Deque is a double-ended queue over a singly linked list.
//
// front and rear are both nil when empty and point at the same node when
// exactly one value is held. history only grows, except on Create.
type Deque[T comparable] struct {
	front   *node[T]
	rear    *node[T]
	count   int
	history []Entry

	now    func() time.Time
	logger *slog.Logger
}

// New returns an empty Deque whose history already holds the creation entry.
func New[T comparable](opts ...Option) *Deque[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Deque[T]{now: o.now, logger: o.logger}
	d.Create()
	return d
}

// Create resets d to empty, discards its history, and records "Dequeue created".
// Nodes held before the reset become unreachable.
func (d *Deque[T]) Create() {
	d.front, d.rear = nil, nil
	d.count = 0
	d.history = nil
	d.record(OpCreate, "")
}

// InsertFront adds v before the current front.
func (d *Deque[T]) InsertFront(v T) {
	n := &node[T]{value: v}
	if d.front == nil {
		d.front, d.rear = n, n
	} else {
		n.next = d.front
		d.front = n
	}
	d.count++
	d.record(OpInsertFront, fmt.Sprint(v))
}

// InsertRear adds v after the current rear.
func (d *Deque[T]) InsertRear(v T) {
	n := &node[T]{value: v}
	if d.rear == nil {
		d.front, d.rear = n, n
	} else {
		d.rear.next = n
		d.rear = n
	}
	d.count++
	d.record(OpInsertRear, fmt.Sprint(v))
}

// RemoveFront removes and returns the front value.
// Returns ErrEmpty, leaving d untouched, when there is nothing to remove.
func (d *Deque[T]) RemoveFront() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}
	old := d.front
	d.front = old.next
	old.next = nil
	if d.front == nil {
		d.rear = nil
	}
	d.count--
	d.record(OpRemoveFront, fmt.Sprint(old.value))

	return old.value, nil
}

// RemoveRear removes and returns the rear value.
// Returns ErrEmpty, leaving d untouched, when there is nothing to remove.
//
// Without back-links the new rear is found by walking from the front: O(n).
func (d *Deque[T]) RemoveRear() (T, error) {
	var zero T
	if d.count == 0 {
		return zero, ErrEmpty
	}
	old := d.rear
	if d.front == d.rear {
		d.front, d.rear = nil, nil
	} else {
		prev := d.front
		for prev.next != d.rear {
			prev = prev.next
		}
		prev.next = nil
		d.rear = prev
	}
	d.count--
	d.record(OpRemoveRear, fmt.Sprint(old.value))

	return old.value, nil
}

// Size returns the number of values held.
func (d *Deque[T]) Size() int { return d.count }

// IsEmpty reports whether Size() == 0.
func (d *Deque[T]) IsEmpty() bool { return d.count == 0 }

// Values returns the printable form of every value, front to rear.
// The result is never nil.
func (d *Deque[T]) Values() []string {
	out := make([]string, 0, d.count)
	for cur := d.front; cur != nil; cur = cur.next {
		out = append(out, fmt.Sprint(cur.value))
	}
	return out
}

// History returns a copy of the operation log in the order it was written.
func (d *Deque[T]) History() []Entry {
	out := make([]Entry, len(d.history))
	copy(out, d.history)
	return out
}

// HistoryLines returns every history entry rendered with Entry.String.
func (d *Deque[T]) HistoryLines() []string {
	out := make([]string, len(d.history))
	for i, e := range d.history {
		out[i] = e.String()
	}
	return out
}

// record appends a history entry and mirrors it to the logger.
func (d *Deque[T]) record(op Op, value string) {
	e := Entry{At: d.now(), Op: op, Value: value}
	d.history = append(d.history, e)
	d.logger.Debug("deque operation",
		slog.String("op", op.String()),
		slog.String("value", value),
		slog.Int("size", d.count),
	)
}
