package deque

import (
	"errors"
	"io"
	"log/slog"
	"time"
)

// ErrEmpty is returned by RemoveFront and RemoveRear when the deque holds no values.
var ErrEmpty = errors.New("deque: structure is empty")

// historyTimeLayout renders entry timestamps as HH:MM:SS.
const historyTimeLayout = "15:04:05"

// Op identifies the operation that produced a history Entry.
type Op int

const (
	// OpCreate marks a reset of the deque.
	OpCreate Op = iota
	// OpInsertFront marks an insertion at the front.
	OpInsertFront
	// OpInsertRear marks an insertion at the rear.
	OpInsertRear
	// OpRemoveFront marks a removal from the front.
	OpRemoveFront
	// OpRemoveRear marks a removal from the rear.
	OpRemoveRear
)

// String returns a short, stable name for the operation.
func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpInsertFront:
		return "insert_front"
	case OpInsertRear:
		return "insert_rear"
	case OpRemoveFront:
		return "remove_front"
	case OpRemoveRear:
		return "remove_rear"
	default:
		return "unknown"
	}
}

// Entry is a single record in the operation history.
//
// Value holds the printable form of the inserted or removed value and is empty
// for OpCreate.
type Entry struct {
	At    time.Time
	Op    Op
	Value string
}

// Description returns the human-readable text of the entry, without timestamp.
func (e Entry) Description() string {
	switch e.Op {
	case OpCreate:
		return "Dequeue created"
	case OpInsertFront:
		return "Inserted " + e.Value + " at front"
	case OpInsertRear:
		return "Inserted " + e.Value + " at rear"
	case OpRemoveFront:
		return "Removed " + e.Value + " from front"
	case OpRemoveRear:
		return "Removed " + e.Value + " from rear"
	default:
		return e.Op.String()
	}
}

// String renders the entry as "[HH:MM:SS] description".
func (e Entry) String() string {
	return "[" + e.At.Format(historyTimeLayout) + "] " + e.Description()
}

// Option configures a Deque at construction time.
type Option func(*options)

type options struct {
	now    func() time.Time
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithClock sets the time source used to stamp history entries.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("deque: WithClock(nil)")
	}
	return func(o *options) { o.now = now }
}

// WithLogger routes per-operation debug logs to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("deque: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}
