package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an Algorithm value or name the package does not implement.
var ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

// Algorithm selects a sorting strategy.
type Algorithm int

const (
	// Bubble repeatedly swaps adjacent out-of-order pairs.
	Bubble Algorithm = iota
	// Selection moves the minimum of the unsorted suffix into place each pass.
	Selection
)

// String returns the lower-case name accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case Bubble:
		return "bubble"
	case Selection:
		return "selection"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "bubble" or "selection" (case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bubble":
		return Bubble, nil
	case "selection":
		return Selection, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// PassFunc observes a completed pass. snapshot is a copy the callee may keep;
// pass is 1-based; comparisons and swaps are running totals.
type PassFunc[T cmp.Ordered] func(snapshot []T, pass, comparisons, swaps int)

// Result holds the outcome of a sort run.
type Result[T cmp.Ordered] struct {
	Sorted      []T
	Comparisons int
	Swaps       int
	Passes      int
}

// Option configures a sort run.
type Option[T cmp.Ordered] func(*Options[T])

// Options holds the observer and aliasing policy for a sort run.
type Options[T cmp.Ordered] struct {
	// OnPass is called after every outer-loop pass. Never nil after DefaultOptions.
	OnPass PassFunc[T]

	// InPlace sorts the caller's slice instead of a copy.
	InPlace bool
}

// DefaultOptions returns a no-op observer and copy-on-sort semantics.
func DefaultOptions[T cmp.Ordered]() Options[T] {
	return Options[T]{
		OnPass:  func([]T, int, int, int) {},
		InPlace: false,
	}
}

// WithOnPass registers the per-pass observer. A nil fn keeps the no-op default.
func WithOnPass[T cmp.Ordered](fn PassFunc[T]) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// WithInPlace makes the run mutate the caller's slice.
func WithInPlace[T cmp.Ordered]() Option[T] {
	return func(o *Options[T]) { o.InPlace = true }
}
