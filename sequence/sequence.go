// SPDX-License-Identifier: MIT
// Package: dsviz/sequence
//
// sequence.go — input arrays for sort runs.

// Package sequence produces and parses the integer arrays fed to the sorting
// engine: seeded uniform draws in a closed range, or user-typed lists.
//
// Validation here is presentation-level (element counts, malformed numbers);
// the deque and sorting packages accept any input.
package sequence

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"unicode"
)

// Generate returns n integers drawn uniformly from the configured range
// (default [DefaultMin, DefaultMax]). Any range WithRange accepts is valid,
// up to [math.MinInt, math.MaxInt].
// Returns ErrInvalidCount if n is not in [1, MaxCount].
//
// Complexity: O(n) time and space.
func Generate(n int, opts ...Option) ([]int, error) {
	if n <= 0 || n > MaxCount {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidCount, n, MaxCount)
	}
	c := newConfig(opts)
	// Width of [min, max] as an unsigned count; 0 means the full 64-bit range.
	span := uint64(c.max) - uint64(c.min) + 1
	out := make([]int, n)
	for i := range out {
		out[i] = int(uint64(c.min) + draw(c.rng, span))
	}
	return out, nil
}

// draw returns a uniform value in [0, span), or any uint64 when span is 0.
func draw(rng *rand.Rand, span uint64) uint64 {
	switch {
	case span == 0:
		return rng.Uint64()
	case span <= math.MaxInt:
		return uint64(rng.Intn(int(span)))
	}
	// Reject the low 2^64 mod span values so the modulo stays unbiased.
	threshold := -span % span
	for {
		if v := rng.Uint64(); v >= threshold {
			return v % span
		}
	}
}

// ParseInts parses a list of integers separated by commas and/or whitespace,
// e.g. "5,3, 8 1". Empty tokens are skipped.
// Returns ErrInvalidInput for the first malformed token and ErrInvalidCount
// if the list is empty or longer than MaxCount.
func ParseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 || len(fields) > MaxCount {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidCount, len(fields), MaxCount)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ParseInt parses one base-10 integer, wrapping failures in ErrInvalidInput.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return v, nil
}
