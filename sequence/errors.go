// SPDX-License-Identifier: MIT
// Package: dsviz/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending value, position) is attached with %w at the call site.
//   • Generate and ParseInts never panic; validation panics are confined to
//     option constructors (WithX...).

package sequence

import "errors"

// ErrInvalidCount indicates a requested element count outside [1, MaxCount].
var ErrInvalidCount = errors.New("sequence: count out of range")

// ErrInvalidInput indicates a token that is not a valid base-10 integer.
var ErrInvalidInput = errors.New("sequence: invalid integer")
