// SPDX-License-Identifier: MIT
// Package: dsviz/sequence
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself returns errors and never panics.
//   • Determinism is explicit: WithSeed or WithRand. Without either, the
//     fixed defaultSeed is used, so two bare calls return the same values.

package sequence

import "math/rand"

// Defaults mirror the visualizer's "Generate Numbers" form.
const (
	MaxCount   = 100 // largest accepted element count
	DefaultMin = 1   // smallest generated value (inclusive)
	DefaultMax = 100 // largest generated value (inclusive)
)

// defaultSeed is used when no RNG is configured or WithSeed(0) is given.
const defaultSeed int64 = 1

// Option customizes a Generate call.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	min, max int
}

func newConfig(opts []Option) config {
	c := config{min: DefaultMin, max: DefaultMax}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(defaultSeed)
	}
	return c
}

// WithSeed draws values from a new RNG seeded with seed. Seed 0 selects defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rngFromSeed(seed) }
}

// WithRand draws values from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithRange sets the inclusive value range. Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("sequence: WithRange(lo>hi)")
	}
	return func(c *config) { c.min, c.max = lo, hi }
}

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
