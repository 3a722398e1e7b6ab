// Package consensus defines the Edge output record, build options and
// sentinel errors.
package consensus

import (
	"errors"
	"runtime"
)

// ErrNoSamples indicates Build was asked for zero samples.
var ErrNoSamples = errors.New("consensus: nSamples must be at least 1")

// Edge is one parent→child link of the consensus tree. Indices refer to the
// input sequence list. Edges are produced once and never mutated.
type Edge struct {
	// Parent is the index of the parent sequence.
	Parent uint32

	// Child is the index of the child sequence.
	Child uint32

	// Distance is the Hamming distance from child to parent.
	Distance uint32

	// Weight is the fraction of samples containing this edge, in [0, 1].
	Weight float64
}

// Result carries the consensus tree and its parsimony diagnostics.
type Result struct {
	// Edges is the consensus tree as an adjacency list, one edge per
	// non-root sequence.
	Edges []Edge

	// BestParsimony is the total edge distance of the deterministic
	// (unshuffled, uninferred) MST — the best achievable score.
	BestParsimony uint32

	// SampleParsimony holds one realized score per sample, in completion
	// order within each wave.
	SampleParsimony []uint32

	// ConsensusParsimony is the total edge distance of the consensus tree.
	ConsensusParsimony uint32
}

// Options configures consensus aggregation.
//
// Fields:
//
//	Workers int   — worker-pool size; 0 selects hardware concurrency with a
//	                floor of two.
//	Seed    int64 — base seed; every sample derives an independent stream
//	                from it. 0 selects a fixed default.
type Options struct {
	Workers int
	Seed    int64
}

// Option mutates Options before the build.
type Option func(*Options)

// WithWorkers overrides the worker-pool size (useful in tests).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// WithSeed sets the base seed for sample stream derivation.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions sizes the pool to available hardware concurrency, never
// below two, and uses the fixed default seed.
func DefaultOptions() Options {
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}

	return Options{Workers: workers}
}
