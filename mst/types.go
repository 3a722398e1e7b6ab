// Package mst defines options and sentinel errors for spanning-tree builds.
package mst

import "errors"

// ErrNoMatrix indicates Build was called without a distance matrix.
var ErrNoMatrix = errors.New("mst: nil distance matrix")

// ErrMissingSequence indicates a candidate index had neither a matrix entry
// nor a backing sequence to compute one from.
var ErrMissingSequence = errors.New("mst: index not covered by matrix or sequences")

// Options configures a spanning-tree build.
//
// Fields:
//
//	Shuffle   bool  — randomize candidate join order (excluding the root)
//	                  before the greedy sweep; the source of per-sample
//	                  variability for consensus aggregation.
//	Ancestors bool  — run ancestral inference first and let real sequences
//	                  attach to inferred intermediates.
//	Seed      int64 — seed for shuffling and inference; 0 selects a fixed
//	                  default (reproducible runs by default).
type Options struct {
	Shuffle   bool
	Ancestors bool
	Seed      int64
}

// Option mutates Options before the build.
type Option func(*Options)

// WithShuffle toggles randomized candidate order.
func WithShuffle(on bool) Option {
	return func(o *Options) { o.Shuffle = on }
}

// WithAncestors toggles ancestral inference before tree construction.
func WithAncestors(on bool) Option {
	return func(o *Options) { o.Ancestors = on }
}

// WithSeed sets the seed driving shuffling and inference.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the deterministic baseline: no shuffle, no
// inference, fixed default seed.
func DefaultOptions() Options { return Options{} }
