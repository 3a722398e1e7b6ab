// Package infer defines options and sentinel errors for ancestral inference.
package infer

import "errors"

// ErrDimensionMismatch indicates the distance matrix rows do not match the
// number of input sequences.
var ErrDimensionMismatch = errors.New("infer: distance matrix does not match sequences")

// ErrBadTopology indicates the linkage arena did not end up with exactly one
// parentless node. This is an internal invariant violation, not a user input
// problem, and aborts the whole build.
var ErrBadTopology = errors.New("infer: ancestor tree must have exactly one root")

// ErrNotLeaf indicates Reroot was invoked on a node that has children.
var ErrNotLeaf = errors.New("infer: reroot target must be a leaf")

// Options configures ancestral inference.
//
// Fields:
//
//	KnownAncestor string — sequence of the known common ancestor used to
//	                       resolve the root label; empty selects seqs[0],
//	                       the assumed ancestor.
//	Seed          int64  — seed for ambiguity resolution; 0 selects a fixed
//	                       default so results stay reproducible.
type Options struct {
	KnownAncestor string
	Seed          int64
}

// Option mutates Options before inference runs.
type Option func(*Options)

// WithKnownAncestor sets the known common-ancestor sequence.
func WithKnownAncestor(seq string) Option {
	return func(o *Options) { o.KnownAncestor = seq }
}

// WithSeed sets the random seed for ambiguity resolution.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// DefaultOptions returns the zero configuration: assumed ancestor seqs[0],
// fixed default seed.
func DefaultOptions() Options { return Options{} }
