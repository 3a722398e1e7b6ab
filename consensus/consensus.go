// Package consensus: wave-parallel sampling and edge-frequency aggregation.
package consensus

import (
	"math"
	"sync"

	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/mst"
)

// maxCount is the initial per-edge counter value; observed edges count DOWN
// from here so the counter matrix sorts like a distance matrix.
const maxCount = math.MaxUint32

// Build aggregates nSamples randomized spanning trees over sequences into a
// weighted consensus tree rooted at sequences[0].
//
// Steps:
//  1. Build the shared packed distance matrix and the counter matrix
//     (all entries maxCount).
//  2. Score the deterministic MST for the BestParsimony diagnostic.
//  3. Sample in waves: up to Workers concurrent builds, each shuffled and
//     seeded from its own derived stream, optionally inferring ancestors.
//     After the whole wave joins, fold each sample into the counter matrix
//     on the calling goroutine: chase realized parents past inferred
//     indices to the nearest real ancestor, decrement the (child, parent)
//     counter, and record the sample's parsimony score.
//  4. Build the final MST over the counter matrix (no shuffle, no
//     inference) and emit Edges with weight = observed/nSamples.
//
// A failing sample fails the whole build; the first error encountered in
// wave order is returned.
//
// Complexity: O(nSamples · n²) work spread across the pool, O(n²) memory.
func Build(sequences []string, nSamples uint32, inferAncestors bool, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if nSamples == 0 {
		return nil, ErrNoSamples
	}

	// 1. Shared immutable distance matrix + counter matrix.
	dism, err := distmat.New(sequences)
	if err != nil {
		return nil, err
	}
	n := len(sequences)
	counts := distmat.NewFilled(n, maxCount)

	res := &Result{SampleParsimony: make([]uint32, 0, nSamples)}

	// 2. Best achievable parsimony: deterministic, uninferred build.
	best, err := mst.Build(sequences, dism)
	if err != nil {
		return nil, err
	}
	res.BestParsimony = mst.ParsimonyScore(best, dism)

	// 3. Waves of parallel samples. Workers write only their own slot;
	//    merging happens strictly after the wave joins.
	trees := make([][]uint32, o.Workers)
	errs := make([]error, o.Workers)

	stream := uint64(0)
	for remaining := nSamples; remaining > 0; {
		wave := o.Workers
		if uint32(wave) > remaining {
			wave = int(remaining)
		}
		remaining -= uint32(wave)

		var wg sync.WaitGroup
		for w := 0; w < wave; w++ {
			stream++
			wg.Add(1)
			go func(slot int, seed int64) {
				defer wg.Done()
				trees[slot], errs[slot] = mst.Build(sequences, dism,
					mst.WithShuffle(true),
					mst.WithAncestors(inferAncestors),
					mst.WithSeed(seed),
				)
			}(w, deriveSeed(o.Seed, stream))
		}
		wg.Wait()

		for w := 0; w < wave; w++ {
			if errs[w] != nil {
				return nil, errs[w]
			}
			res.SampleParsimony = append(res.SampleParsimony, merge(counts, dism, trees[w]))
		}
	}

	// 4. Final deterministic MST over the counter matrix.
	final, err := mst.Build(nil, counts)
	if err != nil {
		return nil, err
	}

	res.Edges = make([]Edge, 0, n-1)
	for c := 1; c < n; c++ {
		p := final[c]
		distance := distmat.Distance(dism.At(c, int(p)))
		res.ConsensusParsimony += distance
		res.Edges = append(res.Edges, Edge{
			Parent:   p,
			Child:    uint32(c),
			Distance: distance,
			Weight:   float64(maxCount-counts.At(c, int(p))) / float64(nSamples),
		})
	}

	return res, nil
}

// merge folds one sample into the counter matrix and returns the sample's
// parsimony score. Children of inferred ancestors are contracted onto their
// nearest real ancestor before accounting.
func merge(counts, dism *distmat.Matrix, tree []uint32) uint32 {
	n := dism.Rows()

	var score uint32
	for c := 1; c < n; c++ {
		p := tree[c]
		for int(p) >= n {
			p = tree[p]
		}
		score += distmat.Distance(dism.At(c, int(p)))
		counts.Set(c, int(p), counts.At(c, int(p))-1)
	}

	return score
}

// deriveSeed mixes the base seed and a per-sample stream id with the
// SplitMix64 finalizer, giving every sample an independent RNG stream (same
// policy as the mst and infer packages).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
