// Package mst: the randomized Prim-style selection sweep.
package mst

import (
	"math"
	"math/rand"

	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/dna"
	"github.com/clonelab/lineage/infer"
)

// maxDistance is the "unreached" candidate distance.
const maxDistance = math.MaxUint32

// candidate tracks the best known attachment for one not-yet-joined node.
type candidate struct {
	p uint32 // best candidate parent found so far
	c uint32 // node index this candidate attaches
	d uint32 // packed distance to p, maxDistance when unreached
}

// Build constructs a spanning tree over seqs (plus inferred ancestors when
// enabled), rooted at index 0.
//
// seqs may be shorter than the matrix — the consensus stage builds its final
// tree over a bare frequency matrix with no sequences at all — but any index
// outside the matrix must be backed by a sequence for the on-the-fly
// distance (ErrMissingSequence otherwise).
//
// Steps:
//  1. Optionally infer ancestors and append them to the working sequence
//     list. The node universe is max(len(sequences), m.Rows()).
//  2. Seed a candidate per node, all unreached; optionally shuffle the
//     candidates behind the root.
//  3. Selection sweep: for each pivot, relax every remaining candidate
//     against the previously attached node — taking the packed matrix entry,
//     or packing raw Hamming distances when the pair leaves the matrix —
//     then swap the cheapest remaining candidate into the pivot slot.
//  4. Emit tree[i] = parent of i. tree[0] stays 0, the root's unused entry.
//
// Complexity: O(n²) relaxations, each O(1) or O(L) off-matrix.
func Build(seqs []string, m *distmat.Matrix, opts ...Option) ([]uint32, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if m == nil {
		return nil, ErrNoMatrix
	}

	rng := rngFromSeed(o.Seed)

	// 1. Working sequence list, optionally extended by inferred ancestors.
	sequences := seqs
	if o.Ancestors {
		inferred, err := infer.Ancestors(seqs, m, infer.WithSeed(deriveSeed(o.Seed, 1)))
		if err != nil {
			return nil, err
		}
		sequences = make([]string, 0, len(seqs)+len(inferred))
		sequences = append(sequences, seqs...)
		sequences = append(sequences, inferred...)
	}

	dim := len(sequences)
	if m.Rows() > dim {
		dim = m.Rows()
	}

	// 2. One candidate per node. Index 0 is the root and stays in place.
	joins := make([]candidate, dim)
	for i := range joins {
		joins[i] = candidate{p: 0, c: uint32(i), d: maxDistance}
	}
	if o.Shuffle {
		tail := joins[1:]
		rng.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
	}

	// 3. Greedy sweep. joins[:pivot] is the attached tree; the node attached
	//    last is the only one the remaining candidates haven't seen yet.
	for pivot := 1; pivot < len(joins); pivot++ {
		last := joins[pivot-1].c

		minI := pivot
		minD := joins[pivot].d
		for i := pivot; i < len(joins); i++ {
			d, err := pairDistance(sequences, m, joins[i].c, last)
			if err != nil {
				return nil, err
			}
			if d < joins[i].d {
				joins[i].d = d
				joins[i].p = last
			}
			if joins[i].d < minD {
				minD = joins[i].d
				minI = i
			}
		}
		joins[pivot], joins[minI] = joins[minI], joins[pivot]
	}

	// 4. Parent vector.
	tree := make([]uint32, dim)
	for _, j := range joins {
		tree[j.c] = j.p
	}

	return tree, nil
}

// pairDistance returns the packed distance from child c to parent p: the
// matrix entry when both indices are covered, otherwise packed raw Hamming
// distances (child↔parent high, parent↔root low).
func pairDistance(sequences []string, m *distmat.Matrix, c, p uint32) (uint32, error) {
	if int(c) < m.Rows() && int(p) < m.Rows() {
		return m.At(int(c), int(p)), nil
	}
	if int(c) >= len(sequences) || int(p) >= len(sequences) {
		return 0, ErrMissingSequence
	}

	d1, err := dna.Hamming(sequences[c], sequences[p])
	if err != nil {
		return 0, err
	}
	d2, err := dna.Hamming(sequences[p], sequences[0])
	if err != nil {
		return 0, err
	}

	return distmat.Pack(d1, d2), nil
}

// ParsimonyScore sums the child-parent distances of every real node's edge to
// its nearest real ancestor: parents outside the matrix (inferred ancestors)
// are chased until a real one is found. Diagnostic only.
//
// Complexity: O(n) with short inferred chains.
func ParsimonyScore(tree []uint32, m *distmat.Matrix) uint32 {
	var score uint32
	for c := 1; c < m.Rows(); c++ {
		p := tree[c]
		for int(p) >= m.Rows() {
			p = tree[p]
		}
		score += distmat.Distance(m.At(c, int(p)))
	}

	return score
}

// rng helpers follow the same determinism policy as the infer package: an
// explicit Rand per build, fixed default seed, SplitMix64 stream derivation
// for nested stages.

const defaultRNGSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into an independent seed
// using the canonical SplitMix64 finalizer, so nested stages (inference under
// a shuffled build) never share a stream with their parent.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
