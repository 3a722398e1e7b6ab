// Package markov: substitution-rate estimation over consensus edges.
package markov

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/clonelab/lineage/consensus"
	"github.com/clonelab/lineage/dna"
)

// ErrBadEdge indicates an edge references a sequence index outside the input
// list.
var ErrBadEdge = errors.New("markov: edge endpoint out of range")

// baseIndex maps A, C, G, T to matrix indices 0..3.
func baseIndex(c byte) (int, error) {
	switch c {
	case 'A':
		return 0, nil
	case 'C':
		return 1, nil
	case 'G':
		return 2, nil
	case 'T':
		return 3, nil
	default:
		return 0, fmt.Errorf("%w: %q", dna.ErrNonACGT, c)
	}
}

// Infer builds the 4×4 column-stochastic substitution matrix from observed
// parent→child base pairs along edges.
//
// Steps:
//  1. For every edge, walk the aligned sites of the parent and child
//     sequences; count transitions column = parent base, row = child base.
//     Endpoints must exist (ErrBadEdge), align (dna.ErrLengthMismatch) and
//     be strictly ACGT (dna.ErrNonACGT — gaps included).
//  2. Normalize each column by its count sum; unobserved parent bases take
//     an identity diagonal entry.
//
// Complexity: O(E·L) for E edges over length-L sequences.
func Infer(sequences []string, edges []consensus.Edge) (*mat.Dense, error) {
	model := mat.NewDense(4, 4, nil)
	var colSums [4]float64

	// 1. Transition counting.
	for _, e := range edges {
		if int(e.Parent) >= len(sequences) || int(e.Child) >= len(sequences) {
			return nil, fmt.Errorf("%w: %d→%d over %d sequences", ErrBadEdge, e.Parent, e.Child, len(sequences))
		}
		pnts := sequences[e.Parent]
		cnts := sequences[e.Child]
		if len(pnts) != len(cnts) {
			return nil, dna.ErrLengthMismatch
		}

		for i := 0; i < len(pnts); i++ {
			c, err := baseIndex(pnts[i])
			if err != nil {
				return nil, err
			}
			r, err := baseIndex(cnts[i])
			if err != nil {
				return nil, err
			}
			model.Set(r, c, model.At(r, c)+1)
			colSums[c]++
		}
	}

	// 2. Column normalization with identity fallback.
	for c := 0; c < 4; c++ {
		if colSums[c] == 0 {
			model.Set(c, c, 1)
			continue
		}
		for r := 0; r < 4; r++ {
			model.Set(r, c, model.At(r, c)/colSums[c])
		}
	}

	return model, nil
}
