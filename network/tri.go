package network

import "math"

// TriIndex maps a linear index k into the strict lower triangle of a square
// matrix, returning the pair (i, j) with i > j ≥ 0. Pairs enumerate row by
// row: k=0 → (1,0), k=1 → (2,0), k=2 → (2,1), k=3 → (3,0), …
//
// The inverse is k = i·(i−1)/2 + j.
//
// Steps:
//  1. Solve r·(r+1)/2 = k+1 for r via the quadratic formula.
//  2. An integral r means k+1 closes row r exactly: the pair is (r, r−1).
//  3. Otherwise the pair sits inside row ⌊r⌋+1 at offset k+1 − ⌊r⌋·(⌊r⌋+1)/2 − 1.
//
// Complexity: O(1).
func TriIndex(k int) (i, j int) {
	m := k + 1
	r := (math.Sqrt(float64(1+8*m)) - 1) / 2
	ir := int(r)
	if r == float64(ir) {
		return ir, ir - 1
	}

	return ir + 1, m - ir*(ir+1)/2 - 1
}
