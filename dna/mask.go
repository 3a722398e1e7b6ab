// Package dna: 4-bit nucleotide presence masks for parsimony inference.
package dna

import "math/rand"

// Mask is a bitset of nucleotide presence in its low nibble:
// A=1, C=2, G=4, T=8 (bit 16 marks a gap, tolerated only while cleaning).
// A Mask with more than one bit set represents an ambiguous site.
type Mask uint8

// Per-base mask bits, in alphabet order.
const (
	MaskA Mask = 1 << iota
	MaskC
	MaskG
	MaskT
	maskGap
)

// maskBases maps a single-bit Mask back to its base character.
var maskBases = [...]byte{MaskA: 'A', MaskC: 'C', MaskG: 'G', MaskT: 'T', maskGap: '-'}

// Encode converts one nucleotide character to its presence Mask.
// Returns ErrNonACGT for characters outside {A,C,G,T,-}.
//
// Complexity: O(1).
func Encode(c byte) (Mask, error) {
	switch c {
	case 'A':
		return MaskA, nil
	case 'C':
		return MaskC, nil
	case 'G':
		return MaskG, nil
	case 'T':
		return MaskT, nil
	case '-':
		return maskGap, nil
	default:
		return 0, ErrNonACGT
	}
}

// EncodeSeq converts a sequence into its per-site Mask representation.
// Returns ErrNonACGT on the first invalid character.
//
// Complexity: O(len(s)).
func EncodeSeq(s string) ([]Mask, error) {
	b := make([]Mask, len(s))
	for i := 0; i < len(s); i++ {
		m, err := Encode(s[i])
		if err != nil {
			return nil, err
		}
		b[i] = m
	}

	return b, nil
}

// RandomBit returns one of the set bits of m, chosen uniformly at random
// from rng. m must have at least one bit set; a zero mask indicates a bug in
// the caller's Fitch bookkeeping and panics.
//
// Complexity: O(1) (at most five bit probes).
func RandomBit(m Mask, rng *rand.Rand) Mask {
	if m == 0 {
		panic("dna: RandomBit on empty mask")
	}

	var set [5]Mask
	n := 0
	for b := MaskA; b <= maskGap; b <<= 1 {
		if m&b != 0 {
			set[n] = b
			n++
		}
	}

	return set[rng.Intn(n)]
}

// DecodeSeq converts per-site Masks back into a sequence string.
// Ambiguous sites are resolved by drawing one set bit at random from rng.
//
// Complexity: O(len(b)).
func DecodeSeq(b []Mask, rng *rand.Rand) string {
	s := make([]byte, len(b))
	for i, m := range b {
		s[i] = maskBases[RandomBit(m, rng)]
	}

	return string(s)
}
