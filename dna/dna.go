// Package dna: sequence cleaning, translation and Hamming distance.
package dna

import (
	"errors"
	"strings"
)

// ErrLengthMismatch indicates two sequences of different lengths were passed
// to an operation that requires an aligned, equal-length pair.
var ErrLengthMismatch = errors.New("dna: sequence length mismatch")

// ErrNonACGT indicates a character outside the nucleotide alphabet reached an
// operation that requires strict ACGT input.
var ErrNonACGT = errors.New("dna: non-ACGT character")

// alphabet is the full set of characters Clean retains, in mask-bit order.
// '-' participates only in cleaning and translation, never in inference.
const alphabet = "ACGT-"

// codonTable maps each of the 64 codons to its amino acid ('*' = stop).
var codonTable = map[string]byte{
	"AAA": 'K', "AAC": 'N', "AAG": 'K', "AAT": 'N',
	"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
	"AGA": 'R', "AGC": 'S', "AGG": 'R', "AGT": 'S',
	"ATA": 'I', "ATC": 'I', "ATG": 'M', "ATT": 'I',
	"CAA": 'Q', "CAC": 'H', "CAG": 'Q', "CAT": 'H',
	"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
	"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
	"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
	"GAA": 'E', "GAC": 'D', "GAG": 'E', "GAT": 'D',
	"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
	"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
	"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
	"TAA": '*', "TAC": 'Y', "TAG": '*', "TAT": 'Y',
	"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
	"TGA": '*', "TGC": 'C', "TGG": 'W', "TGT": 'C',
	"TTA": 'L', "TTC": 'F', "TTG": 'L', "TTT": 'F',
}

// Clean case-folds s and keeps only characters in {A,C,G,T,-}.
//
// Returns the cleaned sequence and the number of characters filtered out.
// Clean never fails: arbitrary input (FASTA headers gone astray, whitespace,
// IUPAC ambiguity codes) simply shrinks.
//
// Complexity: O(len(s)).
func Clean(s string) (string, int) {
	var b strings.Builder
	b.Grow(len(s))

	filtered := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		// Fold lowercase nucleotides to uppercase.
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if strings.IndexByte(alphabet, c) >= 0 {
			b.WriteByte(c)
		} else {
			filtered++
		}
	}

	return b.String(), filtered
}

// Translate converts a nucleotide sequence to its amino-acid translation.
//
// Gap characters ('-') are skipped, so codons are read over the ungapped
// residues; a trailing partial codon is ignored. Returns ErrNonACGT if any
// non-gap character falls outside {A,C,G,T}.
//
// Complexity: O(len(nts)).
func Translate(nts string) (string, error) {
	var aas strings.Builder
	aas.Grow(len(nts) / 3)

	var cdn [3]byte
	n := 0
	for i := 0; i < len(nts); i++ {
		if nts[i] == '-' {
			continue
		}
		cdn[n] = nts[i]
		n++
		if n < 3 {
			continue
		}
		aa, ok := codonTable[string(cdn[:])]
		if !ok {
			return "", ErrNonACGT
		}
		aas.WriteByte(aa)
		n = 0
	}

	return aas.String(), nil
}

// Hamming returns the number of positions at which a and b differ.
//
// Both sequences must have the same length; ErrLengthMismatch otherwise.
// Hamming(a, b) == Hamming(b, a) and Hamming(a, a) == 0 always hold.
//
// Complexity: O(len(a)).
func Hamming(a, b string) (uint32, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	var d uint32
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}
