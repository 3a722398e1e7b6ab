// Package infer: arena construction and the Fitch labeling passes.
package infer

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/clonelab/lineage/distmat"
	"github.com/clonelab/lineage/dna"
)

// anode is one arena slot of the inference tree. Nodes reference each other
// by index, never by pointer; the whole arena is scratch state discarded when
// Ancestors returns.
type anode struct {
	parent   int
	children []int
	label    []dna.Mask
}

// Ancestors infers ancestral sequences for seqs using the distance matrix m.
//
// seqs must be equal-length, ungapped ACGT sequences with the assumed common
// ancestor at index 0, and m must be the packed matrix built over exactly
// these sequences (m.Rows() == len(seqs)).
//
// Steps:
//  1. Build the greedy linkage topology and re-root it at leaf 0.
//  2. Materialize the arena; verify exactly one parentless node remains
//     (ErrBadTopology otherwise) and label the leaves with their bitmasks.
//  3. Fitch up-pass, root resolution against the known ancestor (or seqs[0]),
//     Fitch down-pass.
//  4. Decode the synthetic nodes, deduplicate against the input, sort.
//
// The result excludes every sequence already present in seqs; it may be
// empty. Fewer than two sequences yield no ancestors.
//
// Complexity: O(n²·log n + n·L) for n sequences of length L.
func Ancestors(seqs []string, m *distmat.Matrix, opts ...Option) ([]string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(seqs)
	if n < 2 {
		return nil, nil
	}
	if m == nil || m.Rows() != n {
		return nil, ErrDimensionMismatch
	}
	for _, s := range seqs {
		if err := requireACGT(s); err != nil {
			return nil, err
		}
	}

	rng := rngFromSeed(o.Seed)

	// 1. Topology, re-rooted at the assumed ancestor leaf.
	parents, err := Reroot(linkageTree(m), 0)
	if err != nil {
		return nil, err
	}

	// 2. Arena materialization plus the structural invariant check.
	nodes := make([]anode, len(parents))
	for i := range nodes {
		nodes[i].parent = -1
	}
	root := -1
	for i, p := range parents {
		if uint32(i) == p {
			if root >= 0 {
				return nil, fmt.Errorf("%w: multiple parentless nodes", ErrBadTopology)
			}
			root = i
			continue
		}
		nodes[i].parent = int(p)
		nodes[p].children = append(nodes[p].children, i)
	}
	if root < 0 {
		return nil, fmt.Errorf("%w: no parentless node", ErrBadTopology)
	}

	for i := 0; i < n; i++ {
		if nodes[i].label, err = dna.EncodeSeq(seqs[i]); err != nil {
			return nil, err
		}
	}

	// 3. Labeling passes.
	order := preorder(nodes, root)
	fitchUp(nodes, order)

	known := o.KnownAncestor
	if known == "" {
		known = seqs[0]
	}
	knownMask, err := dna.EncodeSeq(known)
	if err != nil {
		return nil, err
	}
	resolveRoot(nodes[root].label, knownMask, rng)

	fitchDown(nodes, order, rng)

	// 4. Decode synthetic nodes and deduplicate.
	unique := make(map[string]struct{}, len(nodes)-n)
	for i := n; i < len(nodes); i++ {
		unique[dna.DecodeSeq(nodes[i].label, rng)] = struct{}{}
	}
	for _, s := range seqs {
		delete(unique, s)
	}

	inferred := make([]string, 0, len(unique))
	for s := range unique {
		inferred = append(inferred, s)
	}
	slices.Sort(inferred)

	return inferred, nil
}

// preorder returns every node id reachable from root, parents before
// children. Reversing it yields a valid post-order for the up-pass.
func preorder(nodes []anode, root int) []int {
	order := make([]int, 0, len(nodes))
	stack := []int{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		stack = append(stack, nodes[v].children...)
	}

	return order
}

// fitchUp labels every internal node from its children, leaves first.
//
// Two labeled children combine per site as intersection when non-empty, else
// union (the ambiguous case). A single child is copied verbatim: re-rooting
// leaves some nodes with one child, and copying is the degenerate Fitch rule
// for them. Leaves keep their input labels.
func fitchUp(nodes []anode, order []int) {
	for k := len(order) - 1; k >= 0; k-- {
		v := order[k]
		switch ch := nodes[v].children; len(ch) {
		case 0:
			// Leaf: already labeled with observed input.
		case 1:
			nodes[v].label = slices.Clone(nodes[ch[0]].label)
		default:
			l, r := nodes[ch[0]].label, nodes[ch[1]].label
			label := make([]dna.Mask, len(l))
			for i := range label {
				if inter := l[i] & r[i]; inter != 0 {
					label[i] = inter
				} else {
					label[i] = l[i] | r[i]
				}
			}
			nodes[v].label = label
		}
	}
}

// resolveRoot fixes the root label against the known common ancestor: any
// site whose up-pass mask intersects the known base keeps the known base,
// every other site draws a random bit from its own mask.
func resolveRoot(label, known []dna.Mask, rng *rand.Rand) {
	for i := range label {
		if known[i]&label[i] != 0 {
			label[i] = known[i]
		} else {
			label[i] = dna.RandomBit(label[i], rng)
		}
	}
}

// fitchDown resolves remaining ambiguity root-to-leaves. Only nodes with two
// children carry Fitch ambiguity worth resolving against the parent; each
// site intersects with the (already resolved) parent label, falling back to a
// random bit from its own mask when the intersection is empty.
func fitchDown(nodes []anode, order []int, rng *rand.Rand) {
	for _, v := range order {
		if nodes[v].parent < 0 || len(nodes[v].children) != 2 {
			continue
		}
		label := nodes[v].label
		parent := nodes[nodes[v].parent].label
		for i := range label {
			if inter := label[i] & parent[i]; inter != 0 {
				label[i] = dna.RandomBit(inter, rng)
			} else {
				label[i] = dna.RandomBit(label[i], rng)
			}
		}
	}
}

// requireACGT rejects any character outside the strict nucleotide alphabet.
// Gapped sequences cannot be inferred over and fail here, not deeper in.
func requireACGT(s string) error {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte("ACGT", s[i]) < 0 {
			return fmt.Errorf("%w: %q at position %d", dna.ErrNonACGT, s[i], i)
		}
	}

	return nil
}
