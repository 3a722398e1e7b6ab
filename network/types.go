// Package network defines the Node arena record, 2D vectors and sentinel
// errors.
package network

import (
	"errors"
	"math"
	"sort"

	"github.com/clonelab/lineage/dna"
)

// Sentinel errors for tree-model operations.
var (
	// ErrDuplicateID indicates AddNode was called with an existing id.
	ErrDuplicateID = errors.New("network: duplicate node id")

	// ErrNodeNotFound indicates an operation referenced a missing node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrBadFraction indicates a fraction outside [0, 1].
	ErrBadFraction = errors.New("network: fraction outside [0,1]")

	// ErrOutOfRange indicates a constant value outside its own bounds.
	ErrOutOfRange = errors.New("network: constant value outside bounds")
)

// CentroidNone is the centroid id of nodes that are not centroids.
const CentroidNone = -1

// noParent marks a root or detached node.
const noParent = -1

// Vec2 is a point or vector in 2D.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float64 {
	return math.Hypot(v.X-w.X, v.Y-w.Y)
}

// Node is one entry of the Network arena: a tree node together with its
// inbound edge from the parent and its layout state.
//
// The Network owns every Node; parent and children are ids into the arena.
// Exported fields are free for collaborators (style editors, exporters) to
// read and, where meaningful, write between simulation steps.
type Node struct {
	id       int
	parent   int
	children map[int]struct{}

	// Total counts the originally-distinct nodes merged into this one
	// during consolidation, this node included (≥ 1).
	Total int

	// Inferred counts how many of the merged nodes were synthetic
	// ancestors rather than observed sequences.
	Inferred int

	// Length is the value of the edge from the parent, usually sequence
	// distance.
	Length float64

	// Confidence is the consensus weight of the edge from the parent.
	Confidence float64

	// Pos is the node position in the layout simulation.
	Pos Vec2

	// Radius is the node's drawn radius, also its hit-test radius and part
	// of spring rest lengths.
	Radius float64

	// Mass is the node's base mass; the simulation adds one per child.
	Mass float64

	// Z is the draw order; higher z draws later and picks first.
	Z int

	centroidID int
	nts, aas   string
}

// newNode returns a fresh arena entry with the model defaults.
func newNode(id int) *Node {
	return &Node{
		id:         id,
		parent:     noParent,
		children:   make(map[int]struct{}),
		Total:      1,
		Confidence: 1,
		Radius:     1,
		Mass:       1,
		centroidID: CentroidNone,
	}
}

// ID returns the node id. Id 0 is always the root.
func (n *Node) ID() int { return n.id }

// Parent returns the parent id, or false for the root (or a node detached by
// consolidation).
func (n *Node) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}
	return n.parent, true
}

// Children returns the child ids in ascending order. The slice is a copy;
// mutating it does not affect the tree.
func (n *Node) Children() []int {
	ids := make([]int, 0, len(n.children))
	for id := range n.children {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// ChildCount returns the number of children without allocating.
func (n *Node) ChildCount() int { return len(n.children) }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == noParent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsDisconnected reports whether the node has neither parent nor children.
func (n *Node) IsDisconnected() bool { return n.parent == noParent && len(n.children) == 0 }

// CentroidID returns the centroid rank, or CentroidNone.
func (n *Node) CentroidID() int { return n.centroidID }

// SetSequence cleans seq (case folding, dropping anything outside ACGT-),
// stores it together with its amino-acid translation, and returns the number
// of characters filtered out.
func (n *Node) SetSequence(seq string) int {
	nts, filtered := dna.Clean(seq)
	n.nts = nts
	// Clean leaves only ACGT and gaps, which Translate accepts.
	n.aas, _ = dna.Translate(nts)

	return filtered
}

// Sequence returns the cleaned nucleotide sequence.
func (n *Node) Sequence() string { return n.nts }

// Protein returns the amino-acid translation of the sequence.
func (n *Node) Protein() string { return n.aas }
