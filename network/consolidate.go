package network

// MergePredicate decides whether two nodes represent the same phenotype and
// should be merged during Consolidate. It is called with (parent, child) for
// child merges and (sibling, sibling) for sibling merges.
type MergePredicate func(a, b *Node) bool

// SameProtein is the default merge predicate: nodes merge when their
// amino-acid translations are identical.
func SameProtein(a, b *Node) bool { return a.aas == b.aas }

// mergeChild absorbs child c into n: c's children reattach to n, c detaches,
// and n accumulates c's merge counts. c must currently be a child of n.
func (nw *Network) mergeChild(n, c *Node) {
	delete(n.children, c.id)
	nw.relinkChildren(c, n)
	c.parent = noParent

	n.Total += c.Total
	n.Inferred += c.Inferred
}

// relinkChildren repoints every child of src to dst.
func (nw *Network) relinkChildren(src, dst *Node) {
	for id := range src.children {
		dst.children[id] = struct{}{}
		if gc, ok := nw.nodes[id]; ok {
			gc.parent = dst.id
		}
	}
	src.children = make(map[int]struct{})
}

// mergeSibling absorbs s into n. Both must share a parent.
func (nw *Network) mergeSibling(n, s *Node) {
	if p, ok := nw.nodes[s.parent]; ok {
		delete(p.children, s.id)
	}
	nw.relinkChildren(s, n)
	s.parent = noParent

	n.Total += s.Total
	n.Inferred += s.Inferred
}

// Consolidate merges nodes that satisfy the predicate, top-down from the
// root (id 0), and finally drops every node the merging left fully detached.
//
// Per node the pass alternates until a fixpoint is reached:
//  1. Snapshot the node's children; merge into the node every child the
//     predicate accepts (the child's own children are absorbed and will be
//     examined on a later pass).
//  2. Snapshot the surviving children; merge every sibling pair the
//     predicate accepts, keeping the first of each pair.
//  3. If either pass merged anything, run both again, since absorbed
//     grandchildren may enable new merges.
//
// Surviving children are then queued and processed the same way. Snapshots
// make each pass iterate a fixed set even though merges rewrite the live
// child sets.
//
// Complexity: O(p·c²) per node for c children and p fixpoint passes;
// in practice passes are few because merges only shrink the tree.
func (nw *Network) Consolidate(pred MergePredicate) {
	root, ok := nw.nodes[0]
	if !ok {
		return
	}

	work := []*Node{root}
	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		for {
			mergers := 0

			for _, id := range n.Children() {
				c := nw.nodes[id]
				if pred(n, c) {
					nw.mergeChild(n, c)
					mergers++
				}
			}

			siblings := n.Children()
			for len(siblings) > 0 {
				a := nw.nodes[siblings[len(siblings)-1]]
				siblings = siblings[:len(siblings)-1]
				for i := 0; i < len(siblings); {
					b := nw.nodes[siblings[i]]
					if pred(a, b) {
						nw.mergeSibling(a, b)
						siblings[i] = siblings[len(siblings)-1]
						siblings = siblings[:len(siblings)-1]
						mergers++
					} else {
						i++
					}
				}
			}

			if mergers == 0 {
				break
			}
		}

		for _, id := range n.Children() {
			work = append(work, nw.nodes[id])
		}
	}

	for id, n := range nw.nodes {
		if id != 0 && n.IsDisconnected() {
			delete(nw.nodes, id)
		}
	}
}

// RemoveInferredLeaves repeatedly strips leaves whose entire merged content
// is inferred ancestors (Inferred == Total), until none remain, and returns
// how many nodes were removed. Stripping a leaf can expose its parent as the
// next all-inferred leaf, hence the fixpoint loop.
func (nw *Network) RemoveInferredLeaves() int {
	initial := len(nw.nodes)
	for {
		erased := false
		for id, n := range nw.nodes {
			if n.IsLeaf() && n.Inferred == n.Total {
				if p, ok := nw.nodes[n.parent]; ok {
					delete(p.children, id)
				}
				delete(nw.nodes, id)
				erased = true
			}
		}
		if !erased {
			break
		}
	}

	return initial - len(nw.nodes)
}
