package network

import (
	"fmt"
	"sort"
)

// IdentifyCentroids marks the listed nodes as centroids and assigns each a
// rank: rank 0 goes to the node with the largest child count plus merge
// total, ties broken by ascending id. The root is skipped silently. Any
// previous centroid labeling is cleared first.
//
// Validation happens before any relabeling, so a bad id leaves the existing
// labeling untouched; returns ErrNodeNotFound for an unknown id.
func (nw *Network) IdentifyCentroids(ids []int) error {
	for _, id := range ids {
		if _, ok := nw.nodes[id]; !ok {
			return fmt.Errorf("%w: centroid %d", ErrNodeNotFound, id)
		}
	}

	nw.ClearCentroids()
	for _, id := range ids {
		if n := nw.nodes[id]; !n.IsRoot() {
			nw.centroids = append(nw.centroids, id)
		}
	}
	nw.labelCentroids()

	return nil
}

// labelCentroids orders nw.centroids by descending rank weight and writes
// the rank into each node.
func (nw *Network) labelCentroids() {
	weight := func(id int) int {
		n := nw.nodes[id]
		return len(n.children) + n.Total
	}
	sort.SliceStable(nw.centroids, func(i, j int) bool {
		wi, wj := weight(nw.centroids[i]), weight(nw.centroids[j])
		if wi != wj {
			return wi > wj
		}
		return nw.centroids[i] < nw.centroids[j]
	})
	for rank, id := range nw.centroids {
		nw.nodes[id].centroidID = rank
	}
}

// ClearCentroids removes all centroid labels.
func (nw *Network) ClearCentroids() {
	nw.centroids = nw.centroids[:0]
	for _, n := range nw.nodes {
		n.centroidID = CentroidNone
	}
}

// Centroids returns the centroid nodes in rank order (rank 0 first).
func (nw *Network) Centroids() []*Node {
	out := make([]*Node, len(nw.centroids))
	for i, id := range nw.centroids {
		out[i] = nw.nodes[id]
	}

	return out
}
