package consensus_test

import (
	"fmt"

	"github.com/clonelab/lineage/consensus"
)

// ExampleBuild aggregates a single unshuffled-equivalent sample over four
// aligned sequences. Each sequence joins its nearest relative: AAAT hangs off
// the root, AATT off AAAT, TTTT off AATT, giving a chain with every edge in
// the (only) sample.
func ExampleBuild() {
	seqs := []string{"AAAA", "AAAT", "AATT", "TTTT"}

	res, err := consensus.Build(seqs, 1, false)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, e := range res.Edges {
		fmt.Printf("%s -> %s  d=%d  w=%.2f\n",
			seqs[e.Parent], seqs[e.Child], e.Distance, e.Weight)
	}
	fmt.Println("parsimony:", res.ConsensusParsimony)
	// Output:
	// AAAA -> AAAT  d=1  w=1.00
	// AAAT -> AATT  d=1  w=1.00
	// AATT -> TTTT  d=2  w=1.00
	// parsimony: 4
}
