// Package infer - deterministic RNG construction for ambiguity resolution.
//
// math/rand.Rand is not goroutine-safe; each inference run owns its Rand and
// never shares it. Callers running inferences in parallel derive one seed per
// run (see the consensus package).
package infer

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep default runs reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
