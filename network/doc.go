// Package network owns the lineage tree model and its force-directed layout
// simulation.
//
// Tree model
//
//   - Node ids are stable integers; the Network arena is the single owner of
//     every Node, and parent/child relations are stored as ids, never as
//     pointers, so merges and removals cannot dangle. Node 0 is the root, has
//     no parent, and every other node has exactly one parent. The Network
//     does not detect cycles; feeding it one is a programming error with
//     undefined behavior.
//
//   - Consolidate merges nodes under a caller-supplied predicate (the domain
//     default, SameProtein, merges nodes whose translated sequences match):
//     children fold into parents, then siblings into siblings, repeating to
//     a fixpoint per subtree before descending; merge by-products left fully
//     disconnected are swept away at the end. Consolidation is idempotent.
//
//   - Centroids are caller-designated representative nodes (never the root),
//     ranked by descending children + merged Total for coloring and export
//     collaborators. RemoveInferredLeaves prunes leaves whose merged content
//     is entirely synthetic ancestors.
//
// Layout simulation
//
//   - InitSimulation snapshots the tree into flat position/velocity/mass
//     arrays (z-order), scatters nodes on the unit circle, and precomputes
//     per-pair spring rest lengths over the canonical lower-triangle pair
//     ordering (see TriIndex). Adjacent pairs get a spring of rest length
//     edge length + both radii; all pairs interact gravitationally.
//
//   - SimulateStep advances time by one fixed step and may be called forever;
//     there is no termination condition. The pair set is split into
//     contiguous chunks, one per worker; each worker accumulates forces into
//     its own private buffers, and only after every worker has joined does
//     the calling goroutine reduce the buffers and integrate — no locks, no
//     shared writes. Steps are strictly sequential.
//
//   - Velocity update per node: Δv = (F − drag·v − compaction·x) / m, then a
//     clamp to the MaxVelocity constant; pinned nodes are forced to zero
//     velocity until unpinned. Positions integrate as x += dT·v.
//
//   - All physical constants are named, range-bounded fields of the Constants
//     record, adjustable live between steps (including by UI fraction
//     sliders, see Constant.SetFraction).
//
// Calling SimulateStep before InitSimulation is a programming error and
// panics. Pin/Unpin/Translate/Pick before initialization are harmless
// no-ops.
//
// Error Conditions
//
//   - ErrDuplicateID  — AddNode with an id already present.
//   - ErrNodeNotFound — AddEdge or IdentifyCentroids naming a missing node.
//   - ErrBadFraction  — Constant.SetFraction outside [0, 1].
//   - ErrOutOfRange   — NewConstant value outside its own bounds.
package network
