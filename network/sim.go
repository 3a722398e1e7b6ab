package network

import (
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
)

// defaultRNGSeed replaces a zero seed so layouts are reproducible unless the
// caller opts into a specific seed.
const defaultRNGSeed = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// InitSimulation (re)builds all layout state from the current tree: node
// order, initial positions, masses, spring rest lengths and the per-worker
// force buffers. It must be called before SimulateStep and again after any
// structural edit (consolidation, node removal) to pick up the new tree.
//
// Steps:
//  1. Order nodes by ascending z (ties by id) — this fixed order indexes
//     every simulation array and drives Pick's topmost-first hit test.
//  2. Scatter nodes pseudo-randomly on the unit circle.
//  3. Mass per node = base mass + child count, so hubs move sluggishly.
//  4. For every unordered pair, record a spring on parent/child pairs with
//     rest length = edge length + both radii; other pairs get no spring.
//     Pairs live in a lower-triangle layout addressed via TriIndex.
//  5. Size the worker pool and give each worker its own force accumulator.
//
// Complexity: O(n²) for the pair table.
func (nw *Network) InitSimulation() {
	nw.iteration = 0
	nw.maxVel = 0

	nw.order = nw.order[:0]
	for _, n := range nw.nodes {
		nw.order = append(nw.order, n)
	}
	sort.SliceStable(nw.order, func(i, j int) bool {
		if nw.order[i].Z != nw.order[j].Z {
			return nw.order[i].Z < nw.order[j].Z
		}
		return nw.order[i].id < nw.order[j].id
	})

	n := len(nw.order)
	rng := rngFromSeed(nw.seed)

	nw.pins = resize(nw.pins, n)
	for i := range nw.pins {
		nw.pins[i] = 1
	}

	nw.x = resize(nw.x, n)
	for i := range nw.x {
		nw.x[i] = math.Cos(rng.Float64() * 2 * math.Pi)
	}
	nw.y = resize(nw.y, n)
	for i := range nw.y {
		nw.y[i] = math.Sin(rng.Float64() * 2 * math.Pi)
	}

	nw.masses = nw.masses[:0]
	for _, node := range nw.order {
		nw.masses = append(nw.masses, node.Mass+float64(len(node.children)))
	}

	nw.springLen = nw.springLen[:0]
	nw.springOn = nw.springOn[:0]
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			a, b := nw.order[i], nw.order[j]
			switch {
			case a.parent == b.id:
				nw.springLen = append(nw.springLen, a.Length+a.Radius+b.Radius)
				nw.springOn = append(nw.springOn, 1)
			case b.parent == a.id:
				nw.springLen = append(nw.springLen, b.Length+a.Radius+b.Radius)
				nw.springOn = append(nw.springOn, 1)
			default:
				nw.springLen = append(nw.springLen, 0)
				nw.springOn = append(nw.springOn, 0)
			}
		}
	}

	nw.vx = resize(nw.vx, n)
	nw.vy = resize(nw.vy, n)
	nw.dvx = resize(nw.dvx, n)
	nw.dvy = resize(nw.dvy, n)
	for i := range nw.vx {
		nw.vx[i], nw.vy[i] = 0, 0
	}

	for i, node := range nw.order {
		node.Pos = Vec2{X: nw.x[i], Y: nw.y[i]}
	}

	nw.workers = max(2, runtime.NumCPU()) - 1
	nw.fxs = make([][]float64, nw.workers)
	nw.fys = make([][]float64, nw.workers)
	for w := range nw.fxs {
		nw.fxs[w] = make([]float64, n)
		nw.fys[w] = make([]float64, n)
	}

	nw.ready = true
}

// resize returns s with length n, reusing the backing array when it fits.
func resize(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}
	return s[:n]
}

// forceWorker accumulates pair forces for the lower-triangle index range
// [lo, hi) into its private buffers. It reads only shared immutable
// snapshots, so workers never race.
func (nw *Network) forceWorker(fx, fy []float64, lo, hi int, gravity, spring, edgeScale float64) {
	for i := range fx {
		fx[i], fy[i] = 0, 0
	}

	i, j := TriIndex(lo)
	for li := lo; li < hi; li++ {
		dx := nw.x[j] - nw.x[i]
		dy := nw.y[j] - nw.y[i]
		rSq := dx*dx + dy*dy
		r := math.Sqrt(rSq)

		rSq = math.Max(rSq, nw.epsilon)
		r = math.Max(r, nw.epsilon)

		fg := gravity * nw.masses[i] * nw.masses[j] / rSq
		fs := spring * nw.springOn[li] * (r - edgeScale*nw.springLen[li])

		f := (fg + fs) / r
		fx[i] += f * dx
		fy[i] += f * dy
		fx[j] -= f * dx
		fy[j] -= f * dy

		if j++; j == i {
			i++
			j = 0
		}
	}
}

// SimulateStep advances the layout by one time step and returns the new
// iteration count. It panics when called before InitSimulation; that is a
// programming error, not a runtime condition.
//
// Steps:
//  1. Fan the pair set out over the worker pool in contiguous chunks; each
//     worker fills its own force buffer (see forceWorker).
//  2. Join all workers, then reduce the buffers into one on this goroutine.
//  3. Δv = (F − drag·v − compaction·x) / m, then v += Δv.
//  4. Clamp each node's speed to MaxVelocity; pinned nodes are zeroed
//     outright. Speeds at or below epsilon are left alone to avoid
//     amplifying numeric noise through the division.
//  5. x += dT·v, and write positions back into the nodes.
//
// Only the force pass is parallel; integration is single-goroutine, so steps
// are strictly sequential.
func (nw *Network) SimulateStep() int {
	if !nw.ready {
		panic("network: SimulateStep called before InitSimulation")
	}

	gravity := nw.consts.Gravity.Value()
	compaction := nw.consts.Compaction.Value()
	drag := nw.consts.Drag.Value()
	spring := nw.consts.Spring.Value()
	edgeScale := nw.consts.EdgeScale.Value()
	vMax := nw.consts.MaxVelocity.Value()
	dT := nw.consts.TimeStep.Value()

	n := len(nw.order)
	pairs := n * (n - 1) / 2
	chunk := pairs / nw.workers

	var wg sync.WaitGroup
	for w := 0; w < nw.workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == nw.workers-1 {
			hi = pairs // the last worker takes the remainder
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			nw.forceWorker(nw.fxs[w], nw.fys[w], lo, hi, gravity, spring, edgeScale)
		}(w, lo, hi)
	}
	wg.Wait()

	fx, fy := nw.fxs[0], nw.fys[0]
	for w := 1; w < nw.workers; w++ {
		for i := 0; i < n; i++ {
			fx[i] += nw.fxs[w][i]
			fy[i] += nw.fys[w][i]
		}
	}

	for i := 0; i < n; i++ {
		nw.dvx[i] = (fx[i] - drag*nw.vx[i] - compaction*nw.x[i]) / nw.masses[i]
		nw.dvy[i] = (fy[i] - drag*nw.vy[i] - compaction*nw.y[i]) / nw.masses[i]
	}
	for i := 0; i < n; i++ {
		nw.vx[i] += nw.dvx[i]
		nw.vy[i] += nw.dvy[i]
	}

	nw.maxVel = 0
	for i := 0; i < n; i++ {
		if nw.pins[i] == 0 {
			nw.vx[i], nw.vy[i] = 0, 0
			continue
		}
		speed := math.Hypot(nw.vx[i], nw.vy[i])
		if speed > nw.maxVel {
			nw.maxVel = speed
		}
		if speed <= nw.epsilon {
			continue
		}
		scale := math.Min(vMax, speed) / speed
		nw.vx[i] *= scale
		nw.vy[i] *= scale
	}

	for i := 0; i < n; i++ {
		nw.x[i] += dT * nw.vx[i]
		nw.y[i] += dT * nw.vy[i]
	}
	for i, node := range nw.order {
		node.Pos = Vec2{X: nw.x[i], Y: nw.y[i]}
	}

	nw.iteration++

	return nw.iteration
}

// MaxVelocity returns the largest unclamped node speed observed during the
// most recent SimulateStep. A value well above the MaxVelocity constant
// means the layout is still settling.
func (nw *Network) MaxVelocity() float64 { return nw.maxVel }

// Iteration returns the number of completed simulation steps.
func (nw *Network) Iteration() int { return nw.iteration }

// Pin freezes the node's velocity at zero until Unpin. A no-op for unknown
// ids or before InitSimulation.
func (nw *Network) Pin(id int) {
	for i, node := range nw.order {
		if node.id == id {
			nw.vx[i], nw.vy[i] = 0, 0
			nw.pins[i] = 0
			break
		}
	}
}

// Unpin releases a pinned node back to the physics.
func (nw *Network) Unpin(id int) {
	for i, node := range nw.order {
		if node.id == id {
			nw.pins[i] = 1
			break
		}
	}
}

// TranslateNode moves a node directly, bypassing the physics for one step.
// Used for drag interaction. A no-op for unknown ids or before
// InitSimulation.
func (nw *Network) TranslateNode(id int, dx, dy float64) {
	for i, node := range nw.order {
		if node.id == id {
			nw.x[i] += dx
			nw.y[i] += dy
			node.Pos.X += dx
			node.Pos.Y += dy
			break
		}
	}
}

// Pick hit-tests p against node circles in reverse z-order, so overlapping
// nodes resolve to the one drawn on top. Returns nil when nothing is hit or
// before InitSimulation.
func (nw *Network) Pick(p Vec2) *Node {
	for i := len(nw.order) - 1; i >= 0; i-- {
		n := nw.order[i]
		if p.Dist(n.Pos) < n.Radius {
			return n
		}
	}
	return nil
}
