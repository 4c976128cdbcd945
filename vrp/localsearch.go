// localsearch.go — move1/move2 relocation, swap1, brute-force truck
// elimination, and per-route worker reduction; driven in three hierarchical
// phases (reduce trucks, then workers, then the reserved distance phase).
package vrp

import (
	"math"

	"github.com/senarclens/cvrptwms/core"
)

// moveCandidate is one evaluated relocation of a 1- or 2-node run from one
// route to a position on another.
type moveCandidate struct {
	sourceIdx, targetIdx int
	first, last          *core.RouteNode
	runLen               int
	runDemand            float64
	after                *core.RouteNode

	deltaTrucks  int
	deltaWorkers int // <= 0; negative means workers saved
	deltaDist    float64
}

// lexicographicBetter reports whether (aTrucks,aWorkers,aDist) is strictly
// more desirable than (bTrucks,bWorkers,bDist): fewer trucks wins outright;
// tied trucks falls through to fewer workers; tied on both falls through to
// a distance improvement larger than MinDelta.
func lexicographicBetter(aTrucks, aWorkers int, aDist float64, bTrucks, bWorkers int, bDist float64) bool {
	if aTrucks != bTrucks {
		return aTrucks < bTrucks
	}
	if aWorkers != bWorkers {
		return aWorkers < bWorkers
	}
	return bDist-aDist > MinDelta
}

// RunLocalSearch drives the hierarchical reduce-trucks then reduce-workers
// phases. reduce_distance is a reserved, never-implemented phase. When
// Options.DoLS is false, only the per-route worker reduction runs.
func RunLocalSearch(p *Problem, sol *Solution) {
	if !p.Options.DoLS {
		reduceServiceWorkersAll(p, sol)
		return
	}

	p.State = ReduceTrucks
	for {
		improved := bruteReduceTrucks(p, sol)
		if moveAll(p, sol) {
			improved = true
		}
		if swapAll(p, sol) {
			improved = true
		}
		if !improved {
			break
		}
	}

	p.State = ReduceWorkers
	reduceServiceWorkersAll(p, sol)
	for {
		improved := moveAll(p, sol)
		if swapAll(p, sol) {
			improved = true
		}
		if !improved {
			break
		}
	}
}

// bruteReduceTrucks attempts, for each route in turn, to relocate every one
// of its customers onto some other route via best-insertion; if every
// customer relocates feasibly the route is dropped and the change
// committed, otherwise the attempt is discarded and the route untouched.
// Returns true the first time a route is emptied (callers rescan).
func bruteReduceTrucks(p *Problem, sol *Solution) bool {
	for idx := 0; idx < len(sol.Routes); idx++ {
		if tryEmptyRoute(p, sol, idx) {
			return true
		}
	}
	return false
}

func tryEmptyRoute(p *Problem, sol *Solution, idx int) bool {
	clone := sol.Clone()
	route := clone.Routes[idx]
	nodes := route.Nodes()

	for _, node := range nodes {
		id := node.ID
		demand := p.Nodes[id].Demand
		route.RemoveOne(node, demand)

		placed := false
		for ri, target := range clone.Routes {
			if ri == idx {
				continue
			}
			cand, ok := bestInsertionForNode(p, target, p.Nodes[id])
			if !ok {
				continue
			}
			if err := target.InsertAfter(cand.Prev, node, demand); err != nil {
				continue
			}
			initRouteTimes(p, target)
			placed = true
			break
		}
		if !placed {
			return false
		}
	}

	if err := clone.RemoveRoute(idx); err != nil {
		return false
	}
	*sol = *clone
	return true
}

// reduceServiceWorkersAll runs reduceServiceWorkers on every route, returning
// the total number of worker slots removed across the whole solution.
func reduceServiceWorkersAll(p *Problem, sol *Solution) int {
	total := 0
	for _, r := range sol.Routes {
		if n := reduceServiceWorkers(p, r); n > 0 {
			total += n
			sol.MarkDirty()
		}
	}
	return total
}

// reduceServiceWorkers decrements r.Workers while the route remains fully
// time-window feasible at the lower count, down to a floor of 1. Returns the
// number of workers removed; a second immediate call always returns 0.
func reduceServiceWorkers(p *Problem, r *core.Route) int {
	reduced := 0
	for r.Workers > 1 && isFeasibleWith(p, r, r.Workers-1) {
		r.SetWorkers(r.Workers - 1)
		initRouteTimes(p, r)
		reduced++
	}
	return reduced
}

// moveAll evaluates every 1- and 2-node relocation (bounded by
// Options.MaxMove) across every ordered route pair, applies a move per the
// configured mode, and reports whether any move was applied.
func moveAll(p *Problem, sol *Solution) bool {
	maxLen := p.Options.MaxMove
	if maxLen > 2 {
		maxLen = 2
	}
	if maxLen < 1 {
		return false
	}

	if p.Options.BestMoves {
		return bestImprovementPass(p, sol, maxLen)
	}
	for length := maxLen; length >= 1; length-- {
		if firstImprovementPass(p, sol, length) {
			return true
		}
	}
	return false
}

// forEachRun calls visit with every contiguous interior run of exactly
// length nodes in r, in ascending position order, stopping as soon as visit
// returns true. The next-run cursor is captured before visit runs, so a
// visit that splices first..last out of r (relocating it onto another
// route) and returns true never dereferences the now-foreign node.
func forEachRun(r *core.Route, length int, visit func(first, last *core.RouteNode) bool) {
	first := r.Head().Next
	for first != r.Tail() {
		last := first
		ok := true
		for k := 1; k < length; k++ {
			last = last.Next
			if last == r.Tail() {
				ok = false
				break
			}
		}
		if !ok {
			return
		}
		next := first.Next
		if visit(first, last) {
			return
		}
		first = next
	}
}

// runDemandOf sums the demand of the interior run [first..last].
func runDemandOf(p *Problem, first, last *core.RouteNode) float64 {
	total := 0.0
	for n := first; ; n = n.Next {
		total += p.Nodes[n.ID].Demand
		if n == last {
			break
		}
	}
	return total
}

// bestTargetPosition scans every insertion position on target for the run
// [first..last] (still attached to source), returning the feasible position
// with the lowest Δdistance.
func bestTargetPosition(p *Problem, first, last *core.RouteNode, runLen int, runDemand float64, target *core.Route) (*core.RouteNode, float64, bool) {
	if target.Load+runDemand > p.Capacity {
		return nil, 0, false
	}
	before := first.Prev
	after := last.Next

	var bestAfter *core.RouteNode
	bestDelta := math.Inf(1)
	found := false

	for ins := target.Head(); ins != target.Tail(); ins = ins.Next {
		var feasible bool
		if runLen == 1 {
			feasible, _ = canInsertOne(p, target, ins, p.Nodes[first.ID])
		} else {
			feasible = canInsertRun(p, target, ins, first, last, runDemand)
		}
		if !feasible {
			continue
		}
		delta := edgeDeltaDistance(p, before, first, last, after, ins)
		if !found || delta < bestDelta {
			bestDelta = delta
			bestAfter = ins
			found = true
		}
	}
	return bestAfter, bestDelta, found
}

// edgeDeltaDistance is the closed-form distance delta of relocating
// [first..last] from between before/after to a position after ins on
// another route: three edges removed, three edges added.
func edgeDeltaDistance(p *Problem, before, first, last, after, ins *core.RouteNode) float64 {
	insNext := ins.Next
	removed := p.dist(before.ID, first.ID) + p.dist(last.ID, after.ID) + p.dist(ins.ID, insNext.ID)
	added := p.dist(before.ID, after.ID) + p.dist(ins.ID, first.ID) + p.dist(last.ID, insNext.ID)
	return added - removed
}

// moveReducesWorkers reports how many worker slots could be removed from
// source if [first..last] were relocated away, by temporarily splicing the
// run out and probing is_feasible_with at successively lower worker counts.
// The route is always restored to its original state before returning.
func moveReducesWorkers(p *Problem, source *core.Route, first, last *core.RouteNode) int {
	if source.Workers <= 1 {
		return 0
	}
	demandOf := p.demandOf()
	before := first.Prev
	after := last.Next

	f, l, demand, count := source.SpliceOut(first, last, demandOf)
	defer func() { _ = source.InsertRunAfter(before, f, l, count, demand) }()

	best := 0
	for k := 1; k < source.Workers; k++ {
		if isFeasibleWith(p, source, source.Workers-k) {
			best = k
		} else {
			break
		}
	}
	return best
}

// firstImprovementPass applies the first accepted move of the given run
// length and returns true, or returns false if no move at that length
// improves on doing nothing.
func firstImprovementPass(p *Problem, sol *Solution, length int) bool {
	for sourceIdx := 0; sourceIdx < len(sol.Routes); sourceIdx++ {
		source := sol.Routes[sourceIdx]
		if source.Len() < length {
			continue
		}
		applied := false
		forEachRun(source, length, func(first, last *core.RouteNode) bool {
			runDemand := runDemandOf(p, first, last)
			truckSaved := source.Len() == length

			for targetIdx := 0; targetIdx < len(sol.Routes); targetIdx++ {
				if targetIdx == sourceIdx {
					continue
				}
				target := sol.Routes[targetIdx]
				after, deltaDist, ok := bestTargetPosition(p, first, last, length, runDemand, target)
				if !ok {
					continue
				}
				if p.Tabu.IsMoveTabu(first.ID, target.ID) {
					continue
				}

				deltaTrucks := 0
				if truckSaved {
					deltaTrucks = -1
				}
				deltaWorkers := 0
				if !truckSaved && p.State == ReduceWorkers {
					deltaWorkers = -moveReducesWorkers(p, source, first, last)
				}
				if !lexicographicBetter(deltaTrucks, deltaWorkers, deltaDist, 0, 0, 0) {
					continue
				}

				cand := moveCandidate{
					sourceIdx: sourceIdx, targetIdx: targetIdx,
					first: first, last: last, runLen: length, runDemand: runDemand,
					after: after, deltaTrucks: deltaTrucks, deltaWorkers: deltaWorkers, deltaDist: deltaDist,
				}
				if err := applyMoveCandidate(p, sol, cand); err == nil {
					applied = true
					return true
				}
			}
			return false
		})
		if applied {
			return true
		}
	}
	return false
}

// bestImprovementPass scans every route pair and every run length up to
// maxLen, applies the single best-found move once, and reports whether it
// applied anything.
func bestImprovementPass(p *Problem, sol *Solution, maxLen int) bool {
	var best moveCandidate
	haveBest := false

	for length := 1; length <= maxLen; length++ {
		for sourceIdx := 0; sourceIdx < len(sol.Routes); sourceIdx++ {
			source := sol.Routes[sourceIdx]
			if source.Len() < length {
				continue
			}
			forEachRun(source, length, func(first, last *core.RouteNode) bool {
				runDemand := runDemandOf(p, first, last)
				truckSaved := source.Len() == length

				for targetIdx := 0; targetIdx < len(sol.Routes); targetIdx++ {
					if targetIdx == sourceIdx {
						continue
					}
					target := sol.Routes[targetIdx]
					after, deltaDist, ok := bestTargetPosition(p, first, last, length, runDemand, target)
					if !ok {
						continue
					}
					if p.Tabu.IsMoveTabu(first.ID, target.ID) {
						continue
					}

					deltaTrucks := 0
					if truckSaved {
						deltaTrucks = -1
					}
					deltaWorkers := 0
					if !truckSaved && p.State == ReduceWorkers {
						deltaWorkers = -moveReducesWorkers(p, source, first, last)
					}

					if !haveBest || lexicographicBetter(deltaTrucks, deltaWorkers, deltaDist, best.deltaTrucks, best.deltaWorkers, best.deltaDist) {
						best = moveCandidate{
							sourceIdx: sourceIdx, targetIdx: targetIdx,
							first: first, last: last, runLen: length, runDemand: runDemand,
							after: after, deltaTrucks: deltaTrucks, deltaWorkers: deltaWorkers, deltaDist: deltaDist,
						}
						haveBest = true
					}
				}
				return false
			})
		}
	}

	if !haveBest || !lexicographicBetter(best.deltaTrucks, best.deltaWorkers, best.deltaDist, 0, 0, 0) {
		return false
	}
	if err := applyMoveCandidate(p, sol, best); err != nil {
		return false
	}
	return true
}

// applyMoveCandidate splices c's run from its source route into its target
// route, updates the tabu matrix, shrinks the source's worker count when the
// move was a worker-saving one, re-propagates both routes' aest/alst, and
// drops the source route when the move emptied it.
func applyMoveCandidate(p *Problem, sol *Solution, c moveCandidate) error {
	source := sol.Routes[c.sourceIdx]
	target := sol.Routes[c.targetIdx]
	demandOf := p.demandOf()

	var ids []int
	for n := c.first; ; n = n.Next {
		ids = append(ids, n.ID)
		if n == c.last {
			break
		}
	}

	f, l, demand, count := source.SpliceOut(c.first, c.last, demandOf)
	if err := target.InsertRunAfter(c.after, f, l, count, demand); err != nil {
		return err
	}

	for _, id := range ids {
		p.Tabu.UpdateTabuListMove(id, source.ID)
	}

	truckSaved := c.deltaTrucks < 0
	if !truckSaved && c.deltaWorkers < 0 {
		source.SetWorkers(source.Workers + c.deltaWorkers)
	}
	if !truckSaved {
		initRouteTimes(p, source)
	}
	initRouteTimes(p, target)
	sol.MarkDirty()

	if truckSaved {
		if err := sol.RemoveRoute(c.sourceIdx); err != nil {
			return err
		}
	}
	return nil
}

// swapAll repeatedly finds and applies the first improving single-node swap
// between a higher-id and a lower-id route, until a pass finds none.
// Disabled when Options.MaxSwap < 1.
func swapAll(p *Problem, sol *Solution) bool {
	if p.Options.MaxSwap < 1 {
		return false
	}
	improvedAny := false
	for swapPass(p, sol) {
		improvedAny = true
	}
	return improvedAny
}

func swapPass(p *Problem, sol *Solution) bool {
	routes := sol.Routes
	for i := 0; i < len(routes); i++ {
		for j := 0; j < len(routes); j++ {
			r1, r2 := routes[i], routes[j]
			if r1.ID <= r2.ID {
				continue
			}
			if trySwap(p, sol, r1, r2) {
				return true
			}
		}
	}
	return false
}

func trySwap(p *Problem, sol *Solution, r1, r2 *core.Route) bool {
	for n1 := r1.Head().Next; n1 != r1.Tail(); n1 = n1.Next {
		for n2 := r2.Head().Next; n2 != r2.Tail(); n2 = n2.Next {
			if !swapFeasible(p, r1, r2, n1, n2) {
				continue
			}
			delta := swapDeltaDistance(p, n1, n2)
			if delta >= -MinDelta {
				continue
			}
			applySwap(p, r1, r2, n1, n2)
			sol.MarkDirty()
			return true
		}
	}
	return false
}

// swapFeasible reports whether exchanging n1 (on r1) with n2 (on r2) keeps
// both routes within capacity and time-window feasible.
func swapFeasible(p *Problem, r1, r2 *core.Route, n1, n2 *core.RouteNode) bool {
	d1 := p.Nodes[n1.ID].Demand
	d2 := p.Nodes[n2.ID].Demand
	if r1.Load-d1+d2 > p.Capacity {
		return false
	}
	if r2.Load-d2+d1 > p.Capacity {
		return false
	}
	if ok, _ := canReplaceOne(p, r1, n1, p.Nodes[n2.ID]); !ok {
		return false
	}
	ok, _ := canReplaceOne(p, r2, n2, p.Nodes[n1.ID])
	return ok
}

// canReplaceOne reports whether substituting newSpec in place of old (same
// route position) keeps the route time-window feasible.
func canReplaceOne(p *Problem, r *core.Route, old *core.RouteNode, newSpec core.NodeSpec) (bool, float64) {
	prev := old.Prev
	next := old.Next
	w := r.Workers

	aest := prev.Aest + p.tau(w, prev.ID, newSpec.ID)
	if newSpec.Est > aest {
		aest = newSpec.Est
	}
	if aest > newSpec.Lst {
		return false, 0
	}

	alstBound := next.Alst - p.tau(w, newSpec.ID, next.ID)
	if alstBound < newSpec.Est {
		return false, 0
	}
	if aest > alstBound {
		return false, 0
	}
	return true, aest
}

// swapDeltaDistance is the closed-form distance delta of exchanging n1 and
// n2 in place: four edges removed, four edges added.
func swapDeltaDistance(p *Problem, n1, n2 *core.RouteNode) float64 {
	p1, x1 := n1.Prev, n1.Next
	p2, x2 := n2.Prev, n2.Next
	removed := p.dist(p1.ID, n1.ID) + p.dist(n1.ID, x1.ID) + p.dist(p2.ID, n2.ID) + p.dist(n2.ID, x2.ID)
	added := p.dist(p1.ID, n2.ID) + p.dist(n2.ID, x1.ID) + p.dist(p2.ID, n1.ID) + p.dist(n1.ID, x2.ID)
	return added - removed
}

// applySwap exchanges the identities of n1 and n2 in place (their Prev/Next
// links never move) and re-propagates both routes' aest/alst.
func applySwap(p *Problem, r1, r2 *core.Route, n1, n2 *core.RouteNode) {
	d1 := p.Nodes[n1.ID].Demand
	d2 := p.Nodes[n2.ID].Demand
	n1.ID, n2.ID = n2.ID, n1.ID
	r1.Load += d2 - d1
	r2.Load += d1 - d2
	initRouteTimes(p, r1)
	initRouteTimes(p, r2)
}
