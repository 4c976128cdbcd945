// insertion.go — Solomon I1 cheapest-insertion construction and its four
// consumers: deterministic (always the single best feasible position),
// stochastic (ACO-style roulette over cost and over a pheromone-weighted
// seed), GRASP (restricted candidate list), and the multi-route parallel
// variant.
package vrp

import (
	"math"
	"sort"

	"github.com/senarclens/cvrptwms/core"
)

// minAttractiveness floors the stochastic-construction weight so a candidate
// whose selection cost exceeds lambda*d(0,k) still has a nonzero chance of
// being drawn, rather than dropping out of the roulette entirely.
const minAttractiveness = 1e-9

// insertionCandidate is the cheapest feasible position found for one
// unrouted customer against one specific route.
type insertionCandidate struct {
	Prev  *core.RouteNode
	Cost  float64 // c1
	AestK float64
}

// bestInsertionForNode scans every position in r for customer k, returning
// the cheapest feasible insertion. Ties keep the earliest-tested position
// (ascending prev order), matching the route's own insertion-order
// determinism contract. ok is false if no position is feasible.
func bestInsertionForNode(p *Problem, r *core.Route, k core.NodeSpec) (insertionCandidate, bool) {
	var best insertionCandidate
	found := false
	for prev := r.Head(); prev != r.Tail(); prev = prev.Next {
		ok, aestK := canInsertOne(p, r, prev, k)
		if !ok {
			continue
		}
		c1 := insertionCost1(p, r, prev, k, aestK)
		if !found || c1 < best.Cost {
			best = insertionCandidate{Prev: prev, Cost: c1, AestK: aestK}
			found = true
		}
	}
	return best, found
}

// insertionCost1 computes the Solomon I1 cost of inserting k between prev
// and prev.Next:
//
//	c1 = alpha*(d(p,k)+d(k,p.next)-mu*d(p,p.next)) + (1-alpha)*(est_succ'-aest(p.next))
//
// where est_succ' is the would-be Aest of prev.Next once k is spliced in.
func insertionCost1(p *Problem, r *core.Route, prev *core.RouteNode, k core.NodeSpec, aestK float64) float64 {
	next := prev.Next
	w := r.Workers
	o := p.Options

	dPK := p.dist(prev.ID, k.ID)
	dKNext := p.dist(k.ID, next.ID)
	dPNext := p.dist(prev.ID, next.ID)
	c11 := dPK + dKNext - o.Mu*dPNext

	arrival := aestK + p.tau(w, k.ID, next.ID)
	estSucc := arrival
	if nextEst := p.Nodes[next.ID].Est; nextEst > estSucc {
		estSucc = nextEst
	}
	c12 := estSucc - next.Aest

	return o.Alpha*c11 + (1-o.Alpha)*c12
}

// selectionCost is the deterministic-Solomon pick criterion: the candidate
// with the smallest value across every unrouted node wins the next slot.
func selectionCost(p *Problem, c1 float64, k core.NodeSpec) float64 {
	return c1 - p.Options.Lambda*p.dist(0, k.ID)
}

// attractiveness is the stochastic-construction roulette weight: larger for
// candidates far from the depot and cheap to insert, floored at
// minAttractiveness so no candidate is ever excluded outright.
func attractiveness(p *Problem, c1 float64, k core.NodeSpec) float64 {
	a := p.Options.Lambda*p.dist(0, k.ID) - c1
	if a < minAttractiveness {
		a = minAttractiveness
	}
	return a
}

// seedFurthest returns the unrouted customer farthest from the depot, the
// conventional deterministic-Solomon and GRASP seed choice.
func seedFurthest(p *Problem, sol *Solution) (int, bool) {
	best := -1
	bestDist := -1.0
	for _, id := range sol.Unrouted {
		d := p.dist(0, id)
		if d > bestDist {
			bestDist = d
			best = id
		}
	}
	return best, best >= 0
}

// seedWeighted draws the next route's seed by roulette over
// d(0,k)*(P[depotVR,k]+P[k,depotVR]), where depotVR is the virtual depot id
// the about-to-open route will receive. Used by the ACO-style stochastic
// construction so seed choice reflects accumulated pheromone.
func seedWeighted(p *Problem, sol *Solution) (int, bool) {
	if len(sol.Unrouted) == 0 {
		return 0, false
	}
	depotVR := sol.n + len(sol.Routes)
	weights := make([]float64, len(sol.Unrouted))
	for i, id := range sol.Unrouted {
		trail := p.Pheromone.Trail(depotVR, id) + p.Pheromone.Trail(id, depotVR)
		weights[i] = p.dist(0, id) * trail
	}
	idx := weightedChoice(p.rng, weights)
	return sol.Unrouted[idx], true
}

// openRoute allocates a fresh route at the worker ceiling (the least
// time-window-binding starting point; later local search reduces workers
// where feasible), inserts seedID as its sole customer, and removes seedID
// from the unrouted list.
func openRoute(p *Problem, sol *Solution, seedID int) (*core.Route, error) {
	r := sol.NewRoute(p.Options.MaxWorkers)
	node := &core.RouteNode{ID: seedID}
	if err := r.InsertAfter(r.Head(), node, p.Nodes[seedID].Demand); err != nil {
		return nil, err
	}
	initRouteTimes(p, r)
	sol.RemoveUnrouted(seedID)
	sol.MarkDirty()
	return r, nil
}

// commitInsertion splices nodeID into r at cand.Prev, removes it from the
// unrouted list, and re-propagates the route's aest/alst from scratch. Full
// re-propagation after every single insertion costs O(routeLen) instead of
// the O(1) a localized patch could achieve; for the instance sizes this
// solver targets that is an acceptable trade for the simpler, obviously
// correct implementation.
func commitInsertion(p *Problem, sol *Solution, r *core.Route, nodeID int, cand insertionCandidate) error {
	node := &core.RouteNode{ID: nodeID}
	if err := r.InsertAfter(cand.Prev, node, p.Nodes[nodeID].Demand); err != nil {
		return err
	}
	sol.RemoveUnrouted(nodeID)
	sol.MarkDirty()
	initRouteTimes(p, r)
	return nil
}

// constructSolomonDeterministic builds a complete solution by always
// picking the single globally best feasible (node, position) pair for the
// current route, opening a new route (seeded by the furthest unrouted
// customer) whenever no unrouted node fits the current one.
func constructSolomonDeterministic(p *Problem, sol *Solution) error {
	for len(sol.Unrouted) > 0 {
		seedID, ok := seedFurthest(p, sol)
		if !ok {
			return ErrNoSeedCandidate
		}
		r, err := openRoute(p, sol, seedID)
		if err != nil {
			return err
		}

		for {
			bestSel := math.Inf(1)
			bestNode := -1
			var bestCand insertionCandidate
			found := false

			for _, id := range sol.Unrouted {
				k := p.Nodes[id]
				cand, ok := bestInsertionForNode(p, r, k)
				if !ok {
					continue
				}
				sel := selectionCost(p, cand.Cost, k)
				if !found || sel < bestSel {
					bestSel = sel
					bestCand = cand
					bestNode = id
					found = true
				}
			}
			if !found {
				break
			}
			if err := commitInsertion(p, sol, r, bestNode, bestCand); err != nil {
				return err
			}
		}
	}
	return nil
}

// constructSolomonStochastic builds a complete solution using pheromone-
// weighted seed selection and a roulette wheel over 1/(cost-minCost+1) for
// each subsequent insertion.
func constructSolomonStochastic(p *Problem, sol *Solution) error {
	type scored struct {
		id   int
		cand insertionCandidate
	}

	for len(sol.Unrouted) > 0 {
		seedID, ok := seedWeighted(p, sol)
		if !ok {
			return ErrNoSeedCandidate
		}
		r, err := openRoute(p, sol, seedID)
		if err != nil {
			return err
		}

		for {
			var candidates []scored
			for _, id := range sol.Unrouted {
				k := p.Nodes[id]
				cand, ok := bestInsertionForNode(p, r, k)
				if !ok {
					continue
				}
				candidates = append(candidates, scored{id, cand})
			}
			if len(candidates) == 0 {
				break
			}

			minCost := math.Inf(1)
			for _, c := range candidates {
				if c.cand.Cost < minCost {
					minCost = c.cand.Cost
				}
			}
			weights := make([]float64, len(candidates))
			for i, c := range candidates {
				weights[i] = 1 / (c.cand.Cost - minCost + 1)
			}
			idx := weightedChoice(p.rng, weights)
			chosen := candidates[idx]
			if err := commitInsertion(p, sol, r, chosen.id, chosen.cand); err != nil {
				return err
			}
		}
	}
	return nil
}

// constructGRASP builds a complete solution via a restricted candidate list:
// at each step, each unrouted node's cheapest feasible position on the
// current route is ranked by cost, the list is truncated to Options.RCLSize
// (unbounded when <= 0), and one entry is drawn either uniformly or by
// weighted roulette per Options.UseWeights.
func constructGRASP(p *Problem, sol *Solution) error {
	o := p.Options

	type scored struct {
		id   int
		cand insertionCandidate
	}

	for len(sol.Unrouted) > 0 {
		seedID, ok := seedFurthest(p, sol)
		if !ok {
			return ErrNoSeedCandidate
		}
		r, err := openRoute(p, sol, seedID)
		if err != nil {
			return err
		}

		for {
			var candidates []scored
			for _, id := range sol.Unrouted {
				k := p.Nodes[id]
				cand, ok := bestInsertionForNode(p, r, k)
				if !ok {
					continue
				}
				candidates = append(candidates, scored{id, cand})
			}
			if len(candidates) == 0 {
				break
			}

			sort.Slice(candidates, func(i, j int) bool {
				return candidates[i].cand.Cost < candidates[j].cand.Cost
			})
			rclSize := o.RCLSize
			if rclSize <= 0 || rclSize > len(candidates) {
				rclSize = len(candidates)
			}
			rcl := candidates[:rclSize]

			var idx int
			if o.UseWeights {
				minCost := rcl[0].cand.Cost
				weights := make([]float64, len(rcl))
				for i, c := range rcl {
					weights[i] = 1 / (c.cand.Cost - minCost + 1)
				}
				idx = weightedChoice(p.rng, weights)
			} else {
				idx = p.rng.Intn(len(rcl))
			}
			chosen := rcl[idx]
			if err := commitInsertion(p, sol, r, chosen.id, chosen.cand); err != nil {
				return err
			}
		}
	}
	return nil
}

// parallelCandidate is one entry of parallelConstruct's global insertion
// list: the cheapest feasible position for id on route, at the time it was
// last (re)generated.
type parallelCandidate struct {
	route *core.Route
	id    int
	cand  insertionCandidate
}

// regenerateParallelCandidates computes the cheapest feasible insertion of
// every remaining unrouted customer against r, for parallelConstruct's
// list-refresh step.
func regenerateParallelCandidates(p *Problem, sol *Solution, r *core.Route) []parallelCandidate {
	var out []parallelCandidate
	for _, id := range sol.Unrouted {
		k := p.Nodes[id]
		cand, ok := bestInsertionForNode(p, r, k)
		if !ok {
			continue
		}
		out = append(out, parallelCandidate{route: r, id: id, cand: cand})
	}
	return out
}

// parallelConstruct keeps max(1, best_trucks-1) routes open at once, each
// seeded by pheromone-weighted roulette from the depot, behind one global
// list of feasible insertions spanning every open route. Each step draws
// one entry by weighted roulette over attractiveness, commits it, drops
// every entry naming the inserted node or its target route, and
// regenerates that route's entries against the remaining unrouted
// customers. If the list empties with customers still unrouted, the
// remainder is finished by sequential Solomon-ACO construction and the
// shortfall is recorded in Problem.FailedAttempts; once that count reaches
// Options.MaxFailedAttempts while still in ReduceTrucks, the driver is
// advanced to ReduceWorkers.
func parallelConstruct(p *Problem, sol *Solution) error {
	if len(sol.Unrouted) == 0 {
		return nil
	}

	bestTrucks := 1
	if p.Incumbent != nil && len(p.Incumbent.Routes) > 0 {
		bestTrucks = len(p.Incumbent.Routes)
	}
	numRoutes := bestTrucks - 1
	if numRoutes < 1 {
		numRoutes = 1
	}

	var routes []*core.Route
	for i := 0; i < numRoutes && len(sol.Unrouted) > 0; i++ {
		seedID, ok := seedWeighted(p, sol)
		if !ok {
			break
		}
		r, err := openRoute(p, sol, seedID)
		if err != nil {
			return err
		}
		routes = append(routes, r)
	}
	if len(routes) == 0 {
		return ErrNoSeedCandidate
	}

	var candidates []parallelCandidate
	for _, r := range routes {
		candidates = append(candidates, regenerateParallelCandidates(p, sol, r)...)
	}

	for len(sol.Unrouted) > 0 && len(candidates) > 0 {
		weights := make([]float64, len(candidates))
		for i, c := range candidates {
			weights[i] = attractiveness(p, c.cand.Cost, p.Nodes[c.id])
		}
		idx := weightedChoice(p.rng, weights)
		chosen := candidates[idx]

		if err := commitInsertion(p, sol, chosen.route, chosen.id, chosen.cand); err != nil {
			return err
		}

		kept := candidates[:0]
		for _, c := range candidates {
			if c.id == chosen.id || c.route == chosen.route {
				continue
			}
			kept = append(kept, c)
		}
		candidates = append(kept, regenerateParallelCandidates(p, sol, chosen.route)...)
	}

	if len(sol.Unrouted) > 0 {
		p.FailedAttempts++
		if p.State == ReduceTrucks && p.Options.MaxFailedAttempts > 0 && p.FailedAttempts >= p.Options.MaxFailedAttempts {
			p.State = ReduceWorkers
		}
		return constructSolomonStochastic(p, sol)
	}

	p.FailedAttempts = 0
	return nil
}
