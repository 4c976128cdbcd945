// vns.go — the variable neighborhood search driver.
package vrp

import "time"

// runVNS constructs once via heuristic, local-searches it, then repeats: on
// a clone of the incumbent, shake a random non-empty route (redistributing
// its customers onto other routes by best-insertion, which usually worsens
// cost), route any customers the shake left unrouted with heuristic, re-run
// local search, and replace the incumbent if the shaken-then-searched clone
// strictly improves on it.
func runVNS(p *Problem, heuristic StartHeuristic) (*Solution, int, time.Duration, error) {
	sol := NewSolution(len(p.Nodes))
	if err := construct(p, sol, heuristic); err != nil {
		return nil, 0, 0, err
	}
	RunLocalSearch(p, sol)

	incumbent := sol
	bestCost := incumbent.Cost(p)
	iterations := 0

	for shouldContinue(p, iterations) {
		candidate := incumbent.Clone()
		shakeRoute(p, candidate)
		if len(candidate.Unrouted) > 0 {
			if err := construct(p, candidate, heuristic); err != nil {
				iterations++
				continue
			}
		}
		RunLocalSearch(p, candidate)
		iterations++

		improved := false
		if cost := candidate.Cost(p); cost < bestCost {
			bestCost = cost
			incumbent = candidate
			improved = true
		}
		trucks, workers, dist := incumbent.Totals(p)
		p.reportIteration(iterations, trucks, workers, dist, incumbent.Cost(p), improved)
	}

	return incumbent, iterations, 0, nil
}

// shakeRoute picks one random non-empty route on sol and attempts to
// redistribute every one of its customers onto other routes via best-
// insertion; a customer that fits nowhere returns to the unrouted list
// instead, and runVNS routes such leftovers with its construction heuristic
// before local search.
func shakeRoute(p *Problem, sol *Solution) {
	if len(sol.Routes) == 0 {
		return
	}
	idx := p.rng.Intn(len(sol.Routes))
	route := sol.Routes[idx]
	nodes := route.Nodes()

	for _, node := range nodes {
		id := node.ID
		demand := p.Nodes[id].Demand
		route.RemoveOne(node, demand)

		placed := false
		for ri, target := range sol.Routes {
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
			sol.AddUnrouted(id)
		}
	}

	if route.IsEmpty() {
		_ = sol.RemoveRoute(idx)
	} else {
		initRouteTimes(p, route)
	}
	sol.MarkDirty()
}
