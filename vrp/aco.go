// aco.go — the ant-colony driver and its cached variant.
package vrp

import "time"

// runACO runs ants ants per outer round, each constructed via heuristic and
// local-searched, keeping the best as incumbent whenever it strictly
// improves. After each round the pheromone trail is decayed and reinforced
// from the incumbent. When useCache is true (the cached-ACO variant), a
// freshly constructed solution already present in the solution cache skips
// local search entirely, recording the time elapsed since StartTime at the
// first such hit as SaturationTime.
func runACO(p *Problem, heuristic StartHeuristic, useCache bool) (*Solution, int, time.Duration, error) {
	ants := p.Options.Ants
	if ants == 0 {
		ants = p.numCustomers()
	}

	var cache *SolutionCache
	if useCache {
		cache = newSolutionCache(len(p.Nodes))
	}
	var saturation time.Duration
	saturated := false

	incumbent := p.Incumbent
	haveIncumbent := len(incumbent.Routes) > 0
	iterations := 0

	for shouldContinue(p, iterations) {
		improved := false
		for a := 0; a < ants && shouldContinue(p, iterations); a++ {
			sol := NewSolution(len(p.Nodes))
			if err := construct(p, sol, heuristic); err != nil {
				iterations++
				continue
			}

			if useCache {
				cost := sol.Cost(p)
				if cache.Contains(cost) {
					n := cache.Add(cost)
					if !saturated && n > 1 {
						saturation = time.Since(p.StartTime)
						saturated = true
						p.reportSaturation(iterations, saturation)
					}
					iterations++
					continue
				}
				cache.Add(cost)
			}

			RunLocalSearch(p, sol)
			iterations++

			if !haveIncumbent || sol.Cost(p) < incumbent.Cost(p) {
				incumbent = sol
				haveIncumbent = true
				improved = true
				p.Incumbent = incumbent // lets parallel construction seed from the best trucks found so far
			}
		}

		p.Pheromone.Evaporate()
		if haveIncumbent {
			p.Pheromone.Reinforce(incumbent, 1-p.Options.Rho)
			trucks, workers, dist := incumbent.Totals(p)
			p.reportIteration(iterations, trucks, workers, dist, incumbent.Cost(p), improved)
		}
	}

	return incumbent, iterations, saturation, nil
}
