// grasp.go — the GRASP driver and its cached variant.
package vrp

import "time"

// runGRASP constructs one solution per iteration via the restricted
// candidate list (constructGRASP), local-searches it, and keeps the best as
// incumbent. When useCache is true (the cached-GRASP variant), a freshly
// constructed solution already present in the solution cache skips local
// search entirely, recording the time elapsed since StartTime at the first
// such hit as SaturationTime.
func runGRASP(p *Problem, useCache bool) (*Solution, int, time.Duration, error) {
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
		sol := NewSolution(len(p.Nodes))
		if err := constructGRASP(p, sol); err != nil {
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

		improved := false
		if !haveIncumbent || sol.Cost(p) < incumbent.Cost(p) {
			incumbent = sol
			haveIncumbent = true
			improved = true
		}
		if haveIncumbent {
			trucks, workers, dist := incumbent.Totals(p)
			p.reportIteration(iterations, trucks, workers, dist, incumbent.Cost(p), improved)
		}
	}

	return incumbent, iterations, saturation, nil
}
