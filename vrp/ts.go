// ts.go — the tabu search driver.
package vrp

import "time"

// runTS constructs once via heuristic, local-searches it, then repeats:
// advance the tabu clock, run one moveAll pass (first- or best-improvement
// per Options.BestMoves) followed by swapAll, and keep a clone as incumbent
// whenever its cost strictly improves on the running best. moveAll and
// swapAll apply only improving moves, so the working solution never
// worsens; the loop ends at the first iteration in which neither applies
// anything. Tabu entries exclude moves from the scan. The driver switches
// Problem.State from ReduceTrucks to ReduceWorkers at the halfway point of
// the iteration budget.
func runTS(p *Problem, heuristic StartHeuristic) (*Solution, int, time.Duration, error) {
	sol := NewSolution(len(p.Nodes))
	if err := construct(p, sol, heuristic); err != nil {
		return nil, 0, 0, err
	}
	RunLocalSearch(p, sol)
	p.State = ReduceTrucks

	incumbent := sol.Clone()
	bestCost := sol.Cost(p)

	iterations := 0
	halfway := p.Options.MaxIterations / 2

	for shouldContinue(p, iterations) {
		p.Tabu.Tick()
		if halfway > 0 && iterations >= halfway {
			p.State = ReduceWorkers
		}

		moved := moveAll(p, sol)
		if swapAll(p, sol) {
			moved = true
		}
		iterations++

		improved := false
		if cost := sol.Cost(p); cost < bestCost {
			bestCost = cost
			incumbent = sol.Clone()
			improved = true
		}
		trucks, workers, dist := sol.Totals(p)
		p.reportIteration(iterations, trucks, workers, dist, sol.Cost(p), improved)
		if !moved {
			break
		}
	}

	return incumbent, iterations, 0, nil
}
