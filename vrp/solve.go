// solve.go — Solve: the dispatcher that routes a configured Problem to its
// selected metaheuristic driver and packages the result.
package vrp

import "time"

// construct runs the construction heuristic named by heuristic against sol.
func construct(p *Problem, sol *Solution, heuristic StartHeuristic) error {
	switch heuristic {
	case SolomonDeterministic:
		return constructSolomonDeterministic(p, sol)
	case SolomonStochastic:
		return constructSolomonStochastic(p, sol)
	case Parallel:
		return parallelConstruct(p, sol)
	default:
		return ErrUnknownHeuristic
	}
}

// shouldContinue is the termination predicate every driver consults between
// iterations/ants: continue while both the wallclock and iteration budgets
// (0 meaning unlimited) still allow it.
func shouldContinue(p *Problem, iterations int) bool {
	o := p.Options
	timeOK := o.Runtime == 0 || time.Since(p.StartTime) < o.Runtime
	iterOK := o.MaxIterations == 0 || iterations < o.MaxIterations
	return timeOK && iterOK
}

// runOnce constructs a single solution and local-searches it; this backs
// Metaheuristic == NoMetaheuristic (including Options.Deterministic).
func runOnce(p *Problem, heuristic StartHeuristic) (*Solution, int, time.Duration, error) {
	sol := NewSolution(len(p.Nodes))
	if err := construct(p, sol, heuristic); err != nil {
		return nil, 0, 0, err
	}
	RunLocalSearch(p, sol)
	trucks, workers, dist := sol.Totals(p)
	p.reportIteration(1, trucks, workers, dist, sol.Cost(p), true)
	return sol, 1, 0, nil
}

// Solve runs the driver selected by p.Options.Metaheuristic against p and
// returns the best solution found together with a summary Result.
// Options.Deterministic overrides Metaheuristic/StartHeuristic to
// NoMetaheuristic/SolomonDeterministic regardless of their configured
// values. Solve may be called more than once on the same Problem; each call
// gets its own RunID and wallclock start.
func Solve(p *Problem) (*Solution, Result, error) {
	p.RunID = newRunID()
	p.StartTime = time.Now()
	p.rng = rngFromSeed(p.Options.Seed)
	p.FailedAttempts = 0
	p.State = ReduceTrucks

	meta := p.Options.Metaheuristic
	heuristic := p.Options.StartHeuristic
	if p.Options.Deterministic {
		meta = NoMetaheuristic
		heuristic = SolomonDeterministic
	}

	var (
		sol        *Solution
		iterations int
		saturation time.Duration
		err        error
	)

	switch meta {
	case NoMetaheuristic:
		sol, iterations, saturation, err = runOnce(p, heuristic)
	case ACO:
		sol, iterations, saturation, err = runACO(p, heuristic, false)
	case CachedACO:
		sol, iterations, saturation, err = runACO(p, heuristic, true)
	case GRASP:
		sol, iterations, saturation, err = runGRASP(p, false)
	case CachedGRASP:
		sol, iterations, saturation, err = runGRASP(p, true)
	case TS:
		sol, iterations, saturation, err = runTS(p, heuristic)
	case VNS:
		sol, iterations, saturation, err = runVNS(p, heuristic)
	default:
		return nil, Result{}, ErrUnknownMetaheuristic
	}
	if err != nil {
		return nil, Result{}, err
	}

	if verr := sol.Validate(p); verr != nil {
		return nil, Result{}, verr
	}

	p.Incumbent = sol
	trucks, workers, distance := sol.Totals(p)
	result := Result{
		RunID:          p.RunID,
		Trucks:         trucks,
		Workers:        workers,
		Distance:       distance,
		Cost:           sol.Cost(p),
		Elapsed:        time.Since(p.StartTime),
		SaturationTime: saturation,
		Iterations:     iterations,
	}
	return sol, result, nil
}
