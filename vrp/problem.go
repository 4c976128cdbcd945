// problem.go — Problem: the immutable-after-construction instance data plus
// the mutable search-wide state a driver owns for the duration of one Solve
// call (incumbent, pheromone, tabu, reduction state, timing).
package vrp

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/senarclens/cvrptwms/core"
	"github.com/senarclens/cvrptwms/matrix"
)

// Problem holds one VRPTWMS instance together with the search state a
// driver mutates while solving it. Nodes, Capacity and the cost matrices
// are fixed at construction; Incumbent, Pheromone, Tabu, State and
// FailedAttempts evolve during Solve.
type Problem struct {
	// Nodes[0] is the depot; Nodes[1:] are customers. Immutable after NewProblem.
	Nodes []core.NodeSpec

	// Capacity is the per-vehicle load ceiling, shared by every route.
	Capacity float64

	// CostMatrices[0] is pure Euclidean distance; CostMatrices[w] for
	// w in [1, MaxWorkers] is distance + serviceTime(i)/w.
	CostMatrices []*matrix.Dense

	// Pheromone is the (2n-1)x(2n-1) trail store used by ACO-family drivers.
	Pheromone *PheromoneStore

	// Tabu is the node x route iteration-tagged matrix used by TS; inactive
	// (always non-tabu) for every other driver.
	Tabu *TabuList

	// Incumbent is the best solution found so far this Solve call.
	Incumbent *Solution

	// State tracks which hierarchical phase local search is pursuing.
	State ReductionState

	// FailedAttempts counts consecutive parallel-construction shortfalls;
	// reaching Options.MaxFailedAttempts while in ReduceTrucks advances
	// State to ReduceWorkers.
	FailedAttempts int

	// Options is this Solve call's configuration, copied at construction.
	Options Options

	// RunID correlates log lines across a batch of Solve calls; cosmetic
	// only, generated from crypto randomness and never fed into rng.
	RunID string

	// StartTime is the wallclock instant Solve began; used by the
	// termination predicate and by saturation-time reporting.
	StartTime time.Time

	rng    *rand.Rand
	logger zerolog.Logger
}

// NewProblem validates nodes/capacity/options, builds the distance and
// per-worker travel+service matrices (applying the Reimann adaptation when
// requested), and allocates an empty pheromone store and tabu list sized to
// the instance. It does not start the wallclock or pick a run id; Solve
// does that so repeated Solve calls against one Problem get independent
// timers and correlation ids.
func NewProblem(nodes []core.NodeSpec, capacity float64, opts Options, logger zerolog.Logger) (*Problem, error) {
	if len(nodes) < 2 {
		return nil, ErrTooFewNodes
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opts.MaxWorkers < 1 {
		return nil, ErrInvalidMaxWorkers
	}
	if opts.Alpha < 0 || opts.Alpha > 1 || opts.Mu < 0 || opts.Lambda < 0 {
		return nil, ErrInvalidI1Params
	}
	if opts.Rho < 0 || opts.Rho > 1 || opts.MinPheromone < 0 || opts.InitialPheromone < 0 {
		return nil, ErrInvalidPheromoneParams
	}
	for _, nd := range nodes {
		if nd.Demand > capacity {
			return nil, ErrDemandExceedsCapacity
		}
		if nd.Est > nd.Lst {
			return nil, ErrInvalidTimeWindow
		}
	}

	dist, err := buildDistanceMatrix(nodes)
	if err != nil {
		return nil, err
	}

	serviceTimes := make([]float64, len(nodes))
	if opts.AdaptServiceTimes {
		serviceTimes = adaptedServiceTimes(nodes, dist, opts.ServiceRate, opts.TruckVelocity)
	} else {
		for i, nd := range nodes {
			serviceTimes[i] = nd.Service
		}
	}

	costMatrices, err := buildWorkerMatrices(dist, serviceTimes, opts.MaxWorkers)
	if err != nil {
		return nil, err
	}

	ants := opts.Ants
	if ants == 0 {
		ants = len(nodes) - 1
	}
	_ = ants // Ants is resolved again by the ACO driver against the live Options; kept here for validation symmetry only.

	n := len(nodes)
	pheromone, err := newPheromoneStore(n, opts.InitialPheromone, opts.MinPheromone, opts.Rho)
	if err != nil {
		return nil, err
	}

	tabu := newTabuList(n, opts.Metaheuristic == TS, opts.TabuTime)

	p := &Problem{
		Nodes:        nodes,
		Capacity:     capacity,
		CostMatrices: costMatrices,
		Pheromone:    pheromone,
		Tabu:         tabu,
		Incumbent:    NewSolution(n),
		State:        ReduceTrucks,
		Options:      opts,
		logger:       logger,
	}
	return p, nil
}

// tau returns the per-worker travel+service cost d(i,j) + serviceTime(i)/w.
// w == 0 returns pure distance.
func (p *Problem) tau(w, i, j int) float64 {
	v, _ := p.CostMatrices[w].At(i, j)
	return v
}

// dist returns pure Euclidean distance d(i,j).
func (p *Problem) dist(i, j int) float64 {
	return p.tau(0, i, j)
}

// numCustomers returns n-1, the number of routable customers.
func (p *Problem) numCustomers() int { return len(p.Nodes) - 1 }

// newRunID generates a fresh run-correlation id from crypto randomness.
// Never fed into the deterministic seeded stream that governs search
// behavior; it only tags log lines and Result.RunID.
func newRunID() string {
	return uuid.NewString()
}

// reportIteration emits the debug-level per-iteration/ant-batch log event,
// the info-level incumbent-improvement event when improved is true, and
// invokes Options.Stats when configured. Logging and the stats hook never
// affect control flow or determinism; drivers call this once per outer
// iteration regardless of whether zerolog or Stats is actually wired up by
// the caller.
func (p *Problem) reportIteration(iteration int, trucks, workers int, dist, cost float64, improved bool) {
	elapsed := time.Since(p.StartTime)

	p.logger.Debug().
		Str("run_id", p.RunID).
		Int("iteration", iteration).
		Int("trucks", trucks).
		Int("workers", workers).
		Float64("distance", dist).
		Float64("cost", cost).
		Dur("elapsed", elapsed).
		Msg("iteration")

	if improved {
		p.logger.Info().
			Str("run_id", p.RunID).
			Int("iteration", iteration).
			Float64("cost", cost).
			Msg("incumbent improved")
	}

	if p.Options.Stats != nil {
		p.Options.Stats(IterationStats{
			Iteration: iteration,
			Trucks:    trucks,
			Workers:   workers,
			Distance:  dist,
			Cost:      cost,
			Elapsed:   elapsed,
			Improved:  improved,
		})
	}
}

// reportSaturation emits the info-level cache-saturation event a cached
// driver fires the first time its solution cache reports a repeat cost
// encounter.
func (p *Problem) reportSaturation(iteration int, elapsed time.Duration) {
	p.logger.Info().
		Str("run_id", p.RunID).
		Int("iteration", iteration).
		Dur("elapsed", elapsed).
		Msg("solution cache saturated")
}
