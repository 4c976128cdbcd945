// Package vrp implements a deterministic metaheuristic solver for the
// vehicle routing problem with time windows and a variable per-route count
// of service workers (VRPTWMS).
//
// Design goals:
//   - Determinism: every randomized code path draws from an explicit
//     *rand.Rand derived once from Options.Seed; nothing touches wall-clock
//     time or any other ambient entropy source.
//   - Hierarchical objective: trucks, then workers, then distance — compared
//     lexicographically, never compressed into one weighted scalar inside
//     move selection (see localsearch.go).
//   - Zero surprises: DefaultOptions returns a conservative, runnable
//     configuration (ACO disabled, plain deterministic Solomon construction).
package vrp

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Metaheuristic selects the outer driver Solve dispatches to.
type Metaheuristic int

const (
	// NoMetaheuristic runs construction plus local search exactly once.
	NoMetaheuristic Metaheuristic = iota
	ACO
	CachedACO
	GRASP
	CachedGRASP
	TS
	VNS
)

// StartHeuristic selects the construction method a driver invokes.
type StartHeuristic int

const (
	// SolomonDeterministic always picks the single best feasible insertion.
	SolomonDeterministic StartHeuristic = iota
	// SolomonStochastic is the ACO-style roulette-wheel construction.
	SolomonStochastic
	// Parallel seeds several routes at once and inserts via a global
	// weighted-roulette candidate list.
	Parallel
)

// ReductionState tracks which phase of the hierarchical local search a
// driver is currently pursuing.
type ReductionState int

const (
	ReduceTrucks ReductionState = iota
	ReduceWorkers
	// ReduceDistance is a reserved, never-implemented phase (see DESIGN.md).
	ReduceDistance
)

// MinDelta is the tolerance used for all lexicographic distance comparisons
// in move/swap selection; a distance delta smaller in magnitude than this
// is treated as equal, not an improvement.
const MinDelta = 1e-13

// Options configures a Solve call. The zero value is not meaningful; start
// from DefaultOptions and override fields as needed. yaml tags let an
// external config-file loader decode directly into this struct.
type Options struct {
	// Runtime bounds wall-clock run time; 0 means unlimited.
	Runtime time.Duration `yaml:"runtime"`

	// MaxIterations bounds driver iterations (for ACO, individual ants);
	// 0 means unlimited.
	MaxIterations int `yaml:"max_iterations"`

	// Metaheuristic selects the driver Solve invokes.
	Metaheuristic Metaheuristic `yaml:"metaheuristic"`

	// StartHeuristic selects the construction method.
	StartHeuristic StartHeuristic `yaml:"start_heuristic"`

	// Deterministic forces NoMetaheuristic + SolomonDeterministic and a
	// deterministic seed-node pick, overriding Metaheuristic/StartHeuristic.
	Deterministic bool `yaml:"deterministic"`

	// MaxWorkers is the per-route worker-count ceiling W_max (>= 1).
	MaxWorkers int `yaml:"max_workers"`

	// AdaptServiceTimes enables the Reimann (2011) service-time adaptation.
	AdaptServiceTimes bool `yaml:"adapt_service_times"`
	// ServiceRate is the per-unit-demand service-time coefficient.
	ServiceRate float64 `yaml:"service_rate"`
	// TruckVelocity converts distance to travel time for the adaptation formula.
	TruckVelocity float64 `yaml:"truck_velocity"`

	// CostTruck, CostWorker, CostDistance weight the scalar objective used
	// for reporting, incumbent comparison and the solution cache; move
	// selection always uses the lexicographic
	// (Δtrucks, Δworkers, Δdistance) comparator regardless of these weights.
	CostTruck    float64 `yaml:"cost_truck"`
	CostWorker   float64 `yaml:"cost_worker"`
	CostDistance float64 `yaml:"cost_distance"`

	// Alpha, Mu, Lambda are the Solomon I1 insertion parameters.
	Alpha  float64 `yaml:"alpha"`
	Mu     float64 `yaml:"mu"`
	Lambda float64 `yaml:"lambda"`

	// Ants, Rho, MinPheromone, InitialPheromone are ACO parameters.
	// Ants == 0 means "set to the number of customers" when the ACO driver starts.
	Ants             int     `yaml:"ants"`
	Rho              float64 `yaml:"rho"`
	MinPheromone     float64 `yaml:"min_pheromone"`
	InitialPheromone float64 `yaml:"initial_pheromone"`

	// UseWeights and RCLSize are GRASP parameters; RCLSize == 0 means unbounded.
	UseWeights bool `yaml:"use_weights"`
	RCLSize    int  `yaml:"rcl_size"`

	// TabuTime is the TS tabu-tenure parameter.
	TabuTime int `yaml:"tabutime"`

	// DoLS, MaxMove, BestMoves, MaxSwap toggle local search.
	DoLS      bool `yaml:"do_ls"`
	MaxMove   int  `yaml:"max_move"` // in {0,1,2}
	BestMoves bool `yaml:"best_moves"`
	MaxSwap   int  `yaml:"max_swap"` // in {0,1}

	// MaxFailedAttempts is the parallel-construction escalation threshold.
	MaxFailedAttempts int `yaml:"max_failed_attempts"`

	// Seed drives every randomized code path (see rng.go).
	Seed int64 `yaml:"seed"`

	// Stats, if non-nil, is invoked once per outer iteration/ant-batch with
	// that iteration's running totals. Not yaml-tagged: a callback has no
	// serializable representation, so it is set programmatically after
	// loading the rest of Options from configuration. The driver only ever
	// calls it; formatting/persisting the trace is the caller's concern.
	Stats func(IterationStats) `yaml:"-"`
}

// DefaultOptions returns a conservative, runnable configuration: plain
// deterministic construction, local search enabled, move length up to 2,
// first-improvement, one swap per pass, Solomon I1 defaults (alpha=1, mu=1,
// lambda=2) matching the benchmark scenarios this solver is validated against.
func DefaultOptions() Options {
	return Options{
		Runtime:           0,
		MaxIterations:     0,
		Metaheuristic:     NoMetaheuristic,
		StartHeuristic:    SolomonDeterministic,
		Deterministic:     true,
		MaxWorkers:        3,
		AdaptServiceTimes: false,
		ServiceRate:       1,
		TruckVelocity:     1,
		CostTruck:         1_000_000,
		CostWorker:        1_000,
		CostDistance:      1,
		Alpha:             1,
		Mu:                1,
		Lambda:            2,
		Ants:              0,
		Rho:               0.9,
		MinPheromone:      0.01,
		InitialPheromone:  1,
		UseWeights:        true,
		RCLSize:           5,
		TabuTime:          10,
		DoLS:              true,
		MaxMove:           2,
		BestMoves:         false,
		MaxSwap:           1,
		MaxFailedAttempts: 10,
		Seed:              0,
	}
}

// LoadOptionsYAML decodes Options from r, starting from DefaultOptions so a
// config file only needs to set the fields it wants to override.
func LoadOptionsYAML(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return Options{}, err
	}
	return opts, nil
}

// Result is the summary an external printer consumes after Solve returns:
// the hierarchical objective components plus timing/diagnostic fields.
type Result struct {
	RunID          string
	Trucks         int
	Workers        int
	Distance       float64
	Cost           float64
	Elapsed        time.Duration
	SaturationTime time.Duration // 0 if the cache never saturated (or caching is disabled)
	Iterations     int
}

// IterationStats is passed to an optional trace hook once per outer
// iteration/ant-batch; the tracer is an external collaborator (file/CSV
// writing happens outside this package).
type IterationStats struct {
	Iteration int
	Trucks    int
	Workers   int
	Distance  float64
	Cost      float64
	Elapsed   time.Duration
	Improved  bool
}
