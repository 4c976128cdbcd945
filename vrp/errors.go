// Package vrp: sentinel errors grouped by subsystem.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - fmt.Errorf("%w", ...) attaches call-site context (node/route ids);
//     it never replaces a sentinel with a bespoke message.
package vrp

import "errors"

// Configuration errors: invalid Options, surfaced to the caller and fatal.
var (
	// ErrUnknownMetaheuristic indicates Options.Metaheuristic names a driver
	// that is not recognized by Solve's dispatcher.
	ErrUnknownMetaheuristic = errors.New("vrp: unknown metaheuristic")

	// ErrUnknownHeuristic indicates Options.StartHeuristic names a
	// construction heuristic Solve does not recognize.
	ErrUnknownHeuristic = errors.New("vrp: unknown start heuristic")

	// ErrNegativeBudget indicates Runtime or MaxIterations is negative.
	ErrNegativeBudget = errors.New("vrp: negative runtime or iteration budget")

	// ErrInvalidMaxWorkers indicates MaxWorkers < 1.
	ErrInvalidMaxWorkers = errors.New("vrp: max_workers must be >= 1")

	// ErrInvalidI1Params indicates alpha is outside [0,1], or mu/lambda is negative.
	ErrInvalidI1Params = errors.New("vrp: invalid alpha/mu/lambda")

	// ErrInvalidPheromoneParams indicates rho is outside [0,1] or a
	// pheromone floor/initial value is negative.
	ErrInvalidPheromoneParams = errors.New("vrp: invalid pheromone parameters")
)

// Input errors: an unusable problem instance.
var (
	// ErrTooFewNodes indicates fewer than 2 nodes were supplied (need at
	// least the depot plus one customer).
	ErrTooFewNodes = errors.New("vrp: problem needs at least one customer")

	// ErrInvalidCapacity indicates a non-positive vehicle capacity.
	ErrInvalidCapacity = errors.New("vrp: capacity must be > 0")

	// ErrDemandExceedsCapacity indicates a single customer's demand alone
	// exceeds vehicle capacity, making the instance infeasible by construction.
	ErrDemandExceedsCapacity = errors.New("vrp: a customer's demand exceeds capacity")

	// ErrInvalidTimeWindow indicates est > lst for some node.
	ErrInvalidTimeWindow = errors.New("vrp: node time window has est > lst")
)

// Internal invariant errors: indicate a bug if ever observed.
var (
	// ErrNilPredecessor mirrors core.ErrNilPredecessor at the vrp layer,
	// surfaced when an insertion engine call is given a nil anchor node.
	ErrNilPredecessor = errors.New("vrp: insertion predecessor is nil")

	// ErrRouteNotEmpty indicates RemoveRoute was invoked on a route that
	// still holds interior customers.
	ErrRouteNotEmpty = errors.New("vrp: cannot remove a non-empty route")

	// ErrNoSeedCandidate indicates seed selection found no unrouted node to
	// open a new route with, while unrouted nodes remain.
	ErrNoSeedCandidate = errors.New("vrp: no seed candidate for new route")

	// ErrUnknownNode indicates a node id outside [0, n) was referenced.
	ErrUnknownNode = errors.New("vrp: unknown node id")
)

// Search-failure errors: recoverable, but reported to the driver.
var (
	// ErrNoFeasibleInsertion indicates no unrouted node could be feasibly
	// inserted anywhere during parallel construction; the driver falls back
	// to sequential Solomon on the remainder.
	ErrNoFeasibleInsertion = errors.New("vrp: no feasible insertion found")

	// ErrUnroutedRemain indicates a post-construction validation found
	// customers that never got inserted into any route.
	ErrUnroutedRemain = errors.New("vrp: unrouted customers remain")
)

// Validation errors, raised by Solution.Validate; always fatal per the
// final-solution re-validation contract.
var (
	// ErrDuplicateCustomer indicates a customer id appears in more than one
	// route (or more than once within a route).
	ErrDuplicateCustomer = errors.New("vrp: customer appears more than once")

	// ErrMissingCustomer indicates a customer id never appears in any route.
	ErrMissingCustomer = errors.New("vrp: customer missing from every route")

	// ErrCapacityExceeded indicates a route's recomputed load exceeds capacity.
	ErrCapacityExceeded = errors.New("vrp: route load exceeds capacity")

	// ErrTimeWindowViolated indicates a recomputed aest exceeds lst somewhere.
	ErrTimeWindowViolated = errors.New("vrp: recomputed time window violated")

	// ErrWorkersOutOfRange indicates a route's worker count is outside [1, MaxWorkers].
	ErrWorkersOutOfRange = errors.New("vrp: worker count out of range")
)
