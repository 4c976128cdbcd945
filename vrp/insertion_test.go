package vrp

import "testing"

func solomonTestProblem(t *testing.T) *Problem {
	t.Helper()
	p := newTestProblem(t, straightLineNodes(), 10, 1)
	p.Options.Alpha = 1
	p.Options.Mu = 1
	p.Options.Lambda = 2
	p.Options.MaxWorkers = 1
	p.Incumbent = NewSolution(len(p.Nodes))
	return p
}

func TestSeedFurthest_PicksMaximumDistanceFromDepot(t *testing.T) {
	p := solomonTestProblem(t)
	sol := NewSolution(len(p.Nodes))
	id, ok := seedFurthest(p, sol)
	if !ok {
		t.Fatal("expected a seed candidate")
	}
	if id != 3 { // node 3 sits furthest out on the line
		t.Fatalf("expected node 3 as the furthest seed, got %d", id)
	}
}

func TestSeedFurthest_NoUnroutedReturnsFalse(t *testing.T) {
	p := solomonTestProblem(t)
	sol := NewSolution(len(p.Nodes))
	sol.Unrouted = nil
	if _, ok := seedFurthest(p, sol); ok {
		t.Fatal("expected no seed candidate when nothing is unrouted")
	}
}

func TestBestInsertionForNode_FindsFeasiblePosition(t *testing.T) {
	p := solomonTestProblem(t)
	r := buildRoute(p, []int{1, 3}, 1)
	cand, ok := bestInsertionForNode(p, r, p.Nodes[2])
	if !ok {
		t.Fatal("expected node 2 to have a feasible insertion somewhere on the route")
	}
	if cand.Prev == nil {
		t.Fatal("expected a concrete anchor position for the chosen insertion")
	}
}

func TestConstructSolomonDeterministic_RoutesEveryCustomer(t *testing.T) {
	p := solomonTestProblem(t)
	sol := NewSolution(len(p.Nodes))
	if err := constructSolomonDeterministic(p, sol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Unrouted) != 0 {
		t.Fatalf("expected every customer routed, %d remain unrouted", len(sol.Unrouted))
	}
	total := 0
	for _, r := range sol.Routes {
		total += r.Len()
	}
	if total != 3 {
		t.Fatalf("expected 3 customers across all routes, got %d", total)
	}
}

func TestConstructSolomonStochastic_RoutesEveryCustomer(t *testing.T) {
	p := solomonTestProblem(t)
	p.rng = rngFromSeed(1)
	p.Pheromone, _ = newPheromoneStore(len(p.Nodes), 1, 0.01, 0.1)
	sol := NewSolution(len(p.Nodes))
	if err := constructSolomonStochastic(p, sol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Unrouted) != 0 {
		t.Fatalf("expected every customer routed, %d remain unrouted", len(sol.Unrouted))
	}
}

func TestConstructGRASP_RoutesEveryCustomer(t *testing.T) {
	p := solomonTestProblem(t)
	p.rng = rngFromSeed(7)
	p.Options.RCLSize = 2
	p.Options.UseWeights = true
	sol := NewSolution(len(p.Nodes))
	if err := constructGRASP(p, sol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Unrouted) != 0 {
		t.Fatalf("expected every customer routed, %d remain unrouted", len(sol.Unrouted))
	}
}

func TestParallelConstruct_RoutesEveryCustomerOrFallsBack(t *testing.T) {
	p := solomonTestProblem(t)
	p.rng = rngFromSeed(3)
	p.Pheromone, _ = newPheromoneStore(len(p.Nodes), 1, 0.01, 0.1)
	p.Options.MaxFailedAttempts = 10
	sol := NewSolution(len(p.Nodes))
	if err := parallelConstruct(p, sol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Unrouted) != 0 {
		t.Fatalf("expected every customer routed, %d remain unrouted", len(sol.Unrouted))
	}
}

// TestParallelConstruct_PreOpensUpToBestTrucksMinusOneRoutes pins down the
// pre-init route count: with a 3-route incumbent, parallelConstruct opens
// max(1, 3-1) = 2 seed routes before drawing any insertion.
func TestParallelConstruct_PreOpensUpToBestTrucksMinusOneRoutes(t *testing.T) {
	p := newTestProblem(t, straightLineNodes(), 10, 1)
	p.Options.Lambda = 2
	p.rng = rngFromSeed(5)
	p.Pheromone, _ = newPheromoneStore(len(p.Nodes), 1, 0.01, 0.1)

	incumbent := NewSolution(len(p.Nodes))
	incumbent.NewRoute(1)
	incumbent.NewRoute(1)
	incumbent.NewRoute(1)
	p.Incumbent = incumbent

	sol := NewSolution(len(p.Nodes))
	if err := parallelConstruct(p, sol); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sol.Unrouted) != 0 {
		t.Fatalf("expected every customer routed, %d remain unrouted", len(sol.Unrouted))
	}
	if len(sol.Routes) < 2 {
		t.Fatalf("expected at least the 2 pre-opened seed routes to survive, got %d", len(sol.Routes))
	}
}
