package vrp_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/senarclens/cvrptwms/vrp"
)

func TestSolve_DeterministicSmallInstance(t *testing.T) {
	opts := vrp.DefaultOptions()
	p, err := vrp.NewProblem(lineNodes(6), 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error building problem: %v", err)
	}

	sol, result, err := vrp.Solve(p)
	if err != nil {
		t.Fatalf("unexpected error from Solve: %v", err)
	}
	if result.Trucks < 1 {
		t.Fatalf("expected at least one truck, got %d", result.Trucks)
	}
	if err := sol.Validate(p); err != nil {
		t.Fatalf("expected the returned solution to validate, got %v", err)
	}
}

func TestSolve_DeterministicIsReproducible(t *testing.T) {
	opts := vrp.DefaultOptions()
	nodes := lineNodes(6)

	p1, err := vrp.NewProblem(nodes, 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, r1, err := vrp.Solve(p1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p2, err := vrp.NewProblem(nodes, 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, r2, err := vrp.Solve(p2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r1.Trucks != r2.Trucks || r1.Workers != r2.Workers || r1.Distance != r2.Distance {
		t.Fatalf("expected identical runs to reach identical totals, got %+v vs %+v", r1, r2)
	}
}

func TestSolve_ACOTerminatesWithinIterationBudget(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.Metaheuristic = vrp.ACO
	opts.Deterministic = false
	opts.MaxIterations = 5
	opts.Ants = 3

	p, err := vrp.NewProblem(lineNodes(8), 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sol, result, err := vrp.Solve(p)
	if err != nil {
		t.Fatalf("unexpected error from Solve: %v", err)
	}
	if result.Iterations > 5 {
		t.Fatalf("expected at most 5 iterations, got %d", result.Iterations)
	}
	if err := sol.Validate(p); err != nil {
		t.Fatalf("expected a feasible solution, got %v", err)
	}
}

func TestSolve_VNSTerminatesWithinIterationBudget(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.Metaheuristic = vrp.VNS
	opts.Deterministic = false
	opts.MaxIterations = 5

	p, err := vrp.NewProblem(lineNodes(8), 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sol, result, err := vrp.Solve(p)
	if err != nil {
		t.Fatalf("unexpected error from Solve: %v", err)
	}
	if result.Iterations > 5 {
		t.Fatalf("expected at most 5 iterations, got %d", result.Iterations)
	}
	if err := sol.Validate(p); err != nil {
		t.Fatalf("expected a feasible solution, got %v", err)
	}
}

func TestSolve_UnknownMetaheuristicReported(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.Deterministic = false
	opts.Metaheuristic = vrp.Metaheuristic(99)

	p, err := vrp.NewProblem(lineNodes(4), 10, opts, zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := vrp.Solve(p); err == nil {
		t.Fatal("expected an error for an unrecognized metaheuristic")
	}
}
