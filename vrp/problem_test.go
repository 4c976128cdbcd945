package vrp_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/senarclens/cvrptwms/core"
	"github.com/senarclens/cvrptwms/vrp"
)

func lineNodes(n int) []core.NodeSpec {
	nodes := make([]core.NodeSpec, n)
	nodes[0] = core.NodeSpec{ID: 0, X: 0, Y: 0, Est: 0, Lst: 1000}
	for i := 1; i < n; i++ {
		nodes[i] = core.NodeSpec{
			ID: i, X: float64(i) * 10, Y: 0,
			Demand: 1, Est: 0, Lst: 1000, Service: 1,
		}
	}
	return nodes
}

func TestNewProblem_RejectsTooFewNodes(t *testing.T) {
	_, err := vrp.NewProblem(lineNodes(1), 10, vrp.DefaultOptions(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for a depot-only instance")
	}
}

func TestNewProblem_RejectsNonPositiveCapacity(t *testing.T) {
	_, err := vrp.NewProblem(lineNodes(3), 0, vrp.DefaultOptions(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for zero capacity")
	}
}

func TestNewProblem_RejectsMaxWorkersBelowOne(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.MaxWorkers = 0
	_, err := vrp.NewProblem(lineNodes(3), 10, opts, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for max_workers < 1")
	}
}

func TestNewProblem_RejectsAlphaOutOfRange(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.Alpha = 1.5
	_, err := vrp.NewProblem(lineNodes(3), 10, opts, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for alpha outside [0,1]")
	}
}

func TestNewProblem_RejectsInvalidPheromoneParams(t *testing.T) {
	opts := vrp.DefaultOptions()
	opts.Rho = 2
	_, err := vrp.NewProblem(lineNodes(3), 10, opts, zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for rho outside [0,1]")
	}
}

func TestNewProblem_RejectsDemandExceedingCapacity(t *testing.T) {
	nodes := lineNodes(3)
	nodes[1].Demand = 100
	_, err := vrp.NewProblem(nodes, 10, vrp.DefaultOptions(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for demand exceeding capacity")
	}
}

func TestNewProblem_RejectsInvertedTimeWindow(t *testing.T) {
	nodes := lineNodes(3)
	nodes[1].Est, nodes[1].Lst = 100, 1
	_, err := vrp.NewProblem(nodes, 10, vrp.DefaultOptions(), zerolog.Nop())
	if err == nil {
		t.Fatal("expected an error for est > lst")
	}
}

func TestNewProblem_AcceptsAValidInstance(t *testing.T) {
	p, err := vrp.NewProblem(lineNodes(5), 10, vrp.DefaultOptions(), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a non-nil problem")
	}
}
