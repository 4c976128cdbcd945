package builder_test

import (
	"errors"
	"testing"

	"github.com/senarclens/cvrptwms/builder"
)

func TestGenerateRandom_RequiresRandSource(t *testing.T) {
	_, err := builder.BuildInstance(nil, builder.GenerateRandom(5))
	if !errors.Is(err, builder.ErrNeedRandSource) {
		t.Fatalf("expected ErrNeedRandSource, got %v", err)
	}
}

func TestGenerateRandom_RejectsTooFewCustomers(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, err := builder.BuildInstance(opts, builder.GenerateRandom(0))
	if !errors.Is(err, builder.ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
}

func TestGenerateRandom_DepotFirstAndContiguousIDs(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithPlaneExtent(50, 50)}
	nodes, err := builder.BuildInstance(opts, builder.GenerateRandom(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 11 {
		t.Fatalf("expected 11 nodes (depot + 10 customers), got %d", len(nodes))
	}
	if nodes[0].ID != 0 || nodes[0].Demand != 0 {
		t.Fatalf("expected the depot at index 0 with 0 demand, got %+v", nodes[0])
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Fatalf("expected contiguous ids, node at index %d has id %d", i, n.ID)
		}
	}
}

func TestGenerateRandom_DeterministicForSameSeed(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildInstance(opts, builder.GenerateRandom(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := builder.BuildInstance(opts, builder.GenerateRandom(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y || a[i].Demand != b[i].Demand {
			t.Fatalf("expected identical output for the same seed, node %d diverged", i)
		}
	}
}

func TestGenerateGrid_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := builder.BuildInstance(nil, builder.GenerateGrid(0, 3))
	if !errors.Is(err, builder.ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
}

func TestGenerateGrid_ProducesRowsTimesColsCustomers(t *testing.T) {
	nodes, err := builder.BuildInstance(nil, builder.GenerateGrid(3, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1+3*4 {
		t.Fatalf("expected 1+12 nodes, got %d", len(nodes))
	}
}

func TestGenerateGrid_DeterministicWithoutRNG(t *testing.T) {
	a, err := builder.BuildInstance(nil, builder.GenerateGrid(2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := builder.BuildInstance(nil, builder.GenerateGrid(2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected GenerateGrid without an RNG to be a pure function, node %d diverged", i)
		}
	}
}

func TestBuildInstance_ConcatenatesConstructorsWithFreshIDs(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3)}
	nodes, err := builder.BuildInstance(opts, builder.GenerateGrid(2, 2), builder.GenerateRandom(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1+4+3 {
		t.Fatalf("expected 1 depot + 4 grid + 3 random customers, got %d", len(nodes))
	}
	for i, n := range nodes {
		if n.ID != i {
			t.Fatalf("expected contiguous ids across constructors, node at index %d has id %d", i, n.ID)
		}
	}
}

func TestBuildInstance_NilConstructorRejected(t *testing.T) {
	_, err := builder.BuildInstance(nil, nil)
	if !errors.Is(err, builder.ErrBadSize) {
		t.Fatalf("expected ErrBadSize for a nil constructor, got %v", err)
	}
}

func TestWithPlaneExtent_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected WithPlaneExtent(0,0) to panic")
		}
	}()
	builder.WithPlaneExtent(0, 0)
}
