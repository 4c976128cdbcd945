package vrp

import "testing"

func TestNewPheromoneStore_InitializesOffDiagonal(t *testing.T) {
	store, err := newPheromoneStore(3, 1.0, 0.01, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Trail(0, 1); got != 1.0 {
		t.Fatalf("expected initial trail 1.0, got %v", got)
	}
	if got := store.Trail(0, 0); got != 0 {
		t.Fatalf("expected 0 on the diagonal, got %v", got)
	}
}

func TestPheromoneStore_EvaporateDecaysAndFloors(t *testing.T) {
	store, err := newPheromoneStore(3, 1.0, 0.2, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Evaporate()
	if got := store.Trail(0, 1); got != 0.5 { // 1.0*(1-0.5)
		t.Fatalf("expected 0.5 after one evaporation, got %v", got)
	}
	for i := 0; i < 10; i++ {
		store.Evaporate()
	}
	if got := store.Trail(0, 1); got < 0.2 {
		t.Fatalf("trail must never decay below the floor 0.2, got %v", got)
	}
}

func TestPheromoneStore_Reset(t *testing.T) {
	store, err := newPheromoneStore(3, 1.0, 0.01, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	store.Evaporate()
	store.Reset(2.5)
	if got := store.Trail(0, 1); got != 2.5 {
		t.Fatalf("expected 2.5 after Reset, got %v", got)
	}
}

func TestPheromoneStore_BlendIsZeroWhenBaselineIsZero(t *testing.T) {
	store, err := newPheromoneStore(3, 0, 0, 0.1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := store.Blend(0, 1, 2); got != 0 {
		t.Fatalf("expected Blend to be 0 when the baseline trail is 0, got %v", got)
	}
}
