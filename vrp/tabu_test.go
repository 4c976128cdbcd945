package vrp

import "testing"

func TestTabuList_InactiveNeverTabu(t *testing.T) {
	tl := newTabuList(5, false, 3)
	tl.UpdateTabuListMove(1, 2)
	if tl.IsMoveTabu(1, 2) {
		t.Fatal("an inactive tabu list must never report a move as tabu")
	}
}

func TestTabuList_ActiveMoveTabuForExactlyTabutimeIterations(t *testing.T) {
	tl := newTabuList(5, true, 3)
	tl.UpdateTabuListMove(1, 2)

	for i := 0; i < 3; i++ {
		if !tl.IsMoveTabu(1, 2) {
			t.Fatalf("expected (1,2) tabu at iteration %d", i)
		}
		tl.Tick()
	}
	if tl.IsMoveTabu(1, 2) {
		t.Fatal("expected the tabu tenure to have expired after tabutime ticks")
	}
}

func TestTabuList_OutOfRangeNeverTabu(t *testing.T) {
	tl := newTabuList(2, true, 5)
	tl.UpdateTabuListMove(1, 1)
	if tl.IsMoveTabu(99, 1) {
		t.Fatal("an out-of-range node id must never be reported as tabu")
	}
}
