// feasibility.go — time-window and capacity feasibility checks, and the
// forward/backward aest/alst propagation every mutation relies on.
package vrp

import "github.com/senarclens/cvrptwms/core"

// propagateForward recomputes Aest for every node after start, up to and
// including the route's tail sentinel; start's own Aest is the fixed base.
// start must be an interior node or the head sentinel.
func propagateForward(p *Problem, r *core.Route, w int, start *core.RouteNode) {
	prev := start
	for n := prev.Next; n != nil; n = n.Next {
		aest := prev.Aest + p.tau(w, prev.ID, n.ID)
		if n.Est > aest {
			aest = n.Est
		}
		n.Aest = aest
		prev = n
	}
}

// propagateBackward recomputes Alst for every node before end, back to and
// including the route's head sentinel; end's own Alst is the fixed base.
func propagateBackward(p *Problem, r *core.Route, w int, end *core.RouteNode) {
	next := end
	for n := next.Prev; n != nil; n = n.Prev {
		alst := next.Alst - p.tau(w, n.ID, next.ID)
		if n.Lst < alst {
			alst = n.Lst
		}
		n.Alst = alst
		next = n
	}
}

// initRouteTimes sets Aest/Alst on both depot sentinels and propagates
// through the whole route; called once after NewRoute/seed and whenever a
// route's worker count changes.
func initRouteTimes(p *Problem, r *core.Route) {
	head, tail := r.Head(), r.Tail()
	head.Aest = p.Nodes[0].Est
	tail.Alst = p.Nodes[0].Lst
	w := r.Workers
	propagateForward(p, r, w, head)
	propagateBackward(p, r, w, tail)
}

// canInsertOne reports whether customer k can be feasibly inserted between
// prev and prev.Next on r (worker count r.Workers), and if so returns the
// would-be Aest of k (needed by the I1 cost formula's est_succ' term).
func canInsertOne(p *Problem, r *core.Route, prev *core.RouteNode, k core.NodeSpec) (bool, float64) {
	if prev == nil {
		return false, 0
	}
	next := prev.Next
	if next == nil {
		return false, 0
	}
	w := r.Workers

	aestK := prev.Aest + p.tau(w, prev.ID, k.ID)
	if k.Est > aestK {
		aestK = k.Est
	}
	if aestK > k.Lst {
		return false, 0
	}

	alstBound := next.Alst - p.tau(w, k.ID, next.ID)
	if alstBound < k.Est {
		return false, 0
	}
	if aestK > alstBound {
		return false, 0
	}

	if r.Load+k.Demand > p.Capacity {
		return false, 0
	}
	return true, aestK
}

// canInsertRun reports whether the already-linked run [first..last]
// (runLen nodes) can be feasibly spliced in after `after` on r, simulating
// forward propagation with AestCache so the live Aest values of nodes still
// attached to other routes are never disturbed. after must be an interior
// node of r (or its head sentinel); runLoad is the run's total demand.
func canInsertRun(p *Problem, r *core.Route, after *core.RouteNode, first, last *core.RouteNode, runLoad float64) bool {
	if after == nil {
		return false
	}
	if r.Load+runLoad > p.Capacity {
		return false
	}
	w := r.Workers

	prevAest := after.Aest
	prevID := after.ID
	for n := first; ; n = n.Next {
		aest := prevAest + p.tau(w, prevID, n.ID)
		if n.Est > aest {
			aest = n.Est
		}
		if aest > n.Lst {
			return false
		}
		n.AestCache = aest
		prevAest = aest
		prevID = n.ID
		if n == last {
			break
		}
	}

	afterNext := after.Next
	finalArrival := last.AestCache + p.tau(w, last.ID, afterNext.ID)
	return finalArrival <= afterNext.Alst
}

// isFeasibleWith reports whether r remains fully time-window feasible with a
// reduced worker count w2, by propagating AestCache forward with τ_w2 and
// checking every interior node against its Lst. It never mutates Aest.
func isFeasibleWith(p *Problem, r *core.Route, w2 int) bool {
	head := r.Head()
	prevAest := head.Aest
	prevID := head.ID
	for n := head.Next; n != r.Tail(); n = n.Next {
		aest := prevAest + p.tau(w2, prevID, n.ID)
		if n.Est > aest {
			aest = n.Est
		}
		if aest > n.Lst {
			return false
		}
		n.AestCache = aest
		prevAest = aest
		prevID = n.ID
	}
	return true
}
