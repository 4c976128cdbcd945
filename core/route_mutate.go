// File: route_mutate.go
// Role: O(1) splice primitives used by the insertion engine and local search
// to relocate one or two consecutive interior nodes between routes.
package core

// InsertAfter links a freshly built node n immediately after prev, updating
// Load and length. prev must belong to this route (including being the head
// sentinel itself, to insert as the new first interior node). It does not
// touch Aest/Alst; callers recompute those via the feasibility engine.
func (r *Route) InsertAfter(prev *RouteNode, n *RouteNode, demand float64) error {
	if prev == nil {
		return ErrNilPredecessor
	}
	next := prev.Next
	prev.Next = n
	n.Prev = prev
	n.Next = next
	next.Prev = n

	r.Load += demand
	r.length++
	return nil
}

// InsertRunAfter splices an already-linked run [first..last] (both ends
// belonging to some other detached chain, as produced by SpliceOut) in after
// prev on this route. runLen is the number of interior nodes in the run and
// runDemand their total demand.
func (r *Route) InsertRunAfter(prev, first, last *RouteNode, runLen int, runDemand float64) error {
	if prev == nil {
		return ErrNilPredecessor
	}
	next := prev.Next
	prev.Next = first
	first.Prev = prev
	last.Next = next
	next.Prev = last

	r.Load += runDemand
	r.length += runLen
	return nil
}

// SpliceOut detaches the contiguous interior run [first..last] from this
// route (both inclusive) and relinks around the gap. Returns the run's total
// demand and node count so the caller can pass them to InsertRunAfter (or
// discard them, e.g. a failed probe that never committed the splice).
//
// first and last must be interior nodes of this route with first preceding
// or equal to last in sequence; the caller is responsible for that ordering
// (the local-search and insertion callers always derive first/last by
// walking forward from a known interior node).
func (r *Route) SpliceOut(first, last *RouteNode, demandOf func(id int) float64) (*RouteNode, *RouteNode, float64, int) {
	before := first.Prev
	after := last.Next

	before.Next = after
	after.Prev = before

	var (
		total float64
		count int
		n     *RouteNode
	)
	for n = first; ; n = n.Next {
		total += demandOf(n.ID)
		count++
		if n == last {
			break
		}
	}

	r.Load -= total
	r.length -= count

	first.Prev = nil
	last.Next = nil

	return first, last, total, count
}

// RemoveOne is the single-node counterpart of SpliceOut: it detaches n,
// relinks around it and subtracts demand from Load.
func (r *Route) RemoveOne(n *RouteNode, demand float64) *RouteNode {
	before := n.Prev
	after := n.Next
	before.Next = after
	after.Prev = before

	r.Load -= demand
	r.length--

	n.Prev, n.Next = nil, nil
	return n
}

// SetWorkers overwrites the route's worker count. Callers must re-run the
// feasibility engine's forward/backward propagation afterward, since Aest/
// Alst depend on the per-worker travel+service matrix.
func (r *Route) SetWorkers(w int) { r.Workers = w }
