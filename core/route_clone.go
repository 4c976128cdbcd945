// File: route_clone.go
// Role: Deep-copy a route: an independent, fully owning copy that never
// aliases the source route's nodes. Carries configuration/identity over
// verbatim and deep-copies the mutable node sequence.
package core

// Clone returns an independent deep copy of r: a fresh pair of depot
// sentinels and a fresh RouteNode per interior customer, with Aest/Alst
// (but not the scratch caches, which are probe-only and never meaningful
// across a clone boundary) carried over verbatim.
func (r *Route) Clone() *Route {
	clone := NewRoute(r.ID, r.DepotID, r.Workers)
	clone.Load = r.Load

	prev := clone.head
	for n := r.head.Next; n != r.tail; n = n.Next {
		cn := &RouteNode{ID: n.ID, Aest: n.Aest, Alst: n.Alst}
		prev.Next = cn
		cn.Prev = prev
		prev = cn
	}
	prev.Next = clone.tail
	clone.tail.Prev = prev
	clone.length = r.length

	return clone
}
