// File: route.go
// Role: Route construction and the basic read accessors every other file in
// this package builds on (length, load, worker count, depot ends).
package core

// Route is an ordered sequence of RouteNode links beginning and ending at a
// clone of the depot. ID is a stable integer in [0, n); the virtual DepotID
// (= n + ID) is used only for pheromone indexing and never appears inside
// the linked sequence itself.
type Route struct {
	// ID is this route's stable index, assigned by the owning Solution.
	ID int

	// DepotID is the per-route virtual depot id (n + ID) used solely for
	// pheromone matrix indexing.
	DepotID int

	head, tail *RouteNode // depot sentinels

	// Load is the sum of interior node demands; kept incrementally so callers
	// never need to re-walk the route just to check capacity.
	Load float64

	// Workers is the current worker count assigned to this route, w in [1, Wmax].
	Workers int

	length int // total link count including both depot sentinels; always >= 2
}

// NewRoute allocates an empty route (just the two depot sentinels) with the
// given id, virtual depot id, and initial worker count.
func NewRoute(id, depotID, workers int) *Route {
	head := &RouteNode{ID: 0}
	tail := &RouteNode{ID: 0}
	head.Next = tail
	tail.Prev = head

	return &Route{
		ID:      id,
		DepotID: depotID,
		head:    head,
		tail:    tail,
		Workers: workers,
		length:  2,
	}
}

// Head returns the route's leading depot sentinel.
func (r *Route) Head() *RouteNode { return r.head }

// Tail returns the route's trailing depot sentinel.
func (r *Route) Tail() *RouteNode { return r.tail }

// First returns the first interior node, or nil if the route is empty.
func (r *Route) First() *RouteNode {
	if r.head.Next == r.tail {
		return nil
	}
	return r.head.Next
}

// Last returns the last interior node, or nil if the route is empty.
func (r *Route) Last() *RouteNode {
	if r.tail.Prev == r.head {
		return nil
	}
	return r.tail.Prev
}

// Len returns the number of interior customers (excludes both depot sentinels).
func (r *Route) Len() int { return r.length - 2 }

// IsEmpty reports whether the route holds only its two depot sentinels.
// Only an explicit route-removal operation may retire such a route.
func (r *Route) IsEmpty() bool { return r.length == 2 }

// Nodes returns the interior nodes in order as a freshly allocated slice.
// Convenience for callers that want random access; hot paths should instead
// walk Prev/Next directly to avoid the allocation.
func (r *Route) Nodes() []*RouteNode {
	out := make([]*RouteNode, 0, r.Len())
	for n := r.head.Next; n != r.tail; n = n.Next {
		out = append(out, n)
	}
	return out
}

// Contains reports whether id appears among the route's interior nodes.
func (r *Route) Contains(id int) bool {
	for n := r.head.Next; n != r.tail; n = n.Next {
		if n.ID == id {
			return true
		}
	}
	return false
}
