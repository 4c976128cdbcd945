// Package core defines the central Node and Route types for the VRPTWMS
// solver: immutable customer/depot data, and the doubly linked, depot-
// sentinelled node sequence a vehicle route is built from.
//
// A doubly linked node sequence with depot sentinels gives O(1) splice for
// relocate/swap moves, uniform "interior iff prev != nil && next != nil"
// iteration, and per-route mutable scratch (Aest/Alst/AestCache/AlstCache)
// that never leaks across routes because every route owns clones of the
// nodes it contains.
package core

import "errors"

// Sentinel errors for node/route operations.
var (
	// ErrEmptyVertexID indicates a NodeSpec with an empty or invalid identity was built.
	ErrEmptyVertexID = errors.New("core: node id must be >= 0")

	// ErrNodeNotFound indicates a requested node id is not present in a route.
	ErrNodeNotFound = errors.New("core: node not found in route")

	// ErrNilPredecessor indicates an insertion/splice was attempted after a nil node.
	ErrNilPredecessor = errors.New("core: predecessor node is nil")

	// ErrNonEmptyRoute indicates RemoveRoute (or an equivalent invariant) was
	// invoked on a route that still holds interior customers.
	ErrNonEmptyRoute = errors.New("core: route is not empty")

	// ErrRunOutOfBounds indicates a [first..last] run does not form a
	// contiguous, in-order interior segment of the route it claims to belong to.
	ErrRunOutOfBounds = errors.New("core: node run is not a contiguous interior segment")
)

// NodeSpec is the immutable input data for a customer or the depot (id 0).
// Problem owns one NodeSpec per id in [0, n); RouteNode carries a copy of the
// id plus route-local mutable scratch, never a pointer back into this slice,
// so cloning a route never aliases another route's state.
type NodeSpec struct {
	// ID is the customer id; 0 is reserved for the depot.
	ID int

	// X, Y are planar coordinates used for Euclidean distance.
	X, Y float64

	// Demand is the quantity a vehicle must carry for this customer (0 for the depot).
	Demand float64

	// Est, Lst are the earliest/latest allowed service start times (input data).
	Est, Lst float64

	// Service is the base service duration at this node, before any per-worker
	// division or Reimann adaptation is applied by the owning Problem.
	Service float64
}

// RouteNode is one link in a Route's doubly linked sequence: either a clone
// of the depot (sentinel, at the head and tail of every route) or a clone of
// a customer. Aest/Alst are the actual earliest/latest start times as
// currently propagated along the route; AestCache/AlstCache are scratch
// values used by feasibility probes (is_feasible_with, run-insertion
// simulation) so a probe never disturbs the committed Aest/Alst of a node
// still sitting in a live route.
type RouteNode struct {
	// ID mirrors the NodeSpec this link was cloned from.
	ID int

	// Prev, Next link the sequence; both are nil only transiently during
	// construction. The depot sentinels at the ends have one nil neighbor
	// only at the very ends of the list (Prev of head, Next of tail are nil).
	Prev, Next *RouteNode

	// Aest, Alst are the committed actual earliest/latest start times.
	Aest, Alst float64

	// AestCache, AlstCache are scratch propagation values used while probing
	// alternative worker counts or candidate runs without mutating Aest/Alst.
	AestCache, AlstCache float64
}

// IsDepot reports whether this link is one of the route's two depot clones.
// A depot clone is recognized structurally: it has no predecessor (head) or
// no successor (tail), since customer ids are always >= 1.
func (n *RouteNode) IsDepot() bool {
	return n.Prev == nil || n.Next == nil
}

// IsInterior reports whether n is neither the head nor tail depot sentinel.
func (n *RouteNode) IsInterior() bool {
	return n.Prev != nil && n.Next != nil
}
