// solution.go — Solution: a collection of routes plus the still-unrouted
// customers, with cost totals cached and recomputed on demand.
//
// Unrouted customers are kept as a plain []int rather than a doubly linked
// list: every consumer (seed selection, insertion scan, brute-reduce-trucks)
// only ever needs "iterate all" or "remove by value", both O(k) on a slice
// with no pointer-chasing overhead; a linked list buys nothing here since,
// unlike a Route, nothing splices a contiguous unrouted run in place.
package vrp

import "github.com/senarclens/cvrptwms/core"

// Solution is a candidate assignment of customers to routes. It exclusively
// owns its routes and its unrouted list.
type Solution struct {
	Routes   []*core.Route
	Unrouted []int

	// n is the total node count (depot + customers), fixed for this
	// solution's lifetime; used to derive each route's virtual depot id
	// (n + route.ID) for pheromone indexing.
	n int

	nextRouteID int

	dirty          bool
	cachedTrucks   int
	cachedWorkers  int
	cachedDistance float64
}

// NewSolution returns an empty solution over n nodes (depot + n-1
// customers): no routes, every customer unrouted.
func NewSolution(n int) *Solution {
	unrouted := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		unrouted = append(unrouted, i)
	}
	return &Solution{Unrouted: unrouted, n: n, dirty: true}
}

// Reset restores s to the empty state NewSolution(n) would produce, reusing
// s's backing arrays where possible.
func (s *Solution) Reset(n int) {
	s.Routes = s.Routes[:0]
	s.Unrouted = s.Unrouted[:0]
	for i := 1; i < n; i++ {
		s.Unrouted = append(s.Unrouted, i)
	}
	s.n = n
	s.nextRouteID = 0
	s.dirty = true
}

// NewRoute allocates and appends a fresh empty route, returning it. The
// route's virtual depot id (n + route.ID) is reserved for pheromone
// indexing and never appears in the linked node sequence itself.
func (s *Solution) NewRoute(workers int) *core.Route {
	id := s.nextRouteID
	s.nextRouteID++
	depotVirtualID := s.n + id
	r := core.NewRoute(id, depotVirtualID, workers)
	s.Routes = append(s.Routes, r)
	s.dirty = true
	return r
}

// RemoveRoute deletes the route at index idx, which must be empty (only
// depot sentinels). Returns ErrRouteNotEmpty otherwise.
func (s *Solution) RemoveRoute(idx int) error {
	if idx < 0 || idx >= len(s.Routes) {
		return ErrUnknownNode
	}
	r := s.Routes[idx]
	if !r.IsEmpty() {
		return ErrRouteNotEmpty
	}
	s.Routes = append(s.Routes[:idx], s.Routes[idx+1:]...)
	s.dirty = true
	return nil
}

// RemoveUnrouted removes id from the unrouted list, reporting whether it
// was present.
func (s *Solution) RemoveUnrouted(id int) bool {
	for i, u := range s.Unrouted {
		if u == id {
			s.Unrouted = append(s.Unrouted[:i], s.Unrouted[i+1:]...)
			return true
		}
	}
	return false
}

// AddUnrouted appends id back to the unrouted list (used when a move or
// probe is discarded after a tentative removal).
func (s *Solution) AddUnrouted(id int) {
	s.Unrouted = append(s.Unrouted, id)
}

// MarkDirty invalidates the cached totals; any mutation that changes
// route membership, worker counts, or node positions must call this.
func (s *Solution) MarkDirty() { s.dirty = true }

// Totals returns (trucks, workers, distance), recomputing from the live
// route structure iff the cache is dirty.
func (s *Solution) Totals(p *Problem) (int, int, float64) {
	if s.dirty {
		s.recompute(p)
	}
	return s.cachedTrucks, s.cachedWorkers, s.cachedDistance
}

func (s *Solution) recompute(p *Problem) {
	trucks := len(s.Routes)
	workers := 0
	distance := 0.0
	for _, r := range s.Routes {
		workers += r.Workers
		prev := r.Head()
		for n := prev.Next; n != nil; n = n.Next {
			distance += p.dist(prev.ID, n.ID)
			prev = n
		}
	}
	s.cachedTrucks = trucks
	s.cachedWorkers = workers
	s.cachedDistance = distance
	s.dirty = false
}

// Cost returns the scalar hierarchical objective trucks*CostTruck +
// workers*CostWorker + distance*CostDistance, used for reporting, for the
// drivers' incumbent comparisons and as the solution-cache key; move
// selection never uses this (see localsearch.go's lexicographic comparator).
func (s *Solution) Cost(p *Problem) float64 {
	trucks, workers, distance := s.Totals(p)
	o := p.Options
	return float64(trucks)*o.CostTruck + float64(workers)*o.CostWorker + distance*o.CostDistance
}

// Clone returns an independent deep copy: fresh routes (via core.Route.Clone)
// and a fresh unrouted slice. The clone never aliases s's node chains.
func (s *Solution) Clone() *Solution {
	clone := &Solution{
		Unrouted:       append([]int(nil), s.Unrouted...),
		n:              s.n,
		nextRouteID:    s.nextRouteID,
		dirty:          s.dirty,
		cachedTrucks:   s.cachedTrucks,
		cachedWorkers:  s.cachedWorkers,
		cachedDistance: s.cachedDistance,
	}
	clone.Routes = make([]*core.Route, len(s.Routes))
	for i, r := range s.Routes {
		clone.Routes[i] = r.Clone()
	}
	return clone
}

// demandOf returns a closure over p.Nodes suitable for core.Route.SpliceOut,
// which needs demand-by-id without importing the vrp package's Problem type.
func (p *Problem) demandOf() func(id int) float64 {
	return func(id int) float64 {
		if id < 0 || id >= len(p.Nodes) {
			return 0
		}
		return p.Nodes[id].Demand
	}
}
