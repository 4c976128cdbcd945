// validate.go — final re-validation of a solution, ignoring every cached
// aest/alst value in favor of a from-scratch recomputation.
package vrp

// Validate recomputes every route's aest/alst from scratch and checks: no
// unrouted customers remain, every route's worker count is in
// [1, MaxWorkers], no customer appears twice, every route stays within
// capacity, no recomputed aest exceeds its node's lst, and finally that the
// interior-node-id multiset across all routes equals {1..n-1} exactly once
// each.
func (s *Solution) Validate(p *Problem) error {
	n := len(p.Nodes)
	seen := make([]bool, n)

	if len(s.Unrouted) > 0 {
		return ErrUnroutedRemain
	}

	for _, r := range s.Routes {
		if r.Workers < 1 || r.Workers > p.Options.MaxWorkers {
			return ErrWorkersOutOfRange
		}

		initRouteTimes(p, r)

		load := 0.0
		for node := r.Head().Next; node != r.Tail(); node = node.Next {
			id := node.ID
			if id <= 0 || id >= n {
				return ErrUnknownNode
			}
			if seen[id] {
				return ErrDuplicateCustomer
			}
			seen[id] = true

			load += p.Nodes[id].Demand
			if node.Aest > p.Nodes[id].Lst+MinDelta {
				return ErrTimeWindowViolated
			}
		}
		if load > p.Capacity+MinDelta {
			return ErrCapacityExceeded
		}
	}

	for id := 1; id < n; id++ {
		if !seen[id] {
			return ErrMissingCustomer
		}
	}
	return nil
}
