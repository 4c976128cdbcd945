// pheromone.go — PheromoneStore: the ACO trail matrix over real node ids
// [0,n) plus virtual per-route depot ids [n, 2n-1), together (2n-1)x(2n-1).
package vrp

import "github.com/senarclens/cvrptwms/matrix"

// PheromoneStore holds the ACO pheromone trail. Real customer/depot ids
// occupy [0,n); an open route's virtual depot id is n+route.ID, giving every
// concurrently open route (at most n-1 of them) its own depot cell so seed
// selection can tell "close to route 3's depot" from "close to route 7's".
type PheromoneStore struct {
	trail        *matrix.Dense
	n            int
	minPheromone float64
	rho          float64
}

// newPheromoneStore allocates a (2n-1)x(2n-1) trail matrix initialized to
// initial everywhere off the diagonal; the diagonal stays 0 since a node
// never lays trail to itself.
func newPheromoneStore(n int, initial, minPheromone, rho float64) (*PheromoneStore, error) {
	side := 2*n - 1
	m, err := matrix.NewDense(side, side)
	if err != nil {
		return nil, err
	}
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if i == j {
				continue
			}
			if err := m.Set(i, j, initial); err != nil {
				return nil, err
			}
		}
	}
	return &PheromoneStore{trail: m, n: n, minPheromone: minPheromone, rho: rho}, nil
}

// Trail returns the raw pheromone level P[a][b]. a and b may each be a real
// node id or a virtual route-depot id.
func (ps *PheromoneStore) Trail(a, b int) float64 {
	v, _ := ps.trail.At(a, b)
	return v
}

// Blend returns the combined trail strength (P[a][k]+P[k][b]) / (2*P[a][b])
// for an edge a-k-b anchored at endpoints a and b. Returns 0 if P[a][b] is 0.
// The construction heuristics do not call it; seed selection reads Trail
// directly.
func (ps *PheromoneStore) Blend(a, k, b int) float64 {
	denom := 2 * ps.Trail(a, b)
	if denom == 0 {
		return 0
	}
	return (ps.Trail(a, k) + ps.Trail(k, b)) / denom
}

// Evaporate scales every off-diagonal entry by (1-rho), floored at
// minPheromone so a trail never decays to a value the roulette can't
// recover from.
func (ps *PheromoneStore) Evaporate() {
	side := ps.trail.Rows()
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if i == j {
				continue
			}
			v := ps.Trail(i, j) * (1 - ps.rho)
			if v < ps.minPheromone {
				v = ps.minPheromone
			}
			_ = ps.trail.Set(i, j, v)
		}
	}
}

// Reinforce deposits onto every consecutive edge of sol's routes, including
// depot-to-first and last-to-depot using each route's virtual depot id.
// The ACO driver passes a deposit of 1-rho.
func (ps *PheromoneStore) Reinforce(sol *Solution, deposit float64) {
	for _, r := range sol.Routes {
		prevID := r.DepotID
		for n := r.Head().Next; n != nil; n = n.Next {
			id := n.ID
			if n == r.Tail() {
				id = r.DepotID
			}
			ps.add(prevID, id, deposit)
			prevID = id
		}
	}
}

func (ps *PheromoneStore) add(a, b int, delta float64) {
	_ = ps.trail.Set(a, b, ps.Trail(a, b)+delta)
}

// Reset restores every off-diagonal entry to initial. No driver calls it.
func (ps *PheromoneStore) Reset(initial float64) {
	side := ps.trail.Rows()
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if i == j {
				continue
			}
			_ = ps.trail.Set(i, j, initial)
		}
	}
}
