// cost.go — Euclidean distance and per-worker travel+service-time matrices.
//
// τ_w(i,j) = d(i,j) + service_time(i)/w for w >= 1; τ_0(i,j) = d(i,j) (pure
// distance, used for reporting and for the I1 "d(0,k)" and "d(p,p.next)"
// terms that are worker-count independent).
package vrp

import (
	"math"

	"github.com/senarclens/cvrptwms/core"
	"github.com/senarclens/cvrptwms/matrix"
)

// buildDistanceMatrix returns the symmetric Euclidean distance matrix over nodes.
func buildDistanceMatrix(nodes []core.NodeSpec) (*matrix.Dense, error) {
	n := len(nodes)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := nodes[i].X - nodes[j].X
			dy := nodes[i].Y - nodes[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if err := d.Set(i, j, dist); err != nil {
				return nil, err
			}
			if err := d.Set(j, i, dist); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

// adaptedServiceTimes applies the Reimann (2011) service-time adaptation:
//
//	st_i = min(serviceRate*demand_i, depot.lst - max(est_i, d(depot,i)/v) - d(i,depot)/v)
//
// for every customer i != depot (id 0); the depot's own service time is 0.
// v == 0 is treated as "no travel-time deduction" (d(...)/v term dropped)
// to avoid a division by zero when callers mistakenly enable the adaptation
// without setting TruckVelocity.
func adaptedServiceTimes(nodes []core.NodeSpec, dist *matrix.Dense, serviceRate, velocity float64) []float64 {
	n := len(nodes)
	out := make([]float64, n)
	depotLst := nodes[0].Lst
	for i := 1; i < n; i++ {
		travelFromDepot := 0.0
		travelToDepot := 0.0
		if velocity > 0 {
			d0i, _ := dist.At(0, i)
			di0, _ := dist.At(i, 0)
			travelFromDepot = d0i / velocity
			travelToDepot = di0 / velocity
		}
		earliestArrival := nodes[i].Est
		if travelFromDepot > earliestArrival {
			earliestArrival = travelFromDepot
		}
		byRate := serviceRate * nodes[i].Demand
		byWindow := depotLst - earliestArrival - travelToDepot
		st := byRate
		if byWindow < st {
			st = byWindow
		}
		if st < 0 {
			st = 0
		}
		out[i] = st
	}
	return out
}

// buildWorkerMatrices returns matrices[0..maxWorkers]: matrices[0] is pure
// distance, matrices[w] = d(i,j) + serviceTimes[i]/w for w in [1, maxWorkers].
func buildWorkerMatrices(dist *matrix.Dense, serviceTimes []float64, maxWorkers int) ([]*matrix.Dense, error) {
	n := dist.Rows()
	out := make([]*matrix.Dense, maxWorkers+1)
	out[0] = dist

	for w := 1; w <= maxWorkers; w++ {
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				dij, _ := dist.At(i, j)
				v := dij + serviceTimes[i]/float64(w)
				if err := m.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
		out[w] = m
	}
	return out, nil
}
