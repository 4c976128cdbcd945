// impl_random_sparse.go - implementation of GenerateRandom(n) constructor.
//
// Canonical model:
//   - Depot at (cfg.depotX, cfg.depotY), Demand 0, window spanning the full
//     [0, cfg.horizon] planning horizon.
//   - n customers scattered uniformly at random over [0,width] x [0,height].
//   - Demand ~ U[demandMin, demandMax]; service time is the fixed
//     cfg.serviceTime for every customer.
//   - Time windows: a window of width horizon*(1-tightness), floored at
//     4x the service time so a feasible single-customer visit always fits,
//     placed at a uniformly random offset within the horizon.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Returns sentinel errors; never panics.
//
// Determinism:
//   - Draw order per customer, fixed: X, Y, demand, window offset.
//   - Deterministic for a fixed cfg.rng stream (WithSeed/WithRand).
package builder

import (
	"fmt"

	"github.com/senarclens/cvrptwms/core"
)

const (
	methodGenerateRandom  = "GenerateRandom"
	minRandomCustomers    = 1
	minWindowWidthService = 4 // window width floor, in multiples of service time
)

// GenerateRandom returns a Constructor that scatters n customers uniformly
// at random over the configured plane extent.
func GenerateRandom(n int) Constructor {
	return func(cfg builderConfig) ([]core.NodeSpec, error) {
		if n < minRandomCustomers {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodGenerateRandom, n, minRandomCustomers, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodGenerateRandom, ErrNeedRandSource)
		}

		nodes := make([]core.NodeSpec, 0, n+1)
		nodes = append(nodes, core.NodeSpec{
			ID: 0, X: cfg.depotX, Y: cfg.depotY,
			Demand: 0, Est: 0, Lst: cfg.horizon, Service: 0,
		})

		windowWidth := cfg.horizon * (1 - cfg.tightness)
		if floor := minWindowWidthService * cfg.serviceTime; windowWidth < floor {
			windowWidth = floor
		}
		if windowWidth > cfg.horizon {
			windowWidth = cfg.horizon
		}

		for i := 1; i <= n; i++ {
			x := cfg.rng.Float64() * cfg.width
			y := cfg.rng.Float64() * cfg.height
			demand := cfg.demandMin + cfg.rng.Float64()*(cfg.demandMax-cfg.demandMin)

			offset := cfg.rng.Float64() * (cfg.horizon - windowWidth)
			est := offset
			lst := offset + windowWidth

			nodes = append(nodes, core.NodeSpec{
				ID: i, X: x, Y: y,
				Demand: demand, Est: est, Lst: lst, Service: cfg.serviceTime,
			})
		}

		return nodes, nil
	}
}
