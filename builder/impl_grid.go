// impl_grid.go - implementation of GenerateGrid(rows, cols) constructor.
//
// Canonical model:
//   - Depot at (cfg.depotX, cfg.depotY).
//   - rows x cols customers laid out on an evenly spaced orthogonal grid
//     covering [0,width] x [0,height], row-major.
//   - Demand: drawn from cfg.rng if provided, else the midpoint of
//     [demandMin, demandMax] (fully deterministic, no RNG required).
//   - Time windows: width floored the same way as GenerateRandom, offset by
//     a deterministic function of grid position so windows vary across the
//     instance without requiring randomness.
//
// Contract:
//   - rows >= 1 and cols >= 1 (else ErrBadSize).
//   - Never requires cfg.rng; never panics; returns sentinel errors only.
//
// Determinism:
//   - Row-major customer order, IDs 1..rows*cols.
//   - Every coordinate, demand (when cfg.rng == nil) and window is a pure
//     function of (r, c, cfg).
package builder

import (
	"fmt"

	"github.com/senarclens/cvrptwms/core"
)

const (
	methodGenerateGrid = "GenerateGrid"
	minGridRows        = 1
	minGridCols        = 1
)

// GenerateGrid returns a Constructor that places customers at the cell
// centers of a rows x cols orthogonal grid over [0,width] x [0,height]; the
// depot sits at its configured coordinates.
func GenerateGrid(rows, cols int) Constructor {
	return func(cfg builderConfig) ([]core.NodeSpec, error) {
		if rows < minGridRows || cols < minGridCols {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= 1): %w",
				methodGenerateGrid, rows, cols, ErrBadSize)
		}

		nodes := make([]core.NodeSpec, 0, rows*cols+1)
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
		midDemand := (cfg.demandMin + cfg.demandMax) / 2

		stepX := cfg.width / float64(cols)
		stepY := cfg.height / float64(rows)
		total := rows * cols

		id := 1
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x := (float64(c) + 0.5) * stepX
				y := (float64(r) + 0.5) * stepY

				demand := midDemand
				if cfg.rng != nil {
					demand = cfg.demandMin + cfg.rng.Float64()*(cfg.demandMax-cfg.demandMin)
				}

				frac := float64(r*cols+c) / float64(total)
				offset := frac * (cfg.horizon - windowWidth)
				est := offset
				lst := offset + windowWidth

				nodes = append(nodes, core.NodeSpec{
					ID: id, X: x, Y: y,
					Demand: demand, Est: est, Lst: lst, Service: cfg.serviceTime,
				})
				id++
			}
		}

		return nodes, nil
	}
}
