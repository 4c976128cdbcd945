// Package builder: thin public entry-points for synthetic instance generation.
//
// Design contract:
//   - One orchestrator: BuildInstance(bopts, cons...). Resolves cfg, runs
//     cons in order, concatenates their output into a single node slice.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order yields an
//     identical node slice.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/senarclens/cvrptwms/core"
)

// Constructor synthesizes a VRPTWMS instance: a depot at index 0 followed
// by zero or more customers, using the resolved builderConfig. Constructors
// MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Place the depot at index 0 with Demand == 0 and a window spanning the
//     full planning horizon.
//   - Preserve determinism for the same config and call order.
type Constructor func(cfg builderConfig) ([]core.NodeSpec, error)

// BuildInstance resolves the builder configuration from bopts and applies
// each constructor in order. The first constructor's output (depot included)
// seeds the instance; every later constructor's customers (its own depot,
// at index 0 of its own output, is discarded) are appended with freshly
// assigned IDs so the final slice is a contiguous 0..n-1 sequence.
//
// Any constructor error is wrapped with "BuildInstance: %w" and returned
// immediately; no partial result is returned on error.
func BuildInstance(bopts []BuilderOption, cons ...Constructor) ([]core.NodeSpec, error) {
	cfg := newBuilderConfig(bopts...)

	var nodes []core.NodeSpec
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrBadSize)
		}
		out, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
		if i == 0 {
			nodes = append(nodes, out...)
			continue
		}
		if len(out) == 0 {
			continue
		}
		for _, n := range out[1:] {
			n.ID = len(nodes)
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// =============================================================================
// Instance factories (declarations) - implemented in impl_*.go
// =============================================================================

// GenerateRandom scatters n customers uniformly over the configured plane
// extent around the depot, drawing demand, service time and a time window
// for each from cfg. Implemented in impl_random_sparse.go.
//func GenerateRandom(n int) Constructor

// GenerateGrid places customers on a deterministic rows x cols orthogonal
// grid covering the configured plane extent. Implemented in impl_grid.go.
//func GenerateGrid(rows, cols int) Constructor
