// Package builder: functional options for synthetic instance generation.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs; the
//     generators themselves (GenerateRandom, GenerateGrid) never panic and
//     return sentinel errors instead, since their inputs come from callers
//     who may not control the option values (e.g. a config file).
//   - Determinism is explicit: seeding is done via WithSeed or WithRand; a
//     generator that needs randomness and gets neither returns
//     ErrNeedRandSource rather than silently falling back to time-seeded
//     entropy.
package builder

import "math/rand"

// BuilderOption customizes a generator by mutating a builderConfig instance
// before instance construction begins.
type BuilderOption func(*builderConfig)

// builderConfig holds everything a Constructor needs to synthesize
// customers: an RNG, the depot location, the plane extent customers are
// scattered over, the demand range, the base per-customer service time, and
// how tight generated time windows are.
type builderConfig struct {
	rng *rand.Rand

	depotX, depotY float64
	width, height  float64

	capacity float64

	demandMin, demandMax float64
	serviceTime          float64

	horizon   float64 // length of the planning day, e.g. [0, horizon]
	tightness float64 // in [0,1]; 0 = windows span the whole horizon, 1 = windows are minimal
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		depotX: 0, depotY: 0,
		width: 100, height: 100,
		capacity:  100,
		demandMin: 1, demandMax: 10,
		serviceTime: 10,
		horizon:     480,
		tightness:   0.3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand from seed (deterministic draws).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDepot sets the depot coordinates. Defaults to the plane origin.
func WithDepot(x, y float64) BuilderOption {
	return func(c *builderConfig) {
		c.depotX, c.depotY = x, y
	}
}

// WithPlaneExtent sets the rectangle customers are scattered over (for
// GenerateRandom) or the cell spacing basis (for GenerateGrid).
// Panics if either dimension is <= 0.
func WithPlaneExtent(width, height float64) BuilderOption {
	if width <= 0 || height <= 0 {
		panic("builder: WithPlaneExtent(<=0)")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}

// WithCapacity records the per-vehicle capacity in the configuration.
// GenerateRandom and GenerateGrid do not read it; demand comes from the
// demand range alone. Panics if capacity <= 0.
func WithCapacity(capacity float64) BuilderOption {
	if capacity <= 0 {
		panic("builder: WithCapacity(<=0)")
	}
	return func(c *builderConfig) {
		c.capacity = capacity
	}
}

// WithDemandRange sets the closed interval demand is drawn from (or, for
// GenerateGrid without an RNG, the midpoint used as a constant demand).
// Panics if min > max or min < 0.
func WithDemandRange(min, max float64) BuilderOption {
	if min < 0 || min > max {
		panic("builder: WithDemandRange(min>max or min<0)")
	}
	return func(c *builderConfig) {
		c.demandMin, c.demandMax = min, max
	}
}

// WithServiceTime sets the fixed per-customer service duration. Panics if
// negative.
func WithServiceTime(t float64) BuilderOption {
	if t < 0 {
		panic("builder: WithServiceTime(<0)")
	}
	return func(c *builderConfig) {
		c.serviceTime = t
	}
}

// WithHorizon sets the planning horizon [0, horizon] that time windows are
// drawn within. Panics if horizon <= 0.
func WithHorizon(horizon float64) BuilderOption {
	if horizon <= 0 {
		panic("builder: WithHorizon(<=0)")
	}
	return func(c *builderConfig) {
		c.horizon = horizon
	}
}

// WithWindowTightness sets how narrow generated time windows are, in [0,1]:
// 0 produces windows spanning the whole horizon, 1 produces windows of the
// minimum width, four times the service time. Panics outside [0,1].
func WithWindowTightness(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithWindowTightness(p outside [0,1])")
	}
	return func(c *builderConfig) {
		c.tightness = p
	}
}
