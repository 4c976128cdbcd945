// cache.go — SolutionCache: a coarse cost-bucket hash the cached ACO/GRASP
// drivers use to skip local search on a solution whose cost has already
// been explored to the same resolution.
package vrp

import "math"

// SolutionCache buckets solutions by a coarse hash of their scalar cost.
// Two solutions that differ only by a reordering which doesn't change cost
// land in the same bucket, letting a cached driver skip re-running local
// search on them.
type SolutionCache struct {
	numNodes int
	entries  map[uint64]int // hash -> encounter count
}

// newSolutionCache allocates an empty cache sized for an instance with
// numNodes total nodes (depot included); numNodes must be >= 1.
func newSolutionCache(numNodes int) *SolutionCache {
	return &SolutionCache{numNodes: numNodes, entries: make(map[uint64]int)}
}

// hash buckets cost as floor(cost * (MaxUint64 / numNodes)), reduced modulo
// 2^64 so that products too large for a uint64 still map to distinct buckets.
func (c *SolutionCache) hash(cost float64) uint64 {
	scale := float64(math.MaxUint64) / float64(c.numNodes)
	return uint64(math.Mod(math.Floor(cost*scale), 1<<64))
}

// Contains reports whether cost's bucket has already been recorded.
func (c *SolutionCache) Contains(cost float64) bool {
	_, ok := c.entries[c.hash(cost)]
	return ok
}

// Add records one encounter of cost's bucket, returning that bucket's new
// total encounter count.
func (c *SolutionCache) Add(cost float64) int {
	h := c.hash(cost)
	c.entries[h]++
	return c.entries[h]
}

// Len returns the number of distinct cost buckets recorded so far.
func (c *SolutionCache) Len() int { return len(c.entries) }
