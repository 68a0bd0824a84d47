package searcher

import (
	"sync/atomic"
	"time"
)

// SearchStats reports what a search accomplished: rollouts accumulate across
// runs for the lifetime of the tree, Elapsed covers the most recent RunSearch
// call, and MaxDepth counts the root as depth 1.
type SearchStats struct {
	Rollouts int64
	Elapsed  time.Duration
	MaxDepth int
}

// statsCollector tracks search progress. The rollout counter is atomic so a
// root-parallel generalization can share it; everything else is owned by the
// search loop.
type statsCollector struct {
	rollouts atomic.Int64
	elapsed  time.Duration
}

func (c *statsCollector) addRollout() {
	c.rollouts.Add(1)
}

func (c *statsCollector) complete(elapsed time.Duration) {
	c.elapsed = elapsed
}

func (c *statsCollector) stats(maxDepth int) SearchStats {
	return SearchStats{
		Rollouts: c.rollouts.Load(),
		Elapsed:  c.elapsed,
		MaxDepth: maxDepth,
	}
}
