package cubezdd

// This file adds store/aggregate observability: a point-in-time
// snapshot of node-table size and memo-cache effectiveness, and a
// convenience to narrate it through the Store's zerolog.Logger. None of
// it participates in any set operation's result; it exists so a caller
// running a long reduction over a large observation stream can tell
// whether the Store is behaving (high cache hit rate, node count
// growing sublinearly in input size) before a resource limit is hit.

// CacheMetrics reports one memo cache's hit/miss counts since the Store
// was created.
type CacheMetrics struct {
	Hits   int64
	Misses int64
}

// HitRate returns Hits / (Hits + Misses), or 0 when the cache has never
// been queried.
func (c CacheMetrics) HitRate() float64 {
	total := c.Hits + c.Misses
	if total == 0 {
		return 0
	}
	return float64(c.Hits) / float64(total)
}

// Metrics is a point-in-time snapshot of a Store's node table and memo
// caches.
type Metrics struct {
	Nodes           int
	Union           CacheMetrics
	Intersection    CacheMetrics
	Difference      CacheMetrics
	CrossUnion      CacheMetrics
	CrossIntersect  CacheMetrics
	CrossDifference CacheMetrics
	Subset          CacheMetrics
}

func (c *opCache) metrics() CacheMetrics {
	return CacheMetrics{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *boolCache) metrics() CacheMetrics {
	return CacheMetrics{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Metrics returns a snapshot of the Store's current size and memo cache
// effectiveness.
func (s *Store) Metrics() Metrics {
	return Metrics{
		Nodes:           s.Size(),
		Union:           s.unionCache.metrics(),
		Intersection:    s.intersectCache.metrics(),
		Difference:      s.differenceCache.metrics(),
		CrossUnion:      s.crossUnionCache.metrics(),
		CrossIntersect:  s.crossInterCache.metrics(),
		CrossDifference: s.crossDiffCache.metrics(),
		Subset:          s.subsetCache.metrics(),
	}
}

// LogMetrics writes the current snapshot to the Store's configured
// logger at debug level, as a single event carrying the node count and
// every cache's hit rate. It is
// meant to be called periodically by a long-running caller (a batch
// aggregation job, the cmd/cubecount driver), not from inside any hot
// path in this package.
func (s *Store) LogMetrics() {
	m := s.Metrics()
	s.logger.Debug().
		Int("nodes", m.Nodes).
		Float64("union_hit_rate", m.Union.HitRate()).
		Float64("intersection_hit_rate", m.Intersection.HitRate()).
		Float64("difference_hit_rate", m.Difference.HitRate()).
		Float64("cross_union_hit_rate", m.CrossUnion.HitRate()).
		Float64("cross_intersect_hit_rate", m.CrossIntersect.HitRate()).
		Float64("cross_difference_hit_rate", m.CrossDifference.HitRate()).
		Float64("subset_hit_rate", m.Subset.HitRate()).
		Msg("zdd store metrics")
}
