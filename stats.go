package rescache

// Stats is a point-in-time snapshot of a cache's counters.
type Stats struct {
	// Items is the number of live entries.
	Items int
	// Hits and Misses count GetItem outcomes.
	Hits   uint64
	Misses uint64
	// Adds counts fresh insertions; KeepAlives counts re-adds of keys
	// that were already cached.
	Adds       uint64
	KeepAlives uint64
	// Invalidations counts InvalidateItem calls that found their key.
	Invalidations uint64
	// Collected counts entries removed by collection sweeps (entries
	// released by Clear are not included).
	Collected uint64
}

// HitRate returns the fraction of lookups that hit, or 0 when there have
// been none.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache's counters. Unlike every other
// method it is safe to call from another goroutine while the owner
// mutates the cache, so metric scrapers can sample it.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Items:         int(c.items.Load()),
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Adds:          c.adds.Load(),
		KeepAlives:    c.keepAlives.Load(),
		Invalidations: c.invalidations.Load(),
		Collected:     c.collected.Load(),
	}
}
