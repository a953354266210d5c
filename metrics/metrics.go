// Package metrics provides abstract instruments that allow pluggable
// monitoring backends (Prometheus, StatsD, etc.) without coupling the
// cache to any specific implementation.
package metrics

// Counter is a monotonically increasing metric.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
	// Add increments the counter by delta. delta must be >= 0.
	Add(delta float64)
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	// Set sets the gauge to value.
	Set(value float64)
	// Inc increments the gauge by 1.
	Inc()
	// Dec decrements the gauge by 1.
	Dec()
	// Add adds delta to the gauge. delta can be negative.
	Add(delta float64)
}

// CacheMetrics groups the instruments a cache drives. Every field is
// non-nil on a value returned by [Nop] or by a backend constructor;
// callers building one by hand must populate all fields.
type CacheMetrics struct {
	// Hits counts successful lookups.
	Hits Counter
	// Misses counts lookups that found nothing.
	Misses Counter
	// Adds counts fresh insertions.
	Adds Counter
	// KeepAlives counts re-adds of already cached keys.
	KeepAlives Counter
	// Invalidations counts invalidate calls that found their key.
	Invalidations Counter
	// Collected counts entries removed by collection sweeps.
	Collected Counter
	// Items tracks the number of live entries.
	Items Gauge
}
