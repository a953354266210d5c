// Package prometheus provides a Prometheus implementation of the rescache
// metrics instruments.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/rescache/metrics"
)

// Namespace is the prefix of every metric this package registers.
const Namespace = "rescache"

// New registers cache instruments on reg and returns them bundled as a
// CacheMetrics. Every metric carries a "cache" const label with the given
// name, so multiple caches can share one registry as long as their names
// differ. Registering the same name twice panics, as prometheus
// registration does.
//
// The prometheus counter and gauge types satisfy the metrics interfaces
// directly; no wrapping is involved.
func New(reg prometheus.Registerer, cacheName string) *metrics.CacheMetrics {
	labels := prometheus.Labels{"cache": cacheName}

	counter := func(name, help string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   Namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
		reg.MustRegister(c)
		return c
	}

	items := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   Namespace,
		Name:        "items",
		Help:        "Number of live cache entries.",
		ConstLabels: labels,
	})
	reg.MustRegister(items)

	return &metrics.CacheMetrics{
		Hits:          counter("hits_total", "Successful lookups."),
		Misses:        counter("misses_total", "Lookups that found nothing."),
		Adds:          counter("adds_total", "Fresh insertions."),
		KeepAlives:    counter("keepalives_total", "Re-adds of already cached keys."),
		Invalidations: counter("invalidations_total", "Invalidate calls that found their key."),
		Collected:     counter("collected_total", "Entries removed by collection sweeps."),
		Items:         items,
	}
}
