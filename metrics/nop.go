package metrics

// nopCounter is a no-op implementation of Counter.
type nopCounter struct{}

func (nopCounter) Inc()        {}
func (nopCounter) Add(float64) {}

// nopGauge is a no-op implementation of Gauge.
type nopGauge struct{}

func (nopGauge) Set(float64) {}
func (nopGauge) Inc()        {}
func (nopGauge) Dec()        {}
func (nopGauge) Add(float64) {}

// NopCounter returns a no-op Counter.
func NopCounter() Counter { return nopCounter{} }

// NopGauge returns a no-op Gauge.
func NopGauge() Gauge { return nopGauge{} }

// Nop returns a CacheMetrics whose instruments all discard their inputs.
// It is the default for caches with no monitoring backend configured.
func Nop() *CacheMetrics {
	return &CacheMetrics{
		Hits:          nopCounter{},
		Misses:        nopCounter{},
		Adds:          nopCounter{},
		KeepAlives:    nopCounter{},
		Invalidations: nopCounter{},
		Collected:     nopCounter{},
		Items:         nopGauge{},
	}
}
