package rescache_test

import (
	"testing"

	"github.com/gogpu/rescache"
	"github.com/gogpu/rescache/metrics"
)

// testCounter and testGauge record their inputs so the test can observe
// which instruments the cache drives.
type testCounter struct{ n float64 }

func (c *testCounter) Inc()          { c.n++ }
func (c *testCounter) Add(d float64) { c.n += d }

type testGauge struct{ v float64 }

func (g *testGauge) Set(v float64) { g.v = v }
func (g *testGauge) Inc()          { g.v++ }
func (g *testGauge) Dec()          { g.v-- }
func (g *testGauge) Add(d float64) { g.v += d }

func newTestMetrics() (*metrics.CacheMetrics, map[string]*testCounter, *testGauge) {
	counters := map[string]*testCounter{
		"hits":          {},
		"misses":        {},
		"adds":          {},
		"keepalives":    {},
		"invalidations": {},
		"collected":     {},
	}
	items := &testGauge{}
	return &metrics.CacheMetrics{
		Hits:          counters["hits"],
		Misses:        counters["misses"],
		Adds:          counters["adds"],
		KeepAlives:    counters["keepalives"],
		Invalidations: counters["invalidations"],
		Collected:     counters["collected"],
		Items:         items,
	}, counters, items
}

func TestCacheDrivesMetrics(t *testing.T) {
	m, counters, items := newTestMetrics()

	c := rescache.New[string, int]()
	c.SetValueKind(rescache.Unmanaged[int]())
	c.SetMetrics(m)

	c.GetItem("missing")
	c.AddItem("a", 1)
	c.AddItem("a", 1)
	c.GetItem("a")
	c.InvalidateItem("a")
	c.CollectItems() // a: 1 -> 0
	c.CollectItems() // removes a

	want := map[string]float64{
		"hits":          1,
		"misses":        1,
		"adds":          1,
		"keepalives":    1,
		"invalidations": 1,
		"collected":     1,
	}
	for name, w := range want {
		if got := counters[name].n; got != w {
			t.Errorf("%s = %v, want %v", name, got, w)
		}
	}
	if items.v != 0 {
		t.Errorf("items gauge = %v, want 0 after eviction", items.v)
	}
}

func TestItemsGaugeTracksClear(t *testing.T) {
	m, _, items := newTestMetrics()

	c := rescache.New[string, int](
		rescache.WithValueKind[string](rescache.Unmanaged[int]()),
		rescache.WithMetrics[string, int](m),
	)

	c.AddItem("a", 1)
	c.AddItem("b", 2)
	if items.v != 2 {
		t.Fatalf("items gauge = %v, want 2", items.v)
	}

	c.Clear()
	if items.v != 0 {
		t.Errorf("items gauge after Clear = %v, want 0", items.v)
	}
}

func TestSetMetricsNilRestoresNop(t *testing.T) {
	c := rescache.New[string, int]()
	c.SetValueKind(rescache.Unmanaged[int]())
	c.SetMetrics(nil) // must not panic later
	c.AddItem("a", 1)
	c.GetItem("a")
	c.CollectItems()
}
