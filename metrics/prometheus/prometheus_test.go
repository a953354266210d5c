package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersLabelledInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg, "textures")

	m.Hits.Inc()
	m.Misses.Add(2)
	m.Items.Set(3)

	if got := testutil.ToFloat64(m.Hits.(prometheus.Collector)); got != 1 {
		t.Errorf("hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Misses.(prometheus.Collector)); got != 2 {
		t.Errorf("misses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Items.(prometheus.Collector)); got != 3 {
		t.Errorf("items = %v, want 3", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	want := map[string]bool{
		"rescache_hits_total":          false,
		"rescache_misses_total":        false,
		"rescache_adds_total":          false,
		"rescache_keepalives_total":    false,
		"rescache_invalidations_total": false,
		"rescache_collected_total":     false,
		"rescache_items":               false,
	}
	for _, mf := range mfs {
		name := mf.GetName()
		if _, ok := want[name]; !ok {
			continue
		}
		want[name] = true
		for _, metric := range mf.GetMetric() {
			labelled := false
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "cache" && lp.GetValue() == "textures" {
					labelled = true
				}
			}
			if !labelled {
				t.Errorf("%s missing cache=textures label", name)
			}
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("%s not registered", name)
		}
	}
}

func TestNewDistinctCachesShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := New(reg, "textures")
	b := New(reg, "glyphs")

	a.Hits.Inc()
	b.Hits.Add(2)

	if got := testutil.ToFloat64(a.Hits.(prometheus.Collector)); got != 1 {
		t.Errorf("textures hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(b.Hits.(prometheus.Collector)); got != 2 {
		t.Errorf("glyphs hits = %v, want 2", got)
	}
}
