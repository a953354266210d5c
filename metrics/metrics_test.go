package metrics

import "testing"

func TestNopPopulatesEveryInstrument(t *testing.T) {
	m := Nop()
	if m.Hits == nil || m.Misses == nil || m.Adds == nil ||
		m.KeepAlives == nil || m.Invalidations == nil ||
		m.Collected == nil || m.Items == nil {
		t.Fatal("Nop() left an instrument nil")
	}

	// No-op instruments must accept any input without effect.
	m.Hits.Inc()
	m.Hits.Add(2)
	m.Items.Set(1)
	m.Items.Inc()
	m.Items.Dec()
	m.Items.Add(-5)
}

func TestNopConstructors(t *testing.T) {
	if NopCounter() == nil {
		t.Error("NopCounter() = nil")
	}
	if NopGauge() == nil {
		t.Error("NopGauge() = nil")
	}
}
