package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, cv *prometheus.CounterVec, group string) float64 {
	t.Helper()
	var m dto.Metric
	if err := cv.WithLabelValues(group).Write(&m); err != nil {
		t.Fatalf("Failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func histogramCount(t *testing.T, hv *prometheus.HistogramVec, group string) uint64 {
	t.Helper()
	var m dto.Metric
	if err := hv.WithLabelValues(group).(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Failed to read histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// isolateEntries points the entries gauges at a fresh registry for the test
func isolateEntries(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	orig := entriesReg
	entriesReg = reg
	t.Cleanup(func() { entriesReg = orig })
	return reg
}

func gatherEntries(t *testing.T, reg *prometheus.Registry, group string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "cache_entries" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "cache" && lp.GetValue() == group {
					return m.GetGauge().GetValue()
				}
			}
		}
	}
	return -1
}

func newInstrumentedTestCache(t *testing.T, cfg ProviderConfig) Cache {
	t.Helper()
	if cfg.Size == 0 {
		cfg.Size = 10
	}
	if cfg.TTL == 0 {
		cfg.TTL = time.Hour
	}
	c, err := New("memory", cfg)
	if err != nil {
		t.Fatalf("New instrumented cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestInstrumentedCache_HitsAndMisses(t *testing.T) {
	c := newInstrumentedTestCache(t, ProviderConfig{Group: "test-lookups"})
	c.Set("k", []byte("v"))

	hits := counterValue(t, HitsTotal, "test-lookups")
	misses := counterValue(t, MissesTotal, "test-lookups")

	_, _ = c.Get("k")
	_, _ = c.Get("absent")
	_, _ = c.Get("also-absent")

	if got := counterValue(t, HitsTotal, "test-lookups") - hits; got != 1 {
		t.Errorf("Expected 1 hit, got %.0f", got)
	}
	if got := counterValue(t, MissesTotal, "test-lookups") - misses; got != 2 {
		t.Errorf("Expected 2 misses, got %.0f", got)
	}
}

func TestInstrumentedCache_ContainsDoesNotCount(t *testing.T) {
	c := newInstrumentedTestCache(t, ProviderConfig{Group: "test-contains"})
	c.Set("k", []byte("v"))

	hits := counterValue(t, HitsTotal, "test-contains")
	if !c.Contains("k") {
		t.Fatal("Expected Contains to report the key")
	}
	if got := counterValue(t, HitsTotal, "test-contains") - hits; got != 0 {
		t.Errorf("Expected Contains not to count as a hit, got %.0f", got)
	}
}

func TestInstrumentedCache_StoredBytesAndDeletes(t *testing.T) {
	c := newInstrumentedTestCache(t, ProviderConfig{Group: "test-writes"})

	writes := histogramCount(t, StoredBytes, "test-writes")
	deletes := counterValue(t, DeletesTotal, "test-writes")

	c.Set("a", make([]byte, 4096))
	c.Set("b", []byte("{}"))
	c.Delete("a")

	if got := histogramCount(t, StoredBytes, "test-writes") - writes; got != 2 {
		t.Errorf("Expected 2 observed writes, got %d", got)
	}
	if got := counterValue(t, DeletesTotal, "test-writes") - deletes; got != 1 {
		t.Errorf("Expected 1 delete, got %.0f", got)
	}
	if c.Contains("a") {
		t.Error("Expected the deleted key to be gone")
	}
}

func TestInstrumentedCache_Evictions(t *testing.T) {
	var evicted []string
	c := newInstrumentedTestCache(t, ProviderConfig{
		Size:    2,
		Group:   "test-evict",
		OnEvict: func(key string, _ []byte) { evicted = append(evicted, key) },
	})

	before := counterValue(t, EvictionsTotal, "test-evict")

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Set("c", []byte("3")) // evicts "a"

	if got := counterValue(t, EvictionsTotal, "test-evict") - before; got != 1 {
		t.Errorf("Expected 1 eviction, got %.0f", got)
	}
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("Expected the caller's OnEvict to fire for 'a', got %v", evicted)
	}
}

func TestInstrumentedCache_EntriesReadAtScrape(t *testing.T) {
	reg := isolateEntries(t)
	c := newInstrumentedTestCache(t, ProviderConfig{Group: "test-entries"})

	if v := gatherEntries(t, reg, "test-entries"); v != 0 {
		t.Fatalf("Expected 0 entries before Set, got %.0f", v)
	}

	c.Set("x", []byte("1"))
	c.Set("y", []byte("2"))

	if v := gatherEntries(t, reg, "test-entries"); v != 2 {
		t.Errorf("Expected 2 entries after two Sets, got %.0f", v)
	}
}

func TestInstrumentedCache_SameGroupReplacesGauge(t *testing.T) {
	reg := isolateEntries(t)

	first, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-replace"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	first.Set("old", []byte("1"))

	second := newInstrumentedTestCache(t, ProviderConfig{Group: "test-replace"})
	second.Set("a", []byte("1"))
	second.Set("b", []byte("2"))
	second.Set("c", []byte("3"))

	if v := gatherEntries(t, reg, "test-replace"); v != 3 {
		t.Errorf("Expected the newest cache to be reported, got %.0f", v)
	}
}

func TestInstrumentedCache_CloseStopsEntries(t *testing.T) {
	reg := isolateEntries(t)

	c, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-close"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !isTracked("test-close") {
		t.Fatal("Expected entries gauge after New()")
	}

	_ = c.Close()

	if isTracked("test-close") {
		t.Error("Expected entries gauge to be dropped after Close()")
	}
	if v := gatherEntries(t, reg, "test-close"); v != -1 {
		t.Errorf("Expected no cache_entries sample after Close(), got %.0f", v)
	}
}
