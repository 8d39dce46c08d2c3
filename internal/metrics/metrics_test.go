package metrics

import (
	"strings"
	"sync"
	"testing"
)

func TestCounter(t *testing.T) {
	c := NewCounter("test_total", "test counter")
	c.Inc()
	c.Add(4)
	if c.Value() != 5 {
		t.Errorf("expected 5, got %d", c.Value())
	}
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter("test_total", "test counter")
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Inc()
			}
		}()
	}
	wg.Wait()
	if c.Value() != 10000 {
		t.Errorf("expected 10000, got %d", c.Value())
	}
}

func TestGauge(t *testing.T) {
	g := NewGauge("test_depth", "test gauge")
	g.Set(42.5)
	if g.Value() != 42.5 {
		t.Errorf("expected 42.5, got %g", g.Value())
	}
	g.Set(0)
	if g.Value() != 0 {
		t.Errorf("expected 0, got %g", g.Value())
	}
}

func TestRegistryIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Counter("events_dropped_total", "dropped")
	b := r.Counter("events_dropped_total", "dropped")
	if a != b {
		t.Error("expected same counter instance for same name")
	}
}

func TestWriteTo(t *testing.T) {
	r := NewRegistry()
	r.Counter("b_total", "second").Add(2)
	r.Counter("a_total", "first").Inc()
	r.Gauge("depth", "queue depth").Set(3)

	var sb strings.Builder
	if _, err := r.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	out := sb.String()

	if !strings.Contains(out, "a_total 1") {
		t.Errorf("missing a_total: %s", out)
	}
	if !strings.Contains(out, "b_total 2") {
		t.Errorf("missing b_total: %s", out)
	}
	if !strings.Contains(out, "depth 3") {
		t.Errorf("missing depth gauge: %s", out)
	}
	// Counters render sorted, before gauges.
	if strings.Index(out, "a_total") > strings.Index(out, "b_total") {
		t.Error("counters not sorted by name")
	}
}
