package grpcframe

import "testing"

func TestNilMetricsMethodsAreNoops(t *testing.T) {
	var m *Metrics
	// These must not panic on a nil receiver; that's the whole point of
	// letting metrics be optional for a Deframer.
	m.recordFrame()
	m.recordError()
	m.recordCompaction(128)
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()
	if a == nil || b == nil {
		t.Fatalf("expected non-nil Metrics from NewMetrics")
	}
	// Calling RegisterMetrics again directly must not panic with an
	// "already registered" error from prometheus.
	RegisterMetrics()
}
