package grpcframe

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerMetricsOnce sync.Once

	framesDecodedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grpcframe",
		Name:      "frames_decoded_total",
		Help:      "Total gRPC frames successfully decoded.",
	})
	frameDecodeErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grpcframe",
		Name:      "frame_decode_errors_total",
		Help:      "Total frame decode attempts that returned an error.",
	})
	bytesCompactedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grpcframe",
		Name:      "bytes_compacted_total",
		Help:      "Total consumed bytes discarded by buffer compaction.",
	})
	compactionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "grpcframe",
		Name:      "compactions_total",
		Help:      "Total buffer compaction passes.",
	})
)

// RegisterMetrics registers the package's collectors with the default
// prometheus registry. Safe to call from multiple goroutines or streams;
// registration happens at most once.
func RegisterMetrics() {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(framesDecodedTotal, frameDecodeErrorsTotal, bytesCompactedTotal, compactionsTotal)
	})
}

// Metrics is an optional collaborator a Deframer reports decode and
// compaction outcomes to. A nil *Metrics is always safe to use: every
// method is a no-op on a nil receiver, so metrics are never required for
// correctness.
type Metrics struct{}

// NewMetrics registers the package's prometheus collectors and returns a
// handle for a Deframer to report through.
func NewMetrics() *Metrics {
	RegisterMetrics()
	return &Metrics{}
}

func (m *Metrics) recordFrame() {
	if m == nil {
		return
	}
	framesDecodedTotal.Inc()
}

func (m *Metrics) recordError() {
	if m == nil {
		return
	}
	frameDecodeErrorsTotal.Inc()
}

func (m *Metrics) recordCompaction(discarded int) {
	if m == nil {
		return
	}
	compactionsTotal.Inc()
	bytesCompactedTotal.Add(float64(discarded))
}
