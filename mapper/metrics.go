package mapper

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons used as metric labels.
const (
	reasonUnregistered  = "unregistered"
	reasonInstantiation = "instantiation"
)

// Metrics holds Prometheus counters for decoding. A nil *Metrics disables
// recording.
type Metrics struct {
	decoded    *prometheus.CounterVec
	skipped    *prometheus.CounterVec
	dropped    prometheus.Counter
	unresolved prometheus.Counter
	duration   prometheus.Histogram
}

// NewMetrics creates the mapper metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontogen",
			Subsystem: "mapper",
			Name:      "decoded_total",
			Help:      "Instances built from the graph, by type",
		}, []string{"type"}),

		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ontogen",
			Subsystem: "mapper",
			Name:      "skipped_total",
			Help:      "Subjects skipped during batch decoding, by reason",
		}, []string{"reason"}), // reason: unregistered, instantiation

		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ontogen",
			Subsystem: "mapper",
			Name:      "dropped_values_total",
			Help:      "Extra values ignored on single-valued fields",
		}),

		unresolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ontogen",
			Subsystem: "mapper",
			Name:      "unresolved_references_total",
			Help:      "Nested references left absent because they could not be decoded",
		}),

		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ontogen",
			Subsystem: "mapper",
			Name:      "decode_all_duration_seconds",
			Help:      "Batch decoding duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.decoded, m.skipped, m.dropped, m.unresolved, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) recordDecoded(typeName string) {
	if m == nil {
		return
	}
	m.decoded.WithLabelValues(typeName).Inc()
}

func (m *Metrics) recordSkipped(reason string) {
	if m == nil {
		return
	}
	m.skipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) recordDropped(n int) {
	if m == nil {
		return
	}
	m.dropped.Add(float64(n))
}

func (m *Metrics) recordUnresolved() {
	if m == nil {
		return
	}
	m.unresolved.Inc()
}

func (m *Metrics) recordDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Observe(d.Seconds())
}
