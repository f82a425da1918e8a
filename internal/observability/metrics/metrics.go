package metrics

import "github.com/prometheus/client_golang/prometheus"

// DemoMetrics exposes counters for the receptionist demo flows.
type DemoMetrics struct {
	intentsTotal  *prometheus.CounterVec
	writesTotal   *prometheus.CounterVec
	bookingsTotal *prometheus.CounterVec
	rejectedTotal *prometheus.CounterVec
	writeLatency  *prometheus.HistogramVec
}

func NewDemoMetrics(reg prometheus.Registerer) *DemoMetrics {
	m := &DemoMetrics{
		intentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliqo",
			Subsystem: "demo",
			Name:      "intents_total",
			Help:      "Classified user messages by intent and language",
		}, []string{"intent", "lang"}),
		writesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliqo",
			Subsystem: "demo",
			Name:      "store_writes_total",
			Help:      "Document store writes by collection and outcome",
		}, []string{"collection", "status"}),
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliqo",
			Subsystem: "demo",
			Name:      "bookings_total",
			Help:      "Accepted demo bookings",
		}, []string{"lang"}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cliqo",
			Subsystem: "demo",
			Name:      "invalid_input_total",
			Help:      "Requests rejected as invalid input",
		}, []string{"operation"}),
		writeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cliqo",
			Subsystem: "demo",
			Name:      "store_write_seconds",
			Help:      "Latency of document store writes",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intentsTotal, m.writesTotal, m.bookingsTotal, m.rejectedTotal, m.writeLatency)
	return m
}

func (m *DemoMetrics) ObserveIntent(intent, lang string) {
	if m == nil {
		return
	}
	m.intentsTotal.WithLabelValues(intent, lang).Inc()
}

// ObserveWrite records one store write; status is "ok", "error" or "invalid".
func (m *DemoMetrics) ObserveWrite(collection, status string, seconds float64) {
	if m == nil {
		return
	}
	m.writesTotal.WithLabelValues(collection, status).Inc()
	if status != "invalid" {
		m.writeLatency.WithLabelValues(collection).Observe(seconds)
	}
}

func (m *DemoMetrics) ObserveBooking(lang string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(lang).Inc()
}

func (m *DemoMetrics) ObserveRejected(operation string) {
	if m == nil {
		return
	}
	m.rejectedTotal.WithLabelValues(operation).Inc()
}
