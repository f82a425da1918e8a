package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDemoMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDemoMetrics(reg)

	m.ObserveIntent("schedule", "en")
	m.ObserveIntent("schedule", "en")
	m.ObserveWrite("demoevent", "ok", 0.01)
	m.ObserveWrite("demoevent", "error", 0.2)
	m.ObserveWrite("demolead", "invalid", 0)
	m.ObserveBooking("fr")
	m.ObserveRejected("book")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.intentsTotal.WithLabelValues("schedule", "en")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writesTotal.WithLabelValues("demoevent", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.writesTotal.WithLabelValues("demolead", "invalid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("fr")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejectedTotal.WithLabelValues("book")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.writeLatency))
}

func TestDemoMetricsNilSafe(t *testing.T) {
	var m *DemoMetrics
	m.ObserveIntent("general", "en")
	m.ObserveWrite("demoevent", "ok", 0.1)
	m.ObserveBooking("en")
	m.ObserveRejected("lead")
}
