package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/api/doctors", "200", time.Now())
	m.IncrementMappingEvent("created")
	m.IncrementMappingEvent("created")
	m.AddMappingsPurged("doctor", 3)
	m.AddMappingsPurged("doctor", 0)
	m.IncrementValidationFailure("doctor")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/doctors", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.MappingEvents.WithLabelValues("created")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.MappingsPurged.WithLabelValues("doctor")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("doctor")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", "200", time.Now())
		m.IncrementMappingEvent("created")
		m.AddMappingsPurged("patient", 1)
		m.IncrementValidationFailure("patient")
	})
}
