package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics holds the Prometheus collectors of the clinic API
type Metrics struct {
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	MappingEvents      *prometheus.CounterVec
	MappingsPurged     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
}

// New registers every collector with reg.
// Pass prometheus.DefaultRegisterer in the server and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clinic_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and route",
			Buckets: durationBuckets,
		}, []string{"method", "route"}),
		MappingEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_mapping_events_total",
			Help: "Patient-doctor assignment events (created, deactivated, conflict)",
		}, []string{"event"}),
		MappingsPurged: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_mappings_purged_total",
			Help: "Assignment rows removed by doctor or patient deletion",
		}, []string{"cause"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clinic_validation_failures_total",
			Help: "Rejected writes by resource",
		}, []string{"resource"}),
	}
}

// ObserveRequest records one finished HTTP request.
// Call with time.Now() taken before the handler ran.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// IncrementMappingEvent counts an assignment lifecycle event
func (m *Metrics) IncrementMappingEvent(event string) {
	if m == nil {
		return
	}
	m.MappingEvents.WithLabelValues(event).Inc()
}

// AddMappingsPurged counts assignment rows removed along with their doctor or patient
func (m *Metrics) AddMappingsPurged(cause string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.MappingsPurged.WithLabelValues(cause).Add(float64(n))
}

// IncrementValidationFailure counts a rejected write
func (m *Metrics) IncrementValidationFailure(resource string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(resource).Inc()
}
