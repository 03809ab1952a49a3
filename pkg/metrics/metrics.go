package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// booking outcomes
const (
	OutcomeCreated     = "created"
	OutcomeNotBookable = "not_bookable"
	OutcomeNoSlots     = "no_slots"
	OutcomeInvalid     = "invalid"
	OutcomeError       = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitness_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	ClassesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitness_classes_created_total",
			Help: "Total number of fitness classes created",
		},
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitness_events_published_total",
			Help: "Domain events handed to the broker",
		},
		[]string{"routing_key", "status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordClassCreated() {
	ClassesCreatedTotal.Inc()
}

func RecordEvent(routingKey, status string) {
	EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}
