package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreated  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "rideshare", Name: "seat_requests_created_total", Help: "Seat requests created"})
	RequestsAccepted = promauto.NewCounter(prometheus.CounterOpts{Namespace: "rideshare", Name: "seat_requests_accepted_total", Help: "Seat requests accepted"})
	RequestsRejected = promauto.NewCounter(prometheus.CounterOpts{Namespace: "rideshare", Name: "seat_requests_rejected_total", Help: "Seat requests rejected"})
	CapacityRefusals = promauto.NewCounter(prometheus.CounterOpts{Namespace: "rideshare", Name: "capacity_refusals_total", Help: "Requests refused for insufficient seats"})
	RidesCreated     = promauto.NewCounter(prometheus.CounterOpts{Namespace: "rideshare", Name: "rides_created_total", Help: "Rides created"})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "rideshare", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rideshare",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
