// Package metrics declares the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_http_requests_total",
		Help: "HTTP requests by method, route and status code",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "buspass_http_request_duration_seconds",
		Help:    "HTTP request latency by route",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_bookings_created_total",
		Help: "Bookings inserted, by pass id",
	}, []string{"pass_id"})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_bookings_rejected_total",
		Help: "Booking requests that did not produce a row, by reason",
	}, []string{"reason"})

	FlowSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buspass_flow_submissions_total",
		Help: "Apply-step submissions by outcome",
	}, []string{"outcome"})
)
