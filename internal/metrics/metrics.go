package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the dashboard's collectors on their own registry so
// tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LoginsTotal         *prometheus.CounterVec
	ChangeRequestsTotal prometheus.Counter
	PreferenceWrites    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nexus_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_logins_total",
				Help: "Logins by granted role and login method",
			},
			[]string{"role", "method"},
		),
		ChangeRequestsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "nexus_change_requests_submitted_total",
				Help: "Change requests submitted from site workspaces",
			},
		),
		PreferenceWrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nexus_preference_writes_total",
				Help: "Preference flag writes by key",
			},
			[]string{"key"},
		),
	}

	m.Registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LoginsTotal,
		m.ChangeRequestsTotal,
		m.PreferenceWrites,
	)
	return m
}
