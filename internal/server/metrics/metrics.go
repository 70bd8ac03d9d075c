// Package metrics owns the Prometheus collectors of the server. Each
// Metrics value has its own registry so tests can build as many as they
// like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	reveals   prometheus.Counter
	launches  prometheus.Counter
	requests  *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infrakeeper",
			Name:      "record_mutations_total",
			Help:      "Credential and note mutations by record type and action.",
		}, []string{"record", "action"}),
		reveals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "infrakeeper",
			Name:      "secret_reads_total",
			Help:      "Raw credential passwords handed out.",
		}),
		launches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "infrakeeper",
			Name:      "launches_total",
			Help:      "Connection commands derived by the launcher.",
		}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "infrakeeper",
			Name:      "request_duration_seconds",
			Help:      "Request latency by transport, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"transport", "route", "status"}),
	}
	m.registry.MustRegister(
		m.mutations, m.reveals, m.launches, m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Mutation counts one successful create, update or delete.
func (m *Metrics) Mutation(record, action string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(record, action).Inc()
}

func (m *Metrics) SecretRead() {
	if m == nil {
		return
	}
	m.reveals.Inc()
}

func (m *Metrics) Launch() {
	if m == nil {
		return
	}
	m.launches.Inc()
}

// ObserveRequest records one request.
func (m *Metrics) ObserveRequest(transport, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(transport, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
