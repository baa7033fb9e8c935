package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for device traffic
type Metrics struct {
	registry *prometheus.Registry

	// ECP metrics
	ECPRequests *prometheus.CounterVec
	ECPDuration *prometheus.HistogramVec

	// App cache metrics
	AppRefreshes *prometheus.CounterVec

	// Discovery metrics
	DevicesDiscovered prometheus.Counter
}

// New creates the collectors on a fresh registry so tests can build
// independent instances.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ECPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecp_requests_total",
				Help: "Total ECP requests sent to devices",
			},
			[]string{"op", "status"},
		),
		ECPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ecp_request_duration_seconds",
				Help:    "ECP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
		AppRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "app_cache_refreshes_total",
				Help: "App list fetches by result",
			},
			[]string{"result"},
		),
		DevicesDiscovered: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "devices_discovered_total",
				Help: "Devices found by network discovery",
			},
		),
	}
}

// ObserveECP records one ECP request. status is the HTTP status code, or 0
// when the request never got a response.
func (m *Metrics) ObserveECP(op string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.ECPRequests.WithLabelValues(op, label).Inc()
	m.ECPDuration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveAppRefresh records one app list fetch.
func (m *Metrics) ObserveAppRefresh(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.AppRefreshes.WithLabelValues(result).Inc()
}

// ObserveDiscovered records devices found by a discovery scan.
func (m *Metrics) ObserveDiscovered(n int) {
	if m == nil {
		return
	}
	m.DevicesDiscovered.Add(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
