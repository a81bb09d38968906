package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes application metrics that are safe to scrape via Prometheus.
type Metrics struct {
	registry            *prometheus.Registry
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	reportRunsTotal     *prometheus.CounterVec
	jobRunsTotal        *prometheus.CounterVec
}

// New creates a fresh Metrics registry with HTTP, report and job metrics
// registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mietpark",
		Name:      "http_requests_total",
		Help:      "Count of HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mietpark",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	reportRunsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mietpark",
		Name:      "report_runs_total",
		Help:      "Count of report computations by report kind",
	}, []string{"report"})

	jobRunsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mietpark",
		Name:      "job_runs_total",
		Help:      "Count of scheduled job runs by job name and outcome",
	}, []string{"job", "outcome"})

	registry.MustRegister(
		httpRequests,
		httpRequestDuration,
		reportRunsTotal,
		jobRunsTotal,
	)

	return &Metrics{
		registry:            registry,
		httpRequests:        httpRequests,
		httpRequestDuration: httpRequestDuration,
		reportRunsTotal:     reportRunsTotal,
		jobRunsTotal:        jobRunsTotal,
	}
}

// ObserveHTTPRequest records a single HTTP request/response cycle.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}
	m.httpRequests.With(labels).Inc()
	m.httpRequestDuration.With(labels).Observe(duration.Seconds())
}

// IncReportRun increments the report counter for one report kind.
func (m *Metrics) IncReportRun(report string) {
	if m == nil {
		return
	}
	m.reportRunsTotal.With(prometheus.Labels{"report": report}).Inc()
}

// IncJobRun increments the job counter with its outcome.
func (m *Metrics) IncJobRun(job, outcome string) {
	if m == nil {
		return
	}
	m.jobRunsTotal.With(prometheus.Labels{"job": job, "outcome": outcome}).Inc()
}

// Handler exposes the Prometheus registry over HTTP.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("metrics unavailable"))
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
