package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	authzDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Access decisions by resource and outcome.",
		},
		[]string{"resource", "outcome"},
	)

	jobRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_runs_total",
			Help: "Scheduled job runs by job and result.",
		},
		[]string{"job", "result"},
	)

	jobTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_transitions_total",
			Help: "Records transitioned by scheduled jobs.",
		},
		[]string{"job"},
	)

	jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "job_duration_seconds",
			Help:    "Scheduled job run duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)
)

var registerOnce sync.Once

// Init registers all collectors in the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpInFlight, httpRequestsTotal, httpRequestDuration,
			authzDecisionsTotal,
			jobRunsTotal, jobTransitionsTotal, jobDuration,
		)
	})
}

// Handler serves the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}

func HTTPStarted() { httpInFlight.Inc() }

// HTTPFinished records one served request. path should be the route template, not the raw URL.
func HTTPFinished(method, path string, status int, elapsed time.Duration) {
	s := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(method, path, s).Observe(elapsed.Seconds())
	httpRequestsTotal.WithLabelValues(method, path, s).Inc()
	httpInFlight.Dec()
}

const (
	OutcomeAllow = "allow"
	OutcomeDeny  = "deny"
)

func AuthzDecision(resource, outcome string) {
	authzDecisionsTotal.WithLabelValues(resource, outcome).Inc()
}

const (
	ResultOK      = "ok"
	ResultPartial = "partial"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

func JobRun(job, result string, transitioned int, elapsed time.Duration) {
	jobRunsTotal.WithLabelValues(job, result).Inc()
	if transitioned > 0 {
		jobTransitionsTotal.WithLabelValues(job).Add(float64(transitioned))
	}
	if elapsed > 0 {
		jobDuration.WithLabelValues(job).Observe(elapsed.Seconds())
	}
}
