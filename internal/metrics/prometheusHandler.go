package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var activeSessionCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_session_count",
	Help: "Number of grading sessions currently held in the store",
})

var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "grading_submissions_total",
	Help: "Total grading submissions labelled by provider",
}, []string{"provider"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementActiveSessionCount() {
	activeSessionCount.Inc()
}

func DecrementActiveSessionCount() {
	activeSessionCount.Dec()
}

func CountSubmission(provider string) {
	submissionsTotal.WithLabelValues(provider).Inc()
}

var submissionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "process_submission_duration_seconds",
	Help:    "Total time spent in ProcessSubmission.",
	Buckets: []float64{.1, .5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureSubmissionMetrics(label string, timeElapsed time.Duration) {
	submissionDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
