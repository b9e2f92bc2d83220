package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Record store metrics
	storeMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emr_store_mutations_total",
			Help: "Total number of record store mutations",
		},
		[]string{"entity", "operation", "status"},
	)

	// Workflow metrics
	workflowActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emr_workflow_actions_total",
			Help: "Total number of clinical workflow actions",
		},
		[]string{"action", "status"},
	)

	consultationAutosavesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "emr_consultation_autosaves_total",
			Help: "Total number of consultation autosaves fired",
		},
	)

	unreadNotifications = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "emr_unread_notifications",
			Help: "Number of unread notifications across all dashboards",
		},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		storeMutationsTotal,
		workflowActionsTotal,
		consultationAutosavesTotal,
		unreadNotifications,
	)
}

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordStoreMutation records a record store mutation outcome
func RecordStoreMutation(entity, operation, status string) {
	storeMutationsTotal.WithLabelValues(entity, operation, status).Inc()
}

// RecordWorkflowAction records a clinical workflow action outcome
func RecordWorkflowAction(action, status string) {
	workflowActionsTotal.WithLabelValues(action, status).Inc()
}

// RecordConsultationAutosave records an autosave firing
func RecordConsultationAutosave() {
	consultationAutosavesTotal.Inc()
}

// SetUnreadNotifications updates the unread notification gauge
func SetUnreadNotifications(count int) {
	unreadNotifications.Set(float64(count))
}

// MetricsHandler returns the Prometheus metrics HTTP handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
