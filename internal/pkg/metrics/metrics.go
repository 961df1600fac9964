package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kostdesk_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kostdesk_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	recordWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kostdesk_record_warnings_total",
		Help: "Records skipped or bucketed as unknown while deriving views",
	}, []string{"entity", "kind"})

	contractsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kostdesk_contracts",
		Help: "Contracts by derived status at the last reminder sweep",
	}, []string{"status"})

	invoicesByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "kostdesk_invoices",
		Help: "Invoices by derived status at the last reminder sweep",
	}, []string{"status"})

	reminderRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kostdesk_reminder_runs_total",
		Help: "Reminder sweeps by result",
	}, []string{"result"})

	notificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kostdesk_notifications_total",
		Help: "Notifications by kind and result",
	}, []string{"kind", "result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveRecordWarning counts one record that could not be fully processed.
// kind is "validation" or "unknown_status".
func ObserveRecordWarning(entity, kind string) {
	recordWarnings.WithLabelValues(entity, kind).Inc()
}

// SetContractCounts replaces the contract status gauges.
func SetContractCounts(counts map[string]int) {
	for status, n := range counts {
		contractsByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// SetInvoiceCounts replaces the invoice status gauges.
func SetInvoiceCounts(counts map[string]int) {
	for status, n := range counts {
		invoicesByStatus.WithLabelValues(status).Set(float64(n))
	}
}

// ObserveReminderRun records the outcome of a reminder sweep.
func ObserveReminderRun(result string) {
	reminderRuns.WithLabelValues(result).Inc()
}

// ObserveNotification records one outgoing notification.
func ObserveNotification(kind, result string) {
	notificationsSent.WithLabelValues(kind, result).Inc()
}
