package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_http_requests_total",
		Help: "Total HTTP requests by method, route and status code",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gallery_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	BackupOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_backup_operations_total",
		Help: "Total backup export/import operations by status",
	}, []string{"operation", "status"})

	BackupSizeBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gallery_backup_size_bytes",
		Help: "Size of the most recent exported backup in bytes",
	})

	CloudOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gallery_cloud_operations_total",
		Help: "Total cloud drive operations by provider and status",
	}, []string{"provider", "operation", "status"})
)

// Status переводит результат операции в значение метки status
func Status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}
