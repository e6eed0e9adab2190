// Package metrics defines Prometheus metrics for the listing gateway.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lgw"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Backend API metrics.
var (
	BackendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total backend API calls by operation.",
	}, []string{"op"})

	BackendErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_errors_total",
		Help:      "Total failed backend API calls by operation.",
	}, []string{"op"})

	BackendRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of backend API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})

	BackendDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "backend_daily_usage",
		Help:      "Current daily backend call count within the rolling 24-hour window.",
	})

	BackendDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_daily_limit_hits_total",
		Help:      "Total number of times the daily backend call limit was reached.",
	})
)

// Upload pipeline metrics.
var (
	UploadsStoredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_stored_total",
		Help:      "Total number of uploaded photos stored successfully.",
	})

	UploadsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_skipped_total",
		Help:      "Total number of uploaded files skipped, by reason.",
	}, []string{"reason"})

	UploadStoredBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_stored_bytes",
		Help:      "Size in bytes of stored primary assets.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
	})

	UploadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_duration_seconds",
		Help:      "Duration of per-file upload processing in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Content directory metrics, updated by the sweeper.
var (
	ContentFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "content_files",
		Help:      "Number of files currently in the content directory.",
	})

	ContentBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "content_bytes",
		Help:      "Total size in bytes of the content directory.",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sweep_duration_seconds",
		Help:      "Duration of content directory sweeps in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)
