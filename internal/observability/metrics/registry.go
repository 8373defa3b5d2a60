// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestSize measures HTTP request body size in bytes
	HTTPRequestSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_size_bytes",
			Help:    "HTTP request size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	// HTTPRequestsInFlight tracks the number of requests currently being served
	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business metrics track scraping and aggregation operations
var (
	// ArticlesTotal tracks the number of articles held in the store
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "articles_total",
			Help: "Total number of articles in the store",
		},
	)

	// ArticlesScrapedTotal counts articles produced per source
	ArticlesScrapedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_scraped_total",
			Help: "Total number of articles scraped from sources",
		},
		[]string{"source_id"},
	)

	// SourceScrapeDuration measures time to scrape one source page
	SourceScrapeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "source_scrape_duration_seconds",
			Help:    "Time taken to scrape a source",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"source_id"},
	)

	// SourceScrapeErrors counts failed scrape attempts per source
	SourceScrapeErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_scrape_errors_total",
			Help: "Total number of source scrape errors",
		},
		[]string{"source_id"},
	)

	// ArticleViewsTotal counts article detail reads
	ArticleViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "article_views_total",
			Help: "Total number of article detail views",
		},
	)

	// NewsletterSignupsTotal counts newsletter subscription requests
	NewsletterSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsletter_signups_total",
			Help: "Total number of newsletter signups",
		},
	)

	// RefreshRunsTotal counts background refresh runs by outcome
	RefreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_job_runs_total",
			Help: "Total number of background refresh runs by status",
		},
		[]string{"status"},
	)

	// RefreshDuration measures the duration of one background refresh run
	RefreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "refresh_job_duration_seconds",
			Help:    "Duration of background refresh runs",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// RefreshLastSuccess records when the last refresh completed successfully
	RefreshLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "refresh_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful background refresh",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, requestSize, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if requestSize > 0 {
		HTTPRequestSize.WithLabelValues(method, path).Observe(float64(requestSize))
	}
	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
