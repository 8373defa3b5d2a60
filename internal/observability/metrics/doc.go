// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (scrapes, articles, views, signups)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "news-portal/internal/observability/metrics"
//
//	func scrape(sourceID string) {
//	    start := time.Now()
//	    // ... fetch and normalize ...
//	    metrics.RecordSourceScrape(sourceID, time.Since(start), len(articles))
//	}
package metrics
