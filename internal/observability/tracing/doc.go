// Package tracing provides OpenTelemetry tracing integration.
//
// HTTP requests are traced through Middleware, which extracts incoming W3C
// Trace Context headers, opens a server span per request, and reflects the
// trace ID back in the X-Trace-Id response header. Scrape runs can open
// child spans via GetTracer.
//
// Example usage:
//
//	import "news-portal/internal/observability/tracing"
//
//	func handleFeed(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "personalized-feed")
//	    defer span.End()
//	    // ... build feed ...
//	}
package tracing
