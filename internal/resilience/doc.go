// Package resilience provides reliability and fault tolerance patterns for the application.
// Outbound headline fetches hit third-party news sites that rate limit, change
// markup, or go down entirely; the patterns here keep one bad site from
// degrading the whole aggregation.
//
// Subpackages:
//   - circuitbreaker: per-source circuit breakers built on sony/gobreaker
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.SourceFetchConfig("alpha"))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return fetchHeadlines()
//	})
package resilience
