// Package news provides the scraping-and-aggregation use cases.
// It runs fetch, extract, and normalize steps across the configured sources,
// merges the per-source results, and serves filtered, paginated article lists.
package news

import "errors"

// ErrArticleNotFound indicates that the requested article is not in the
// store. Articles only exist after a scrape has produced them.
var ErrArticleNotFound = errors.New("article not found")
