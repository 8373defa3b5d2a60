package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization.
var pathPatterns = []*PathPattern{
	// Article routes keyed by MD5 hex IDs
	{Pattern: regexp.MustCompile(`^/news/article/[0-9a-f]{32}/comments$`), Template: "/news/article/:id/comments"},
	{Pattern: regexp.MustCompile(`^/news/article/[0-9a-f]{32}/bookmark$`), Template: "/news/article/:id/bookmark"},
	{Pattern: regexp.MustCompile(`^/news/article/[0-9a-f]{32}$`), Template: "/news/article/:id"},

	// User routes keyed by UUIDs
	{Pattern: regexp.MustCompile(`^/users/[0-9a-fA-F-]{36}/bookmarks$`), Template: "/users/:id/bookmarks"},
	{Pattern: regexp.MustCompile(`^/users/[0-9a-fA-F-]{36}/preferences$`), Template: "/users/:id/preferences"},
	{Pattern: regexp.MustCompile(`^/users/[0-9a-fA-F-]{36}/feed$`), Template: "/users/:id/feed"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /news/article/3f2a...) to template format
// (e.g., /news/article/:id). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/news/article/0123456789abcdef0123456789abcdef")  // "/news/article/:id"
//	NormalizePath("/news/trending")                                  // unchanged
//	NormalizePath("/health")                                         // unchanged
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/news?page=2")      // "/news"
//	NormalizePath("/news/trending/")   // "/news/trending"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path. Static paths like /health and
	// /metrics pass through unchanged.
	return path
}
