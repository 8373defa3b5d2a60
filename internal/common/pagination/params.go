package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page    int // 1-based page number
	PerPage int // Items per page
}

// ParseQueryParams parses pagination parameters from HTTP request query string.
// Returns Params with defaults if parameters are missing.
//
// Query parameters:
//   - page: Page number (must be positive integer)
//   - per_page: Items per page (must be between 1 and config.MaxPerPage)
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config) (Params, error) {
	params := Params{
		Page:    config.DefaultPage,
		PerPage: config.DefaultPerPage,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid query parameter: page must be a positive integer")
		}
		params.Page = page
	}

	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil || perPage < 1 || perPage > config.MaxPerPage {
			return params, fmt.Errorf("invalid query parameter: per_page must be between 1 and %d", config.MaxPerPage)
		}
		params.PerPage = perPage
	}

	return params, nil
}
