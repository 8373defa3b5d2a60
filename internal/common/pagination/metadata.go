package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total   int  `json:"total"`    // Total number of items across all pages
	Page    int  `json:"page"`     // Current page number (1-based)
	PerPage int  `json:"per_page"` // Items per page
	HasNext bool `json:"has_next"` // Whether another page follows
	HasPrev bool `json:"has_prev"` // Whether a previous page exists
}

// BuildMetadata constructs pagination metadata from the filtered total.
func BuildMetadata(params Params, total int) Metadata {
	return Metadata{
		Total:   total,
		Page:    params.Page,
		PerPage: params.PerPage,
		HasNext: HasNext(total, params.Page, params.PerPage),
		HasPrev: params.Page > 1,
	}
}
