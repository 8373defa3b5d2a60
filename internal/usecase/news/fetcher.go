package news

import (
	"context"

	"news-portal/internal/domain/entity"
)

// Headline is a single extracted headline element: trimmed visible text, the
// resolved absolute link, and the nearest image if one was found.
type Headline struct {
	Title    string
	URL      string
	ImageURL string
}

// HeadlineFetcher fetches and extracts headline elements from one
// (source, category) page. Implementations live under internal/infra/scraper.
type HeadlineFetcher interface {
	Fetch(ctx context.Context, src entity.Source, category string, limit int) ([]Headline, error)
}
