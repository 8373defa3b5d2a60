// Package entity defines the core domain entities for the application.
// It contains the fundamental business objects such as Article, Source, User,
// and Comment, along with their validation rules and domain-specific errors.
package entity

// Article represents a scraped news article.
// The ID is a content hash of (title, source id, calendar day), so re-scraping
// the same headline on the same day yields the same article.
type Article struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle,omitempty"`
	URL             string   `json:"url"`
	Summary         string   `json:"summary,omitempty"`
	Content         string   `json:"content,omitempty"`
	Author          string   `json:"author,omitempty"`
	PublishedDate   string   `json:"published_date,omitempty"`
	Source          string   `json:"source"`
	Category        string   `json:"category,omitempty"`
	Tags            []string `json:"tags"`
	ImageURL        string   `json:"image_url,omitempty"`
	VideoURL        string   `json:"video_url,omitempty"`
	ReadTime        int      `json:"read_time,omitempty"`
	Views           int64    `json:"views"`
	IsBreaking      bool     `json:"is_breaking"`
	IsFeatured      bool     `json:"is_featured"`
	IsTrending      bool     `json:"is_trending"`
	RelatedArticles []string `json:"related_articles"`
}
