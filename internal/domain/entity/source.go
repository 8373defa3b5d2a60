package entity

// Source represents a configured external news site that headlines are
// scraped from. Categories maps a topical bucket (e.g. "technology") to the
// site-specific URL for that bucket.
type Source struct {
	ID         string            `yaml:"id" json:"id"`
	Name       string            `yaml:"name" json:"name"`
	BaseURL    string            `yaml:"base_url" json:"base_url"`
	Domain     string            `yaml:"domain" json:"domain"`
	Categories map[string]string `yaml:"categories" json:"categories"`
}

// CategoryURL resolves the URL to scrape for the given category.
// Unknown categories (including "general") fall back to the base URL.
func (s *Source) CategoryURL(category string) string {
	if url, ok := s.Categories[category]; ok {
		return url
	}
	return s.BaseURL
}

// SupportsCategory reports whether the source has a dedicated URL for the
// given category.
func (s *Source) SupportsCategory(category string) bool {
	_, ok := s.Categories[category]
	return ok
}
