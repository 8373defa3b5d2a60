package news

import (
	"crypto/md5" // #nosec G401 -- content-derived identifier, not a security boundary
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"news-portal/internal/domain/entity"
)

const (
	// summaryLimit is the maximum summary length before truncation.
	summaryLimit = 200
	// readingSpeed is the assumed words-per-minute reading speed.
	readingSpeed = 200
	// maxTags is the maximum number of tags derived from a title.
	maxTags = 5
	// minTagLength is the minimum word length for a tag candidate.
	minTagLength = 5
	// featuredCount marks the first N headlines of a batch as featured.
	featuredCount = 3
	// trendingCount marks the first N headlines of a batch as trending.
	trendingCount = 5
)

// breakingKeywords flag a headline as breaking news when any of them appears
// as a case-insensitive substring of the title.
var breakingKeywords = []string{
	"breaking", "urgent", "alert", "developing", "live", "update",
	"emergency", "crisis", "major", "significant", "important",
}

// ArticleID derives the deterministic article identifier from the title, the
// source ID, and the calendar day. Two scrapes of an identical headline on
// the same day collide intentionally so the store acts as an idempotent
// upsert target.
func ArticleID(title, sourceID string, day time.Time) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%s_%s", title, sourceID, day.Format("2006-01-02")))) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// Summarize truncates the title to the summary limit, appending an ellipsis
// marker when truncation happened. The limit counts runes so a multibyte
// headline is never cut mid-character. There is no real content extraction.
func Summarize(title string) string {
	runes := []rune(title)
	if len(runes) > summaryLimit {
		return string(runes[:summaryLimit]) + "..."
	}
	return title
}

// ReadTime estimates the read time in whole minutes for the given text,
// assuming 200 words per minute. Always at least 1.
func ReadTime(text string) int {
	minutes := len(strings.Fields(text)) / readingSpeed
	if minutes < 1 {
		return 1
	}
	return minutes
}

// IsBreaking reports whether the title reads like breaking news.
func IsBreaking(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range breakingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// TitleTags derives up to five lowercase tags from the long words of the
// title, in title order. Tags are not deduplicated or frequency-ranked.
func TitleTags(title string) []string {
	tags := make([]string, 0, maxTags)
	for _, word := range strings.Fields(title) {
		if len(word) < minTagLength {
			continue
		}
		tags = append(tags, strings.ToLower(word))
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// normalize converts the headline at 0-based position within its source batch
// into an article record. Featured and trending flags are purely positional.
func normalize(h Headline, src entity.Source, category string, position int, now time.Time) entity.Article {
	summary := Summarize(h.Title)
	return entity.Article{
		ID:              ArticleID(h.Title, src.ID, now),
		Title:           h.Title,
		Subtitle:        fmt.Sprintf("Latest from %s", src.Name),
		URL:             h.URL,
		Summary:         summary,
		Author:          fmt.Sprintf("%s Reporter", src.Name),
		PublishedDate:   now.Format(time.RFC3339),
		Source:          src.Name,
		Category:        category,
		Tags:            TitleTags(h.Title),
		ImageURL:        h.ImageURL,
		ReadTime:        ReadTime(summary),
		IsBreaking:      IsBreaking(h.Title),
		IsFeatured:      position < featuredCount,
		IsTrending:      position < trendingCount,
		RelatedArticles: []string{},
	}
}
