// Package scraper provides the goquery-based headline scraper used to pull
// article listings from configured news sites.
package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"news-portal/internal/domain/entity"
	"news-portal/internal/resilience/circuitbreaker"
	"news-portal/internal/usecase/news"
)

const (
	maxBodySize = 10 * 1024 * 1024 // 10MB

	// requestTimeout bounds one page fetch end to end.
	requestTimeout = 10 * time.Second

	// userAgent mimics a desktop browser. The scraped sites serve stripped
	// or blocked responses to obvious bot agents.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// sourceRate caps outbound requests per source. Aggregation fans out
	// per category, so one user request can hit the same site several
	// times; the limiter spaces those hits out.
	sourceRate  = rate.Limit(4)
	sourceBurst = 8
)

// headlineSelectors are tried in order against each page. The first selector
// that matches anything wins; later selectors are not consulted.
var headlineSelectors = []string{
	"h1 a", "h2 a", "h3 a",
	".story-headline a", ".headline a",
	`[data-testid="internal-link"]`,
}

// HeadlineScraper implements news.HeadlineFetcher by downloading a category
// page and extracting anchor elements with CSS selectors. Each source gets
// its own circuit breaker so a flapping site stops being hammered without
// affecting the others.
type HeadlineScraper struct {
	client *http.Client

	mu       sync.Mutex
	breakers map[string]*circuitbreaker.CircuitBreaker
	limiters map[string]*rate.Limiter
}

// NewHeadlineScraper creates a HeadlineScraper. A nil client gets a default
// one with the scrape timeout applied.
func NewHeadlineScraper(client *http.Client) *HeadlineScraper {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &HeadlineScraper{
		client:   client,
		breakers: make(map[string]*circuitbreaker.CircuitBreaker),
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch downloads the source's page for the category and extracts up to
// limit headlines. The request runs through the source's circuit breaker;
// an open breaker fails fast with gobreaker.ErrOpenState.
func (s *HeadlineScraper) Fetch(ctx context.Context, src entity.Source, category string, limit int) ([]news.Headline, error) {
	pageURL := src.CategoryURL(category)

	if err := s.limiter(src.ID).Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	result, err := s.breaker(src.ID).Execute(func() (interface{}, error) {
		return s.doFetch(ctx, src, pageURL, limit)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			slog.Warn("scrape rejected by circuit breaker",
				slog.String("source", src.ID),
				slog.String("url", pageURL))
		}
		return nil, err
	}

	return result.([]news.Headline), nil
}

// doFetch performs the actual scrape without the circuit breaker.
func (s *HeadlineScraper) doFetch(ctx context.Context, src entity.Source, pageURL string, limit int) ([]news.Headline, error) {
	doc, err := s.fetchHTML(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return extractHeadlines(doc, src, limit), nil
}

// fetchHTML fetches and parses the HTML page at the given URL.
func (s *HeadlineScraper) fetchHTML(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	// Limit body size to prevent memory exhaustion
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	return doc, nil
}

// extractHeadlines walks the selector list in order and extracts headlines
// from the first selector that matches. Elements without a title, without an
// href, or with a non-resolvable href are skipped.
func extractHeadlines(doc *goquery.Document, src entity.Source, limit int) []news.Headline {
	var matched *goquery.Selection
	for _, selector := range headlineSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			matched = sel
			break
		}
	}
	if matched == nil {
		return nil
	}

	headlines := make([]news.Headline, 0, limit)
	matched.EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if len(headlines) >= limit {
			return false
		}

		title := strings.TrimSpace(el.Text())
		if title == "" {
			return true
		}

		href, _ := el.Attr("href")
		href = strings.TrimSpace(href)
		switch {
		case href == "":
			return true
		case strings.HasPrefix(href, "/"):
			href = src.Domain + href
		case !strings.HasPrefix(href, "http"):
			return true
		}

		headlines = append(headlines, news.Headline{
			Title:    title,
			URL:      href,
			ImageURL: nearbyImage(el),
		})
		return true
	})

	return headlines
}

// nearbyImage looks for an img inside the anchor's parent element, which is
// where the scraped sites place headline thumbnails.
func nearbyImage(el *goquery.Selection) string {
	parent := el.Parent()
	if parent.Length() == 0 {
		return ""
	}
	src, _ := parent.Find("img").First().Attr("src")
	return src
}

// breaker returns the circuit breaker for the source, creating it on first
// use.
func (s *HeadlineScraper) breaker(sourceID string) *circuitbreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	cb, ok := s.breakers[sourceID]
	if !ok {
		cb = circuitbreaker.New(circuitbreaker.SourceFetchConfig(sourceID))
		s.breakers[sourceID] = cb
	}
	return cb
}

// limiter returns the politeness limiter for the source, creating it on
// first use.
func (s *HeadlineScraper) limiter(sourceID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[sourceID]
	if !ok {
		l = rate.NewLimiter(sourceRate, sourceBurst)
		s.limiters[sourceID] = l
	}
	return l
}
