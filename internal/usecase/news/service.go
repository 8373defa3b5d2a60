package news

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"news-portal/internal/common/pagination"
	"news-portal/internal/config"
	"news-portal/internal/domain/entity"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

const (
	// CategoryGeneral is the fallback category scraped when a source has no
	// URL for the requested one.
	CategoryGeneral = "general"
	// CategoryBreaking is the category used by the breaking-news endpoint.
	CategoryBreaking = "breaking"

	// fanOutMargin is added to the per-source limit when dividing a page
	// across sources, so that short batches still fill the page.
	fanOutMargin = 2

	breakingCap = 10
	featuredCap = 8
	trendingPer = 20
	feedPerPair = 5
)

// Service orchestrates the scraping pipeline: it fans out
// fetch-extract-normalize runs across the registry, merges the batches in
// registry order, and applies search filtering and pagination.
type Service struct {
	Registry  *config.Registry
	Fetcher   HeadlineFetcher
	Articles  repository.ArticleRepository
	Analytics repository.AnalyticsRepository
	Logger    *slog.Logger
}

// Query carries the parameters of an aggregation request.
type Query struct {
	Source   string // optional source ID filter
	Category string // optional category filter
	Search   string // optional free-text filter
	Page     int    // 1-based page number
	PerPage  int    // page size
}

// Result is one page of aggregated articles plus pagination metadata.
// Total counts the filtered set before pagination.
type Result struct {
	Articles []entity.Article
	Total    int
	Source   string
	Page     int
	PerPage  int
	HasNext  bool
	HasPrev  bool
}

// CrawlStats summarizes a warm crawl across all sources.
type CrawlStats struct {
	Sources   int
	Headlines int64
	Upserted  int64
	Failed    int64
	Duration  time.Duration
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// GetNews aggregates articles for the query. A known source ID restricts the
// run to that source with a doubled limit; otherwise every registered source
// is scraped concurrently and the batches are concatenated in registry
// order. A failing source contributes zero articles and never aborts the
// aggregation.
func (s *Service) GetNews(ctx context.Context, q Query) (*Result, error) {
	q = q.withDefaults()

	var all []entity.Article
	sourceLabel := "all"

	if src, ok := s.Registry.Lookup(q.Source); q.Source != "" && ok {
		category := q.Category
		if category == "" {
			category = CategoryGeneral
		}
		articles, err := s.scrapeSource(ctx, src, category, q.PerPage*2)
		if err != nil {
			s.logger().Warn("source scrape failed",
				slog.String("source", src.ID),
				slog.String("category", category),
				slog.Any("error", err))
		} else {
			all = articles
		}
		sourceLabel = q.Source
	} else {
		perSource := q.PerPage/s.Registry.Len() + fanOutMargin
		all = s.fanOut(ctx, perSource, func(src entity.Source) string {
			if q.Category != "" && src.SupportsCategory(q.Category) {
				return q.Category
			}
			return CategoryGeneral
		})
	}

	if q.Search != "" {
		all = filterSearch(all, q.Search)
	}

	meta := pagination.BuildMetadata(pagination.Params{Page: q.Page, PerPage: q.PerPage}, len(all))

	return &Result{
		Articles: pagination.Window(all, q.Page, q.PerPage),
		Total:    meta.Total,
		Source:   sourceLabel,
		Page:     meta.Page,
		PerPage:  meta.PerPage,
		HasNext:  meta.HasNext,
		HasPrev:  meta.HasPrev,
	}, nil
}

// Trending returns the first twenty articles of a fresh default aggregation.
// The ranking is positional, not popularity based.
func (s *Service) Trending(ctx context.Context) (*Result, error) {
	return s.GetNews(ctx, Query{Page: 1, PerPage: trendingPer})
}

// Breaking re-scrapes every source against the breaking category and keeps
// the articles whose title matched a breaking keyword, capped at ten.
// It does not reuse previously fetched results.
func (s *Service) Breaking(ctx context.Context) (*Result, error) {
	all := s.fanOut(ctx, feedPerPair, func(entity.Source) string { return CategoryBreaking })

	breaking := make([]entity.Article, 0, len(all))
	for _, a := range all {
		if a.IsBreaking {
			breaking = append(breaking, a)
		}
	}

	total := len(breaking)
	if len(breaking) > breakingCap {
		breaking = breaking[:breakingCap]
	}
	return &Result{
		Articles: breaking,
		Total:    total,
		Source:   "breaking",
		Page:     1,
		PerPage:  breakingCap,
	}, nil
}

// Featured re-scrapes every source against the general category and keeps the
// positionally featured articles, capped at eight.
func (s *Service) Featured(ctx context.Context) (*Result, error) {
	all := s.fanOut(ctx, feedPerPair, func(entity.Source) string { return CategoryGeneral })

	featured := make([]entity.Article, 0, len(all))
	for _, a := range all {
		if a.IsFeatured {
			featured = append(featured, a)
		}
	}

	total := len(featured)
	if len(featured) > featuredCap {
		featured = featured[:featuredCap]
	}
	return &Result{
		Articles: featured,
		Total:    total,
		Source:   "featured",
		Page:     1,
		PerPage:  featuredCap,
	}, nil
}

// PersonalizedFeed scrapes every (preferred source x preferred category)
// combination, deduplicates by title keeping the first occurrence, and
// paginates. Users without preferences get the default aggregation.
func (s *Service) PersonalizedFeed(ctx context.Context, prefs entity.Preferences, page, perPage int) (*Result, error) {
	if prefs.IsZero() {
		return s.GetNews(ctx, Query{Page: page, PerPage: perPage})
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = pagination.DefaultPerPage
	}

	sources := s.preferredSources(prefs.Sources)
	categories := prefs.Categories
	if len(categories) == 0 {
		categories = []string{CategoryGeneral}
	}

	// One slot per (source, category) pair keeps the merge deterministic
	// regardless of which scrape finishes first.
	batches := make([][]entity.Article, len(sources)*len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		for j, category := range categories {
			slot := i*len(categories) + j
			src, category := src, category
			g.Go(func() error {
				articles, err := s.scrapeSource(gctx, src, category, feedPerPair)
				if err != nil {
					s.logger().Warn("feed scrape failed",
						slog.String("source", src.ID),
						slog.String("category", category),
						slog.Any("error", err))
					return nil
				}
				batches[slot] = articles
				return nil
			})
		}
	}
	_ = g.Wait() // scrape failures are swallowed per source

	seen := make(map[string]struct{})
	var unique []entity.Article
	for _, batch := range batches {
		for _, a := range batch {
			if _, ok := seen[a.Title]; ok {
				continue
			}
			seen[a.Title] = struct{}{}
			unique = append(unique, a)
		}
	}

	meta := pagination.BuildMetadata(pagination.Params{Page: page, PerPage: perPage}, len(unique))
	return &Result{
		Articles: pagination.Window(unique, page, perPage),
		Total:    meta.Total,
		Source:   "personalized",
		Page:     meta.Page,
		PerPage:  meta.PerPage,
		HasNext:  meta.HasNext,
		HasPrev:  meta.HasPrev,
	}, nil
}

// ReadArticle returns the stored article after bumping its view counter and
// the daily view counter. Returns ErrArticleNotFound for unknown IDs.
func (s *Service) ReadArticle(ctx context.Context, id string) (*entity.Article, error) {
	article, err := s.Articles.IncrementViews(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if s.Analytics != nil {
		day := time.Now().Format("2006-01-02")
		if err := s.Analytics.IncrementDailyViews(ctx, day); err != nil {
			s.logger().Warn("failed to record daily view", slog.Any("error", err))
		}
	}
	metrics.RecordArticleView()
	return article, nil
}

// WarmCrawl scrapes the general category of every source once, upserting the
// results into the store. Used by the background refresher; per-source
// failures are counted but never fatal.
func (s *Service) WarmCrawl(ctx context.Context) (*CrawlStats, error) {
	start := time.Now()
	stats := &CrawlStats{Sources: s.Registry.Len()}

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range s.Registry.All() {
		src := src
		g.Go(func() error {
			articles, err := s.scrapeSource(gctx, src, CategoryGeneral, trendingPer/2)
			if err != nil {
				atomic.AddInt64(&stats.Failed, 1)
				s.logger().Warn("warm crawl source failed",
					slog.String("source", src.ID),
					slog.Any("error", err))
				return nil
			}
			atomic.AddInt64(&stats.Headlines, int64(len(articles)))
			atomic.AddInt64(&stats.Upserted, int64(len(articles)))
			return nil
		})
	}
	_ = g.Wait()

	stats.Duration = time.Since(start)
	if count, err := s.Articles.Count(ctx); err == nil {
		metrics.UpdateArticlesTotal(int(count))
	}
	s.logger().Info("warm crawl completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("headlines", stats.Headlines),
		slog.Int64("failed_sources", stats.Failed),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

// fanOut scrapes every registered source concurrently and concatenates the
// batches in registry order, never in completion order. categoryFor picks
// the category per source.
func (s *Service) fanOut(ctx context.Context, perSource int, categoryFor func(entity.Source) string) []entity.Article {
	sources := s.Registry.All()
	batches := make([][]entity.Article, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			category := categoryFor(src)
			articles, err := s.scrapeSource(gctx, src, category, perSource)
			if err != nil {
				s.logger().Warn("source scrape failed",
					slog.String("source", src.ID),
					slog.String("category", category),
					slog.Any("error", err))
				return nil // degrade this source to zero articles
			}
			batches[i] = articles
			return nil
		})
	}
	_ = g.Wait() // callbacks always return nil

	var all []entity.Article
	for _, batch := range batches {
		all = append(all, batch...)
	}
	return all
}

// scrapeSource runs one fetch-extract-normalize pipeline and upserts every
// produced record into the article store.
func (s *Service) scrapeSource(ctx context.Context, src entity.Source, category string, limit int) ([]entity.Article, error) {
	start := time.Now()

	headlines, err := s.Fetcher.Fetch(ctx, src, category, limit)
	if err != nil {
		metrics.RecordScrapeError(src.ID)
		return nil, err
	}

	now := time.Now()
	articles := make([]entity.Article, 0, len(headlines))
	for i, h := range headlines {
		article := normalize(h, src, category, i, now)
		if err := s.Articles.Upsert(ctx, &article); err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	metrics.RecordSourceScrape(src.ID, time.Since(start), len(articles))
	return articles, nil
}

// preferredSources maps preference source IDs onto registry entries,
// ignoring unknown IDs. An empty preference means every source; a preference
// naming only unknown IDs yields no sources and therefore an empty feed.
func (s *Service) preferredSources(ids []string) []entity.Source {
	if len(ids) == 0 {
		return s.Registry.All()
	}
	out := make([]entity.Source, 0, len(ids))
	for _, id := range ids {
		if src, ok := s.Registry.Lookup(id); ok {
			out = append(out, src)
		}
	}
	return out
}

// filterSearch keeps the articles whose title, summary, or any tag contains
// the query as a case-insensitive substring.
func filterSearch(articles []entity.Article, query string) []entity.Article {
	q := strings.ToLower(query)
	out := make([]entity.Article, 0, len(articles))
	for _, a := range articles {
		if matchesSearch(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matchesSearch(a entity.Article, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(a.Title), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), lowerQuery) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(tag, lowerQuery) {
			return true
		}
	}
	return false
}

func (q Query) withDefaults() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = pagination.DefaultPerPage
	}
	return q
}
