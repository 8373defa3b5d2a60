package news_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"news-portal/internal/config"
	"news-portal/internal/domain/entity"
	"news-portal/internal/usecase/news"
)

type stubFetcher struct {
	mu    sync.Mutex
	calls []string // "sourceID/category"
	fail  map[string]error
	// headlines per source ID; the stub honors limit
	headlines map[string][]news.Headline
}

func (f *stubFetcher) Fetch(_ context.Context, src entity.Source, category string, limit int) ([]news.Headline, error) {
	f.mu.Lock()
	f.calls = append(f.calls, src.ID+"/"+category)
	f.mu.Unlock()

	if err := f.fail[src.ID]; err != nil {
		return nil, err
	}
	hs := f.headlines[src.ID]
	if len(hs) > limit {
		hs = hs[:limit]
	}
	return hs, nil
}

func (f *stubFetcher) calledWith(call string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

type stubArticleRepo struct {
	mu       sync.Mutex
	byID     map[string]*entity.Article
	upserts  int
	incErr   error
	unknowns bool // Get and IncrementViews return nil regardless of contents
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{byID: map[string]*entity.Article{}}
}

func (r *stubArticleRepo) Upsert(_ context.Context, a *entity.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *a
	r.byID[a.ID] = &clone
	r.upserts++
	return nil
}

func (r *stubArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unknowns {
		return nil, nil
	}
	if a, ok := r.byID[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, nil
}

func (r *stubArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	return nil, nil
}

func (r *stubArticleRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

func (r *stubArticleRepo) IncrementViews(_ context.Context, id string) (*entity.Article, error) {
	if r.incErr != nil {
		return nil, r.incErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unknowns {
		return nil, nil
	}
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	a.Views++
	clone := *a
	return &clone, nil
}

func (r *stubArticleRepo) TopViewed(_ context.Context, _ int) ([]*entity.Article, error) {
	return nil, nil
}

func (r *stubArticleRepo) CategoryCounts(_ context.Context) (map[string]int, error) {
	return nil, nil
}

func (r *stubArticleRepo) TotalViews(_ context.Context) (int64, error) {
	return 0, nil
}

type stubAnalyticsRepo struct {
	mu   sync.Mutex
	days map[string]int64
}

func newStubAnalyticsRepo() *stubAnalyticsRepo {
	return &stubAnalyticsRepo{days: map[string]int64{}}
}

func (r *stubAnalyticsRepo) IncrementDailyViews(_ context.Context, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days[day]++
	return nil
}

func (r *stubAnalyticsRepo) DailyViews(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64, len(r.days))
	for k, v := range r.days {
		out[k] = v
	}
	return out, nil
}

func (r *stubAnalyticsRepo) total() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, v := range r.days {
		n += v
	}
	return n
}

func testRegistry(t *testing.T) *config.Registry {
	t.Helper()

	reg, err := config.NewRegistry([]entity.Source{
		{
			ID:      "alpha",
			Name:    "Alpha Wire",
			BaseURL: "https://alpha.example.com/news",
			Domain:  "https://alpha.example.com",
			Categories: map[string]string{
				"business": "https://alpha.example.com/business",
			},
		},
		{
			ID:      "beta",
			Name:    "Beta Daily",
			BaseURL: "https://beta.example.com",
			Domain:  "https://beta.example.com",
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	return reg
}

func headlineBatch(prefix string, n int) []news.Headline {
	hs := make([]news.Headline, n)
	for i := range hs {
		hs[i] = news.Headline{
			Title: fmt.Sprintf("%s headline %d", prefix, i),
			URL:   fmt.Sprintf("https://example.com/%s/%d", prefix, i),
		}
	}
	return hs
}

func newTestService(t *testing.T, fetcher *stubFetcher) (*news.Service, *stubArticleRepo, *stubAnalyticsRepo) {
	t.Helper()

	articles := newStubArticleRepo()
	analytics := newStubAnalyticsRepo()
	svc := &news.Service{
		Registry:  testRegistry(t),
		Fetcher:   fetcher,
		Articles:  articles,
		Analytics: analytics,
	}
	return svc, articles, analytics
}

func TestService_GetNews_AggregatesInRegistryOrder(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 4),
		"beta":  headlineBatch("Beta", 4),
	}}
	svc, articles, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	if got.Total != 8 {
		t.Errorf("Total = %d, want 8", got.Total)
	}
	if got.Source != "all" {
		t.Errorf("Source = %q, want %q", got.Source, "all")
	}
	// Registry order: every alpha article precedes every beta article.
	lastAlpha, firstBeta := -1, -1
	for i, a := range got.Articles {
		switch a.Source {
		case "Alpha Wire":
			lastAlpha = i
		case "Beta Daily":
			if firstBeta == -1 {
				firstBeta = i
			}
		}
	}
	if lastAlpha == -1 || firstBeta == -1 || lastAlpha > firstBeta {
		t.Errorf("articles not in registry order: last alpha at %d, first beta at %d", lastAlpha, firstBeta)
	}

	if articles.upserts != 8 {
		t.Errorf("upserts = %d, want 8", articles.upserts)
	}
}

func TestService_GetNews_PerSourceLimit(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 50),
		"beta":  headlineBatch("Beta", 50),
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	// Two sources, so each contributes 10/2+2 = 7 headlines.
	if got.Total != 14 {
		t.Errorf("Total = %d, want 14", got.Total)
	}
}

func TestService_GetNews_SingleSourceDoublesLimit(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 50),
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Source: "alpha", Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	if got.Total != 20 {
		t.Errorf("Total = %d, want 20 (doubled page size)", got.Total)
	}
	if got.Source != "alpha" {
		t.Errorf("Source = %q, want %q", got.Source, "alpha")
	}
	if fetcher.calledWith("beta/general") {
		t.Error("other sources should not be scraped for a single-source request")
	}
}

func TestService_GetNews_UnknownSourceAggregatesAll(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 3),
		"beta":  headlineBatch("Beta", 3),
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Source: "nope", Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	if got.Total != 6 {
		t.Errorf("Total = %d, want all sources aggregated", got.Total)
	}
	if got.Source != "all" {
		t.Errorf("Source = %q, want %q", got.Source, "all")
	}
}

func TestService_GetNews_CategoryFallsBackPerSource(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 2),
		"beta":  headlineBatch("Beta", 2),
	}}
	svc, _, _ := newTestService(t, fetcher)

	if _, err := svc.GetNews(context.Background(), news.Query{Category: "business", Page: 1, PerPage: 10}); err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	// alpha maps the business category, beta does not.
	if !fetcher.calledWith("alpha/business") {
		t.Error("alpha should be scraped with the requested category")
	}
	if !fetcher.calledWith("beta/general") {
		t.Error("beta should fall back to the general category")
	}
}

func TestService_GetNews_FailingSourceDegrades(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		headlines: map[string][]news.Headline{
			"alpha": headlineBatch("Alpha", 3),
			"beta":  headlineBatch("Beta", 3),
		},
		fail: map[string]error{"beta": errors.New("connection refused")},
	}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v, partial failure must not abort", err)
	}

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3 from the healthy source", got.Total)
	}
	for _, a := range got.Articles {
		if a.Source != "Alpha Wire" {
			t.Errorf("unexpected article from failed source: %s", a.Source)
		}
	}
}

func TestService_GetNews_Search(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": {
			{Title: "Climate summit reaches agreement"},
			{Title: "Transfer window closes today"},
		},
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.GetNews(context.Background(), news.Query{Search: "CLIMATE", Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	if got.Total != 1 {
		t.Fatalf("Total = %d, want 1 match", got.Total)
	}
	if !strings.Contains(got.Articles[0].Title, "Climate") {
		t.Errorf("wrong article matched: %q", got.Articles[0].Title)
	}
}

func TestService_GetNews_Pagination(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 4),
		"beta":  headlineBatch("Beta", 4),
	}}
	svc, _, _ := newTestService(t, fetcher)

	page2, err := svc.GetNews(context.Background(), news.Query{Page: 2, PerPage: 3})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}

	// 3+2 headlines per source, 8 total after the per-source cap.
	if page2.Total < 6 {
		t.Fatalf("Total = %d, want at least 6", page2.Total)
	}
	if len(page2.Articles) != 3 {
		t.Errorf("len(Articles) = %d, want 3", len(page2.Articles))
	}
	if !page2.HasPrev {
		t.Error("HasPrev = false on page 2")
	}
	if got := page2.HasNext; got != (2*3 < page2.Total) {
		t.Errorf("HasNext = %v for total %d", got, page2.Total)
	}

	empty, err := svc.GetNews(context.Background(), news.Query{Page: 99, PerPage: 3})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}
	if len(empty.Articles) != 0 {
		t.Errorf("page past the end returned %d articles", len(empty.Articles))
	}
	if empty.Articles == nil {
		t.Error("page past the end should be an empty slice, not nil")
	}
	if empty.HasNext {
		t.Error("HasNext = true past the end")
	}
}

func TestService_Breaking(t *testing.T) {
	t.Parallel()

	headlines := make([]news.Headline, 0, 8)
	for i := 0; i < 8; i++ {
		headlines = append(headlines, news.Headline{Title: fmt.Sprintf("Breaking story %d", i)})
	}
	headlines = append(headlines, news.Headline{Title: "Calm gardening feature"})

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlines,
		"beta":  headlines,
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.Breaking(context.Background())
	if err != nil {
		t.Fatalf("Breaking() error = %v", err)
	}

	if len(got.Articles) > 10 {
		t.Errorf("len(Articles) = %d, want at most 10", len(got.Articles))
	}
	for _, a := range got.Articles {
		if !a.IsBreaking {
			t.Errorf("non-breaking article in breaking feed: %q", a.Title)
		}
	}
	if !fetcher.calledWith("alpha/breaking") {
		t.Error("breaking feed should request the breaking category")
	}
}

func TestService_Featured(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": headlineBatch("Alpha", 5),
		"beta":  headlineBatch("Beta", 5),
	}}
	svc, _, _ := newTestService(t, fetcher)

	got, err := svc.Featured(context.Background())
	if err != nil {
		t.Fatalf("Featured() error = %v", err)
	}

	// First three positions per source are featured: 2 sources x 3 = 6.
	if len(got.Articles) != 6 {
		t.Errorf("len(Articles) = %d, want 6", len(got.Articles))
	}
	for _, a := range got.Articles {
		if !a.IsFeatured {
			t.Errorf("non-featured article in featured feed: %q", a.Title)
		}
	}
}

func TestService_PersonalizedFeed(t *testing.T) {
	t.Parallel()

	t.Run("uses preferences and deduplicates by title", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{headlines: map[string][]news.Headline{
			"alpha": {
				{Title: "Shared headline"},
				{Title: "Alpha only"},
			},
			"beta": {
				{Title: "Shared headline"},
				{Title: "Beta only"},
			},
		}}
		svc, _, _ := newTestService(t, fetcher)

		prefs := entity.Preferences{
			Sources:    []string{"alpha", "beta"},
			Categories: []string{"general"},
		}
		got, err := svc.PersonalizedFeed(context.Background(), prefs, 1, 10)
		if err != nil {
			t.Fatalf("PersonalizedFeed() error = %v", err)
		}

		if got.Total != 3 {
			t.Errorf("Total = %d, want 3 after title dedup", got.Total)
		}
		seen := map[string]int{}
		for _, a := range got.Articles {
			seen[a.Title]++
		}
		if seen["Shared headline"] != 1 {
			t.Errorf("duplicate title kept %d times, want 1", seen["Shared headline"])
		}
	})

	t.Run("empty preferences fall back to default aggregation", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{headlines: map[string][]news.Headline{
			"alpha": headlineBatch("Alpha", 2),
			"beta":  headlineBatch("Beta", 2),
		}}
		svc, _, _ := newTestService(t, fetcher)

		got, err := svc.PersonalizedFeed(context.Background(), entity.Preferences{}, 1, 10)
		if err != nil {
			t.Fatalf("PersonalizedFeed() error = %v", err)
		}
		if got.Source != "all" {
			t.Errorf("Source = %q, want default aggregation", got.Source)
		}
		if got.Total != 4 {
			t.Errorf("Total = %d, want 4", got.Total)
		}
	})

	t.Run("only unknown preferred sources yield an empty feed", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{headlines: map[string][]news.Headline{
			"alpha": headlineBatch("Alpha", 1),
			"beta":  headlineBatch("Beta", 1),
		}}
		svc, _, _ := newTestService(t, fetcher)

		prefs := entity.Preferences{Sources: []string{"ghost"}}
		got, err := svc.PersonalizedFeed(context.Background(), prefs, 1, 10)
		if err != nil {
			t.Fatalf("PersonalizedFeed() error = %v", err)
		}
		if got.Total != 0 {
			t.Errorf("Total = %d, want 0 when no preferred source is registered", got.Total)
		}
		if got.Articles == nil {
			t.Error("Articles should be an empty slice, not nil")
		}
		if got.Source != "personalized" {
			t.Errorf("Source = %q, want personalized", got.Source)
		}
	})

	t.Run("unknown preferred sources are skipped, known ones kept", func(t *testing.T) {
		t.Parallel()

		fetcher := &stubFetcher{headlines: map[string][]news.Headline{
			"alpha": headlineBatch("Alpha", 2),
			"beta":  headlineBatch("Beta", 2),
		}}
		svc, _, _ := newTestService(t, fetcher)

		prefs := entity.Preferences{Sources: []string{"ghost", "alpha"}}
		got, err := svc.PersonalizedFeed(context.Background(), prefs, 1, 10)
		if err != nil {
			t.Fatalf("PersonalizedFeed() error = %v", err)
		}
		if got.Total != 2 {
			t.Errorf("Total = %d, want only the known source's articles", got.Total)
		}
		for _, a := range got.Articles {
			if !strings.HasPrefix(a.Title, "Alpha") {
				t.Errorf("unexpected article %q from a skipped source", a.Title)
			}
		}
	})
}

func TestService_ReadArticle(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{headlines: map[string][]news.Headline{
		"alpha": {{Title: "Persistent headline"}},
	}}
	svc, _, analytics := newTestService(t, fetcher)

	seeded, err := svc.GetNews(context.Background(), news.Query{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("GetNews() error = %v", err)
	}
	id := seeded.Articles[0].ID

	got, err := svc.ReadArticle(context.Background(), id)
	if err != nil {
		t.Fatalf("ReadArticle() error = %v", err)
	}
	if got.Views != 1 {
		t.Errorf("Views = %d, want 1 after first read", got.Views)
	}

	again, err := svc.ReadArticle(context.Background(), id)
	if err != nil {
		t.Fatalf("ReadArticle() second call error = %v", err)
	}
	if again.Views != 2 {
		t.Errorf("Views = %d, want 2 after second read", again.Views)
	}

	if analytics.total() != 2 {
		t.Errorf("daily view count = %d, want 2", analytics.total())
	}

	if _, err := svc.ReadArticle(context.Background(), "no-such-id"); !errors.Is(err, news.ErrArticleNotFound) {
		t.Errorf("ReadArticle(unknown) error = %v, want ErrArticleNotFound", err)
	}
}

func TestService_WarmCrawl(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{
		headlines: map[string][]news.Headline{
			"alpha": headlineBatch("Alpha", 4),
		},
		fail: map[string]error{"beta": errors.New("timeout")},
	}
	svc, articles, _ := newTestService(t, fetcher)

	stats, err := svc.WarmCrawl(context.Background())
	if err != nil {
		t.Fatalf("WarmCrawl() error = %v", err)
	}

	if stats.Sources != 2 {
		t.Errorf("Sources = %d, want 2", stats.Sources)
	}
	if stats.Headlines != 4 {
		t.Errorf("Headlines = %d, want 4", stats.Headlines)
	}
	if stats.Failed != 1 {
		t.Errorf("Failed = %d, want 1", stats.Failed)
	}
	if articles.upserts != 4 {
		t.Errorf("upserts = %d, want 4", articles.upserts)
	}
}
