package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"news-portal/internal/domain/entity"
)

func testSource(baseURL string) entity.Source {
	return entity.Source{
		ID:      "testsrc",
		Name:    "Test Source",
		BaseURL: baseURL,
		Domain:  "https://testsrc.example.com",
	}
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHeadlineScraper_Fetch(t *testing.T) {
	html := `<html><body>
		<h2><a href="https://testsrc.example.com/story-1">First story</a></h2>
		<h2><a href="/story-2">Second story</a></h2>
		<h2><a href="javascript:void(0)">Junk link</a></h2>
		<h2><a href="">No link</a></h2>
		<h2><a href="/story-3">Third story</a></h2>
	</body></html>`
	srv := serveHTML(t, html)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("len(headlines) = %d, want 3", len(got))
	}
	if got[0].Title != "First story" || got[0].URL != "https://testsrc.example.com/story-1" {
		t.Errorf("headline[0] = %+v", got[0])
	}
	if got[1].URL != "https://testsrc.example.com/story-2" {
		t.Errorf("relative href not resolved against domain: %q", got[1].URL)
	}
	if got[2].Title != "Third story" {
		t.Errorf("headline[2] = %+v, junk anchors should be skipped", got[2])
	}
}

func TestHeadlineScraper_FirstSelectorWins(t *testing.T) {
	// Both h2 anchors and .headline anchors are present. Only the h2
	// matches may be extracted because the selector list is ordered.
	html := `<html><body>
		<h2><a href="/from-h2">From h2</a></h2>
		<div class="headline"><a href="/from-class">From class</a></div>
	</body></html>`
	srv := serveHTML(t, html)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("len(headlines) = %d, want 1", len(got))
	}
	if got[0].Title != "From h2" {
		t.Errorf("Title = %q, want match from the first selector", got[0].Title)
	}
}

func TestHeadlineScraper_FallbackSelector(t *testing.T) {
	html := `<html><body>
		<div data-testid="internal-link" href="/only-match">Attribute headline</div>
	</body></html>`
	srv := serveHTML(t, html)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("len(headlines) = %d, want 1", len(got))
	}
	if got[0].Title != "Attribute headline" {
		t.Errorf("Title = %q", got[0].Title)
	}
}

func TestHeadlineScraper_Limit(t *testing.T) {
	html := `<html><body>
		<h3><a href="/a">A</a></h3>
		<h3><a href="/b">B</a></h3>
		<h3><a href="/c">C</a></h3>
		<h3><a href="/d">D</a></h3>
	</body></html>`
	srv := serveHTML(t, html)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 2)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 2 {
		t.Errorf("len(headlines) = %d, want 2", len(got))
	}
}

func TestHeadlineScraper_ExtractsNearbyImage(t *testing.T) {
	// The thumbnail lookup stops at the anchor's direct parent: an img
	// elsewhere in the card is ignored.
	html := `<html><body>
		<div class="card">
			<h2><a href="/pictured">Pictured story</a><img src="https://cdn.example.com/thumb.jpg"></h2>
		</div>
		<div class="card">
			<h2><a href="/plain">Plain story</a></h2>
			<img src="https://cdn.example.com/ignored.jpg">
		</div>
	</body></html>`
	srv := serveHTML(t, html)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 10)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len(headlines) = %d, want 2", len(got))
	}
	if got[0].ImageURL != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("ImageURL = %q", got[0].ImageURL)
	}
	if got[1].ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty for an image outside the anchor's parent", got[1].ImageURL)
	}
}

func TestHeadlineScraper_SendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<h2><a href="/x">X</a></h2>`))
	}))
	t.Cleanup(srv.Close)

	s := NewHeadlineScraper(srv.Client())
	if _, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 5); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if gotUA != userAgent {
		t.Errorf("User-Agent = %q, want browser user agent", gotUA)
	}
}

func TestHeadlineScraper_CategoryURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`<h2><a href="/x">X</a></h2>`))
	}))
	t.Cleanup(srv.Close)

	src := testSource(srv.URL)
	src.Categories = map[string]string{"business": srv.URL + "/business"}

	s := NewHeadlineScraper(srv.Client())
	if _, err := s.Fetch(context.Background(), src, "business", 5); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotPath != "/business" {
		t.Errorf("request path = %q, want category URL", gotPath)
	}

	if _, err := s.Fetch(context.Background(), src, "unknown-category", 5); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotPath != "/" {
		t.Errorf("request path = %q, want base URL fallback", gotPath)
	}
}

func TestHeadlineScraper_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	s := NewHeadlineScraper(srv.Client())
	if _, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 5); err == nil {
		t.Fatal("Fetch() expected error for non-2xx status")
	}
}

func TestHeadlineScraper_NoMatches(t *testing.T) {
	srv := serveHTML(t, `<html><body><p>Nothing to see</p></body></html>`)

	s := NewHeadlineScraper(srv.Client())
	got, err := s.Fetch(context.Background(), testSource(srv.URL), "general", 5)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(headlines) = %d, want 0", len(got))
	}
}
