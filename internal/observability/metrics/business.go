package metrics

import "time"

// RecordSourceScrape records a completed scrape of one source page: the time
// it took and the number of articles it produced.
func RecordSourceScrape(sourceID string, duration time.Duration, count int) {
	SourceScrapeDuration.WithLabelValues(sourceID).Observe(duration.Seconds())
	if count > 0 {
		ArticlesScrapedTotal.WithLabelValues(sourceID).Add(float64(count))
	}
}

// RecordScrapeError records a failed scrape attempt for a source.
func RecordScrapeError(sourceID string) {
	SourceScrapeErrors.WithLabelValues(sourceID).Inc()
}

// RecordArticleView records one article detail read.
func RecordArticleView() {
	ArticleViewsTotal.Inc()
}

// RecordNewsletterSignup records one newsletter subscription request.
func RecordNewsletterSignup() {
	NewsletterSignupsTotal.Inc()
}

// UpdateArticlesTotal updates the gauge tracking how many articles the store
// currently holds. Updated after every warm crawl.
func UpdateArticlesTotal(count int) {
	ArticlesTotal.Set(float64(count))
}

// RecordRefreshRun records one background refresh run and its duration.
func RecordRefreshRun(status string, duration time.Duration) {
	RefreshRunsTotal.WithLabelValues(status).Inc()
	RefreshDuration.Observe(duration.Seconds())
}

// RecordRefreshSuccess stamps the last successful background refresh.
func RecordRefreshSuccess() {
	RefreshLastSuccess.SetToCurrentTime()
}
