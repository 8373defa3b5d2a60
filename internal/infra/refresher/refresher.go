package refresher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/metrics"
	newsUC "news-portal/internal/usecase/news"
)

// Refresher schedules warm crawls on a cron expression so the article store
// stays populated without waiting for user traffic.
type Refresher struct {
	svc    *newsUC.Service
	cfg    Config
	logger *slog.Logger
	cron   *cron.Cron
}

// New creates a Refresher. Start must be called to begin scheduling.
func New(svc *newsUC.Service, cfg Config, logger *slog.Logger) *Refresher {
	return &Refresher{svc: svc, cfg: cfg, logger: logger}
}

// Start registers the cron job and launches the scheduler. The first run
// happens at the next schedule boundary, not immediately; callers that want
// a warm store at boot should call RunOnce first.
func (r *Refresher) Start() error {
	loc, err := time.LoadLocation(r.cfg.Timezone)
	if err != nil {
		r.logger.Warn("invalid timezone, using UTC",
			slog.String("timezone", r.cfg.Timezone),
			slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(r.cfg.CronSchedule, r.RunOnce); err != nil {
		return fmt.Errorf("register refresh job: %w", err)
	}
	c.Start()
	r.cron = c

	r.logger.Info("refresh job started",
		slog.String("schedule", r.cfg.CronSchedule),
		slog.String("timezone", loc.String()))
	return nil
}

// Stop stops the scheduler and waits for a running job to finish or the
// context to expire.
func (r *Refresher) Stop(ctx context.Context) {
	if r.cron == nil {
		return
	}
	select {
	case <-r.cron.Stop().Done():
	case <-ctx.Done():
		r.logger.Warn("refresh job did not stop in time")
	}
}

// RunOnce executes a single warm crawl with the configured timeout.
func (r *Refresher) RunOnce() {
	start := time.Now()
	r.logger.Info("refresh started")

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.CrawlTimeout)
	defer cancel()

	stats, err := r.svc.WarmCrawl(ctx)
	if err != nil {
		// 機密情報をマスクしてログ出力
		r.logger.Error("refresh failed", slog.Any("error", respond.SanitizeError(err)))
		metrics.RecordRefreshRun("failure", time.Since(start))
		return
	}

	metrics.RecordRefreshRun("success", time.Since(start))
	metrics.RecordRefreshSuccess()

	r.logger.Info("refresh completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("headlines", stats.Headlines),
		slog.Int64("upserted", stats.Upserted),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration),
	)
}
