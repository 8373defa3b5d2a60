// Package refresher runs the periodic warm crawl that keeps the article
// store populated between user requests. The schedule is cron based and
// loaded from the environment with a fail-open strategy: invalid values are
// logged and replaced by defaults rather than aborting startup.
package refresher

import (
	"fmt"
	"log/slog"
	"time"

	pkgcfg "news-portal/internal/pkg/config"
	envcfg "news-portal/pkg/config"
)

// Config controls the background refresh job.
type Config struct {
	// Enabled toggles the job. Disabled by default so test and dev runs
	// do not scrape on a timer.
	Enabled bool

	// CronSchedule is the cron expression for the refresh schedule.
	// Format: "minute hour day month weekday"
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	Timezone string

	// CrawlTimeout bounds one refresh run.
	CrawlTimeout time.Duration
}

// DefaultConfig returns the production defaults: a refresh every thirty
// minutes, UTC, with a five minute budget per run.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		CronSchedule: "*/30 * * * *",
		Timezone:     "UTC",
		CrawlTimeout: 5 * time.Minute,
	}
}

// Validate checks the configuration values. Multiple violations are
// aggregated into one error.
func (c *Config) Validate() error {
	var errs []error

	if err := pkgcfg.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := pkgcfg.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := envcfg.ValidatePositiveDuration(c.CrawlTimeout); err != nil {
		errs = append(errs, fmt.Errorf("crawl timeout: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv builds the refresh configuration from environment
// variables:
//
//	REFRESH_ENABLED   - "true" to enable the job (default false)
//	REFRESH_CRON      - cron expression (default "*/30 * * * *")
//	REFRESH_TIMEZONE  - IANA timezone (default "UTC")
//	REFRESH_TIMEOUT   - run budget as a Go duration (default "5m")
//
// Invalid values are logged and fall back to their defaults.
func LoadConfigFromEnv(logger *slog.Logger) Config {
	defaults := DefaultConfig()

	cfg := Config{
		Enabled:      envcfg.GetEnvBool("REFRESH_ENABLED", defaults.Enabled),
		CronSchedule: envcfg.GetEnvString("REFRESH_CRON", defaults.CronSchedule),
		Timezone:     envcfg.GetEnvString("REFRESH_TIMEZONE", defaults.Timezone),
		CrawlTimeout: envcfg.GetEnvDuration("REFRESH_TIMEOUT", defaults.CrawlTimeout),
	}

	if err := pkgcfg.ValidateCronSchedule(cfg.CronSchedule); err != nil {
		logger.Warn("invalid REFRESH_CRON, using default",
			slog.String("value", cfg.CronSchedule),
			slog.Any("error", err))
		cfg.CronSchedule = defaults.CronSchedule
	}
	if err := pkgcfg.ValidateTimezone(cfg.Timezone); err != nil {
		logger.Warn("invalid REFRESH_TIMEZONE, using default",
			slog.String("value", cfg.Timezone),
			slog.Any("error", err))
		cfg.Timezone = defaults.Timezone
	}
	if err := envcfg.ValidatePositiveDuration(cfg.CrawlTimeout); err != nil {
		logger.Warn("invalid REFRESH_TIMEOUT, using default",
			slog.Duration("value", cfg.CrawlTimeout),
			slog.Any("error", err))
		cfg.CrawlTimeout = defaults.CrawlTimeout
	}

	return cfg
}
