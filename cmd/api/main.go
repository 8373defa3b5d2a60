package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-portal/internal/common/pagination"
	"news-portal/internal/config"
	"news-portal/internal/infra/memstore"
	"news-portal/internal/infra/refresher"
	"news-portal/internal/infra/scraper"
	"news-portal/internal/observability/logging"
	"news-portal/internal/observability/tracing"
	envcfg "news-portal/pkg/config"

	analyticsUC "news-portal/internal/usecase/analytics"
	commentUC "news-portal/internal/usecase/comment"
	newsUC "news-portal/internal/usecase/news"
	userUC "news-portal/internal/usecase/user"

	hhttp "news-portal/internal/handler/http"
	hnews "news-portal/internal/handler/http/news"
	"news-portal/internal/handler/http/requestid"
	huser "news-portal/internal/handler/http/user"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	registry, err := config.LoadRegistryFromEnv()
	if err != nil {
		logger.Error("failed to load source registry", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("source registry loaded", slog.Int("sources", registry.Len()))

	components := setupServer(logger, registry)

	runServer(logger, components)
}

// ServerComponents bundles everything runServer needs.
type ServerComponents struct {
	Handler   http.Handler
	Refresher *refresher.Refresher
}

// setupServer wires the stores, services, handlers and middleware.
func setupServer(logger *slog.Logger, registry *config.Registry) *ServerComponents {
	articles := memstore.NewArticleStore()
	users := memstore.NewUserStore()
	comments := memstore.NewCommentStore()
	analytics := memstore.NewAnalyticsStore()

	newsSvc := &newsUC.Service{
		Registry:  registry,
		Fetcher:   scraper.NewHeadlineScraper(nil),
		Articles:  articles,
		Analytics: analytics,
		Logger:    logger,
	}
	userSvc := &userUC.Service{
		Users:    users,
		Articles: articles,
		Feed:     newsSvc,
	}
	commentSvc := &commentUC.Service{Comments: comments}
	analyticsSvc := &analyticsUC.Service{
		Articles:  articles,
		Analytics: analytics,
	}

	rootMux := setupRoutes(logger, registry, articles, newsSvc, userSvc, commentSvc, analyticsSvc)
	handler := applyMiddleware(logger, rootMux)

	// Background refresh keeps the store warm without user traffic
	var refr *refresher.Refresher
	refreshCfg := refresher.LoadConfigFromEnv(logger)
	if refreshCfg.Enabled {
		refr = refresher.New(newsSvc, refreshCfg, logger)
	} else {
		logger.Info("background refresh disabled")
	}

	return &ServerComponents{
		Handler:   handler,
		Refresher: refr,
	}
}

// setupRoutes registers all HTTP routes.
func setupRoutes(
	logger *slog.Logger,
	registry *config.Registry,
	articles *memstore.ArticleStore,
	newsSvc *newsUC.Service,
	userSvc *userUC.Service,
	commentSvc *commentUC.Service,
	analyticsSvc *analyticsUC.Service,
) *http.ServeMux {
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", hhttp.RootHandler{})
	mux.Handle("GET /sources", hhttp.SourcesHandler{Registry: registry})
	mux.Handle("GET /analytics", hhttp.AnalyticsHandler{Svc: analyticsSvc})
	mux.Handle("GET /newsletter/subscribe", hhttp.NewsletterHandler{})

	// 運用エンドポイント
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Registry: registry,
		Articles: articles,
		Version:  hhttp.APIVersion,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Articles: articles})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	hnews.Register(mux, newsSvc, userSvc, commentSvc, registry, paginationCfg, logger)

	// レート制限: アカウントエンドポイントは1分間に10リクエストまで
	accountLimiter := hhttp.NewRateLimiter(10, time.Minute)
	huser.Register(mux, userSvc, paginationCfg, logger, accountLimiter.Limit)

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS -> Request ID -> Recovery -> Logging ->
// Body Limit -> Input Validation -> Tracing -> Timeout -> Metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	allowedOrigins := envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})

	// Aggregation requests fan out to external sites, so the budget is
	// generous compared to a plain CRUD API.
	requestBudget := envcfg.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second)

	chain := handler

	// Apply in reverse order (innermost to outermost)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(requestBudget)(chain)
	chain = tracing.Middleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(allowedOrigins)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if components.Refresher != nil {
		// Warm the store once at boot, then follow the schedule
		go components.Refresher.RunOnce()
		if err := components.Refresher.Start(); err != nil {
			logger.Error("failed to start background refresh", slog.Any("error", err))
			os.Exit(1)
		}
	}

	addr := envcfg.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", hhttp.APIVersion))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if components.Refresher != nil {
		components.Refresher.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
