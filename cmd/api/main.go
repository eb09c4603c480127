package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"meetvoice-api/internal/common/pagination"
	"meetvoice-api/internal/config"
	"meetvoice-api/internal/infra/adapter/persistence/mongodb"
	"meetvoice-api/internal/infra/db"
	"meetvoice-api/internal/observability/logging"
	"meetvoice-api/internal/observability/tracing"

	artUC "meetvoice-api/internal/usecase/article"

	hhttp "meetvoice-api/internal/handler/http"
	harticle "meetvoice-api/internal/handler/http/article"
	"meetvoice-api/internal/handler/http/middleware"
	"meetvoice-api/internal/handler/http/requestid"

	_ "meetvoice-api/docs" // swagger docs
)

// @title           MeetVoice API
// @version         1.0
// @description     Read-only REST API over the MeetVoice article collection.
// @description     Lists articles with pagination and filters, and looks up single articles by slug.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /

const serviceName = "meetvoice-api"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger and installs it as the slog default.
func initLogger(cfg config.LogConfig) *slog.Logger {
	logger := logging.NewLogger(logging.Options{
		Level:  cfg.Level,
		Format: cfg.Format,
	})
	slog.SetDefault(logger)
	return logger
}

// run wires the dependencies and serves HTTP until ctx is cancelled.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	shutdownTracing, err := tracing.Init(tracing.Config{
		ServiceName:    serviceName,
		ServiceVersion: cfg.Version,
		Enabled:        cfg.Tracing.Enabled,
		SampleRatio:    cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	client, err := db.Open(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("open mongodb: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			logger.Error("failed to close mongodb client", slog.Any("error", err))
		}
	}()

	svc := artUC.Service{Repo: mongodb.NewArticleRepo(client.Collection())}
	handler := newHandler(cfg, logger, svc, client)

	return serve(ctx, cfg.HTTP, handler, logger, cfg.Version)
}

// newHandler builds the route table and wraps it in the middleware chain.
func newHandler(cfg *config.Config, logger *slog.Logger, svc artUC.Service, store hhttp.Pinger) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /{$}", hhttp.RootHandler{})
	mux.Handle("GET /health", &hhttp.HealthHandler{Store: store, Version: cfg.Version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Store: store})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	harticle.Register(mux, svc,
		pagination.NewConfig(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit),
		logger)

	corsConfig := middleware.NewCORSConfig(cfg.CORS.AllowedOrigins, cfg.CORS.MaxAge, logger)
	logger.Info("CORS enabled",
		slog.Bool("allow_any_origin", corsConfig.Validator.AllowsAny()),
		slog.Any("allowed_origins", cfg.CORS.AllowedOrigins),
		slog.Int("max_age", corsConfig.MaxAge))

	// Outermost first: preflight is answered before anything else runs,
	// and metrics see the status the timeout middleware settled on.
	return hhttp.Chain(mux,
		middleware.CORS(corsConfig),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.Timeout(cfg.HTTP.RequestTimeout),
		hhttp.MetricsMiddleware,
	)
}

// serve runs the HTTP server and shuts it down gracefully once ctx is done.
func serve(ctx context.Context, cfg config.HTTPConfig, handler http.Handler, logger *slog.Logger, version string) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
