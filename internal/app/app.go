package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kiran7893/talenthub-frontend/internal/apiclient"
	"github.com/kiran7893/talenthub-frontend/internal/config"
	handler "github.com/kiran7893/talenthub-frontend/internal/handler/http"
	"github.com/kiran7893/talenthub-frontend/internal/service"
	"github.com/kiran7893/talenthub-frontend/internal/session"
	"github.com/kiran7893/talenthub-frontend/internal/view"
	"github.com/kiran7893/talenthub-frontend/pkg/database"
	"github.com/kiran7893/talenthub-frontend/pkg/health"
	"github.com/kiran7893/talenthub-frontend/pkg/httpclient"
	"github.com/kiran7893/talenthub-frontend/pkg/middleware"
	"github.com/kiran7893/talenthub-frontend/pkg/tracing"
)

// Version is reported to the tracer and in the startup log.
var Version = "0.1.0"

// App wires together all dependencies and runs the web frontend.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	httpServer     *http.Server
	limiter        *middleware.RateLimiter
	redis          *redis.Client
	tracerShutdown tracing.ShutdownFunc
}

// NewApp creates a new application instance: tracing, the API client behind
// a circuit breaker, the session backend, services, views and the router.
func NewApp(cfg *config.Config, logger *slog.Logger) (_ *App, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    handler.ServiceName,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	a := &App{cfg: cfg, logger: logger, tracerShutdown: tracerShutdown}
	defer func() {
		if err != nil {
			_ = a.closeResources()
		}
	}()

	healthHandler := health.NewHandler()
	backend, err := a.sessionBackend(ctx, healthHandler)
	if err != nil {
		return nil, err
	}

	hcCfg := httpclient.DefaultConfig()
	hcCfg.Timeout = cfg.APITimeout
	hcCfg.MaxRetries = cfg.APIMaxRetries
	breaker := httpclient.NewCircuitBreakerClient(
		httpclient.New(hcCfg),
		httpclient.DefaultCircuitBreakerConfig("talenthub-api"),
		logger,
	)
	api, err := apiclient.New(apiclient.Config{
		BaseURL:    cfg.APIURL,
		PathPrefix: cfg.APIPathPrefix,
	}, breaker, logger)
	if err != nil {
		return nil, err
	}
	healthHandler.Register("api", api.Ping)

	views, err := view.New(logger)
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	store := session.NewStore(logger)
	pages := handler.NewPageHandler(
		service.NewAuthService(api, store, logger),
		service.NewOnboardingService(api, store, logger),
		store,
		views,
		logger,
	)
	a.limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger, http.HandlerFunc(pages.TooManyRequests))

	router := handler.NewRouter(cfg, pages, backend, a.limiter, healthHandler, logger)

	a.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("application initialized",
		slog.String("api_base_url", api.BaseURL()),
		slog.String("session_backend", backend.Name()),
	)
	return a, nil
}

func (a *App) sessionBackend(ctx context.Context, hh *health.Handler) (session.Backend, error) {
	switch a.cfg.SessionBackend {
	case config.SessionRedis:
		client, err := database.NewRedisClient(ctx, database.RedisConfig{
			Addr:     a.cfg.RedisAddr,
			Password: a.cfg.RedisPassword,
			DB:       a.cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect session redis: %w", err)
		}
		a.redis = client
		hh.Register("redis", database.RedisChecker(client))
		return session.RedisBackend{Client: client, TTL: a.cfg.SessionTTL}, nil
	case config.SessionMemory:
		return session.NewMemoryBackend(), nil
	default:
		return session.CookieBackend{Secure: a.cfg.CookieSecure, MaxAge: a.cfg.SessionTTL}, nil
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go a.limiter.Run(ctx)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		_ = a.Shutdown()
		return err
	}

	return a.Shutdown()
}

// Shutdown stops the HTTP server first so in-flight requests finish, then
// closes redis and flushes pending spans.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := a.closeResources(); err != nil {
		errs = append(errs, err)
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}

// closeResources closes redis and flushes pending spans. It also runs when
// NewApp fails part way through.
func (a *App) closeResources() error {
	var errs []error

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("redis close error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	if a.tracerShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := a.tracerShutdown(ctx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
