package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kiran7893/talenthub-frontend/internal/config"
	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/internal/session"
	"github.com/kiran7893/talenthub-frontend/internal/view"
	"github.com/kiran7893/talenthub-frontend/pkg/health"
	"github.com/kiran7893/talenthub-frontend/pkg/middleware"
)

// ServiceName labels metrics and spans.
const ServiceName = "talenthub-web"

// NewRouter creates the chi router with the global middleware stack, the
// health and metrics endpoints, static assets and the page routes.
func NewRouter(
	cfg *config.Config,
	pages *PageHandler,
	sessions session.Backend,
	limiter *middleware.RateLimiter,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	if cfg.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.Recovery(logger, http.HandlerFunc(pages.InternalError)))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.PrometheusMetrics(ServiceName))
	r.Use(middleware.Tracing(ServiceName))
	r.Use(middleware.RequestLogger(logger))

	r.NotFound(pages.NotFound)

	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.With(middleware.IPAllowlist(cfg.MetricsAllowedCIDRs, logger)).Handle("/metrics", promhttp.Handler())

	r.With(middleware.CacheControl(3600)).Handle("/static/*", http.StripPrefix("/static", view.Static()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Use(Sessions(sessions, cfg.CookieSecure, cfg.SessionTTL))

		r.Get("/", pages.Landing)
		r.With(middleware.RequireSession(pages.sessionUser, route.Login.Path())).Get("/dashboard", pages.Dashboard)
		r.Post("/logout", pages.Logout)
		r.Get("/onboarding", pages.OnboardingForm)
		r.Post("/onboarding", pages.Onboarding)

		r.Get("/login", pages.LoginForm)
		r.Get("/signup", pages.SignupForm)
		r.With(limiter.Handler).Post("/login", pages.Login)
		r.With(limiter.Handler).Post("/signup", pages.Signup)
	})

	return r
}
