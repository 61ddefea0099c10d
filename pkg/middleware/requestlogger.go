package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// RequestLogger stores a request-scoped logger in the context, enriched with
// every id already present there (correlation, trace and span). Handlers
// fetch it with logger.FromContext; later middleware adds fields with
// logger.With.
//
// Mount it after RequestLogging and Tracing so those ids are in place.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ctx = logger.NewContext(ctx, logger.WithContext(ctx, base))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
