package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// SessionLookup reports whether the request has a signed-in session and,
// when known, the user's id.
type SessionLookup func(ctx context.Context) (userID string, ok bool)

// RequireSession sends browsers without a session to loginPath with a 303.
// Signed-in requests carry the user id in their context for logging.
func RequireSession(lookup SessionLookup, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := lookup(r.Context())
			if !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			ctx := r.Context()
			if userID != "" {
				ctx = logger.WithUserID(ctx, userID)
				ctx = logger.With(ctx, slog.String("user_id", userID))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
