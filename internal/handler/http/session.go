package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kiran7893/talenthub-frontend/internal/session"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// BrowserCookie identifies a browser across requests. Server-side session
// areas are keyed by it.
const BrowserCookie = "th_bid"

// Sessions assigns each browser a stable id and binds the backend's session
// area for this request to the context.
func Sessions(backend session.Backend, secure bool, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bid := browserID(r)
			if bid == "" {
				bid = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     BrowserCookie,
					Value:    bid,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := logger.WithBrowserID(r.Context(), bid)
			ctx = logger.With(ctx, slog.String("browser_id", bid))
			r = r.WithContext(ctx)
			area := backend.Open(w, r)
			next.ServeHTTP(w, r.WithContext(session.WithArea(ctx, area)))
		})
	}
}

func browserID(r *http.Request) string {
	c, err := r.Cookie(BrowserCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
