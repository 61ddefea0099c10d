// Package httputil holds helpers shared by the HTML form handlers.
package httputil

import (
	"log/slog"
	"net/http"

	apperrors "github.com/kiran7893/talenthub-frontend/pkg/errors"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// MaxFormBytes bounds the size of a posted form.
const MaxFormBytes = 64 << 10

// ParseForm reads a url-encoded form body of at most MaxFormBytes.
func ParseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		return apperrors.Wrap(apperrors.InvalidInput("The submitted form could not be read. Please try again."), err.Error())
	}
	return nil
}

// SeeOther redirects to path with 303 so the browser follows up with a GET.
func SeeOther(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// Logger returns the request-scoped logger installed by the RequestLogger
// middleware, or fallback when there is none.
func Logger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		return fallback
	}
	return l
}
