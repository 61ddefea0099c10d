package http

import (
	"log/slog"
	"net/http"

	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/internal/service"
	"github.com/kiran7893/talenthub-frontend/internal/session"
	"github.com/kiran7893/talenthub-frontend/internal/view"
	apperrors "github.com/kiran7893/talenthub-frontend/pkg/errors"
	"github.com/kiran7893/talenthub-frontend/pkg/httputil"
)

// MsgTooManyAttempts is shown when the auth rate limit trips.
const MsgTooManyAttempts = "Too many attempts. Please wait a moment and try again."

// PageHandler serves the HTML pages and form posts.
type PageHandler struct {
	auth       *service.AuthService
	onboarding *service.OnboardingService
	store      *session.Store
	views      *view.Renderer
	logger     *slog.Logger
}

// NewPageHandler creates a new page handler.
func NewPageHandler(
	auth *service.AuthService,
	onboarding *service.OnboardingService,
	store *session.Store,
	views *view.Renderer,
	logger *slog.Logger,
) *PageHandler {
	return &PageHandler{
		auth:       auth,
		onboarding: onboarding,
		store:      store,
		views:      views,
		logger:     logger,
	}
}

func (h *PageHandler) redirect(w http.ResponseWriter, r *http.Request, dest route.Destination) {
	httputil.SeeOther(w, r, dest.Path())
}

// badForm renders the error page for a body that could not be parsed.
func (h *PageHandler) badForm(w http.ResponseWriter, r *http.Request, err error) {
	httputil.Logger(r, h.logger).WarnContext(r.Context(), "unreadable form",
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	status := apperrors.HTTPStatus(err)
	h.views.Render(w, r, status, view.PageError, view.ErrorPage{
		Status:  status,
		Message: apperrors.Message(err, "The submitted form could not be read. Please try again."),
	})
}

// NotFound renders the not-found page.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusNotFound, view.PageNotFound, nil)
}

// InternalError renders the generic error page. It is the recovery fallback.
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusInternalServerError, view.PageError, view.ErrorPage{
		Status: http.StatusInternalServerError,
	})
}

// TooManyRequests re-renders the form the limited post came from.
func (h *PageHandler) TooManyRequests(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case route.Signup.Path():
		h.views.Render(w, r, http.StatusTooManyRequests, view.PageSignup, view.SignupPage{Message: MsgTooManyAttempts})
	case route.Login.Path():
		h.views.Render(w, r, http.StatusTooManyRequests, view.PageLogin, view.LoginPage{Message: MsgTooManyAttempts})
	default:
		h.views.Render(w, r, http.StatusTooManyRequests, view.PageError, view.ErrorPage{
			Status:  http.StatusTooManyRequests,
			Message: MsgTooManyAttempts,
		})
	}
}
