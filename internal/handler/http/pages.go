package http

import (
	"context"
	"net/http"

	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/internal/view"
)

// Landing handles GET /.
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, view.PageLanding, nil)
}

// Dashboard handles GET /dashboard. Without a session the browser is sent
// to the login page.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Get(r.Context())
	if sess == nil {
		h.redirect(w, r, route.Login)
		return
	}
	h.views.Render(w, r, http.StatusOK, view.PageDashboard, view.DashboardPage{User: sess.User})
}

// sessionUser reports the signed-in user for RequireSession.
func (h *PageHandler) sessionUser(ctx context.Context) (string, bool) {
	sess := h.store.Get(ctx)
	if sess == nil {
		return "", false
	}
	if sess.User == nil {
		return "", true
	}
	return sess.User.ID, true
}
