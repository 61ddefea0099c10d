package http

import (
	"net/http"

	"github.com/kiran7893/talenthub-frontend/internal/onboarding"
	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/internal/service"
	"github.com/kiran7893/talenthub-frontend/internal/view"
	"github.com/kiran7893/talenthub-frontend/pkg/httputil"
)

// OnboardingForm handles GET /onboarding. Every visit starts a new wizard.
func (h *PageHandler) OnboardingForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, view.PageOnboarding, view.NewOnboardingPage(onboarding.New()))
}

// Onboarding handles POST /onboarding. The wizard travels in the hidden
// state field and the current step's inputs overlay it.
func (h *PageHandler) Onboarding(w http.ResponseWriter, r *http.Request) {
	if err := httputil.ParseForm(w, r); err != nil {
		h.badForm(w, r, err)
		return
	}

	wiz := onboarding.Decode(r.PostForm.Get("state"))
	wiz.Apply(r.PostForm)

	action, ok := service.ParseWizardAction(r.PostForm.Get("action"))
	if !ok {
		h.views.Render(w, r, http.StatusOK, view.PageOnboarding, view.NewOnboardingPage(wiz))
		return
	}
	if dest := h.onboarding.Advance(r.Context(), wiz, action); dest != route.None {
		h.redirect(w, r, dest)
		return
	}

	status := http.StatusOK
	if action == service.ActionNext && len(wiz.Errors()) > 0 {
		status = http.StatusUnprocessableEntity
	}
	h.views.Render(w, r, status, view.PageOnboarding, view.NewOnboardingPage(wiz))
}
