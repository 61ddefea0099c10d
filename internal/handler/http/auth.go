package http

import (
	"net/http"

	"github.com/kiran7893/talenthub-frontend/internal/apiclient"
	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/internal/view"
	"github.com/kiran7893/talenthub-frontend/pkg/httputil"
)

// LoginForm handles GET /login.
func (h *PageHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, view.PageLogin, view.LoginPage{})
}

// Login handles POST /login.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := httputil.ParseForm(w, r); err != nil {
		h.badForm(w, r, err)
		return
	}

	creds := domain.Credentials{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	page := view.LoginPage{Email: creds.Email}

	dest, errs, err := h.auth.Login(r.Context(), creds)
	switch {
	case errs != nil:
		page.Errors = errs
		h.views.Render(w, r, http.StatusUnprocessableEntity, view.PageLogin, page)
	case err != nil:
		page.Message = apiclient.Message(err)
		h.views.Render(w, r, http.StatusOK, view.PageLogin, page)
	default:
		h.redirect(w, r, dest)
	}
}

// SignupForm handles GET /signup.
func (h *PageHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, r, http.StatusOK, view.PageSignup, view.SignupPage{})
}

// Signup handles POST /signup.
func (h *PageHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := httputil.ParseForm(w, r); err != nil {
		h.badForm(w, r, err)
		return
	}

	details := domain.SignupDetails{
		FullName: r.PostForm.Get("fullName"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	page := view.SignupPage{FullName: details.FullName, Email: details.Email}

	dest, errs, err := h.auth.Signup(r.Context(), details)
	switch {
	case errs != nil:
		page.Errors = errs
		h.views.Render(w, r, http.StatusUnprocessableEntity, view.PageSignup, page)
	case err != nil:
		page.Message = apiclient.Message(err)
		h.views.Render(w, r, http.StatusOK, view.PageSignup, page)
	default:
		h.redirect(w, r, dest)
	}
}

// Logout handles POST /logout.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, h.auth.Logout(r.Context()))
}
