// Package view renders the server-side HTML pages from embedded templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names.
const (
	PageLanding    = "landing"
	PageLogin      = "login"
	PageSignup     = "signup"
	PageOnboarding = "onboarding"
	PageDashboard  = "dashboard"
	PageNotFound   = "notfound"
	PageError      = "error"
)

var pageNames = []string{
	PageLanding, PageLogin, PageSignup, PageOnboarding,
	PageDashboard, PageNotFound, PageError,
}

var funcs = template.FuncMap{
	"fieldError": func(errs domain.FieldErrors, field string) string {
		return errs[field]
	},
}

// Renderer executes page templates. Each page is parsed together with the
// shared layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// New parses every page template.
func New(logger *slog.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

// Render writes page name with status. The page is executed into a buffer
// first so a template failure never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	t, ok := r.pages[name]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.WithContext(req.Context(), r.logger).ErrorContext(req.Context(), "render failed",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded stylesheet and other assets.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
