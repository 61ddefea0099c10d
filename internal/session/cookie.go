package session

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"
)

// MaxCookieBytes is the largest encoded value a cookie area accepts.
const MaxCookieBytes = 4096

// CookieBackend keeps every key in its own HttpOnly cookie, so the session
// lives entirely in the browser.
type CookieBackend struct {
	Secure bool
	MaxAge time.Duration
}

func (b CookieBackend) Name() string { return "cookie" }

// Open returns an Area over r's cookies that writes Set-Cookie headers to w.
func (b CookieBackend) Open(w http.ResponseWriter, r *http.Request) Area {
	return &cookieArea{
		w:       w,
		r:       r,
		secure:  b.Secure,
		maxAge:  b.MaxAge,
		pending: make(map[string]*string),
	}
}

// cookieArea remembers what it wrote so a read later in the same request
// sees it.
type cookieArea struct {
	w       http.ResponseWriter
	r       *http.Request
	secure  bool
	maxAge  time.Duration
	pending map[string]*string
}

func (a *cookieArea) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := a.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}

	c, err := a.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return "", false, nil
	}
	return string(raw), true, nil
}

func (a *cookieArea) Set(_ context.Context, key, value string) error {
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value))
	if len(key)+len(encoded) > MaxCookieBytes {
		return ErrQuotaExceeded
	}

	http.SetCookie(a.w, a.cookie(key, encoded, int(a.maxAge.Seconds())))
	a.pending[key] = &value
	return nil
}

func (a *cookieArea) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		http.SetCookie(a.w, a.cookie(key, "", -1))
		a.pending[key] = nil
	}
	return nil
}

func (a *cookieArea) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
