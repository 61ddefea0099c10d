// Package session keeps the per-browser login state: the access token and
// the cached user, stored in a pluggable Area.
package session

import (
	"context"
	"errors"
	"net/http"
)

// Keys under which the session is stored.
const (
	KeyAccessToken = "talent_hub_access_token"
	KeyUser        = "talent_hub_user"
	KeySession     = "talent_hub_session"
)

// ErrQuotaExceeded is returned by an Area when a value is too large to keep.
var ErrQuotaExceeded = errors.New("session storage quota exceeded")

// Area is a per-browser key-value store.
type Area interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Backend opens the Area belonging to the browser that sent r. Areas that
// write cookies do so through w, so Open must run before the response is
// committed.
type Backend interface {
	Open(w http.ResponseWriter, r *http.Request) Area
	Name() string
}

type areaKey struct{}

// WithArea returns a context carrying a.
func WithArea(ctx context.Context, a Area) context.Context {
	return context.WithValue(ctx, areaKey{}, a)
}

// AreaFromContext returns the area in ctx, or nil.
func AreaFromContext(ctx context.Context) Area {
	a, _ := ctx.Value(areaKey{}).(Area)
	return a
}
