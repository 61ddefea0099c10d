package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
)

// ErrUnavailable is the cause recorded when no Area is bound to the context.
var ErrUnavailable = errors.New("session storage unavailable")

// Outcome of a storage write.
type Outcome int

const (
	Stored Outcome = iota
	Dropped
)

func (o Outcome) String() string {
	if o == Stored {
		return "stored"
	}
	return "dropped"
}

// Result reports what happened to a write. Callers are free to ignore it;
// a dropped write only means the browser will look logged out.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports whether the write was stored.
func (r Result) OK() bool { return r.Outcome == Stored }

// Store reads and writes the session in the Area bound to the request
// context. Without an Area every read is absent and every write is dropped.
type Store struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a Store.
func NewStore(logger *slog.Logger) *Store {
	return &Store{logger: logger, now: time.Now}
}

// Set overwrites the session. The combined record is written first and
// decides the outcome; the token and user keys follow for readers that
// only know those.
func (s *Store) Set(ctx context.Context, sess domain.Session) Result {
	area := AreaFromContext(ctx)
	if area == nil {
		return s.dropped(ctx, "set", ErrUnavailable)
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return s.dropped(ctx, "set", err)
	}
	if err := area.Set(ctx, KeySession, string(raw)); err != nil {
		return s.dropped(ctx, "set", err)
	}
	if err := area.Set(ctx, KeyAccessToken, sess.AccessToken); err != nil {
		return s.dropped(ctx, "set", err)
	}

	if sess.User == nil {
		_ = area.Delete(ctx, KeyUser)
		return Result{Outcome: Stored}
	}
	if user, err := json.Marshal(sess.User); err == nil {
		if err := area.Set(ctx, KeyUser, string(user)); err != nil {
			s.logger.DebugContext(ctx, "session user not cached", slog.String("error", err.Error()))
		}
	}
	return Result{Outcome: Stored}
}

// Get returns the current session, or nil when there is none or its access
// token has expired. Malformed stored values read as absent.
func (s *Store) Get(ctx context.Context) *domain.Session {
	area := AreaFromContext(ctx)
	if area == nil {
		return nil
	}

	sess := s.read(ctx, area)
	if sess == nil || sess.AccessToken == "" {
		return nil
	}
	if tokenExpired(sess.AccessToken, s.now()) {
		return nil
	}
	return sess
}

func (s *Store) read(ctx context.Context, area Area) *domain.Session {
	if raw, ok := s.lookup(ctx, area, KeySession); ok {
		var sess domain.Session
		if json.Unmarshal([]byte(raw), &sess) == nil && sess.AccessToken != "" {
			if sess.User == nil {
				sess.User = s.cachedUser(ctx, area)
			}
			return &sess
		}
	}

	token, ok := s.lookup(ctx, area, KeyAccessToken)
	if !ok || token == "" {
		return nil
	}
	return &domain.Session{AccessToken: token, User: s.cachedUser(ctx, area)}
}

func (s *Store) cachedUser(ctx context.Context, area Area) *domain.AuthUser {
	raw, ok := s.lookup(ctx, area, KeyUser)
	if !ok {
		return nil
	}
	var user domain.AuthUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

func (s *Store) lookup(ctx context.Context, area Area, key string) (string, bool) {
	v, ok, err := area.Get(ctx, key)
	if err != nil {
		s.logger.DebugContext(ctx, "session read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", false
	}
	return v, ok
}

// Clear removes every session key.
func (s *Store) Clear(ctx context.Context) Result {
	area := AreaFromContext(ctx)
	if area == nil {
		return s.dropped(ctx, "clear", ErrUnavailable)
	}
	if err := area.Delete(ctx, KeySession, KeyAccessToken, KeyUser); err != nil {
		return s.dropped(ctx, "clear", err)
	}
	return Result{Outcome: Stored}
}

// AccessToken returns the current, unexpired access token or "".
func (s *Store) AccessToken(ctx context.Context) string {
	if sess := s.Get(ctx); sess != nil {
		return sess.AccessToken
	}
	return ""
}

// User returns the cached user of the current session, or nil.
func (s *Store) User(ctx context.Context) *domain.AuthUser {
	if sess := s.Get(ctx); sess != nil {
		return sess.User
	}
	return nil
}

func (s *Store) dropped(ctx context.Context, op string, err error) Result {
	s.logger.DebugContext(ctx, "session write dropped",
		slog.String("op", op),
		slog.String("error", err.Error()),
	)
	return Result{Outcome: Dropped, Err: err}
}
