package service

import (
	"context"
	"log/slog"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

const (
	flowLogin  = "login"
	flowSignup = "signup"
)

// AuthService handles login, signup and logout.
type AuthService struct {
	api    API
	store  SessionStore
	logger *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(api API, store SessionStore, logger *slog.Logger) *AuthService {
	return &AuthService{api: api, store: store, logger: logger}
}

// Login validates the credentials, authenticates against the API and stores
// the session. Field errors mean no request was sent. A returned error is
// safe to display through apiclient.Message.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (route.Destination, domain.FieldErrors, error) {
	creds, errs := domain.ValidateCredentials(creds)
	if errs != nil {
		authAttemptsTotal.WithLabelValues(flowLogin, outcomeInvalid).Inc()
		return route.None, errs, nil
	}

	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		s.remoteFailure(ctx, flowLogin, err)
		return route.None, nil, err
	}

	s.persist(ctx, flowLogin, resp)
	return route.Dashboard, nil, nil
}

// Signup validates the form, creates the account with the split name and
// stores the session.
func (s *AuthService) Signup(ctx context.Context, details domain.SignupDetails) (route.Destination, domain.FieldErrors, error) {
	details, errs := domain.ValidateSignup(details)
	if errs != nil {
		authAttemptsTotal.WithLabelValues(flowSignup, outcomeInvalid).Inc()
		return route.None, errs, nil
	}

	resp, err := s.api.Signup(ctx, details.Request())
	if err != nil {
		s.remoteFailure(ctx, flowSignup, err)
		return route.None, nil, err
	}

	s.persist(ctx, flowSignup, resp)
	return route.Onboarding, nil, nil
}

// Logout clears the session.
func (s *AuthService) Logout(ctx context.Context) route.Destination {
	s.store.Clear(ctx)
	return route.Login
}

func (s *AuthService) persist(ctx context.Context, flow string, resp *domain.AuthResponse) {
	authAttemptsTotal.WithLabelValues(flow, outcomeSuccess).Inc()

	res := s.store.Set(ctx, domain.SessionFrom(resp))
	log := logger.WithContext(ctx, s.logger)
	if resp.User != nil {
		log = log.With(slog.String("user_id", resp.User.ID))
	}
	log.InfoContext(ctx, "session started",
		slog.String("flow", flow),
		slog.String("session_write", res.Outcome.String()),
	)
}

func (s *AuthService) remoteFailure(ctx context.Context, flow string, err error) {
	authAttemptsTotal.WithLabelValues(flow, remoteOutcome(err)).Inc()
	logger.WithContext(ctx, s.logger).WarnContext(ctx, "auth request failed",
		slog.String("flow", flow),
		slog.String("error", err.Error()),
	)
}
