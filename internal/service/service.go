// Package service orchestrates the auth forms and the onboarding wizard:
// validation, remote calls, session writes and the next destination.
package service

import (
	"context"
	"errors"

	"github.com/kiran7893/talenthub-frontend/internal/apiclient"
	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/internal/session"
)

// API is the subset of the remote API client the services use.
type API interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error)
	SubmitOnboarding(ctx context.Context, token string, payload domain.OnboardingPayload) error
}

// SessionStore persists the per-browser session.
type SessionStore interface {
	Set(ctx context.Context, sess domain.Session) session.Result
	Clear(ctx context.Context) session.Result
	AccessToken(ctx context.Context) string
}

// remoteOutcome classifies an API error for the flow counters.
func remoteOutcome(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) && apiErr.Kind == apiclient.KindUnavailable {
		return outcomeUnavailable
	}
	return outcomeRejected
}
