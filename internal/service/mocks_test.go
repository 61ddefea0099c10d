package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/internal/session"
)

// --- Mock API ---

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

func (m *mockAPI) Signup(ctx context.Context, req domain.SignupRequest) (*domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

func (m *mockAPI) SubmitOnboarding(ctx context.Context, token string, payload domain.OnboardingPayload) error {
	args := m.Called(ctx, token, payload)
	return args.Error(0)
}

// --- Mock Session Store ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Set(ctx context.Context, sess domain.Session) session.Result {
	args := m.Called(ctx, sess)
	return args.Get(0).(session.Result)
}

func (m *mockStore) Clear(ctx context.Context) session.Result {
	args := m.Called(ctx)
	return args.Get(0).(session.Result)
}

func (m *mockStore) AccessToken(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var stored = session.Result{Outcome: session.Stored}
