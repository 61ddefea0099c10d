package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/kiran7893/talenthub-frontend/internal/apiclient"
	"github.com/kiran7893/talenthub-frontend/internal/onboarding"
	"github.com/kiran7893/talenthub-frontend/internal/route"
	"github.com/kiran7893/talenthub-frontend/pkg/logger"
)

// WizardAction is the button pressed on a wizard page.
type WizardAction string

const (
	ActionNext WizardAction = "next"
	ActionBack WizardAction = "back"
)

// ParseWizardAction maps a posted form value to an action. ok is false for
// anything but "next" and "back"; the page is then rendered again unchanged.
func ParseWizardAction(v string) (action WizardAction, ok bool) {
	switch a := WizardAction(v); a {
	case ActionNext, ActionBack:
		return a, true
	default:
		return "", false
	}
}

// OnboardingService drives the onboarding wizard and submits the profile.
type OnboardingService struct {
	api    API
	store  SessionStore
	logger *slog.Logger
	group  singleflight.Group
}

// NewOnboardingService creates a new onboarding service.
func NewOnboardingService(api API, store SessionStore, logger *slog.Logger) *OnboardingService {
	return &OnboardingService{api: api, store: store, logger: logger}
}

// Advance applies action to w. route.None means the wizard page should be
// rendered again from w. Submission failures are recorded on w.
func (s *OnboardingService) Advance(ctx context.Context, w *onboarding.Wizard, action WizardAction) route.Destination {
	if action == ActionBack {
		w.Back()
		return route.None
	}
	if w.Next() != onboarding.ActionSubmit {
		return route.None
	}
	return s.submit(ctx, w)
}

func (s *OnboardingService) submit(ctx context.Context, w *onboarding.Wizard) route.Destination {
	log := logger.WithContext(ctx, s.logger)

	token := s.store.AccessToken(ctx)
	if token == "" {
		onboardingSubmissionsTotal.WithLabelValues(outcomeUnauthenticated).Inc()
		log.InfoContext(ctx, "onboarding submit without session")
		return route.Login
	}

	if err := w.BeginSubmit(); err != nil {
		return route.None
	}

	payload := w.Payload()
	// Concurrent submits for the same token share one API call.
	_, err, shared := s.group.Do(token, func() (any, error) {
		return nil, s.api.SubmitOnboarding(ctx, token, payload)
	})
	if shared {
		log.DebugContext(ctx, "onboarding submit joined an in-flight request")
	}

	if err != nil {
		if apiclient.IsKind(err, apiclient.KindAuth) {
			onboardingSubmissionsTotal.WithLabelValues(outcomeUnauthenticated).Inc()
			log.InfoContext(ctx, "onboarding token rejected, clearing session")
			s.store.Clear(ctx)
			w.EndSubmit()
			return route.Login
		}

		onboardingSubmissionsTotal.WithLabelValues(remoteOutcome(err)).Inc()
		log.WarnContext(ctx, "onboarding submit failed", slog.String("error", err.Error()))
		w.FailSubmit(apiclient.Message(err))
		return route.None
	}

	onboardingSubmissionsTotal.WithLabelValues(outcomeSuccess).Inc()
	log.InfoContext(ctx, "onboarding submitted")
	w.EndSubmit()
	return route.Dashboard
}
