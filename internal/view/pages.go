package view

import (
	"github.com/kiran7893/talenthub-frontend/internal/domain"
	"github.com/kiran7893/talenthub-frontend/internal/onboarding"
)

// LoginPage is the data of the login form. The password is never echoed.
type LoginPage struct {
	Email   string
	Errors  domain.FieldErrors
	Message string
}

// SignupPage is the data of the signup form.
type SignupPage struct {
	FullName string
	Email    string
	Errors   domain.FieldErrors
	Message  string
}

// OnboardingPage is one step of the wizard.
type OnboardingPage struct {
	Wizard *onboarding.Wizard
	State  string
	Errors domain.FieldErrors

	ExperienceLevels []domain.ExperienceLevel
	Industries       []string
	JobRoles         []string
	Tools            []string
}

// NewOnboardingPage prepares the wizard for rendering at its current step.
func NewOnboardingPage(w *onboarding.Wizard) OnboardingPage {
	return OnboardingPage{
		Wizard:           w,
		State:            onboarding.Encode(w),
		Errors:           w.Errors(),
		ExperienceLevels: domain.ExperienceLevels,
		Industries:       domain.Industries,
		JobRoles:         domain.JobRoles,
		Tools:            domain.Tools,
	}
}

// DashboardPage greets the signed-in user.
type DashboardPage struct {
	User *domain.AuthUser
}

// FirstName returns the cached user's first name, or "there".
func (p DashboardPage) FirstName() string {
	if p.User == nil || p.User.FirstName == "" {
		return "there"
	}
	return p.User.FirstName
}

// ErrorPage is rendered for unexpected failures.
type ErrorPage struct {
	Status  int
	Message string
}
