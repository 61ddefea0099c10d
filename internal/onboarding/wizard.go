// Package onboarding holds the three-step onboarding wizard: its per-step
// records, error maps and the transitions between steps.
package onboarding

import (
	"errors"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
)

// Step is a wizard position, 1 through 3.
type Step int

const (
	StepPersonal   Step = 1
	StepSkills     Step = 2
	StepExperience Step = 3
)

// Action is what the wizard asks its caller to do after a transition.
type Action int

const (
	// ActionStay re-renders the wizard at its current step.
	ActionStay Action = iota
	// ActionSubmit means step 3 validated and the payload should be sent.
	ActionSubmit
)

// ErrAlreadySubmitting is returned by BeginSubmit while a submission is
// in flight.
var ErrAlreadySubmitting = errors.New("onboarding: submission already in progress")

// Wizard is the state of one onboarding attempt. Each step keeps its own
// errors; moving between steps never touches another step's map.
type Wizard struct {
	Step       Step                     `json:"step"`
	Personal   domain.PersonalDetails   `json:"personal"`
	Skills     domain.SkillsDetails     `json:"skills"`
	Experience domain.ExperienceDetails `json:"experience"`

	PersonalErrors   domain.FieldErrors `json:"personalErrors,omitempty"`
	SkillsErrors     domain.FieldErrors `json:"skillsErrors,omitempty"`
	ExperienceErrors domain.FieldErrors `json:"experienceErrors,omitempty"`

	SubmitError string `json:"submitError,omitempty"`
	Submitting  bool   `json:"-"`
}

// New returns a wizard at step 1 with empty fields.
func New() *Wizard {
	return &Wizard{
		Step:   StepPersonal,
		Skills: domain.SkillsDetails{Skills: []string{}},
	}
}

// Next validates the current step. On failure the step's errors are set and
// the wizard stays put. On success they are cleared and steps 1 and 2
// advance, while step 3 reports ActionSubmit.
func (w *Wizard) Next() Action {
	switch w.Step {
	case StepPersonal:
		p, errs := domain.ValidatePersonal(w.Personal)
		w.Personal, w.PersonalErrors = p, errs
		if errs != nil {
			return ActionStay
		}
		w.Step = StepSkills
	case StepSkills:
		s, errs := domain.ValidateSkills(w.Skills)
		w.Skills, w.SkillsErrors = s, errs
		if errs != nil {
			return ActionStay
		}
		w.Step = StepExperience
	case StepExperience:
		e, errs := domain.ValidateExperience(w.Experience)
		w.Experience, w.ExperienceErrors = e, errs
		if errs != nil {
			return ActionStay
		}
		if !w.earlierStepsValid() {
			return ActionStay
		}
		return ActionSubmit
	default:
		w.Step = StepPersonal
	}
	return ActionStay
}

// earlierStepsValid re-checks steps 1 and 2 before a submission, since the
// posted state may never have passed through them. The wizard moves to the
// first failing step with its errors set.
func (w *Wizard) earlierStepsValid() bool {
	p, errs := domain.ValidatePersonal(w.Personal)
	if errs != nil {
		w.PersonalErrors = errs
		w.Step = StepPersonal
		return false
	}
	w.Personal = p

	s, errs := domain.ValidateSkills(w.Skills)
	if errs != nil {
		w.SkillsErrors = errs
		w.Step = StepSkills
		return false
	}
	w.Skills = s
	return true
}

// Back moves to the previous step without validating or clearing errors.
func (w *Wizard) Back() {
	if w.Step > StepPersonal {
		w.Step--
	}
}

// Errors returns the error map of the current step.
func (w *Wizard) Errors() domain.FieldErrors {
	switch w.Step {
	case StepSkills:
		return w.SkillsErrors
	case StepExperience:
		return w.ExperienceErrors
	default:
		return w.PersonalErrors
	}
}

// Payload builds the submission body from the three steps.
func (w *Wizard) Payload() domain.OnboardingPayload {
	return domain.BuildOnboardingPayload(w.Personal, w.Skills, w.Experience)
}

// BeginSubmit marks the wizard as submitting and clears the last submit
// error.
func (w *Wizard) BeginSubmit() error {
	if w.Submitting {
		return ErrAlreadySubmitting
	}
	w.Submitting = true
	w.SubmitError = ""
	return nil
}

// FailSubmit records msg and leaves the wizard on step 3 with its data.
func (w *Wizard) FailSubmit(msg string) {
	w.Submitting = false
	w.SubmitError = msg
	w.Step = StepExperience
}

// EndSubmit clears the submitting flag after a successful submission.
func (w *Wizard) EndSubmit() {
	w.Submitting = false
}
