// Package domain holds the records exchanged with the TalentHub API, the
// form rules that guard them and the onboarding payload transform.
package domain

import (
	"errors"

	"github.com/kiran7893/talenthub-frontend/pkg/validator"
)

// FieldErrors maps a form field name to its single error message.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func init() {
	if err := validator.RegisterValidation("fullname", validFullName); err != nil {
		panic(err)
	}

	validator.RegisterMessages(Credentials{}, validator.Messages{
		"email.required": "Email is required",
		"email.email":    "Please enter a valid email address",
		"password":       "Password must be at least 6 characters",
	})
	validator.RegisterMessages(SignupDetails{}, validator.Messages{
		"fullName.required": "Full name is required",
		"fullName.fullname": "Enter first and last name (at least 2 characters each)",
		"email.required":    "Email is required",
		"email.email":       "Please enter a valid email address",
		"password":          "Password must be at least 6 characters",
	})
	validator.RegisterMessages(PersonalDetails{}, validator.Messages{
		"firstName":         "First name is required",
		"lastName":          "Last name is required",
		"companyName":       "Company name is required",
		"hiringManagerName": "Hiring manager name is required",
		"email.required":    "Email is required",
		"email.email":       "Enter a valid email",
		"phoneNumber":       "Enter a valid phone number",
	})
	validator.RegisterMessages(SkillsDetails{}, validator.Messages{
		"industry":            "Select industry",
		"jobRole":             "Select job role",
		"professionalSummary": "Minimum of 50 characters required",
		"skills":              "Skills cannot be empty",
	})
	validator.RegisterMessages(ExperienceDetails{}, validator.Messages{
		"experienceLevel":    "Select experience level",
		"industryExperience": "Select industry experience",
	})
}

// ValidateCredentials checks the login form.
func ValidateCredentials(c Credentials) (Credentials, FieldErrors) {
	return c, check(c)
}

// ValidateSignup checks the signup form.
func ValidateSignup(d SignupDetails) (SignupDetails, FieldErrors) {
	return d, check(d)
}

// ValidatePersonal checks onboarding step 1.
func ValidatePersonal(p PersonalDetails) (PersonalDetails, FieldErrors) {
	return p, check(p)
}

// ValidateSkills checks onboarding step 2. A nil skills list normalises to
// an empty one.
func ValidateSkills(s SkillsDetails) (SkillsDetails, FieldErrors) {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	return s, check(s)
}

// ValidateExperience checks onboarding step 3.
func ValidateExperience(e ExperienceDetails) (ExperienceDetails, FieldErrors) {
	return e, check(e)
}

// check returns nil when v is valid.
func check(v any) FieldErrors {
	err := validator.Validate(v)
	if err == nil {
		return nil
	}
	var ve *validator.ValidationError
	if errors.As(err, &ve) {
		return FieldErrors(ve.Fields())
	}
	// Only reachable with a malformed struct tag.
	return FieldErrors{"_": err.Error()}
}
