package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials_Email(t *testing.T) {
	_, errs := ValidateCredentials(Credentials{Email: "a@b.com", Password: "secret"})
	assert.Nil(t, errs)

	_, errs = ValidateCredentials(Credentials{Email: "", Password: "secret"})
	assert.Equal(t, "Email is required", errs["email"])

	_, errs = ValidateCredentials(Credentials{Email: "not-an-email", Password: "secret"})
	assert.Equal(t, "Please enter a valid email address", errs["email"])
}

func TestValidateCredentials_PasswordBoundary(t *testing.T) {
	_, errs := ValidateCredentials(Credentials{Email: "a@b.com", Password: "12345"})
	assert.Equal(t, FieldErrors{"password": "Password must be at least 6 characters"}, errs)

	_, errs = ValidateCredentials(Credentials{Email: "a@b.com", Password: "123456"})
	assert.Nil(t, errs)
}

func TestValidateSignup(t *testing.T) {
	valid := SignupDetails{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "secret"}
	_, errs := ValidateSignup(valid)
	assert.Nil(t, errs)

	single := valid
	single.FullName = "Ada"
	_, errs = ValidateSignup(single)
	assert.Equal(t, "Enter first and last name (at least 2 characters each)", errs["fullName"])

	empty := valid
	empty.FullName = ""
	_, errs = ValidateSignup(empty)
	assert.Equal(t, "Full name is required", errs["fullName"])
}

func TestValidateSignup_AllFieldsReported(t *testing.T) {
	_, errs := ValidateSignup(SignupDetails{})
	assert.Equal(t, FieldErrors{
		"fullName": "Full name is required",
		"email":    "Email is required",
		"password": "Password must be at least 6 characters",
	}, errs)
}

func validPersonal() PersonalDetails {
	return PersonalDetails{
		FirstName:         "Ada",
		LastName:          "Lovelace",
		CompanyName:       "Analytical Engines",
		HiringManagerName: "Charles Babbage",
		Email:             "ada@example.com",
		PhoneNumber:       "+44 1234567890",
	}
}

func TestValidatePersonal(t *testing.T) {
	_, errs := ValidatePersonal(validPersonal())
	assert.Nil(t, errs)

	_, errs = ValidatePersonal(PersonalDetails{Email: "bad", PhoneNumber: "123"})
	assert.Equal(t, FieldErrors{
		"firstName":         "First name is required",
		"lastName":          "Last name is required",
		"companyName":       "Company name is required",
		"hiringManagerName": "Hiring manager name is required",
		"email":             "Enter a valid email",
		"phoneNumber":       "Enter a valid phone number",
	}, errs)

	p := validPersonal()
	p.Email = ""
	_, errs = ValidatePersonal(p)
	assert.Equal(t, FieldErrors{"email": "Email is required"}, errs)
}

func TestValidatePersonal_LengthsCountCharacters(t *testing.T) {
	p := validPersonal()
	p.FirstName = "Zö"
	_, errs := ValidatePersonal(p)
	assert.Nil(t, errs)
}

func TestValidateSkills(t *testing.T) {
	s, errs := ValidateSkills(SkillsDetails{
		Industry:            "Technology",
		JobRole:             "Analyst",
		ProfessionalSummary: strings.Repeat("x", 50),
	})
	assert.Nil(t, errs)
	require.NotNil(t, s.Skills)
	assert.Empty(t, s.Skills)

	_, errs = ValidateSkills(SkillsDetails{ProfessionalSummary: strings.Repeat("x", 49), Skills: []string{"Go", ""}})
	assert.Equal(t, FieldErrors{
		"industry":            "Select industry",
		"jobRole":             "Select job role",
		"professionalSummary": "Minimum of 50 characters required",
		"skills":              "Skills cannot be empty",
	}, errs)
}

func TestValidateExperience(t *testing.T) {
	_, errs := ValidateExperience(ExperienceDetails{ExperienceLevel: "3-5 years", IndustryExperience: "Finance"})
	assert.Nil(t, errs)

	_, errs = ValidateExperience(ExperienceDetails{ToolsOrTechnologies: "React"})
	assert.Equal(t, FieldErrors{
		"experienceLevel":    "Select experience level",
		"industryExperience": "Select industry experience",
	}, errs)
}

func TestFieldErrors_Has(t *testing.T) {
	fe := FieldErrors{"email": "Email is required"}
	assert.True(t, fe.Has("email"))
	assert.False(t, fe.Has("password"))
	assert.False(t, FieldErrors(nil).Has("email"))
}
