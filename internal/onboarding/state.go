package onboarding

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/kiran7893/talenthub-frontend/internal/domain"
)

// Encode serialises the wizard for the hidden state field.
func Encode(w *Wizard) string {
	raw, err := json.Marshal(w)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// Decode restores a wizard from the hidden state field. An empty or
// malformed value yields a new wizard.
func Decode(state string) *Wizard {
	if state == "" {
		return New()
	}
	raw, err := base64.RawURLEncoding.DecodeString(state)
	if err != nil {
		return New()
	}
	w := New()
	if err := json.Unmarshal(raw, w); err != nil {
		return New()
	}
	if w.Step < StepPersonal || w.Step > StepExperience {
		w.Step = StepPersonal
	}
	if w.Skills.Skills == nil {
		w.Skills.Skills = []string{}
	}
	return w
}

// Apply overlays the posted fields of the current step onto the wizard.
// Fields of other steps are ignored.
func (w *Wizard) Apply(form url.Values) {
	switch w.Step {
	case StepPersonal:
		w.Personal = domain.PersonalDetails{
			FirstName:         form.Get("firstName"),
			LastName:          form.Get("lastName"),
			CompanyName:       form.Get("companyName"),
			HiringManagerName: form.Get("hiringManagerName"),
			Email:             form.Get("email"),
			PhoneNumber:       form.Get("phoneNumber"),
		}
	case StepSkills:
		w.Skills = domain.SkillsDetails{
			Industry:            form.Get("industry"),
			JobRole:             form.Get("jobRole"),
			ProfessionalSummary: form.Get("professionalSummary"),
			Skills:              domain.ParseTags(form.Get("skills")),
		}
	case StepExperience:
		w.Experience = domain.ExperienceDetails{
			ExperienceLevel:     form.Get("experienceLevel"),
			ToolsOrTechnologies: form.Get("toolsOrTechnologies"),
			IndustryExperience:  form.Get("industryExperience"),
		}
	}
}

// SkillsText renders the skills tags back into the comma separated field.
func (w *Wizard) SkillsText() string {
	return strings.Join(w.Skills.Skills, ", ")
}
