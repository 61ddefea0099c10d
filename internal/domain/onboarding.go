package domain

import "strings"

// PersonalDetails is step 1 of the onboarding wizard.
type PersonalDetails struct {
	FirstName         string `json:"firstName" validate:"min=2"`
	LastName          string `json:"lastName" validate:"min=2"`
	CompanyName       string `json:"companyName" validate:"min=2"`
	HiringManagerName string `json:"hiringManagerName" validate:"min=2"`
	Email             string `json:"email" validate:"required,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"min=10"`
}

// SkillsDetails is step 2 of the onboarding wizard.
type SkillsDetails struct {
	Industry            string   `json:"industry" validate:"required"`
	JobRole             string   `json:"jobRole" validate:"required"`
	ProfessionalSummary string   `json:"professionalSummary" validate:"min=50"`
	Skills              []string `json:"skills" validate:"dive,required"`
}

// ExperienceDetails is step 3 of the onboarding wizard.
type ExperienceDetails struct {
	ExperienceLevel     string `json:"experienceLevel" validate:"required"`
	ToolsOrTechnologies string `json:"toolsOrTechnologies"`
	IndustryExperience  string `json:"industryExperience" validate:"required"`
}

// SkillGroup is one named group of tags in the onboarding payload.
type SkillGroup struct {
	Group     string   `json:"group"`
	SubGroups []string `json:"subGroups"`
}

// OnboardingPayload is the body of POST /candidates/onboarding.
type OnboardingPayload struct {
	FirstName              string       `json:"firstName"`
	LastName               string       `json:"lastName"`
	Email                  string       `json:"email"`
	Phone                  string       `json:"phone,omitempty"`
	ProfessionalSummary    string       `json:"professionalSummary"`
	Skills                 []SkillGroup `json:"skills"`
	YearsOfExperience      int          `json:"yearsOfExperience"`
	IndustryExperience     []string     `json:"industryExperience"`
	SystemsToolsExperience []string     `json:"systemsToolsExperience,omitempty"`
	Education              []any        `json:"education"`
}

// ExperienceLevel is a selectable experience bucket.
type ExperienceLevel struct {
	Label string
	Years int
}

// Option lists rendered by the wizard.
var (
	ExperienceLevels = []ExperienceLevel{
		{Label: "0-1 years", Years: 0},
		{Label: "1-3 years", Years: 2},
		{Label: "3-5 years", Years: 4},
		{Label: "5-10 years", Years: 7},
		{Label: "10+ years", Years: 10},
	}
	Industries = []string{"Technology", "Finance", "Healthcare", "Manufacturing", "Other"}
	JobRoles   = []string{"Senior Developer", "Analyst", "Manager", "Specialist", "Other"}
	Tools      = []string{"React", "Node.js", "Python", "TypeScript", "AWS", "Other"}
)

// YearsOfExperience maps an experience label to its year bucket. Unknown
// labels map to 0.
func YearsOfExperience(label string) int {
	for _, lvl := range ExperienceLevels {
		if lvl.Label == label {
			return lvl.Years
		}
	}
	return 0
}

const (
	groupIndustry = "Industry"
	groupJobRole  = "Job Role"
	groupSkills   = "Skills"
	groupProfile  = "Profile"
	generalTag    = "General"
)

// SkillGroups regroups step 2 into the payload's tag groups: Industry, Job
// Role and Skills, each only when it has tags. An empty skills list becomes
// the single tag General. When neither industry nor job role is set and the
// skills list is empty, the result is the single group Profile/General.
func SkillGroups(s SkillsDetails) []SkillGroup {
	var groups []SkillGroup
	if s.Industry != "" {
		groups = append(groups, SkillGroup{Group: groupIndustry, SubGroups: []string{s.Industry}})
	}
	if s.JobRole != "" {
		groups = append(groups, SkillGroup{Group: groupJobRole, SubGroups: []string{s.JobRole}})
	}
	if len(s.Skills) > 0 {
		groups = append(groups, SkillGroup{Group: groupSkills, SubGroups: append([]string(nil), s.Skills...)})
	} else if len(groups) > 0 {
		groups = append(groups, SkillGroup{Group: groupSkills, SubGroups: []string{generalTag}})
	}

	if len(groups) == 0 {
		return []SkillGroup{{Group: groupProfile, SubGroups: []string{generalTag}}}
	}
	return groups
}

// BuildOnboardingPayload assembles the submission from the three steps.
func BuildOnboardingPayload(p PersonalDetails, s SkillsDetails, e ExperienceDetails) OnboardingPayload {
	payload := OnboardingPayload{
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Email:               p.Email,
		Phone:               p.PhoneNumber,
		ProfessionalSummary: s.ProfessionalSummary,
		Skills:              SkillGroups(s),
		YearsOfExperience:   YearsOfExperience(e.ExperienceLevel),
		IndustryExperience:  []string{},
		Education:           []any{},
	}
	if e.IndustryExperience != "" {
		payload.IndustryExperience = []string{e.IndustryExperience}
	}
	if e.ToolsOrTechnologies != "" {
		payload.SystemsToolsExperience = []string{e.ToolsOrTechnologies}
	}
	return payload
}

// ParseTags splits a comma separated tag field, trimming each tag and
// dropping empty ones.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
