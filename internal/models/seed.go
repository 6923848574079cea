package models

// InternshipDescriptor is one entry of the external seed dataset. Dates are kept
// textual here and parsed by the seed service.
type InternshipDescriptor struct {
	Title               string `json:"title"`
	Company             string `json:"company"`
	CompanyType         string `json:"company_type"`
	Description         string `json:"description"`
	Requirements        string `json:"requirements"`
	Duration            string `json:"duration"`
	Stipend             string `json:"stipend,omitempty"`
	Location            string `json:"location"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	ApplicationDeadline string `json:"application_deadline"`
	Category            string `json:"category"`
	SkillsRequired      string `json:"skills_required,omitempty"`
}
