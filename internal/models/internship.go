package models

import (
	"time"
)

type Internship struct {
	ID                  string    `json:"id" db:"id"`
	Title               string    `json:"title" db:"title"`
	Company             string    `json:"company" db:"company"`
	CompanyType         string    `json:"company_type" db:"company_type"` // trust, government, private
	Description         string    `json:"description" db:"description"`
	Requirements        string    `json:"requirements" db:"requirements"`
	Duration            string    `json:"duration" db:"duration"`
	Stipend             string    `json:"stipend" db:"stipend"`
	Location            string    `json:"location" db:"location"`
	StartDate           time.Time `json:"start_date" db:"start_date"`
	EndDate             time.Time `json:"end_date" db:"end_date"`
	ApplicationDeadline time.Time `json:"application_deadline" db:"application_deadline"`
	Category            string    `json:"category" db:"category"`
	SkillsRequired      string    `json:"skills_required" db:"skills_required"`
	IsVerified          bool      `json:"is_verified" db:"is_verified"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

type CompanyType string

const (
	CompanyTypeTrust      CompanyType = "trust"
	CompanyTypeGovernment CompanyType = "government"
	CompanyTypePrivate    CompanyType = "private"
)

func (ct CompanyType) String() string {
	return string(ct)
}

func IsValidCompanyType(companyType string) bool {
	switch companyType {
	case "trust", "government", "private":
		return true
	default:
		return false
	}
}

// InternshipFilter describes the browse query. Zero values mean "no filter":
// CompanyType and Category use "all" as their unfiltered default.
type InternshipFilter struct {
	CompanyType string
	Category    string
	Search      string
	Page        int
}
