package models

import "time"

// Data Transfer Objects

type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email,max=120"`
	Mobile         string `json:"mobile" validate:"required,max=15"`
	EducationLevel string `json:"education_level" validate:"required,max=50"`
	FieldOfStudy   string `json:"field_of_study" validate:"required,max=100"`
	University     string `json:"university" validate:"required,max=200"`
	GraduationYear int    `json:"graduation_year" validate:"required"`
	Skills         string `json:"skills"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Mobile         string `json:"mobile" validate:"required,max=15"`
	EducationLevel string `json:"education_level" validate:"required,max=50"`
	FieldOfStudy   string `json:"field_of_study" validate:"required,max=100"`
	University     string `json:"university" validate:"required,max=200"`
	GraduationYear int    `json:"graduation_year" validate:"required"`
	Skills         string `json:"skills"`
}

type VerifyAadharRequest struct {
	AadharNumber string `json:"aadhar_number" validate:"required,len=12"`
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type ApplyResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}

type InternshipsResponse struct {
	Internships []Internship `json:"internships"`
	Total       int          `json:"total"`
	Page        int          `json:"page"`
	PerPage     int          `json:"per_page"`
	Pages       int          `json:"pages"`
}

type InternshipDetailResponse struct {
	Internship     Internship `json:"internship"`
	AlreadyApplied bool       `json:"already_applied"`
	DeadlinePassed bool       `json:"deadline_passed"`
}

type DashboardResponse struct {
	Account            Account                     `json:"account"`
	RecentApplications []ApplicationWithInternship `json:"recent_applications"`
	Recommended        []Internship                `json:"recommended"`
}

// InternshipAPI is the fixed field set served by the public /api/internships feed.
type InternshipAPI struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Company             string `json:"company"`
	CompanyType         string `json:"company_type"`
	Location            string `json:"location"`
	Duration            string `json:"duration"`
	Stipend             string `json:"stipend"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	ApplicationDeadline string `json:"application_deadline"`
	Category            string `json:"category"`
}

type StatsResponse struct {
	TotalInternships      int `json:"total_internships"`
	TrustInternships      int `json:"trust_internships"`
	GovernmentInternships int `json:"government_internships"`
	PrivateInternships    int `json:"private_internships"`
}
