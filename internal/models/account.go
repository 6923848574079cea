package models

import (
	"time"
)

type Account struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Mobile         string    `json:"mobile" db:"mobile"`
	EducationLevel string    `json:"education_level" db:"education_level"`
	FieldOfStudy   string    `json:"field_of_study" db:"field_of_study"`
	University     string    `json:"university" db:"university"`
	GraduationYear int       `json:"graduation_year" db:"graduation_year"`
	Skills         string    `json:"skills" db:"skills"`
	ResumeURL      string    `json:"resume_url,omitempty" db:"resume_url"`
	AadharNumber   string    `json:"-" db:"aadhar_number"`
	AadharVerified bool      `json:"aadhar_verified" db:"aadhar_verified"`
	IsVerified     bool      `json:"is_verified" db:"is_verified"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
