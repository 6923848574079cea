package models

import (
	"time"
)

type Application struct {
	ID           string    `json:"id" db:"id"`
	AccountID    string    `json:"account_id" db:"account_id"`
	InternshipID string    `json:"internship_id" db:"internship_id"`
	Status       string    `json:"status" db:"status"` // pending, accepted, rejected
	CoverLetter  string    `json:"cover_letter,omitempty" db:"cover_letter"`
	AppliedAt    time.Time `json:"applied_at" db:"applied_at"`
}

type ApplicationWithInternship struct {
	Application
	InternshipTitle   string `json:"internship_title" db:"internship_title"`
	InternshipCompany string `json:"internship_company" db:"internship_company"`
}

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (as ApplicationStatus) String() string {
	return string(as)
}
