package models

type ApplicationSubmittedEvent struct {
	ApplicationID string `json:"application_id"`
	AccountID     string `json:"account_id"`
	InternshipID  string `json:"internship_id"`
	Timestamp     int64  `json:"timestamp"`
}
