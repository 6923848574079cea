package service

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAlreadyApplied     = errors.New("already applied for this internship")
	ErrDeadlinePassed     = errors.New("application deadline has passed")
	ErrInvalidAadhar      = errors.New("invalid aadhar number")
	ErrInvalidInput       = errors.New("invalid input")
)
