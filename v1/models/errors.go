package models

import "errors"

var (
	// ErrValidation wraps all request validation failures
	ErrValidation = errors.New("validation failed")

	// ErrInvitationNotFound is returned when an invitation id does not exist
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrVisitorRequestNotFound is returned when a visitor request id does not exist
	ErrVisitorRequestNotFound = errors.New("visitor request not found")
)
