package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both unknown-email and wrong-password
	// login failures so callers cannot distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbidden = errors.New("operation not permitted for this user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
