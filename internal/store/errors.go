package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEmptyPatch is returned when an update is requested with no fields
	// to apply. Issuing such an UPDATE would still bump updated_at, so it
	// is rejected instead.
	ErrEmptyPatch = errors.New("no fields to update")

	// ErrExperienceNotSaved is returned when an INSERT of a community post
	// completes without error but no row was actually persisted.
	ErrExperienceNotSaved = errors.New("experience was not saved")
)
