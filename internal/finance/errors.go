package finance

import "errors"

// Sentinel errors returned by the calculation engine. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidParameter is returned when a numeric input is malformed or
	// out of range (negative projection horizon, non-positive principal or
	// term, negative rate, and so on). No partial output is produced.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDidNotConverge is returned when the amortization loop exhausts its
	// safety iteration cap without driving the balance to zero. This is a
	// reportable condition, not a silent truncation.
	ErrDidNotConverge = errors.New("amortization did not converge")
)
