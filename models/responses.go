package models

// AuthResponse is returned by the register and login endpoints. It carries
// the issued session token together with the profile fields the frontend
// needs immediately after authentication.
type AuthResponse struct {
	// Token is the compact JWS the client must present as
	// "Authorization: Bearer <token>" on protected routes.
	Token string `json:"token"`

	// User is the public view of the authenticated account.
	User User `json:"user"`

	// Message is a short human-readable status string.
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform JSON error body used by all endpoints.
// The message is intentionally generic for authentication failures so that
// the response does not reveal whether the email or the password was wrong.
type ErrorResponse struct {
	Message string `json:"message"`
}
