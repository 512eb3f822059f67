package models

// RegisterRequest is the payload of POST /api/register.
type RegisterRequest struct {
	// Name is the display name for the new account. Required.
	Name string `json:"name"`

	// Email uniquely identifies the account. Required.
	Email string `json:"email"`

	// Password is the plaintext secret supplied at registration.
	// It is hashed before any persistence and never stored or logged.
	Password string `json:"password"`

	// Mobile is an optional contact phone number.
	Mobile string `json:"mobile,omitempty"`
}

// LoginRequest is the payload of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate describes a partial profile mutation for PATCH /api/users/{id}.
// Only non-nil fields are applied; everything else is left untouched
// (last-writer-wins per-field merge).
type UserUpdate struct {
	// Name, if set, replaces the display name.
	Name *string `json:"name,omitempty"`

	// Email, if set, replaces the account email. Normalized to lowercase.
	Email *string `json:"email,omitempty"`

	// Mobile, if set, replaces the contact phone number.
	Mobile *string `json:"mobile,omitempty"`

	// LearningLevel, if set, replaces the content tier.
	// Must be one of Beginner, Intermediate, Advanced.
	LearningLevel *LearningLevel `json:"learningLevel,omitempty"`

	// RiskScore, if set, replaces the stored risk score.
	RiskScore *int `json:"riskScore,omitempty"`

	// RiskAnswers, if non-nil, replaces the stored quiz answers wholesale.
	RiskAnswers map[string]int `json:"riskAnswers,omitempty"`

	// Password, if set, is re-hashed and replaces the stored credential.
	Password *string `json:"password,omitempty"`
}

// IsEmpty reports whether the update carries no fields to apply.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Mobile == nil &&
		u.LearningLevel == nil && u.RiskScore == nil &&
		u.RiskAnswers == nil && u.Password == nil
}

// ExperienceCreateRequest is the payload of POST /api/experiences.
type ExperienceCreateRequest struct {
	// Message is the body of the post. Required.
	Message string `json:"message"`

	// Role is an optional label shown next to the author's name.
	Role string `json:"role,omitempty"`
}
