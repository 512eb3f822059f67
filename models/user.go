package models

import "time"

// LearningLevel is the discrete investor-sophistication tier assigned to a
// user. It drives which learning content the frontend shows.
type LearningLevel string

const (
	LevelBeginner     LearningLevel = "Beginner"
	LevelIntermediate LearningLevel = "Intermediate"
	LevelAdvanced     LearningLevel = "Advanced"
)

// Valid reports whether l is one of the three known learning levels.
func (l LearningLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// User represents an account entity used for authentication, authorization
// and per-user learning state. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique identifier used during authentication.
	// It is normalized to lowercase before storage and lookup.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived hash, never plaintext.
	// It is not exposed via JSON and is used only for authentication.
	PasswordHash string `json:"-"`

	// Mobile is an optional contact phone number.
	Mobile string `json:"mobile,omitempty"`

	// LearningLevel is the user's current content tier.
	// Defaults to Beginner on registration.
	LearningLevel LearningLevel `json:"learningLevel"`

	// IsAdmin gates the list-all-users read operation.
	// It grants no right to mutate other users' profiles.
	IsAdmin bool `json:"isAdmin"`

	// RiskScore is the total of the user's risk-quiz answer points.
	// Nil until the user completes the onboarding quiz.
	RiskScore *int `json:"riskScore,omitempty"`

	// RiskAnswers maps quiz question id to the chosen option's point value.
	// Nil until the user completes the onboarding quiz.
	RiskAnswers map[string]int `json:"riskAnswers,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
