package store

import (
	"context"

	"github.com/finlearn/finlearn/models"
)

// UserRepository is the persistence contract for user profile records.
// It is the only component allowed to touch the users table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateUser applies a last-writer-wins per-field merge: only the
	// non-nil fields of patch are written, everything else is untouched.
	UpdateUser(ctx context.Context, userID int64, patch UserPatch) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
}

// ExperienceRepository is the persistence contract for community wall posts.
type ExperienceRepository interface {
	CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error)
	ListExperiences(ctx context.Context) ([]models.Experience, error)
}

// UserPatch carries a partial profile mutation down to the store. Only
// non-nil fields are included in the generated UPDATE statement.
//
// The credential travels here already hashed; the store never sees a
// plaintext password.
type UserPatch struct {
	Name          *string
	Email         *string
	Mobile        *string
	LearningLevel *models.LearningLevel
	RiskScore     *int
	RiskAnswers   map[string]int
	PasswordHash  *string
}

// IsEmpty reports whether the patch carries no fields to apply.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Mobile == nil &&
		p.LearningLevel == nil && p.RiskScore == nil &&
		p.RiskAnswers == nil && p.PasswordHash == nil
}
