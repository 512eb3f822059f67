// SPDX-License-Identifier: Apache-2.0

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, name, email, password_hash, mobile, learning_level, is_admin, risk_score, risk_answers, created_at, updated_at`

const (
	createUser = `INSERT INTO users (name, email, password_hash, mobile)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY user_id;`

	createExperience = `INSERT INTO experiences (user_id, name, role, message)
    VALUES ($1, $2, $3, $4)
    RETURNING experience_id, user_id, name, role, message, created_at;`

	listExperiences = `SELECT experience_id, user_id, name, role, message, created_at
    FROM experiences
    ORDER BY created_at DESC;`
)

// buildUserUpdateQuery builds the dynamic UPDATE statement for a partial
// profile mutation. Only the non-nil fields of patch become SET clauses;
// updated_at is always bumped. The statement returns the full updated row
// so the caller receives the canonical merged record.
func buildUserUpdateQuery(userID int64, patch UserPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrEmptyPatch
	}

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()"))

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Mobile != nil {
		builder = builder.Set("mobile", *patch.Mobile)
	}
	if patch.LearningLevel != nil {
		builder = builder.Set("learning_level", string(*patch.LearningLevel))
	}
	if patch.RiskScore != nil {
		builder = builder.Set("risk_score", *patch.RiskScore)
	}
	if patch.RiskAnswers != nil {
		answers, err := json.Marshal(patch.RiskAnswers)
		if err != nil {
			return "", nil, fmt.Errorf("error marshaling risk answers: %w", err)
		}
		builder = builder.Set("risk_answers", answers)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}

	return builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}
