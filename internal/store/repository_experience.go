// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/models"
)

// experienceRepository is the PostgreSQL-backed implementation of
// [ExperienceRepository]. Shared experiences are append-only; there is no
// update or delete path.
type experienceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExperienceRepository constructs an [ExperienceRepository] backed by the
// provided database connection and logger.
func NewExperienceRepository(db *DB, logger *logger.Logger) ExperienceRepository {
	logger.Debug().Msg("creating experience repository")
	return &experienceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateExperience persists a new shared experience and returns the record
// with server-assigned fields (ExperienceID, CreatedAt).
func (r *experienceRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createExperience, experience.UserID, experience.Name, experience.Role, experience.Message)

	// create experience in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("error: row is nil")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExperienceNotSaved, err)
	}

	// scan saved experience from db
	var saved models.Experience
	if err := row.Scan(&saved.ExperienceID, &saved.UserID, &saved.Name, &saved.Role, &saved.Message, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*experienceRepository.CreateExperience").Msg("error: scanning error")
		return models.Experience{}, fmt.Errorf("%w: %w", ErrExperienceNotSaved, err)
	}

	return saved, nil
}

// ListExperiences returns all shared experiences, newest first.
func (r *experienceRepository) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listExperiences)
	if err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var experiences []models.Experience
	for rows.Next() {
		var experience models.Experience
		if err := rows.Scan(&experience.ExperienceID, &experience.UserID, &experience.Name, &experience.Role, &experience.Message, &experience.CreatedAt); err != nil {
			log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error: scanning error")
			return nil, err
		}
		experiences = append(experiences, experience)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*experienceRepository.ListExperiences").Msg("error: rows iteration error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return experiences, nil
}
