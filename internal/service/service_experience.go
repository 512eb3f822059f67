// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
)

// defaultExperienceRole labels posts whose author did not pick a role.
const defaultExperienceRole = "Member"

// experienceService is the concrete implementation of ExperienceService.
// Posts carry a denormalized author name so the feed can be served without
// joining the users table.
type experienceService struct {
	experienceRepository store.ExperienceRepository
	userRepository       store.UserRepository
	logger               *logger.Logger
}

// NewExperienceService constructs an ExperienceService wired to the given
// repositories.
func NewExperienceService(experienceRepository store.ExperienceRepository, userRepository store.UserRepository, logger *logger.Logger) ExperienceService {
	return &experienceService{
		experienceRepository: experienceRepository,
		userRepository:       userRepository,
		logger:               logger,
	}
}

// CreateExperience posts a new shared experience on behalf of callerID.
//
// The author's display name is copied from the user record at post time.
// An empty Role defaults to "Member".
//
// Returns the persisted post or:
//   - ErrInvalidDataProvided if Message is empty.
//   - A wrapped storage error on repository failure.
func (e *experienceService) CreateExperience(ctx context.Context, callerID int64, request models.ExperienceCreateRequest) (models.Experience, error) {
	log := logger.FromContext(ctx)

	if request.Message == "" {
		log.Error().Int64("callerID", callerID).Msg("empty experience message")
		return models.Experience{}, ErrInvalidDataProvided
	}

	author, err := e.userRepository.FindUserByID(ctx, callerID)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("author lookup failed")
		return models.Experience{}, fmt.Errorf("author lookup failed: %w", err)
	}

	role := request.Role
	if role == "" {
		role = defaultExperienceRole
	}

	experience := models.Experience{
		UserID:  author.UserID,
		Name:    author.Name,
		Role:    role,
		Message: request.Message,
	}

	saved, err := e.experienceRepository.CreateExperience(ctx, experience)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("experience creation ended with error")
		return models.Experience{}, fmt.Errorf("experience creation ended with error: %w", err)
	}

	return saved, nil
}

// ListExperiences returns the community feed, newest first. The feed is
// public; no caller identity is required.
func (e *experienceService) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	log := logger.FromContext(ctx)

	experiences, err := e.experienceRepository.ListExperiences(ctx)
	if err != nil {
		log.Err(err).Msg("experience listing ended with error")
		return nil, fmt.Errorf("experience listing ended with error: %w", err)
	}

	return experiences, nil
}
