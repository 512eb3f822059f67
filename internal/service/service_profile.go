// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
	"golang.org/x/crypto/bcrypt"
)

// profileService is the concrete implementation of ProfileService. It wraps
// the UserRepository with ownership checks: a profile belongs to exactly one
// user, and only that user (or, for reads, an admin) may touch it.
type profileService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// UserRepository.
func NewProfileService(userRepository store.UserRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the profile identified by userID.
//
// Access rule: the caller must either be the profile's owner or an admin.
// The ownership check runs before the lookup result is returned, so a
// non-owner receives ErrForbidden rather than learning whether the profile
// exists.
func (p *profileService) GetUser(ctx context.Context, callerID, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != userID {
		caller, err := p.userRepository.FindUserByID(ctx, callerID)
		if err != nil {
			log.Err(err).Int64("callerID", callerID).Msg("caller lookup failed")
			return models.User{}, fmt.Errorf("caller lookup failed: %w", err)
		}
		if !caller.IsAdmin {
			log.Warn().Int64("callerID", callerID).Int64("userID", userID).Msg("profile read denied")
			return models.User{}, ErrForbidden
		}
	}

	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial profile mutation.
//
// Access rule: owner only. Admins have no override here; profile state is
// personal and only its owner may change it.
//
// Field semantics:
//   - Email is normalized to lowercase before persistence.
//   - LearningLevel must be one of the known tiers.
//   - Password is bcrypt-hashed; the plaintext never reaches the repository.
//   - All other fields are passed through as-is (last writer wins per field).
//
// Returns the merged profile or:
//   - ErrForbidden when callerID != userID.
//   - ErrInvalidDataProvided for an empty update or an unknown learning level.
//   - A wrapped storage error on repository failure (e.g. email collision —
//     see store.ErrEmailAlreadyExists).
func (p *profileService) UpdateUser(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != userID {
		log.Warn().Int64("callerID", callerID).Int64("userID", userID).Msg("profile update denied")
		return models.User{}, ErrForbidden
	}

	if update.IsEmpty() {
		log.Error().Int64("userID", userID).Msg("empty profile update")
		return models.User{}, ErrInvalidDataProvided
	}
	if update.LearningLevel != nil && !update.LearningLevel.Valid() {
		log.Error().Str("learningLevel", string(*update.LearningLevel)).Msg("unknown learning level")
		return models.User{}, ErrInvalidDataProvided
	}

	patch := store.UserPatch{
		Name:          update.Name,
		Mobile:        update.Mobile,
		LearningLevel: update.LearningLevel,
		RiskScore:     update.RiskScore,
		RiskAnswers:   update.RiskAnswers,
	}
	if update.Email != nil {
		if *update.Email == "" {
			log.Error().Int64("userID", userID).Msg("empty email in profile update")
			return models.User{}, ErrInvalidDataProvided
		}
		email := normalizeEmail(*update.Email)
		patch.Email = &email
	}
	if update.Password != nil {
		if *update.Password == "" {
			log.Error().Int64("userID", userID).Msg("empty password in profile update")
			return models.User{}, ErrInvalidDataProvided
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		hash := string(passwordHash)
		patch.PasswordHash = &hash
	}

	updatedUser, err := p.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// ListUsers returns all profiles. Admin only.
func (p *profileService) ListUsers(ctx context.Context, callerID int64) ([]models.User, error) {
	log := logger.FromContext(ctx)

	caller, err := p.userRepository.FindUserByID(ctx, callerID)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("caller lookup failed")
		return nil, fmt.Errorf("caller lookup failed: %w", err)
	}
	if !caller.IsAdmin {
		log.Warn().Int64("callerID", callerID).Msg("user listing denied")
		return nil, ErrForbidden
	}

	users, err := p.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}
