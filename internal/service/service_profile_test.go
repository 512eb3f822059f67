// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetUser_Owner(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Name: "John"}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	user, err := profiles.GetUser(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
}

func TestGetUser_AdminReadsOtherProfile(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			if userID == 99 {
				return models.User{UserID: 99, IsAdmin: true}, nil
			}
			return models.User{UserID: userID, Name: "John"}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	user, err := profiles.GetUser(context.Background(), 99, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestGetUser_NonOwnerForbidden(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	_, err := profiles.GetUser(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	_, err := profiles.GetUser(context.Background(), 1, 1)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUpdateUser_OwnerOnly_NoAdminOverride(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, IsAdmin: true}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	name := "Intruder"
	_, err := profiles.UpdateUser(context.Background(), 99, 1, models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateUser_PartialMerge(t *testing.T) {
	var applied store.UserPatch
	repo := &mockUserRepository{
		updateUserFn: func(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error) {
			applied = patch
			return models.User{UserID: userID, Mobile: *patch.Mobile}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	mobile := "555-0101"
	updated, err := profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Mobile: &mobile})
	require.NoError(t, err)

	assert.Equal(t, mobile, updated.Mobile)
	assert.Nil(t, applied.Name)
	assert.Nil(t, applied.Email)
	assert.Nil(t, applied.PasswordHash)
}

func TestUpdateUser_EmailNormalized(t *testing.T) {
	var applied store.UserPatch
	repo := &mockUserRepository{
		updateUserFn: func(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error) {
			applied = patch
			return models.User{UserID: userID, Email: *patch.Email}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	email := "New@Example.COM"
	_, err := profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Email: &email})
	require.NoError(t, err)
	require.NotNil(t, applied.Email)
	assert.Equal(t, "new@example.com", *applied.Email)
}

func TestUpdateUser_PasswordRehashed(t *testing.T) {
	var applied store.UserPatch
	repo := &mockUserRepository{
		updateUserFn: func(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error) {
			applied = patch
			return models.User{UserID: userID}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	password := "new-s3cret"
	_, err := profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Password: &password})
	require.NoError(t, err)
	require.NotNil(t, applied.PasswordHash)
	assert.NotEqual(t, password, *applied.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*applied.PasswordHash), []byte(password)))
}

func TestUpdateUser_InvalidInput(t *testing.T) {
	profiles := NewProfileService(&mockUserRepository{}, logger.Nop())

	_, err := profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	bogus := models.LearningLevel("Expert")
	_, err = profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{LearningLevel: &bogus})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	empty := ""
	_, err = profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Email: &empty})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Password: &empty})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateUser_EmailCollision(t *testing.T) {
	repo := &mockUserRepository{
		updateUserFn: func(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	email := "taken@example.com"
	_, err := profiles.UpdateUser(context.Background(), 1, 1, models.UserUpdate{Email: &email})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestListUsers_AdminOnly(t *testing.T) {
	repo := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, IsAdmin: userID == 99}, nil
		},
		listUsersFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{UserID: 1}, {UserID: 99}}, nil
		},
	}
	profiles := NewProfileService(repo, logger.Nop())

	users, err := profiles.ListUsers(context.Background(), 99)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = profiles.ListUsers(context.Background(), 1)
	assert.ErrorIs(t, err, ErrForbidden)
}
