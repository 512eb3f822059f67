// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	updateUserFn      func(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error)
	listUsersFn       func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{Email: email}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, patch store.UserPatch) (models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, userID, patch)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.ExperienceRepository
// ─────────────────────────────────────────────

type mockExperienceRepository struct {
	createExperienceFn func(ctx context.Context, experience models.Experience) (models.Experience, error)
	listExperiencesFn  func(ctx context.Context) ([]models.Experience, error)
}

func (m *mockExperienceRepository) CreateExperience(ctx context.Context, experience models.Experience) (models.Experience, error) {
	if m.createExperienceFn != nil {
		return m.createExperienceFn(ctx, experience)
	}
	return experience, nil
}

func (m *mockExperienceRepository) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	if m.listExperiencesFn != nil {
		return m.listExperiencesFn(ctx)
	}
	return nil, nil
}
