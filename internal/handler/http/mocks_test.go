// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{SignedString: tokenString, UserID: 1}, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	getUserFn    func(ctx context.Context, callerID, userID int64) (models.User, error)
	updateUserFn func(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error)
	listUsersFn  func(ctx context.Context, callerID int64) ([]models.User, error)
}

func (m *mockProfileService) GetUser(ctx context.Context, callerID, userID int64) (models.User, error) {
	return m.getUserFn(ctx, callerID, userID)
}

func (m *mockProfileService) UpdateUser(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, callerID, userID, update)
}

func (m *mockProfileService) ListUsers(ctx context.Context, callerID int64) ([]models.User, error) {
	return m.listUsersFn(ctx, callerID)
}

// ─────────────────────────────────────────────
// Mock: service.ExperienceService
// ─────────────────────────────────────────────

type mockExperienceService struct {
	createExperienceFn func(ctx context.Context, callerID int64, request models.ExperienceCreateRequest) (models.Experience, error)
	listExperiencesFn  func(ctx context.Context) ([]models.Experience, error)
}

func (m *mockExperienceService) CreateExperience(ctx context.Context, callerID int64, request models.ExperienceCreateRequest) (models.Experience, error) {
	return m.createExperienceFn(ctx, callerID, request)
}

func (m *mockExperienceService) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	return m.listExperiencesFn(ctx)
}

// ─────────────────────────────────────────────
// Mock: service.FinanceService
// ─────────────────────────────────────────────

type mockFinanceService struct {
	projectGrowthFn func(ctx context.Context, params finance.ProjectionParams) (finance.GrowthTrajectory, error)
	analyzeLoanFn   func(ctx context.Context, request service.LoanRequest) (service.LoanAnalysis, error)
	assessRiskFn    func(ctx context.Context, callerID int64, answers map[string]int) (finance.RiskProfile, models.User, error)
}

func (m *mockFinanceService) ProjectGrowth(ctx context.Context, params finance.ProjectionParams) (finance.GrowthTrajectory, error) {
	return m.projectGrowthFn(ctx, params)
}

func (m *mockFinanceService) AnalyzeLoan(ctx context.Context, request service.LoanRequest) (service.LoanAnalysis, error) {
	return m.analyzeLoanFn(ctx, request)
}

func (m *mockFinanceService) AssessRisk(ctx context.Context, callerID int64, answers map[string]int) (finance.RiskProfile, models.User, error) {
	return m.assessRiskFn(ctx, callerID, answers)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are left nil; tests must only exercise routes backed by non-nil services.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, logger.Nop())
}
