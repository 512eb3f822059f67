package service

import (
	"context"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService exposes per-user profile state with ownership enforcement:
// callerID identifies the authenticated principal on whose behalf the
// operation runs.
type ProfileService interface {
	GetUser(ctx context.Context, callerID, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, callerID, userID int64, update models.UserUpdate) (models.User, error)
	ListUsers(ctx context.Context, callerID int64) ([]models.User, error)
}

// ExperienceService manages the community feed of shared experiences.
type ExperienceService interface {
	CreateExperience(ctx context.Context, callerID int64, request models.ExperienceCreateRequest) (models.Experience, error)
	ListExperiences(ctx context.Context) ([]models.Experience, error)
}

// FinanceService fronts the pure calculation engine and, for risk
// assessments, persists the outcome onto the caller's profile.
type FinanceService interface {
	ProjectGrowth(ctx context.Context, params finance.ProjectionParams) (finance.GrowthTrajectory, error)
	AnalyzeLoan(ctx context.Context, request LoanRequest) (LoanAnalysis, error)
	AssessRisk(ctx context.Context, callerID int64, answers map[string]int) (finance.RiskProfile, models.User, error)
}
