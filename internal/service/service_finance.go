// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
)

// LoanRequest carries the parameters of a loan analysis.
type LoanRequest struct {
	// Principal is the amount borrowed. Must be positive.
	Principal float64 `json:"principal"`

	// AnnualRatePercent is the nominal annual interest rate in percent
	// (e.g. 9.5). Must be non-negative.
	AnnualRatePercent float64 `json:"annualRatePercent"`

	// TermYears is the repayment term in whole years. Must be positive.
	TermYears int `json:"termYears"`

	// ExtraMonthly, when positive, requests an accelerated-payoff
	// comparison on top of the standard amortization.
	ExtraMonthly float64 `json:"extraMonthly,omitempty"`

	// IncludeSchedule requests the month-by-month repayment trace in the
	// response. Off by default to keep payloads small.
	IncludeSchedule bool `json:"includeSchedule,omitempty"`
}

// LoanAnalysis is the result of a loan analysis: the standard amortization
// run, plus an accelerated comparison when an extra payment was requested.
type LoanAnalysis struct {
	Standard finance.AmortizationResult `json:"standard"`

	// Comparison is present only when the request carried a positive
	// ExtraMonthly.
	Comparison *finance.PayoffComparison `json:"comparison,omitempty"`
}

// financeService fronts the pure calculation engine. Growth and loan
// calculations are stateless pass-throughs; risk assessment additionally
// persists its outcome onto the caller's profile.
type financeService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewFinanceService constructs a FinanceService. The UserRepository is used
// only by AssessRisk to record quiz outcomes.
func NewFinanceService(userRepository store.UserRepository, logger *logger.Logger) FinanceService {
	return &financeService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ProjectGrowth computes a compound-growth trajectory. Stateless; parameter
// errors from the engine (finance.ErrInvalidParameter) pass through.
func (f *financeService) ProjectGrowth(ctx context.Context, params finance.ProjectionParams) (finance.GrowthTrajectory, error) {
	log := logger.FromContext(ctx)

	trajectory, err := finance.Project(params)
	if err != nil {
		log.Error().Err(err).Msg("growth projection rejected")
		return finance.GrowthTrajectory{}, err
	}

	return trajectory, nil
}

// AnalyzeLoan runs a standard amortization and, when the request carries a
// positive ExtraMonthly, an accelerated-payoff comparison. Engine errors
// (finance.ErrInvalidParameter, finance.ErrDidNotConverge) pass through.
func (f *financeService) AnalyzeLoan(ctx context.Context, request LoanRequest) (LoanAnalysis, error) {
	log := logger.FromContext(ctx)

	standard, err := finance.Amortize(request.Principal, request.AnnualRatePercent, request.TermYears, 0)
	if err != nil {
		log.Error().Err(err).Msg("loan analysis rejected")
		return LoanAnalysis{}, err
	}

	analysis := LoanAnalysis{Standard: standard}

	if request.ExtraMonthly > 0 {
		comparison, err := finance.ComparePayoff(request.Principal, request.AnnualRatePercent, request.TermYears, request.ExtraMonthly)
		if err != nil {
			log.Error().Err(err).Msg("payoff comparison rejected")
			return LoanAnalysis{}, err
		}
		analysis.Comparison = &comparison
	}

	if !request.IncludeSchedule {
		analysis.Standard.Schedule = nil
		if analysis.Comparison != nil {
			analysis.Comparison.Standard.Schedule = nil
			analysis.Comparison.Accelerated.Schedule = nil
		}
	}

	return analysis, nil
}

// AssessRisk scores a completed risk quiz and records the outcome on the
// caller's profile: risk score, the raw answers, and the learning level the
// score classifies into.
//
// The answer set must cover every quiz question with a point value that one
// of that question's options actually carries; anything else is rejected
// with ErrInvalidDataProvided before any state changes.
//
// Returns the computed profile together with the updated user record.
func (f *financeService) AssessRisk(ctx context.Context, callerID int64, answers map[string]int) (finance.RiskProfile, models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRiskAnswers(answers); err != nil {
		log.Error().Err(err).Int64("callerID", callerID).Msg("risk answers rejected")
		return finance.RiskProfile{}, models.User{}, err
	}

	profile := finance.ScoreRisk(answers)

	level := profile.Level
	score := profile.Score
	patch := store.UserPatch{
		LearningLevel: &level,
		RiskScore:     &score,
		RiskAnswers:   answers,
	}

	updatedUser, err := f.userRepository.UpdateUser(ctx, callerID, patch)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("risk assessment persistence failed")
		return finance.RiskProfile{}, models.User{}, fmt.Errorf("risk assessment persistence failed: %w", err)
	}

	return profile, updatedUser, nil
}

// validateRiskAnswers checks a submitted answer set against the quiz
// catalog: every question answered, no unknown question ids, and each point
// value offered by one of the question's options.
func validateRiskAnswers(answers map[string]int) error {
	if len(answers) != len(finance.Quiz) {
		return fmt.Errorf("%w: expected answers to %d questions, got %d", ErrInvalidDataProvided, len(finance.Quiz), len(answers))
	}

	for _, question := range finance.Quiz {
		points, ok := answers[question.ID]
		if !ok {
			return fmt.Errorf("%w: missing answer for question %q", ErrInvalidDataProvided, question.ID)
		}

		valid := false
		for _, option := range question.Options {
			if option.Points == points {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: no option of question %q is worth %d points", ErrInvalidDataProvided, question.ID, points)
		}
	}

	return nil
}
