package http

import (
	"encoding/json"
	"net/http"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/internal/utils"
	"github.com/finlearn/finlearn/models"
)

// riskAssessmentResponse pairs the computed risk profile with the updated
// user record so the frontend can refresh its cached profile in one round
// trip.
type riskAssessmentResponse struct {
	Score int                  `json:"score"`
	Level models.LearningLevel `json:"level"`
	User  models.User          `json:"user"`
}

// riskAssessmentRequest is the payload of POST /api/tools/risk: the chosen
// point value per quiz question id.
type riskAssessmentRequest struct {
	Answers map[string]int `json:"answers"`
}

// writeCalculatorError maps a calculation error to its HTTP status.
// Client-side errors keep their message; anything mapped to 500 is replaced
// with the generic status text so internal details do not leak.
func writeCalculatorError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	writeError(w, message, status)
}

func (h *Handler) projectGrowth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var params finance.ProjectionParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	trajectory, err := h.services.FinanceService.ProjectGrowth(ctx, params)
	if err != nil {
		log.Err(err).Msg("growth projection failed")
		writeCalculatorError(w, err)
		return
	}

	utils.WriteJSON(w, trajectory, http.StatusOK)
}

func (h *Handler) analyzeLoan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request service.LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	analysis, err := h.services.FinanceService.AnalyzeLoan(ctx, request)
	if err != nil {
		log.Err(err).Msg("loan analysis failed")
		writeCalculatorError(w, err)
		return
	}

	utils.WriteJSON(w, analysis, http.StatusOK)
}

func (h *Handler) assessRisk(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request riskAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, user, err := h.services.FinanceService.AssessRisk(ctx, callerID, request.Answers)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("risk assessment failed")
		writeCalculatorError(w, err)
		return
	}

	utils.WriteJSON(w, riskAssessmentResponse{
		Score: profile.Score,
		Level: profile.Level,
		User:  user,
	}, http.StatusOK)
}
