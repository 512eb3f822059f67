package http

import (
	"encoding/json"
	"net/http"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/utils"
	"github.com/finlearn/finlearn/models"
)

func (h *Handler) createExperience(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.ExperienceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	experience, err := h.services.ExperienceService.CreateExperience(ctx, callerID, request)
	if err != nil {
		log.Err(err).Int64("callerID", callerID).Msg("experience creation failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, experience, http.StatusCreated)
}

func (h *Handler) listExperiences(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	experiences, err := h.services.ExperienceService.ListExperiences(ctx)
	if err != nil {
		log.Err(err).Msg("experience listing failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if experiences == nil {
		experiences = []models.Experience{}
	}
	utils.WriteJSON(w, experiences, http.StatusOK)
}
