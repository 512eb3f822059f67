package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/utils"
	"github.com/finlearn/finlearn/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.ProfileService.GetUser(ctx, callerID, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile read failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id in path")
		writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.ProfileService.UpdateUser(ctx, callerID, userID, update)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("profile update failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	users, err := h.services.ProfileService.ListUsers(ctx, callerID)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	if users == nil {
		users = []models.User{}
	}
	utils.WriteJSON(w, users, http.StatusOK)
}
