package http

import (
	"errors"
	"net/http"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	finance.ErrInvalidParameter: http.StatusBadRequest,
	finance.ErrDidNotConverge:   http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmptyPatch:         http.StatusBadRequest,
	store.ErrExperienceNotSaved: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
