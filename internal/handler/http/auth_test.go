// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/internal/store"
	"github.com/finlearn/finlearn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Name: request.Name, Email: request.Email}, nil
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	body := `{"name":"John","email":"john@example.com","password":"s3cret"}`
	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response models.AuthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "signed.jwt.token", response.Token)
	assert.Equal(t, int64(1), response.User.UserID)
}

func TestRegister_ResponseOmitsPasswordHash(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Email: request.Email, PasswordHash: "$2a$10$hash"}, nil
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	body := `{"name":"John","email":"john@example.com","password":"s3cret"}`
	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "$2a$10$hash")
	assert.NotContains(t, recorder.Body.String(), "s3cret")
}

func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	body := `{"name":"John","email":"taken@example.com","password":"s3cret"}`
	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	handler := newTestHandler(&service.Services{AuthService: &mockAuthService{}})
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	request := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"email":"john@example.com"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{UserID: 7, Email: request.Email}, nil
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	body := `{"email":"john@example.com","password":"s3cret"}`
	request := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.AuthResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, int64(7), response.User.UserID)
	assert.NotEmpty(t, response.Token)
}

func TestLogin_BadCredentialsGenericMessage(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	handler := newTestHandler(&service.Services{AuthService: auth})
	router := handler.Init()

	body := `{"email":"ghost@example.com","password":"wrong"}`
	request := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var response models.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "invalid email or password", response.Message)
	assert.NotContains(t, response.Message, "ghost@example.com")
}
