// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/models"
	"github.com/go-resty/resty/v2"
)

// RiskAssessment is the response of POST /api/tools/risk: the computed score
// and level, plus the updated user record.
type RiskAssessment struct {
	Score int                  `json:"score"`
	Level models.LearningLevel `json:"level"`
	User  models.User          `json:"user"`
}

// Client is a typed HTTP client for the finlearn REST API. It holds the
// bearer token of the current session; Register and Login store it
// automatically, so subsequent authenticated calls need no extra setup.
//
// Client is not safe for concurrent use: the token field is mutated by
// Register, Login and SetToken.
type Client struct {
	client *resty.Client

	token string

	logger *logger.Logger
}

// New constructs a Client for the API server at baseURL. The URL may omit
// the scheme, in which case "http://" is assumed.
func New(baseURL string, requestTimeout time.Duration, logger *logger.Logger) (*Client, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	restyClient := resty.New().
		SetBaseURL(normalized).
		SetTimeout(requestTimeout)

	return &Client{client: restyClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently held by the client, or an empty
// string if none has been set.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	return req
}

// Register creates a new account and stores the issued session token.
func (c *Client) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var response models.AuthResponse

	resp, err := c.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(response.Token)
	return response.User, nil
}

// Login authenticates an existing account and stores the issued session token.
func (c *Client) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	var response models.AuthResponse

	resp, err := c.request(ctx).
		SetBody(request).
		SetResult(&response).
		Post("/api/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	c.SetToken(response.Token)
	return response.User, nil
}

// GetUser fetches the profile with the given id.
func (c *Client) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User

	resp, err := c.request(ctx).
		SetResult(&user).
		Get("/api/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser applies a partial profile mutation and returns the merged record.
func (c *Client) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	var user models.User

	resp, err := c.request(ctx).
		SetBody(update).
		SetResult(&user).
		Patch("/api/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListUsers fetches all profiles. Requires an admin session.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := c.request(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateExperience posts a shared experience on behalf of the current session.
func (c *Client) CreateExperience(ctx context.Context, request models.ExperienceCreateRequest) (models.Experience, error) {
	var experience models.Experience

	resp, err := c.request(ctx).
		SetBody(request).
		SetResult(&experience).
		Post("/api/experiences")
	if err != nil {
		return models.Experience{}, fmt.Errorf("create experience request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Experience{}, err
	}

	return experience, nil
}

// ListExperiences fetches the public community feed, newest first.
func (c *Client) ListExperiences(ctx context.Context) ([]models.Experience, error) {
	var experiences []models.Experience

	resp, err := c.request(ctx).
		SetResult(&experiences).
		Get("/api/experiences")
	if err != nil {
		return nil, fmt.Errorf("list experiences request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return experiences, nil
}

// ProjectGrowth runs the compound-growth calculator.
func (c *Client) ProjectGrowth(ctx context.Context, params finance.ProjectionParams) (finance.GrowthTrajectory, error) {
	var trajectory finance.GrowthTrajectory

	resp, err := c.request(ctx).
		SetBody(params).
		SetResult(&trajectory).
		Post("/api/tools/growth")
	if err != nil {
		return finance.GrowthTrajectory{}, fmt.Errorf("growth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return finance.GrowthTrajectory{}, err
	}

	return trajectory, nil
}

// AnalyzeLoan runs the loan calculator.
func (c *Client) AnalyzeLoan(ctx context.Context, request service.LoanRequest) (service.LoanAnalysis, error) {
	var analysis service.LoanAnalysis

	resp, err := c.request(ctx).
		SetBody(request).
		SetResult(&analysis).
		Post("/api/tools/loan")
	if err != nil {
		return service.LoanAnalysis{}, fmt.Errorf("loan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return service.LoanAnalysis{}, err
	}

	return analysis, nil
}

// AssessRisk submits risk quiz answers and returns the stored assessment.
func (c *Client) AssessRisk(ctx context.Context, answers map[string]int) (RiskAssessment, error) {
	var assessment RiskAssessment

	resp, err := c.request(ctx).
		SetBody(map[string]map[string]int{"answers": answers}).
		SetResult(&assessment).
		Post("/api/tools/risk")
	if err != nil {
		return RiskAssessment{}, fmt.Errorf("risk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return RiskAssessment{}, err
	}

	return assessment, nil
}
