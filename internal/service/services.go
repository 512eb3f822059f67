package service

import (
	"github.com/finlearn/finlearn/internal/config"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	ExperienceService ExperienceService
	FinanceService    FinanceService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService:    NewProfileService(storages.UserRepository, logger),
		ExperienceService: NewExperienceService(storages.ExperienceRepository, storages.UserRepository, logger),
		FinanceService:    NewFinanceService(storages.UserRepository, logger),
	}
}
