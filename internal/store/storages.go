package store

import "github.com/finlearn/finlearn/internal/logger"

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository       UserRepository
	ExperienceRepository ExperienceRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		ExperienceRepository: NewExperienceRepository(db, logger),
	}
}
