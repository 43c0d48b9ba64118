package store

import "github.com/MKhiriev/climate-scenarios/internal/logger"

// Repositories bundles every repository built on one pool.
type Repositories struct {
	UserRepository      UserRepository
	ScenarioRepository  ScenarioRepository
	ReferenceRepository ReferenceRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db, logger),
		ScenarioRepository:  NewScenarioRepository(db, logger),
		ReferenceRepository: NewReferenceRepository(db, logger),
	}
}
