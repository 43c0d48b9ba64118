package service

import (
	"fmt"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/internal/validators"
)

type Services struct {
	AuthService     AuthService
	ScenarioService ScenarioService
	ItemService     ItemService
	AppInfoService  AppInfoService
}

// NewServices builds every service on top of repos and wraps the ones that
// accept client input with request validation.
func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(repos.UserRepository, cfg.App, logger)),
		ScenarioService: NewScenarioValidationService(validator).
			Wrap(NewScenarioService(repos.ScenarioRepository, repos.ReferenceRepository, logger)),
		ItemService: NewItemValidationService(validator).
			Wrap(NewItemService(logger)),
		AppInfoService: appInfo,
	}, nil
}
