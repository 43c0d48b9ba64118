package service

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
)

const healthStatusOK = "ok"

type appInfoService struct {
	appVersion string
	appName    string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		appName:    cfg.Name,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health reports liveness only; it never touches the database.
func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:  healthStatusOK,
		Version: s.appVersion,
		Name:    s.appName,
	}
}
