package http

import (
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/service"
)

const defaultAPIPrefix = "/api"

type Handler struct {
	services *service.Services

	apiPrefix      string
	requestTimeout time.Duration
	allowedOrigins []string
	corsMaxAge     int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("api_prefix", cfg.APIPrefix).Msg("http handler created")

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = defaultAPIPrefix
	}

	return &Handler{
		services:       services,
		apiPrefix:      prefix,
		requestTimeout: cfg.RequestTimeout,
		allowedOrigins: cfg.AllowedOrigins,
		corsMaxAge:     cfg.CORSMaxAge,
		logger:         logger,
	}
}
