package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/handler"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/server"
	"github.com/MKhiriev/climate-scenarios/internal/service"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("climate-scenarios-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("climate-scenarios-server", cfg.App.LogLevel)
	cfg.App.Version = buildInfo.VersionOr(cfg.App.Version)

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("api_prefix", cfg.Server.APIPrefix).
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Int("max_conns", cfg.Storage.DB.MaxConns).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.SkipMigrations {
		log.Info().Msg("database migrations skipped")
	} else if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
