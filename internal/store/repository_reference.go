package store

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
)

// referenceRepository reads the lookup tables behind the listing filters.
type referenceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *referenceRepository) ListPublishers(ctx context.Context) ([]models.Publisher, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListPublishers", listPublishers, scanPublisher)
}

func (r *referenceRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListRegions", listRegions, scanRegion)
}

func (r *referenceRepository) ListStakeholders(ctx context.Context) ([]models.Stakeholder, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListStakeholders", listStakeholders, scanStakeholder)
}

func (r *referenceRepository) ListSectors(ctx context.Context) ([]models.Sector, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListSectors", listSectors, scanSector)
}

func (r *referenceRepository) ListScenarioTypes(ctx context.Context) ([]string, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListScenarioTypes", listScenarioTypes, scanString)
}

func (r *referenceRepository) ListTemperatureTargets(ctx context.Context) ([]string, error) {
	return queryList(ctx, r.db, "*referenceRepository.ListTemperatureTargets", listTemperatureTargets, scanString)
}

func scanPublisher(row rowScanner, p *models.Publisher) error {
	return row.Scan(&p.ID, &p.Name, &p.Description)
}

func scanString(row rowScanner, s *string) error {
	return row.Scan(s)
}
