package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
)

type scenarioRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewScenarioRepository(db *DB, logger *logger.Logger) ScenarioRepository {
	logger.Debug().Msg("creating scenario repository")
	return &scenarioRepository{
		db:     db,
		logger: logger,
	}
}

// ListScenarios runs the composed listing query.
func (r *scenarioRepository) ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListScenariosQuery(filters)
	if err != nil {
		log.Err(err).Str("func", "*scenarioRepository.ListScenarios").Msg("failed to create query")
		return nil, err
	}

	log.Debug().Str("func", "*scenarioRepository.ListScenarios").Int("filters", len(args)).Msg("listing scenarios")

	return queryList(ctx, r.db, "*scenarioRepository.ListScenarios", query, scanScenarioListItem, args...)
}

func (r *scenarioRepository) GetScenario(ctx context.Context, id int64) (models.Scenario, *models.Publisher, error) {
	var (
		s        models.Scenario
		pubID    *int64
		pubName  *string
		pubDescr *string
	)

	err := queryOne(ctx, r.db, "*scenarioRepository.GetScenario", getScenarioWithPublisher, func(row rowScanner) error {
		return row.Scan(
			&s.ID,
			&s.Title,
			&s.TypeName,
			&s.TemperatureTarget,
			&s.Description,
			&s.PublisherID,
			&s.PublishedDate,
			&s.TargetYear,
			&s.CreatedAt,
			&s.UpdatedAt,
			&pubID,
			&pubName,
			&pubDescr,
		)
	}, id)
	if err != nil {
		if isNoRows(err) {
			return models.Scenario{}, nil, fmt.Errorf("%w: id %d", ErrScenarioNotFound, id)
		}
		return models.Scenario{}, nil, err
	}

	// a dangling publisher_id joins to NULL columns
	if pubID == nil || pubName == nil {
		return s, nil, nil
	}

	return s, &models.Publisher{ID: *pubID, Name: *pubName, Description: pubDescr}, nil
}

func (r *scenarioRepository) ListScenarioRegions(ctx context.Context, scenarioID int64) ([]models.Region, error) {
	return queryList(ctx, r.db, "*scenarioRepository.ListScenarioRegions", listScenarioRegions, scanRegion, scenarioID)
}

func (r *scenarioRepository) ListScenarioStakeholders(ctx context.Context, scenarioID int64) ([]models.Stakeholder, error) {
	return queryList(ctx, r.db, "*scenarioRepository.ListScenarioStakeholders", listScenarioStakeholders, scanStakeholder, scenarioID)
}

func (r *scenarioRepository) ListScenarioSectors(ctx context.Context, scenarioID int64) ([]models.Sector, error) {
	return queryList(ctx, r.db, "*scenarioRepository.ListScenarioSectors", listScenarioSectors, scanSector, scenarioID)
}

func scanScenarioListItem(row rowScanner, item *models.ScenarioListItem) error {
	return row.Scan(
		&item.ID,
		&item.Title,
		&item.TypeName,
		&item.TemperatureTarget,
		&item.Description,
		&item.Publisher,
		&item.PublishedDate,
		&item.TargetYear,
	)
}

func scanRegion(row rowScanner, r *models.Region) error {
	return row.Scan(&r.ID, &r.Name, &r.ParentID)
}

func scanStakeholder(row rowScanner, s *models.Stakeholder) error {
	return row.Scan(&s.ID, &s.Name, &s.TypeName)
}

func scanSector(row rowScanner, s *models.Sector) error {
	return row.Scan(&s.ID, &s.Name)
}
