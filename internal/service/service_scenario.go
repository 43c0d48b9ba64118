package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/models"
	"golang.org/x/sync/errgroup"
)

type scenarioService struct {
	scenarios  store.ScenarioRepository
	references store.ReferenceRepository

	logger *logger.Logger
}

func NewScenarioService(scenarios store.ScenarioRepository, references store.ReferenceRepository, logger *logger.Logger) ScenarioService {
	return &scenarioService{
		scenarios:  scenarios,
		references: references,
		logger:     logger,
	}
}

func (s *scenarioService) ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error) {
	items, err := s.scenarios.ListScenarios(ctx, filters)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filters", filters).Msg("listing scenarios failed")
		return nil, storageError(err)
	}

	return items, nil
}

// GetScenarioDetail loads the scenario first, then its regions,
// stakeholders and sectors concurrently. Any failing lookup fails the whole
// call; partial details are never returned.
func (s *scenarioService) GetScenarioDetail(ctx context.Context, id int64) (models.ScenarioDetail, error) {
	log := logger.FromContext(ctx).With().Int64("scenario_id", id).Logger()

	scenario, publisher, err := s.scenarios.GetScenario(ctx, id)
	if errors.Is(err, store.ErrScenarioNotFound) {
		return models.ScenarioDetail{}, notFound("Scenario", id, err)
	}
	if err != nil {
		log.Err(err).Msg("loading scenario failed")
		return models.ScenarioDetail{}, storageError(err)
	}

	var (
		regions      []models.Region
		stakeholders []models.Stakeholder
		sectors      []models.Sector
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		regions, err = s.scenarios.ListScenarioRegions(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		stakeholders, err = s.scenarios.ListScenarioStakeholders(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		sectors, err = s.scenarios.ListScenarioSectors(gctx, id)
		return err
	})
	if err = g.Wait(); err != nil {
		log.Err(err).Msg("loading scenario collections failed")
		return models.ScenarioDetail{}, storageError(err)
	}

	detail := models.NewScenarioDetail(scenario, publisher)
	if regions != nil {
		detail.Regions = regions
	}
	if stakeholders != nil {
		detail.Stakeholders = stakeholders
	}
	if sectors != nil {
		detail.Sectors = sectors
	}

	return detail, nil
}

// GetFilterOptions runs the six reference queries concurrently.
func (s *scenarioService) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	var opts models.FilterOptions

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		opts.Publishers, err = s.references.ListPublishers(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Regions, err = s.references.ListRegions(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Stakeholders, err = s.references.ListStakeholders(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Sectors, err = s.references.ListSectors(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.Types, err = s.references.ListScenarioTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		opts.TemperatureTargets, err = s.references.ListTemperatureTargets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Err(err).Msg("loading filter options failed")
		return models.FilterOptions{}, storageError(err)
	}

	return opts, nil
}
