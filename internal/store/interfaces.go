package store

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists and looks up accounts in pbtar.users.
type UserRepository interface {
	// ExistsByUsernameOrEmail reports whether a user with the given username
	// or the given email is stored. Matching is exact and case-sensitive.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// CreateUser inserts user and returns the stored row. A UNIQUE violation
	// is reported as [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ScenarioRepository reads scenarios and their junction collections.
type ScenarioRepository interface {
	// ListScenarios returns the listing narrowed by filters, newest
	// published first.
	ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error)

	// GetScenario returns the scenario with its publisher, or
	// [ErrScenarioNotFound]. The publisher is nil when the scenario has no
	// publisher reference.
	GetScenario(ctx context.Context, id int64) (models.Scenario, *models.Publisher, error)

	ListScenarioRegions(ctx context.Context, scenarioID int64) ([]models.Region, error)
	ListScenarioStakeholders(ctx context.Context, scenarioID int64) ([]models.Stakeholder, error)
	ListScenarioSectors(ctx context.Context, scenarioID int64) ([]models.Sector, error)
}

// ReferenceRepository reads the values offered by the listing filters.
type ReferenceRepository interface {
	ListPublishers(ctx context.Context) ([]models.Publisher, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListStakeholders(ctx context.Context) ([]models.Stakeholder, error)
	ListSectors(ctx context.Context) ([]models.Sector, error)

	// ListScenarioTypes returns the distinct scenario types in ascending
	// order.
	ListScenarioTypes(ctx context.Context) ([]string, error)

	// ListTemperatureTargets returns the distinct non-null temperature
	// targets in ascending order.
	ListTemperatureTargets(ctx context.Context) ([]string, error)
}
