package service

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ScenarioService answers the read-only scenario queries.
type ScenarioService interface {
	ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error)

	// GetScenarioDetail returns the scenario with its publisher and all three
	// junction collections, or an error matching ErrNotFound.
	GetScenarioDetail(ctx context.Context, id int64) (models.ScenarioDetail, error)

	GetFilterOptions(ctx context.Context) (models.FilterOptions, error)
}

// ItemService is a placeholder resource with fixed responses. Nothing is
// persisted.
type ItemService interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ScenarioServiceWrapper is the ScenarioService counterpart of
// AuthServiceWrapper.
type ScenarioServiceWrapper interface {
	Wrap(ScenarioService) ScenarioService
}

// ItemServiceWrapper is the ItemService counterpart of AuthServiceWrapper.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}
