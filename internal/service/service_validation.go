package service

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/validators"
	"github.com/MKhiriev/climate-scenarios/models"
)

// AuthValidationService rejects malformed register and login bodies before
// they reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("username", req.Username).Msg("invalid register request")
		return models.User{}, badRequest(err)
	}

	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("incomplete login request")
		return models.User{}, ErrInvalidCredentials
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// ScenarioValidationService checks scenario ids. Every well-formed filter
// combination is accepted; ids that match nothing yield an empty listing.
type ScenarioValidationService struct {
	inner     ScenarioService
	validator validators.Validator
}

func NewScenarioValidationService(validator validators.Validator) ScenarioServiceWrapper {
	return &ScenarioValidationService{validator: validator}
}

func (v *ScenarioValidationService) ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error) {
	if err := v.validator.Validate(ctx, filters); err != nil {
		return nil, badRequest(err)
	}
	return v.inner.ListScenarios(ctx, filters)
}

// GetScenarioDetail reports ids that can never exist as not found without
// querying the database.
func (v *ScenarioValidationService) GetScenarioDetail(ctx context.Context, id int64) (models.ScenarioDetail, error) {
	if id <= 0 {
		return models.ScenarioDetail{}, notFound("Scenario", id, nil)
	}
	return v.inner.GetScenarioDetail(ctx, id)
}

func (v *ScenarioValidationService) GetFilterOptions(ctx context.Context) (models.FilterOptions, error) {
	return v.inner.GetFilterOptions(ctx)
}

func (v *ScenarioValidationService) Wrap(inner ScenarioService) ScenarioService {
	v.inner = inner
	return v
}

// ItemValidationService checks item bodies.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) ListItems(ctx context.Context) ([]models.Item, error) {
	return v.inner.ListItems(ctx)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, badRequest(err)
	}
	return v.inner.CreateItem(ctx, req)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, badRequest(err)
	}
	return v.inner.UpdateItem(ctx, id, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, id int64) error {
	return v.inner.DeleteItem(ctx, id)
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}
