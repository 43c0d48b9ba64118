// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed REST client for the climate scenarios API.
//
// [APIClient] decouples callers (the command-line client, smoke tests) from
// the HTTP details. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/models"
)

// APIClient talks to a running climate scenarios API.
type APIClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	Health(ctx context.Context) (models.HealthResponse, error)

	// ListScenarios returns the scenario listing narrowed by filters.
	ListScenarios(ctx context.Context, filters models.ScenarioFilters) ([]models.ScenarioListItem, error)

	GetScenario(ctx context.Context, id int64) (models.ScenarioDetail, error)

	FilterOptions(ctx context.Context) (models.FilterOptions, error)

	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login authenticates and stores the returned token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Me returns the identity behind the stored token.
	Me(ctx context.Context) (models.MeResponse, error)
}
