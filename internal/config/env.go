// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a [StructuredConfig] from environment variables using the
// caarlos0/env library. Fields are mapped via their `env`, `envPrefix` and
// `envDefault` tags, so unset optional variables receive their defaults.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. a malformed duration).
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
