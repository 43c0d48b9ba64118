// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. A missing signing secret, a non-positive token TTL,
// an empty DSN or an empty listen address are fatal misconfigurations.
//
// All violations are reported at once, joined with [errors.Join]; callers
// match individual groups with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.DB.MaxConns < 0 || cfg.Storage.DB.ConnectRetries < 0 {
		errs = append(errs, fmt.Errorf("%w: pool size and retries cannot be negative", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.APIPrefix != "" && !strings.HasPrefix(cfg.Server.APIPrefix, "/") {
		errs = append(errs, fmt.Errorf("%w: api prefix must start with '/'", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
