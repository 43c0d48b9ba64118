// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies and listing filters before they
// reach the services.
//
// Rules are declared with `validate` struct tags on the models and enforced
// by go-playground/validator. Failures are reported with the JSON field names
// the client sent, so the message can be returned as-is in a 400 response.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
