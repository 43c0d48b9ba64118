// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed context keys, JSON response writing, the REST client
// wrapper, JWT token generation and validation, and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/climate-scenarios/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the authentication middleware stores
// the verified token of the caller.
var ClaimsCtxKey = contextKey("claims")

// WithToken returns a copy of ctx carrying the verified token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, ClaimsCtxKey, token)
}

// GetTokenFromContext retrieves the verified token stored by WithToken.
// ok is false when the value is missing or has an unexpected type.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(ClaimsCtxKey).(models.Token)
	return token, ok
}

// GetUserIDFromContext returns the user id of the verified token in ctx.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	token, ok := GetTokenFromContext(ctx)
	if !ok {
		return 0, false
	}
	return token.UserID, true
}
