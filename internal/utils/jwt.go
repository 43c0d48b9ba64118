package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	ErrInvalidAuthHeader  = errors.New("invalid authorization header")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for the given user.
//
// The token carries iss, sub (the decimal user id), username, iat and exp
// claims. Times are taken in UTC. issuer, signKey and a positive duration
// are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("climate-scenarios-api", 42, "alice", time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now().UTC()
	expiresAt := now.Add(tokenDuration)
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Claims:       claims,
		SignedString: tokenString,
		UserID:       userID,
		Username:     username,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer and
// expiry of tokenString and returns the identity it carries.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, err
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.UTC()
	}

	return models.Token{
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       userID,
		Username:     claims.Username,
		ExpiresAt:    expiresAt,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthHeader
	}
	return parts[1], nil
}
