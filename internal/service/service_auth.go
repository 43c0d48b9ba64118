// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/internal/utils"
	"github.com/MKhiriev/climate-scenarios/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the username is unknown so
// that a failed login costs one bcrypt comparison either way.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("climate-scenarios-dummy"), bcrypt.DefaultCost)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// hashCost is the bcrypt work factor used at registration.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		hashCost:       bcrypt.DefaultCost,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// A username or email that is already taken is reported as
// ErrUserAlreadyExists, both when the pre-check finds it and when a
// concurrent registration trips the UNIQUE constraints. The password is
// stored only as a bcrypt hash.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userRepository.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user existence check failed")
		return models.User{}, storageError(err)
	}
	if exists {
		log.Info().Str("username", req.Username).Msg("username or email already taken")
		return models.User{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, &Error{Kind: ErrInternal, Message: "password hashing failed", Err: err}
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Info().Str("username", req.Username).Msg("concurrent registration lost the race")
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, storageError(err)
	}

	return user, nil
}

// Login verifies username and password.
//
// An unknown username and a wrong password both yield
// ErrInvalidCredentials so the response does not reveal which one failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(req.Password))
		log.Info().Str("username", req.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.User{}, storageError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
