// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/internal/mock"
	"github.com/MKhiriev/climate-scenarios/internal/store"
	"github.com/MKhiriev/climate-scenarios/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "climate-scenarios-test",
	TokenDuration: time.Hour,
	Version:       "1.0.0",
	Name:          "Climate Scenarios Database API",
}

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	svc.hashCost = bcrypt.MinCost

	return svc, repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_Success_StoresBcryptHash(t *testing.T) {
	svc, repo := newTestAuthService(t)
	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "s3cretpass"}

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").Return(false, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, req.Password, u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)))
			u.ID = 7
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
}

func TestRegisterUser_AlreadyExists(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "alice", "a@b.c").Return(true, nil)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "password1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username or email already exists", PublicMessage(err))
}

func TestRegisterUser_UniqueViolationRace(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "password1"})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterUser_StorageFailure(t *testing.T) {
	svc, repo := newTestAuthService(t)
	dbErr := errors.New("connection reset")

	repo.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@b.c", Password: "password1"})

	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, "Database error", PublicMessage(err))
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	stored := models.User{ID: 3, Username: "alice", PasswordHash: mustHash(t, "s3cretpass")}

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "s3cretpass"})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestLogin_WrongPasswordAndUnknownUserAreIndistinguishable(t *testing.T) {
	svc, repo := newTestAuthService(t)
	stored := models.User{ID: 3, Username: "alice", PasswordHash: mustHash(t, "s3cretpass")}

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)
	repo.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)

	_, wrongPassErr := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})
	_, unknownErr := svc.Login(context.Background(), models.LoginRequest{Username: "bob", Password: "nope"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrUnauthenticated)
	assert.Equal(t, PublicMessage(wrongPassErr), PublicMessage(unknownErr))
}

func TestLogin_StorageFailure(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "x"})

	assert.ErrorIs(t, err, ErrStorage)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestParseToken_SignedWithOtherKey(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour}, logger.Nop())
	token, err := other.CreateToken(context.Background(), models.User{ID: 1, Username: "x"})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateToken_InvalidParams(t *testing.T) {
	svc := NewAuthService(nil, config.App{TokenIssuer: "iss", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{ID: 1, Username: "x"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
	assert.ErrorIs(t, err, ErrInternal)
}
