package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── classifier ──────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("dial tcp: connection refused"), want: Unclassified},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "bad password", err: pgError(pgerrcode.InvalidPassword), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "wrapped", err: errors.Join(errors.New("ctx"), pgError(pgerrcode.SerializationFailure)), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Empty(t, postgresError(errors.New("x")))
}

// ── connect with retry ──────────────────────────────────────────────────────

func retryConfig(retries int) config.DB {
	return config.DB{DSN: "postgres://test", ConnectRetries: retries, ConnectRetryDelay: time.Millisecond}
}

func TestConnectWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	calls := 0
	connect := func(ctx context.Context, cfg config.DB) (*sql.DB, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		}
		return mockDB, nil
	}

	db, err := connectWithRetry(context.Background(), retryConfig(5), logger.Nop(), connect)
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Same(t, mockDB, db.DB)
	assert.NotNil(t, db.errorClassificator)
}

func TestConnectWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	connect := func(ctx context.Context, cfg config.DB) (*sql.DB, error) {
		calls++
		return nil, pgError(pgerrcode.CannotConnectNow)
	}

	_, err := connectWithRetry(context.Background(), retryConfig(4), logger.Nop(), connect)

	assert.ErrorIs(t, err, ErrConnectingDatabase)
	assert.Equal(t, 4, calls)
}

func TestConnectWithRetry_StopsOnNonRetryable(t *testing.T) {
	calls := 0
	connect := func(ctx context.Context, cfg config.DB) (*sql.DB, error) {
		calls++
		return nil, pgError(pgerrcode.InvalidPassword)
	}

	_, err := connectWithRetry(context.Background(), retryConfig(10), logger.Nop(), connect)

	assert.ErrorIs(t, err, ErrConnectingDatabase)
	assert.Equal(t, 1, calls)
}

func TestConnectWithRetry_HonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	connect := func(ctx context.Context, cfg config.DB) (*sql.DB, error) {
		calls++
		cancel()
		return nil, errors.New("connection refused")
	}

	cfg := retryConfig(10)
	cfg.ConnectRetryDelay = time.Hour

	_, err := connectWithRetry(ctx, cfg, logger.Nop(), connect)

	assert.ErrorIs(t, err, ErrConnectingDatabase)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestConnectWithRetry_ZeroRetriesStillTriesOnce(t *testing.T) {
	calls := 0
	connect := func(ctx context.Context, cfg config.DB) (*sql.DB, error) {
		calls++
		return nil, errors.New("refused")
	}

	_, err := connectWithRetry(context.Background(), retryConfig(0), logger.Nop(), connect)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
