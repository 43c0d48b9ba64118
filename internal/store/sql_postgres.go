package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/config"
	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is the shared connection pool handed to every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// connectFunc opens and pings a pool. It is swapped out in tests.
type connectFunc func(ctx context.Context, cfg config.DB) (*sql.DB, error)

// NewConnectPostgres opens the pgx-backed pool and pings it, retrying up to
// cfg.ConnectRetries times with cfg.ConnectRetryDelay between attempts.
// Retries stop early on errors the classifier marks as NonRetryable (bad
// credentials, unknown database) and when ctx is cancelled.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return connectWithRetry(ctx, cfg, log, openPostgres)
}

func openPostgres(ctx context.Context, cfg config.DB) (*sql.DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, err
	}

	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 10
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetMaxIdleConns(maxConns)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

func connectWithRetry(ctx context.Context, cfg config.DB, log *logger.Logger, connect connectFunc) (*DB, error) {
	classifier := NewPostgresErrorClassifier()
	attempts := max(cfg.ConnectRetries, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		conn, err := connect(ctx, cfg)
		if err == nil {
			log.Info().Str("func", "NewConnectPostgres").Int("attempt", attempt).Msg("connected to database successfully")
			return &DB{
				DB:                 conn,
				logger:             log,
				errorClassificator: classifier,
			}, nil
		}
		lastErr = err

		if classifier.Classify(err) == NonRetryable {
			log.Err(err).Str("func", "NewConnectPostgres").Str("pg_code", postgresError(err)).Msg("database refused connection, not retrying")
			break
		}

		log.Warn().Err(err).
			Str("func", "NewConnectPostgres").
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Dur("retry_in", cfg.ConnectRetryDelay).
			Msg("error connecting database")

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, ctx.Err())
		case <-time.After(cfg.ConnectRetryDelay):
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrConnectingDatabase, lastErr)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
