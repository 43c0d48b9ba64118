package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryList runs query and scans every row with scan. The result is never
// nil, so empty collections serialize as [].
func queryList[T any](ctx context.Context, db *DB, funcName, query string, scan func(rowScanner, *T) error, args ...any) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.logQueryError(log, err, funcName, "failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		var item T
		if err = scan(rows, &item); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		db.logQueryError(log, err, funcName, "error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// queryOne runs query and scans its first row with scan. An empty result
// is reported as [sql.ErrNoRows]; a row that cannot be scanned as
// [ErrScanningRow].
func queryOne(ctx context.Context, db *DB, funcName, query string, scan func(rowScanner) error, args ...any) error {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		if isNoRows(err) {
			return sql.ErrNoRows
		}
		db.logQueryError(log, err, funcName, "failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			db.logQueryError(log, err, funcName, "error reading row")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return sql.ErrNoRows
	}

	if err = scan(rows); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan row")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return nil
}

// logQueryError logs err together with its pg code and retry class.
func (db *DB) logQueryError(log *logger.Logger, err error, funcName, msg string) {
	event := log.Err(err).Str("func", funcName)
	if code := postgresError(err); code != "" {
		event = event.Str("pg_code", code)
	}
	if db.errorClassificator != nil {
		event = event.Bool("retryable", db.errorClassificator.Classify(err) != NonRetryable)
	}
	event.Msg(msg)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
