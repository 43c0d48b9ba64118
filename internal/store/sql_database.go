package store

import (
	"github.com/MKhiriev/climate-scenarios/migrations"
)

// Migrate applies the embedded goose migrations to the pool.
func (db *DB) Migrate() error {
	db.logger.Info().Str("func", "*DB.Migrate").Msg("applying database migrations")
	return migrations.Migrate(db.DB)
}
