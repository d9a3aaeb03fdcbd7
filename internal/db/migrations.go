package db

import (
	"database/sql"
	"fmt"
)

// migrations is a list of SQL statements applied in order after schema creation.
// Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{
	// Migration 1: composite indexes so owner-scoped listing (newest first)
	// doesn't scan whole tables.
	`CREATE INDEX IF NOT EXISTS idx_land_owner_created ON land(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_labour_owner_created ON labour(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_capital_owner_created ON capital(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_technology_owner_created ON technology(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_information_owner_created ON information(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_business_owner_created ON business(owner_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_content_owner_created ON content(owner_id, created_at)`,
}

// Migrate ensures the schema exists and applies all migrations.
func Migrate(db *sql.DB) error {
	if err := EnsureSchema(db); err != nil {
		return err
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
