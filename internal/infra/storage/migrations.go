// Package storage owns the database schema. Migrations run at startup and
// are idempotent.
package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		client_name TEXT NOT NULL,
		client_phone TEXT NOT NULL,
		service_name TEXT NOT NULL,
		date DATE NOT NULL,
		start_time VARCHAR(5) NOT NULL,
		duration_minutes INT NOT NULL,
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// One appointment per grid slot per day. This is the storage-level
	// backstop against double-booking across service instances.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_date_start_time
		ON appointments (date, start_time)`,

	`CREATE INDEX IF NOT EXISTS idx_appointments_date_status
		ON appointments (date, status)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		appointment_id BIGINT NOT NULL REFERENCES appointments (id),
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// RunMigrations applies the schema statements in order
func RunMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("storage: migration %d failed: %w", i, err)
		}
	}
	return nil
}
