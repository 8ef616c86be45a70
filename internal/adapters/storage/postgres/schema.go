package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Pet ids in the dependent tables are plain columns, not foreign keys:
// deleting a pet does not cascade and may leave orphaned rows behind.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS pets (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		breed TEXT NOT NULL,
		age INTEGER NOT NULL,
		weight INTEGER NOT NULL,
		photo_url TEXT,
		health_status TEXT NOT NULL DEFAULT 'healthy',
		next_checkup TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS care_activities (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN NOT NULL DEFAULT false,
		scheduled_date TIMESTAMPTZ NOT NULL,
		completed_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS health_records (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		notes TEXT,
		veterinarian TEXT,
		date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS daily_stats (
		id BIGSERIAL PRIMARY KEY,
		pet_id BIGINT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		steps INTEGER NOT NULL DEFAULT 0,
		exercise_minutes INTEGER NOT NULL DEFAULT 0,
		sleep_hours INTEGER NOT NULL DEFAULT 0,
		meals INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_care_activities_pet_id ON care_activities (pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_health_records_pet_id ON health_records (pet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_stats_pet_id_date ON daily_stats (pet_id, date)`,
}

// EnsureSchema creates the entity tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
