package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_hours DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS route_stops (
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		location TEXT NOT NULL,
		arrival_time TIMESTAMPTZ NOT NULL,
		departure_time TIMESTAMPTZ NOT NULL,
		stop_type TEXT NOT NULL,
		odometer_miles DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (trip_id, seq)
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS eld_logs (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		log_date DATE NOT NULL,
		log_data JSONB NOT NULL,
		certified BOOLEAN NOT NULL DEFAULT FALSE,
		certified_by TEXT,
		certified_at TIMESTAMPTZ
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		location TEXT PRIMARY KEY,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_miles DOUBLE PRECISION NOT NULL,
		duration_hours DOUBLE PRECISION NOT NULL,
		geometry TEXT NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_eld_logs_trip_date
	ON eld_logs(trip_id, log_date);
	`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
