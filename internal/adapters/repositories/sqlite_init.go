package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_hours REAL NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createStopsQuery := `
	CREATE TABLE IF NOT EXISTS route_stops (
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		seq INTEGER NOT NULL,
		location TEXT NOT NULL,
		arrival_time TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		stop_type TEXT NOT NULL,
		odometer_miles REAL NOT NULL,
		PRIMARY KEY (trip_id, seq)
	);
	`

	createLogsQuery := `
	CREATE TABLE IF NOT EXISTS eld_logs (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		log_date TEXT NOT NULL,
		log_data TEXT NOT NULL,
		certified INTEGER NOT NULL DEFAULT 0,
		certified_by TEXT,
		certified_at TEXT
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
		location TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_miles REAL NOT NULL,
		duration_hours REAL NOT NULL,
		geometry TEXT NOT NULL,
		PRIMARY KEY (origin, destination)
	);
	`

	createLogIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_eld_logs_trip_date
	ON eld_logs(trip_id, log_date);
	`

	statements := []string{
		createTripsQuery,
		createStopsQuery,
		createLogsQuery,
		createGeocodeCacheQuery,
		createRouteCacheQuery,
		createLogIndexQuery,
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
