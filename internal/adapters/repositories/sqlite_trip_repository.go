package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite backed store for trips and their scheduled stops.
type SqliteTripRepository struct {
	DB *sql.DB
}

func NewSqliteTripRepository(db *sql.DB) *SqliteTripRepository {
	return &SqliteTripRepository{DB: db}
}

func (r *SqliteTripRepository) CreateTrip(ctx context.Context, trip *domain.Trip) error {
	if r.DB == nil {
		return errors.New("trip repository: db is nil")
	}

	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	_, err := r.DB.ExecContext(ctx, `
	INSERT INTO trips (id, current_location, pickup_location, dropoff_location, current_cycle_hours, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, trip.ID, trip.CurrentLocation, trip.PickupLocation, trip.DropoffLocation,
		trip.CurrentCycleHours, trip.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("create trip: %w", err)
	}

	return nil
}

func (r *SqliteTripRepository) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}

	row := r.DB.QueryRowContext(ctx, `
	SELECT id, current_location, pickup_location, dropoff_location, current_cycle_hours, created_at
	FROM trips
	WHERE id = ?;
	`, id)

	trip, err := scanTripText(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get trip %q: %w", id, ports.ErrNotFound)
		}
		return nil, fmt.Errorf("get trip %q: %w", id, err)
	}

	return trip, nil
}

func (r *SqliteTripRepository) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT id, current_location, pickup_location, dropoff_location, current_cycle_hours, created_at
	FROM trips
	ORDER BY created_at DESC;
	`)
	if err != nil {
		return nil, fmt.Errorf("list trips: query: %w", err)
	}
	defer rows.Close()

	trips := []*domain.Trip{}
	for rows.Next() {
		trip, err := scanTripText(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

func (r *SqliteTripRepository) ReplaceStops(ctx context.Context, tripID string, stops []domain.Stop) error {
	if r.DB == nil {
		return errors.New("trip repository: db is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace stops: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE trip_id = ?;`, tripID); err != nil {
		return fmt.Errorf("replace stops: clear previous: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO route_stops (trip_id, seq, location, arrival_time, departure_time, stop_type, odometer_miles)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("replace stops: prepare: %w", err)
	}
	defer stmt.Close()

	for i, stop := range stops {
		_, err := stmt.ExecContext(ctx, tripID, i, stop.Location,
			stop.ArrivalTime.Format(time.RFC3339Nano),
			stop.DepartureTime.Format(time.RFC3339Nano),
			string(stop.Type), stop.OdometerMiles)
		if err != nil {
			return fmt.Errorf("replace stops: insert seq=%d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace stops: commit: %w", err)
	}

	return nil
}

func (r *SqliteTripRepository) ListStops(ctx context.Context, tripID string) ([]domain.Stop, error) {
	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT location, arrival_time, departure_time, stop_type, odometer_miles
	FROM route_stops
	WHERE trip_id = ?
	ORDER BY seq;
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list stops: query: %w", err)
	}
	defer rows.Close()

	stops := []domain.Stop{}
	for rows.Next() {
		var stop domain.Stop
		var stopType, arrival, departure string
		if err := rows.Scan(&stop.Location, &arrival, &departure, &stopType, &stop.OdometerMiles); err != nil {
			return nil, fmt.Errorf("list stops: scan: %w", err)
		}
		if stop.ArrivalTime, err = time.Parse(time.RFC3339Nano, arrival); err != nil {
			return nil, fmt.Errorf("list stops: parse arrival: %w", err)
		}
		if stop.DepartureTime, err = time.Parse(time.RFC3339Nano, departure); err != nil {
			return nil, fmt.Errorf("list stops: parse departure: %w", err)
		}
		stop.Type = domain.StopType(stopType)
		stops = append(stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stops: row iteration: %w", err)
	}

	return stops, nil
}

// scanTripText scans a trip row whose created_at is stored as RFC3339 text.
func scanTripText(scan func(dest ...any) error) (*domain.Trip, error) {
	var trip domain.Trip
	var createdAt string
	if err := scan(&trip.ID, &trip.CurrentLocation, &trip.PickupLocation,
		&trip.DropoffLocation, &trip.CurrentCycleHours, &createdAt); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	trip.CreatedAt = parsed

	return &trip, nil
}
