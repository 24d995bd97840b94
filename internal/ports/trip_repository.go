package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for persisting trips and their scheduled stops.
type TripRepository interface {
	// Store a new trip, assigning its identifier.
	CreateTrip(ctx context.Context, trip *domain.Trip) error
	// Retrieve one trip by id.
	GetTrip(ctx context.Context, id string) (*domain.Trip, error)
	// Retrieve all trips, newest first.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	// Replace a trip's stop sequence with a freshly planned one.
	ReplaceStops(ctx context.Context, tripID string, stops []domain.Stop) error
	// Retrieve a trip's stops in schedule order.
	ListStops(ctx context.Context, tripID string) ([]domain.Stop, error)
}
