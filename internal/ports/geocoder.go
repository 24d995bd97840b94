package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Contract for resolving a free-text location into coordinates.
type Geocoder interface {
	// Resolve a location description to geographic coordinates.
	Geocode(ctx context.Context, location string) (domain.Coordinates, error)
}
