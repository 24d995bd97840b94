package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Distance, travel time and shape of a driving route between two points.
type RouteResult struct {
	DistanceMiles float64
	DurationHours float64
	Geometry      string
}

// Contract for retrieving a driving route between two coordinates.
type RouteProvider interface {
	// Return the driving route from origin to destination.
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (RouteResult, error)
}
