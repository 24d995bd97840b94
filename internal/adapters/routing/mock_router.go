package routing

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type MockRoute struct {
	From, To domain.Coordinates
	Miles    float64
	Hours    float64
}

// MockRouter serves routes from a fixed table, for tests.
type MockRouter struct {
	m map[[2]domain.Coordinates]ports.RouteResult
}

func NewMockRouter(routes []MockRoute) *MockRouter {
	m := make(map[[2]domain.Coordinates]ports.RouteResult, len(routes))
	for _, r := range routes {
		m[[2]domain.Coordinates{r.From, r.To}] = ports.RouteResult{
			DistanceMiles: r.Miles,
			DurationHours: r.Hours,
		}
	}
	return &MockRouter{m: m}
}

func (r *MockRouter) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, error) {
	route, ok := r.m[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return ports.RouteResult{}, fmt.Errorf("no route entry for %s -> %s", origin.Key(), destination.Key())
	}

	return route, nil
}
