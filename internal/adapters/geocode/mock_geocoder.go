package geocode

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
)

// MockGeocoder resolves locations from a fixed table, for tests.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(entries map[string]domain.Coordinates) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Geocode(ctx context.Context, location string) (domain.Coordinates, error) {
	c, ok := g.m[location]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("no geocode entry for %q", location)
	}

	return c, nil
}
