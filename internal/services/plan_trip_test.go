package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/domain"
)

func TestPlanTripEndToEnd(t *testing.T) {
	chicago := domain.Coordinates{Lon: -87.6298, Lat: 41.8781}
	denver := domain.Coordinates{Lon: -104.9903, Lat: 39.7392}
	phoenix := domain.Coordinates{Lon: -112.074, Lat: 33.4484}

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Chicago, IL": chicago,
		"Denver, CO":  denver,
		"Phoenix, AZ": phoenix,
	})
	router := routing.NewMockRouter([]routing.MockRoute{
		{From: chicago, To: denver, Miles: 1000, Hours: 16},
		{From: denver, To: phoenix, Miles: 850, Hours: 13},
	})

	depart := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	plan, err := PlanTrip(context.Background(), testTrip(0), depart, DefaultHOSConfig(), geocoder, router)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.Legs.TotalDistanceMiles != 1850 {
		t.Fatalf("total distance = %v, want 1850", plan.Legs.TotalDistanceMiles)
	}
	if plan.Legs.ToPickup.Destination != "Denver, CO" {
		t.Fatalf("pickup leg destination = %q", plan.Legs.ToPickup.Destination)
	}

	if len(plan.Stops) == 0 {
		t.Fatal("expected scheduled stops")
	}
	if plan.Stops[0].Type != domain.StopTypeStart {
		t.Fatalf("first stop type = %q, want start", plan.Stops[0].Type)
	}
	last := plan.Stops[len(plan.Stops)-1]
	if last.Type != domain.StopTypeDropoff {
		t.Fatalf("last stop type = %q, want dropoff", last.Type)
	}
	if last.OdometerMiles != 1850 {
		t.Fatalf("final odometer = %v, want 1850", last.OdometerMiles)
	}

	// 29h of driving at an 8.75h/day budget needs rests, so the plan
	// spans several calendar days.
	if len(plan.Logs) < 2 {
		t.Fatalf("expected multi-day logs, got %d", len(plan.Logs))
	}
	for _, l := range plan.Logs {
		if l.Certified {
			t.Fatal("freshly synthesized log must not be certified")
		}
	}
}

func TestPlanTripReportsGeocoderFailure(t *testing.T) {
	geocoder := geocode.NewMockGeocoder(nil)
	router := routing.NewMockRouter(nil)

	_, err := PlanTrip(context.Background(), testTrip(0), time.Now(), DefaultHOSConfig(), geocoder, router)
	if !errors.Is(err, ErrGeocodingUnavailable) {
		t.Fatalf("error = %v, want ErrGeocodingUnavailable", err)
	}
}

func TestPlanTripReportsRouterFailure(t *testing.T) {
	chicago := domain.Coordinates{Lon: -87.6298, Lat: 41.8781}
	denver := domain.Coordinates{Lon: -104.9903, Lat: 39.7392}
	phoenix := domain.Coordinates{Lon: -112.074, Lat: 33.4484}

	geocoder := geocode.NewMockGeocoder(map[string]domain.Coordinates{
		"Chicago, IL": chicago,
		"Denver, CO":  denver,
		"Phoenix, AZ": phoenix,
	})
	router := routing.NewMockRouter(nil)

	_, err := PlanTrip(context.Background(), testTrip(0), time.Now(), DefaultHOSConfig(), geocoder, router)
	if !errors.Is(err, ErrRoutingUnavailable) {
		t.Fatalf("error = %v, want ErrRoutingUnavailable", err)
	}
}
