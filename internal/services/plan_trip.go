package services

import (
	"context"
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

// TripPlan is the full output of one planning run.
type TripPlan struct {
	Legs  domain.RouteLegMetrics
	Stops []domain.Stop
	Logs  []domain.DailyLog
}

// PlanTrip resolves the trip's locations, retrieves both leg routes,
// schedules HOS-compliant stops and synthesizes the daily logs.
// Upstream failures are reported, never retried here; retry policy
// lives in the adapters.
func PlanTrip(
	ctx context.Context,
	trip domain.Trip,
	now time.Time,
	cfg HOSConfig,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
) (_ *TripPlan, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	coords := make(map[string]domain.Coordinates, 3)
	for _, location := range []string{trip.CurrentLocation, trip.PickupLocation, trip.DropoffLocation} {
		if _, ok := coords[location]; ok {
			continue
		}
		c, gerr := geocoder.Geocode(ctx, location)
		if gerr != nil {
			return nil, fmt.Errorf("%w: geocode %q: %v", ErrGeocodingUnavailable, location, gerr)
		}
		coords[location] = c
	}

	legFor := func(origin, destination string) (domain.RouteLeg, error) {
		route, rerr := router.GetRoute(ctx, coords[origin], coords[destination])
		if rerr != nil {
			return domain.RouteLeg{}, fmt.Errorf("%w: route %q -> %q: %v", ErrRoutingUnavailable, origin, destination, rerr)
		}
		return domain.RouteLeg{
			Origin:        origin,
			Destination:   destination,
			DistanceMiles: route.DistanceMiles,
			DurationHours: route.DurationHours,
			Geometry:      route.Geometry,
		}, nil
	}

	toPickup, err := legFor(trip.CurrentLocation, trip.PickupLocation)
	if err != nil {
		return nil, err
	}
	toDropoff, err := legFor(trip.PickupLocation, trip.DropoffLocation)
	if err != nil {
		return nil, err
	}

	legs := domain.RouteLegMetrics{
		ToPickup:           toPickup,
		ToDropoff:          toDropoff,
		TotalDistanceMiles: toPickup.DistanceMiles + toDropoff.DistanceMiles,
	}

	stops, err := ScheduleStops(trip, legs, now, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	logs, err := SynthesizeLogs(trip, stops, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return &TripPlan{Legs: legs, Stops: stops, Logs: logs}, nil
}
