package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
)

func testLegs(pickupMiles, pickupHours, dropoffMiles, dropoffHours float64) domain.RouteLegMetrics {
	return domain.RouteLegMetrics{
		ToPickup: domain.RouteLeg{
			Origin:        "Chicago, IL",
			Destination:   "Denver, CO",
			DistanceMiles: pickupMiles,
			DurationHours: pickupHours,
		},
		ToDropoff: domain.RouteLeg{
			Origin:        "Denver, CO",
			Destination:   "Phoenix, AZ",
			DistanceMiles: dropoffMiles,
			DurationHours: dropoffHours,
		},
		TotalDistanceMiles: pickupMiles + dropoffMiles,
	}
}

func testTrip(cycleHours float64) domain.Trip {
	return domain.Trip{
		CurrentLocation:   "Chicago, IL",
		PickupLocation:    "Denver, CO",
		DropoffLocation:   "Phoenix, AZ",
		CurrentCycleHours: cycleHours,
	}
}

func stopTypes(stops []domain.Stop) []domain.StopType {
	types := make([]domain.StopType, 0, len(stops))
	for _, s := range stops {
		types = append(types, s.Type)
	}
	return types
}

func TestScheduleStopsInsertsRestsWhenLegsExceedDriveBudget(t *testing.T) {
	cfg := DefaultHOSConfig()
	depart := time.Date(2026, 1, 5, 6, 0, 0, 0, time.UTC)
	legs := testLegs(450, 10, 400, 8)

	stops, err := ScheduleStops(testTrip(0), legs, depart, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.StopType{
		domain.StopTypeStart,
		domain.StopTypeRest,
		domain.StopTypePickup,
		domain.StopTypeRest,
		domain.StopTypeDropoff,
	}
	got := stopTypes(stops)
	if len(got) != len(want) {
		t.Fatalf("stop types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stop types = %v, want %v", got, want)
		}
	}

	// First rest begins when the drive budget runs out: 8.75h into the trip.
	rest := stops[1]
	if wantArr := depart.Add(8*time.Hour + 45*time.Minute); !rest.ArrivalTime.Equal(wantArr) {
		t.Fatalf("first rest arrival = %v, want %v", rest.ArrivalTime, wantArr)
	}
	if dwell := rest.DepartureTime.Sub(rest.ArrivalTime); dwell != 10*time.Hour {
		t.Fatalf("rest dwell = %v, want 10h", dwell)
	}
	if rest.OdometerMiles != 393.75 {
		t.Fatalf("first rest odometer = %v, want 393.75", rest.OdometerMiles)
	}

	pickup := stops[2]
	if pickup.OdometerMiles != 450 {
		t.Fatalf("pickup odometer = %v, want 450", pickup.OdometerMiles)
	}
	if dwell := pickup.DepartureTime.Sub(pickup.ArrivalTime); dwell != time.Hour {
		t.Fatalf("pickup dwell = %v, want 1h", dwell)
	}

	dropoff := stops[4]
	if dropoff.OdometerMiles != 850 {
		t.Fatalf("dropoff odometer = %v, want 850", dropoff.OdometerMiles)
	}
	if wantArr := time.Date(2026, 1, 6, 21, 0, 0, 0, time.UTC); !dropoff.ArrivalTime.Equal(wantArr) {
		t.Fatalf("dropoff arrival = %v, want %v", dropoff.ArrivalTime, wantArr)
	}

	for i := 1; i < len(stops); i++ {
		if stops[i].ArrivalTime.Before(stops[i-1].DepartureTime) {
			t.Fatalf("stop %d arrives at %v before previous departure %v", i, stops[i].ArrivalTime, stops[i-1].DepartureTime)
		}
	}
}

func TestScheduleStopsEmitsFuelStopsPerDistanceInterval(t *testing.T) {
	cfg := DefaultHOSConfig()
	depart := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	legs := testLegs(300, 2, 2200, 4)

	stops, err := ScheduleStops(testTrip(0), legs, depart, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.StopType{
		domain.StopTypeStart,
		domain.StopTypePickup,
		domain.StopTypeFuel,
		domain.StopTypeFuel,
		domain.StopTypeDropoff,
	}
	got := stopTypes(stops)
	if len(got) != len(want) {
		t.Fatalf("stop types = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stop types = %v, want %v", got, want)
		}
	}

	wantOdo := []float64{0, 300, 1400, 2500, 2500}
	for i, s := range stops {
		if math.Abs(s.OdometerMiles-wantOdo[i]) > 1e-9 {
			t.Fatalf("stop %d odometer = %v, want %v", i, s.OdometerMiles, wantOdo[i])
		}
	}

	for _, s := range stops[2:4] {
		if dwell := s.DepartureTime.Sub(s.ArrivalTime); dwell != 30*time.Minute {
			t.Fatalf("fuel dwell = %v, want 30m", dwell)
		}
	}

	dropoff := stops[4]
	if wantArr := depart.Add(8 * time.Hour); !dropoff.ArrivalTime.Equal(wantArr) {
		t.Fatalf("dropoff arrival = %v, want %v", dropoff.ArrivalTime, wantArr)
	}
}

func TestScheduleStopsExactBudgetExhaustionNeedsNoRest(t *testing.T) {
	cfg := DefaultHOSConfig()
	depart := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	// 5h already used; the remaining 3.75h exactly covers both legs.
	legs := testLegs(100, 2, 87.5, 1.75)

	stops, err := ScheduleStops(testTrip(5), legs, depart, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range stops {
		if s.Type == domain.StopTypeRest {
			t.Fatalf("unexpected rest stop at %v", s.ArrivalTime)
		}
	}
	if len(stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(stops))
	}
	if stops[2].OdometerMiles != 187.5 {
		t.Fatalf("dropoff odometer = %v, want 187.5", stops[2].OdometerMiles)
	}
}

func TestScheduleStopsValidation(t *testing.T) {
	cfg := DefaultHOSConfig()
	depart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	legs := testLegs(100, 2, 200, 4)

	cases := []struct {
		name string
		trip domain.Trip
		legs domain.RouteLegMetrics
	}{
		{"negative cycle hours", testTrip(-1), legs},
		{
			"same pickup and dropoff",
			domain.Trip{
				CurrentLocation: "Chicago, IL",
				PickupLocation:  "Denver, CO",
				DropoffLocation: "Denver, CO",
			},
			legs,
		},
		{"non-positive leg metrics", testTrip(0), testLegs(100, 2, 0, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ScheduleStops(tc.trip, tc.legs, depart, cfg)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestScheduleStopsZeroCycleHoursIsLegal(t *testing.T) {
	cfg := DefaultHOSConfig()
	depart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := ScheduleStops(testTrip(0), testLegs(100, 2, 200, 4), depart, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
