package services

import (
	"fmt"
	"math"
	"time"

	"trip-planner-service/internal/domain"
)

// schedulerState threads the mutable planning quantities (clock,
// remaining daily budgets, odometer) through the pickup, fuel and
// dropoff phases. Passing it explicitly keeps each phase a plain
// function over state and inputs.
type schedulerState struct {
	now            time.Time
	remainingDrive float64
	remainingDuty  float64
	odometer       float64
	totalMiles     float64
}

// drive advances the clock by hours of driving at speed (mph), debits
// both budgets and rolls the odometer forward. The odometer is capped
// at the trip total so accumulated drift never overshoots the dropoff
// reading.
func (s *schedulerState) drive(hours, speed float64) {
	if hours <= 0 {
		return
	}
	s.now = s.now.Add(hoursToDuration(hours))
	s.remainingDrive -= hours
	s.remainingDuty -= hours
	s.odometer = math.Min(s.odometer+hours*speed, s.totalMiles)
}

// serve advances the clock by on-duty service time (loading, fueling).
// Service time debits the duty budget but not the drive budget.
func (s *schedulerState) serve(hours float64) {
	s.now = s.now.Add(hoursToDuration(hours))
	s.remainingDuty -= hours
}

// restStop emits a mandatory rest and resets both daily budgets.
func (s *schedulerState) restStop(cfg HOSConfig, location string) domain.Stop {
	stop := domain.Stop{
		Location:      location,
		ArrivalTime:   s.now,
		DepartureTime: s.now.Add(hoursToDuration(cfg.MandatoryRestHours)),
		Type:          domain.StopTypeRest,
		OdometerMiles: s.odometer,
	}
	s.now = stop.DepartureTime
	s.remainingDrive = cfg.DailyDriveLimitHours
	s.remainingDuty = cfg.DailyDutyLimitHours
	return stop
}

// driveSegment drives hours at speed, first inserting one mandatory
// rest if the segment exceeds the remaining drive budget. The
// comparison is strict: a segment that exactly exhausts the budget
// does not trigger a rest. Returns the rest stop emitted, if any.
func (s *schedulerState) driveSegment(cfg HOSConfig, hours, speed float64, restLocation string) []domain.Stop {
	var emitted []domain.Stop
	if hours > s.remainingDrive {
		// Drive to exhaustion before resting. The clamp keeps an
		// already-negative budget from producing a negative-duration
		// segment in the emitted timestamps.
		driven := math.Max(s.remainingDrive, 0)
		s.drive(driven, speed)
		emitted = append(emitted, s.restStop(cfg, restLocation))
		hours -= driven
	}
	s.drive(hours, speed)
	return emitted
}

// ScheduleStops plans the ordered stop sequence for a trip: a START
// stop at the planning epoch, the PICKUP and DROPOFF stops with their
// service dwell, FUEL stops spread over the driving distance, and
// mandatory REST stops wherever a driving segment would otherwise
// exceed the daily drive budget.
//
// The pass is greedy with no backtracking and always terminates in
// O(fuel stops) steps. The planning epoch is a parameter so schedules
// are reproducible.
func ScheduleStops(trip domain.Trip, legs domain.RouteLegMetrics, now time.Time, cfg HOSConfig) ([]domain.Stop, error) {
	if err := validatePlanInput(trip, legs); err != nil {
		return nil, err
	}

	st := schedulerState{
		now:            now,
		remainingDrive: cfg.DailyDriveLimitHours - trip.CurrentCycleHours,
		remainingDuty:  cfg.DailyDutyLimitHours - trip.CurrentCycleHours,
		totalMiles:     legs.TotalDistanceMiles,
	}

	stops := []domain.Stop{{
		Location:      trip.CurrentLocation,
		ArrivalTime:   st.now,
		DepartureTime: st.now,
		Type:          domain.StopTypeStart,
	}}

	pickupSpeed := legs.ToPickup.DistanceMiles / legs.ToPickup.DurationHours
	dropoffSpeed := legs.ToDropoff.DistanceMiles / legs.ToDropoff.DurationHours

	// Pickup phase: drive the first leg, resting on the way if it does
	// not fit in the remaining drive budget.
	restToPickup := fmt.Sprintf("Rest stop en route to %s", trip.PickupLocation)
	stops = append(stops, st.driveSegment(cfg, legs.ToPickup.DurationHours, pickupSpeed, restToPickup)...)

	arrival := st.now
	st.serve(cfg.PickupServiceHours)
	stops = append(stops, domain.Stop{
		Location:      trip.PickupLocation,
		ArrivalTime:   arrival,
		DepartureTime: st.now,
		Type:          domain.StopTypePickup,
		OdometerMiles: st.odometer,
	})

	// Fuel phase: one fuel stop per full interval of trip distance,
	// spacing the stops by splitting the combined driving time into
	// equal segments.
	restToDropoff := fmt.Sprintf("Rest stop en route to %s", trip.DropoffLocation)
	fuelStops := int(math.Floor(legs.TotalDistanceMiles / cfg.FuelStopIntervalMiles))
	segment := 0.0
	if fuelStops > 0 {
		combined := legs.ToPickup.DurationHours + legs.ToDropoff.DurationHours
		segment = combined / float64(fuelStops+1)
		for i := 0; i < fuelStops; i++ {
			stops = append(stops, st.driveSegment(cfg, segment, dropoffSpeed, restToDropoff)...)

			arrival := st.now
			st.serve(cfg.FuelServiceHours)
			stops = append(stops, domain.Stop{
				Location:      fmt.Sprintf("Fuel stop en route to %s", trip.DropoffLocation),
				ArrivalTime:   arrival,
				DepartureTime: st.now,
				Type:          domain.StopTypeFuel,
				OdometerMiles: st.odometer,
			})
		}
	}

	// Dropoff phase: whatever part of the dropoff leg the fuel
	// segments did not already cover.
	residual := legs.ToDropoff.DurationHours - float64(fuelStops)*segment
	if residual < 0 {
		residual = 0
	}
	stops = append(stops, st.driveSegment(cfg, residual, dropoffSpeed, restToDropoff)...)

	arrival = st.now
	st.serve(cfg.DropoffServiceHours)
	stops = append(stops, domain.Stop{
		Location:      trip.DropoffLocation,
		ArrivalTime:   arrival,
		DepartureTime: st.now,
		Type:          domain.StopTypeDropoff,
		OdometerMiles: st.odometer,
	})

	return stops, nil
}

func validatePlanInput(trip domain.Trip, legs domain.RouteLegMetrics) error {
	if trip.CurrentCycleHours < 0 {
		return fmt.Errorf("%w: current_cycle_hours must not be negative", ErrValidation)
	}
	if trip.PickupLocation == "" || trip.DropoffLocation == "" {
		return fmt.Errorf("%w: pickup and dropoff locations are required", ErrValidation)
	}
	if trip.PickupLocation == trip.DropoffLocation {
		return fmt.Errorf("%w: pickup and dropoff locations must differ", ErrValidation)
	}
	for _, leg := range []domain.RouteLeg{legs.ToPickup, legs.ToDropoff} {
		if leg.DistanceMiles <= 0 || leg.DurationHours <= 0 {
			return fmt.Errorf("%w: leg %q -> %q has non-positive metrics", ErrValidation, leg.Origin, leg.Destination)
		}
	}
	return nil
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
