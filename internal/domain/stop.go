package domain

import "time"

// StopType identifies why the truck is stationary at a stop.
type StopType string

const (
	StopTypeStart   StopType = "start"
	StopTypeRest    StopType = "rest"
	StopTypeFuel    StopType = "fuel"
	StopTypePickup  StopType = "pickup"
	StopTypeDropoff StopType = "dropoff"
)

// DutyStatus is the ELD duty-status code recorded on a log event.
type DutyStatus string

const (
	StatusDriving      DutyStatus = "D"
	StatusOnDuty       DutyStatus = "ON"
	StatusSleeperBerth DutyStatus = "SB"
	StatusOffDuty      DutyStatus = "OFF"
)

// DutyStatus returns the status recorded while dwelling at a stop of
// this type. Transit between stops is always StatusDriving.
func (t StopType) DutyStatus() DutyStatus {
	switch t {
	case StopTypeRest:
		return StatusSleeperBerth
	case StopTypeStart, StopTypeFuel, StopTypePickup, StopTypeDropoff:
		return StatusOnDuty
	default:
		return StatusOffDuty
	}
}

// Represents a single scheduled stop on a trip.
// Stops form an ordered, monotonically non-decreasing time sequence;
// ArrivalTime never exceeds DepartureTime. OdometerMiles is the
// cumulative distance driven at arrival.
type Stop struct {
	Location      string
	ArrivalTime   time.Time
	DepartureTime time.Time
	Type          StopType
	OdometerMiles float64
}
