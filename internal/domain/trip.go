package domain

import "time"

// Represents a single planned commercial driving trip.
// A Trip has three fixed waypoints (current position, pickup, dropoff)
// and carries the duty-cycle hours the driver had already accumulated
// when planning started. Trips are immutable for the duration of a
// planning run.
type Trip struct {
	ID                string
	CurrentLocation   string
	PickupLocation    string
	DropoffLocation   string
	CurrentCycleHours float64
	CreatedAt         time.Time
}
