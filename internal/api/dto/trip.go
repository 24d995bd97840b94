package dto

import "time"

type CreateTripRequest struct {
	CurrentLocation   string  `json:"current_location"`
	PickupLocation    string  `json:"pickup_location"`
	DropoffLocation   string  `json:"dropoff_location"`
	CurrentCycleHours float64 `json:"current_cycle_hours"`
}

type TripResponse struct {
	ID                string    `json:"id"`
	CurrentLocation   string    `json:"current_location"`
	PickupLocation    string    `json:"pickup_location"`
	DropoffLocation   string    `json:"dropoff_location"`
	CurrentCycleHours float64   `json:"current_cycle_hours"`
	CreatedAt         time.Time `json:"created_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
