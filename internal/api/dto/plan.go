package dto

import "time"

type PlanRequest struct {
	TripID   string     `json:"trip_id"`
	DepartAt *time.Time `json:"depart_at"`
}

type LegResponse struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distance_miles"`
	DurationHours float64 `json:"duration_hours"`
}

type StopResponse struct {
	Location      string    `json:"location"`
	ArrivalTime   time.Time `json:"arrival_time"`
	DepartureTime time.Time `json:"departure_time"`
	StopType      string    `json:"stop_type"`
	OdometerMiles float64   `json:"odometer_miles"`
}

type PlanResponse struct {
	TripID             string         `json:"trip_id"`
	TotalDistanceMiles float64        `json:"total_distance_miles"`
	Legs               []LegResponse  `json:"legs"`
	Stops              []StopResponse `json:"stops"`
	Logs               []LogResponse  `json:"logs"`
}
