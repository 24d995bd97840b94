package domain

// Driving metrics for one point-to-point leg of a trip, as produced by
// the routing collaborator. Distances and durations are treated as
// opaque positive values.
type RouteLeg struct {
	Origin        string
	Destination   string
	DistanceMiles float64
	DurationHours float64
	Geometry      string
}

// Metrics for both trip legs (current->pickup, pickup->dropoff).
type RouteLegMetrics struct {
	ToPickup           RouteLeg
	ToDropoff          RouteLeg
	TotalDistanceMiles float64
}
