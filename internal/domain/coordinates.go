package domain

import "fmt"

// Immutable geographic coordinates (longitude, latitude) as resolved
// by the geocoding collaborator.
type Coordinates struct {
	Lon float64
	Lat float64
}

// Key returns a stable "lon,lat" form used for cache keys and OSRM
// path segments.
func (c Coordinates) Key() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
