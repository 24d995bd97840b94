package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite backed cache for computed routes, keyed by origin and
// destination coordinates.
type SqliteRouteCache struct {
	DB *sql.DB
}

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

func (c *SqliteRouteCache) Get(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, bool, error) {
	if c.DB == nil {
		return ports.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	row := c.DB.QueryRowContext(ctx, `
	SELECT distance_miles, duration_hours, geometry
	FROM route_cache
	WHERE origin = ? AND destination = ?;
	`, origin.Key(), destination.Key())

	var route ports.RouteResult
	if err := row.Scan(&route.DistanceMiles, &route.DurationHours, &route.Geometry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.RouteResult{}, false, nil
		}
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	return route, true, nil
}

func (c *SqliteRouteCache) Put(ctx context.Context, origin, destination domain.Coordinates, route ports.RouteResult) error {
	if c.DB == nil {
		return errors.New("route cache: db is nil")
	}

	_, err := c.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO route_cache (origin, destination, distance_miles, duration_hours, geometry)
	VALUES (?, ?, ?, ?, ?);
	`, origin.Key(), destination.Key(), route.DistanceMiles, route.DurationHours, route.Geometry)
	if err != nil {
		return fmt.Errorf("insert route cache %s -> %s: %w", origin.Key(), destination.Key(), err)
	}

	return nil
}
