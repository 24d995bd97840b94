package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
)

// Postgres backed cache for geocoded locations.
type SQLGeocodeCache struct {
	DB *sql.DB
}

func NewSQLGeocodeCache(db *sql.DB) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db}
}

func (c *SQLGeocodeCache) Get(ctx context.Context, location string) (domain.Coordinates, bool, error) {
	if c.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	row := c.DB.QueryRowContext(ctx, `
	SELECT lat, lon
	FROM geocode_cache
	WHERE location = $1;
	`, location)

	var coords domain.Coordinates
	if err := row.Scan(&coords.Lat, &coords.Lon); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Coordinates{}, false, nil
		}
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache: %w", err)
	}

	return coords, true, nil
}

func (c *SQLGeocodeCache) Put(ctx context.Context, location string, coords domain.Coordinates) error {
	if c.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	_, err := c.DB.ExecContext(ctx, `
	INSERT INTO geocode_cache (location, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (location) DO UPDATE SET lat = EXCLUDED.lat, lon = EXCLUDED.lon;
	`, location, coords.Lat, coords.Lon)
	if err != nil {
		return fmt.Errorf("insert geocode cache location=%q: %w", location, err)
	}

	return nil
}
