package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
)

// SQLite backed cache for geocoded locations. Keys are expected to be
// already normalized by the caller.
type SqliteGeocodeCache struct {
	DB *sql.DB
}

func NewSqliteGeocodeCache(db *sql.DB) *SqliteGeocodeCache {
	return &SqliteGeocodeCache{DB: db}
}

func (c *SqliteGeocodeCache) Get(ctx context.Context, location string) (domain.Coordinates, bool, error) {
	if c.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	row := c.DB.QueryRowContext(ctx, `
	SELECT lat, lon
	FROM geocode_cache
	WHERE location = ?;
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

func (c *SqliteGeocodeCache) Put(ctx context.Context, location string, coords domain.Coordinates) error {
	if c.DB == nil {
		return errors.New("geocode cache: db is nil")
	}

	_, err := c.DB.ExecContext(ctx, `
	INSERT OR REPLACE INTO geocode_cache (location, lat, lon)
	VALUES (?, ?, ?);
	`, location, coords.Lat, coords.Lon)
	if err != nil {
		return fmt.Errorf("insert geocode cache location=%q: %w", location, err)
	}

	return nil
}
