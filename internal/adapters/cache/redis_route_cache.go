package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Redis backed cache for computed routes, for deployments where
// several instances share one routing cache. Entries expire after the
// configured TTL.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedRoute struct {
	DistanceMiles float64 `json:"distance_miles"`
	DurationHours float64 `json:"duration_hours"`
	Geometry      string  `json:"geometry"`
}

func routeKey(origin, destination domain.Coordinates) string {
	return "route:" + origin.Key() + "|" + destination.Key()
}

func (c *RedisRouteCache) Get(ctx context.Context, origin, destination domain.Coordinates) (ports.RouteResult, bool, error) {
	val, err := c.client.Get(ctx, routeKey(origin, destination)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.RouteResult{}, false, nil
	}
	if err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	var cached cachedRoute
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return ports.RouteResult{}, false, fmt.Errorf("decode cached route: %w", err)
	}

	return ports.RouteResult{
		DistanceMiles: cached.DistanceMiles,
		DurationHours: cached.DurationHours,
		Geometry:      cached.Geometry,
	}, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, origin, destination domain.Coordinates, route ports.RouteResult) error {
	payload, err := json.Marshal(cachedRoute{
		DistanceMiles: route.DistanceMiles,
		DurationHours: route.DurationHours,
		Geometry:      route.Geometry,
	})
	if err != nil {
		return fmt.Errorf("encode cached route: %w", err)
	}

	if err := c.client.Set(ctx, routeKey(origin, destination), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	return nil
}
