package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func newTestCache(t *testing.T) *RedisRouteCache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRouteCache(client, time.Hour)
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	origin := domain.Coordinates{Lon: -112.074, Lat: 33.4484}
	destination := domain.Coordinates{Lon: -118.2437, Lat: 34.0522}

	route := ports.RouteResult{
		DistanceMiles: 372.5,
		DurationHours: 5.75,
		Geometry:      `{"type":"LineString"}`,
	}

	if err := c.Put(ctx, origin, destination, route); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, origin, destination)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != route {
		t.Fatalf("cached route = %+v, want %+v", got, route)
	}
}

func TestRedisRouteCacheMiss(t *testing.T) {
	c := newTestCache(t)

	_, ok, err := c.Get(context.Background(), domain.Coordinates{Lon: 1, Lat: 2}, domain.Coordinates{Lon: 3, Lat: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}
