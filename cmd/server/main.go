package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/adapters/geocode"
	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/adapters/routing"
	"trip-planner-service/internal/api"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/platform/db"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, OpenCage, OSRM)
// behind ports and starts the HTTP server.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	osrmBase := config.Get("OSRM_BASE_URL", "")

	opencageKey := os.Getenv("OPENCAGE_API_KEY")
	if strings.TrimSpace(opencageKey) == "" {
		log.Fatal().Msg("OPENCAGE_API_KEY is required")
	}

	trips, logs, geocodeCache, routeCache, closeDB := openStore()
	defer closeDB()

	// REDIS_URL swaps the persistent route cache for a shared TTL'd one,
	// useful when several instances plan against the same OSRM server.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		routeCache = cache.NewRedisRouteCache(redis.NewClient(opts), 24*time.Hour)
		log.Info().Msg("route cache: redis")
	}

	geocoder, err := geocode.NewOpenCageGeocoder(opencageKey, geocodeCache)
	if err != nil {
		log.Fatal().Err(err).Msg("init geocoder")
	}
	router := routing.NewOSRMRouter(osrmBase, routeCache)

	handler := api.NewRouter(trips, logs, geocoder, router, services.DefaultHOSConfig())

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

// openStore picks Postgres when DATABASE_URL is set, SQLite otherwise.
// Both back the same ports, so the rest of the process never knows which.
func openStore() (ports.TripRepository, ports.LogRepository, geocode.Cache, routing.Cache, func()) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres")
		}
		if err := repositories.InitPostgresSchema(pg); err != nil {
			log.Fatal().Err(err).Msg("init postgres schema")
		}
		log.Info().Msg("store: postgres")
		return repositories.NewPostgresTripRepository(pg),
			repositories.NewPostgresLogRepository(pg),
			cache.NewSQLGeocodeCache(pg),
			cache.NewSQLRouteCache(pg),
			func() { pg.Close() }
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	sq, err := openSqlite(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("open sqlite")
	}
	if err := repositories.InitSqliteSchema(sq); err != nil {
		log.Fatal().Err(err).Msg("init sqlite schema")
	}
	log.Info().Str("path", dbPath).Msg("store: sqlite")
	return repositories.NewSqliteTripRepository(sq),
		repositories.NewSqliteLogRepository(sq),
		cache.NewSqliteGeocodeCache(sq),
		cache.NewSqliteRouteCache(sq),
		func() { sq.Close() }
}

func openSqlite(dbPath string) (*sql.DB, error) {
	sq, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := sq.Ping(); err != nil {
		return nil, err
	}

	return sq, nil
}
