package main

import (
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"trip-planner-service/internal/adapters/repositories"
	"trip-planner-service/internal/platform/db"
)

// dbtool prepares a Postgres database for the server: it creates the
// trip, stop, log and cache tables when they do not exist yet.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer pg.Close()

	log.Info().Msg("initializing database schema")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	log.Info().Msg("schema ready")
}
