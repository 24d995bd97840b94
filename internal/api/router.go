package api

import (
	"net/http"

	"trip-planner-service/internal/api/handlers"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	trips ports.TripRepository,
	logs ports.LogRepository,
	geocoder ports.Geocoder,
	router ports.RouteProvider,
	hos services.HOSConfig,
) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Repo: trips}
	planHandler := &handlers.PlanHandler{
		Trips:    trips,
		Logs:     logs,
		Geocoder: geocoder,
		Router:   router,
		HOS:      hos,
	}
	logHandler := &handlers.LogHandler{Repo: logs}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips", tripHandler.Trips)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/logs", logHandler.Logs)
	mux.HandleFunc("/logs/certify", logHandler.Certify)

	return loggingMiddleware(mux)
}
