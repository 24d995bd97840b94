package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// TripHandler exposes trip creation and retrieval endpoints.
type TripHandler struct {
	Repo ports.TripRepository
}

func (h *TripHandler) Trips(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *TripHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	current := strings.TrimSpace(req.CurrentLocation)
	pickup := strings.TrimSpace(req.PickupLocation)
	dropoff := strings.TrimSpace(req.DropoffLocation)
	if current == "" || pickup == "" || dropoff == "" {
		writeError(w, r, http.StatusBadRequest, "current, pickup and dropoff locations are required")
		return
	}
	if req.CurrentCycleHours < 0 {
		writeError(w, r, http.StatusBadRequest, "current_cycle_hours must not be negative")
		return
	}

	trip := &domain.Trip{
		CurrentLocation:   current,
		PickupLocation:    pickup,
		DropoffLocation:   dropoff,
		CurrentCycleHours: req.CurrentCycleHours,
	}

	if err := h.Repo.CreateTrip(r.Context(), trip); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, tripToResponse(trip))
}

func (h *TripHandler) list(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, trip := range trips {
		res.Trips = append(res.Trips, tripToResponse(trip))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func tripToResponse(trip *domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		ID:                trip.ID,
		CurrentLocation:   trip.CurrentLocation,
		PickupLocation:    trip.PickupLocation,
		DropoffLocation:   trip.DropoffLocation,
		CurrentCycleHours: trip.CurrentCycleHours,
		CreatedAt:         trip.CreatedAt,
	}
}
