package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// PlanHandler runs the full planning pipeline for a stored trip and
// persists the resulting stops and daily logs.
type PlanHandler struct {
	Trips    ports.TripRepository
	Logs     ports.LogRepository
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
	HOS      services.HOSConfig
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.TripID) == "" {
		writeError(w, r, http.StatusBadRequest, "trip_id is required")
		return
	}

	trip, err := h.Trips.GetTrip(r.Context(), req.TripID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	departAt := time.Now().UTC()
	if req.DepartAt != nil {
		departAt = req.DepartAt.UTC()
	}

	plan, err := services.PlanTrip(r.Context(), *trip, departAt, h.HOS, h.Geocoder, h.Router)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Trips.ReplaceStops(r.Context(), trip.ID, plan.Stops); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := h.Logs.ReplaceLogs(r.Context(), trip.ID, plan.Logs); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logs, err := h.Logs.ListLogs(r.Context(), trip.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, planToResponse(trip.ID, plan, logs))
}

func planToResponse(tripID string, plan *services.TripPlan, logs []domain.DailyLog) dto.PlanResponse {
	res := dto.PlanResponse{
		TripID:             tripID,
		TotalDistanceMiles: plan.Legs.TotalDistanceMiles,
		Legs: []dto.LegResponse{
			legToResponse(plan.Legs.ToPickup),
			legToResponse(plan.Legs.ToDropoff),
		},
		Stops: make([]dto.StopResponse, 0, len(plan.Stops)),
		Logs:  make([]dto.LogResponse, 0, len(logs)),
	}
	for _, s := range plan.Stops {
		res.Stops = append(res.Stops, dto.StopResponse{
			Location:      s.Location,
			ArrivalTime:   s.ArrivalTime,
			DepartureTime: s.DepartureTime,
			StopType:      string(s.Type),
			OdometerMiles: s.OdometerMiles,
		})
	}
	for _, l := range logs {
		res.Logs = append(res.Logs, logToResponse(l))
	}
	return res
}

func legToResponse(leg domain.RouteLeg) dto.LegResponse {
	return dto.LegResponse{
		Origin:        leg.Origin,
		Destination:   leg.Destination,
		DistanceMiles: leg.DistanceMiles,
		DurationHours: leg.DurationHours,
	}
}
