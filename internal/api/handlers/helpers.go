package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode response failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps service failure categories to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrGeocodingUnavailable), errors.Is(err, services.ErrRoutingUnavailable):
		writeError(w, r, http.StatusBadGateway, err.Error())
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func logToResponse(l domain.DailyLog) dto.LogResponse {
	res := dto.LogResponse{
		ID:     l.ID,
		Date:   l.Date.Format("2006-01-02"),
		Events: make([]dto.EventResponse, 0, len(l.Events)),
		HoursSummary: dto.HoursSummaryResponse{
			Driving:          l.HoursSummary.Driving,
			OnDutyNotDriving: l.HoursSummary.OnDutyNotDriving,
			SleeperBerth:     l.HoursSummary.SleeperBerth,
			OffDuty:          l.HoursSummary.OffDuty,
			TotalOnDuty:      l.HoursSummary.TotalOnDuty,
			Total:            l.HoursSummary.Total,
		},
		Violations:  make([]dto.ViolationResponse, 0, len(l.Violations)),
		MilesDriven: l.MilesDriven,
		Certified:   l.Certified,
		CertifiedBy: l.CertifiedBy,
		CertifiedAt: l.CertifiedAt,
	}
	for _, ev := range l.Events {
		res.Events = append(res.Events, dto.EventResponse{
			Time:          ev.Time,
			Status:        string(ev.Status),
			Location:      ev.Location,
			OdometerMiles: ev.OdometerMiles,
			Remarks:       ev.Remarks,
		})
	}
	for _, v := range l.Violations {
		res.Violations = append(res.Violations, dto.ViolationResponse{Kind: v.Kind, Limit: v.Limit, Actual: v.Actual})
	}
	return res
}
