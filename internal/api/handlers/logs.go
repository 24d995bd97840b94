package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/ports"
	"trip-planner-service/internal/services"
)

// LogHandler serves stored daily logs and records certifications.
type LogHandler struct {
	Repo ports.LogRepository
}

func (h *LogHandler) Logs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	tripID := strings.TrimSpace(r.URL.Query().Get("trip_id"))
	if tripID == "" {
		writeError(w, r, http.StatusBadRequest, "trip_id query parameter is required")
		return
	}

	logs, err := h.Repo.ListLogs(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListLogsResponse{Logs: make([]dto.LogResponse, 0, len(logs))}
	for _, l := range logs {
		res.Logs = append(res.Logs, logToResponse(l))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *LogHandler) Certify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.CertifyRequest
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	cert, err := services.CertifyLog(req.LogID, req.DriverID, time.Now().UTC())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.Repo.ApplyCertification(r.Context(), cert); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CertifyResponse{
		LogID:             cert.LogID,
		DriverID:          cert.DriverID,
		Certified:         cert.Certified,
		CertificationTime: cert.CertifiedAt,
	})
}
