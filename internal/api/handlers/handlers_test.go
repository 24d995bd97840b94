package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// fakeLogRepository records certifications against an in-memory log set.
type fakeLogRepository struct {
	logs  map[string][]domain.DailyLog
	certs []domain.LogCertification
}

func (f *fakeLogRepository) ReplaceLogs(ctx context.Context, tripID string, logs []domain.DailyLog) error {
	if f.logs == nil {
		f.logs = make(map[string][]domain.DailyLog)
	}
	f.logs[tripID] = logs
	return nil
}

func (f *fakeLogRepository) ListLogs(ctx context.Context, tripID string) ([]domain.DailyLog, error) {
	return f.logs[tripID], nil
}

func (f *fakeLogRepository) ApplyCertification(ctx context.Context, cert domain.LogCertification) error {
	for _, logs := range f.logs {
		for i := range logs {
			if logs[i].ID == cert.LogID {
				f.certs = append(f.certs, cert)
				return nil
			}
		}
	}
	return ports.ErrNotFound
}

func TestLogHandlerListsLogsByTrip(t *testing.T) {
	repo := &fakeLogRepository{logs: map[string][]domain.DailyLog{
		"trip-1": {{
			ID:          "log-1",
			Date:        time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			MilesDriven: 393.8,
		}},
	}}
	h := &LogHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/logs?trip_id=trip-1", nil)
	rec := httptest.NewRecorder()
	h.Logs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Logs []struct {
			ID   string `json:"id"`
			Date string `json:"date"`
		} `json:"logs"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Logs) != 1 || body.Logs[0].ID != "log-1" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Logs[0].Date != "2026-01-05" {
		t.Fatalf("date = %q, want 2026-01-05", body.Logs[0].Date)
	}
}

func TestLogHandlerRequiresTripID(t *testing.T) {
	h := &LogHandler{Repo: &fakeLogRepository{}}

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	rec := httptest.NewRecorder()
	h.Logs(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogHandlerCertify(t *testing.T) {
	repo := &fakeLogRepository{logs: map[string][]domain.DailyLog{
		"trip-1": {{ID: "log-1"}},
	}}
	h := &LogHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodPost, "/logs/certify",
		strings.NewReader(`{"log_id":"log-1","driver_id":"driver-7"}`))
	rec := httptest.NewRecorder()
	h.Certify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(repo.certs) != 1 || repo.certs[0].LogID != "log-1" || !repo.certs[0].Certified {
		t.Fatalf("recorded certifications = %+v", repo.certs)
	}

	var body struct {
		LogID     string `json:"log_id"`
		DriverID  string `json:"driver_id"`
		Certified bool   `json:"certified"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.LogID != "log-1" || body.DriverID != "driver-7" || !body.Certified {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestLogHandlerCertifyErrors(t *testing.T) {
	repo := &fakeLogRepository{logs: map[string][]domain.DailyLog{
		"trip-1": {{ID: "log-1"}},
	}}
	h := &LogHandler{Repo: repo}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"missing log id", `{"driver_id":"driver-7"}`, http.StatusBadRequest},
		{"missing driver id", `{"log_id":"log-1"}`, http.StatusBadRequest},
		{"unknown log", `{"log_id":"nope","driver_id":"driver-7"}`, http.StatusNotFound},
		{"malformed json", `{`, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/logs/certify", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			h.Certify(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
