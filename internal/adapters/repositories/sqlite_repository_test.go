package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A pooled :memory: connection would get a fresh empty database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := InitSqliteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func TestSqliteTripRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewSqliteTripRepository(db)
	ctx := context.Background()

	trip := &domain.Trip{
		CurrentLocation:   "Phoenix, AZ",
		PickupLocation:    "Los Angeles, CA",
		DropoffLocation:   "Dallas, TX",
		CurrentCycleHours: 2.5,
	}

	if err := repo.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.ID == "" {
		t.Fatal("expected an assigned trip id")
	}

	got, err := repo.GetTrip(ctx, trip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PickupLocation != trip.PickupLocation || got.CurrentCycleHours != trip.CurrentCycleHours {
		t.Fatalf("trip = %+v, want %+v", got, trip)
	}

	if _, err := repo.GetTrip(ctx, "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	depart := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	stops := []domain.Stop{
		{Location: "Phoenix, AZ", ArrivalTime: depart, DepartureTime: depart, Type: domain.StopTypeStart},
		{Location: "Los Angeles, CA", ArrivalTime: depart.Add(6 * time.Hour), DepartureTime: depart.Add(7 * time.Hour), Type: domain.StopTypePickup, OdometerMiles: 372.5},
	}
	if err := repo.ReplaceStops(ctx, trip.ID, stops); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := repo.ListStops(ctx, trip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(listed))
	}
	if listed[1].Type != domain.StopTypePickup || !listed[1].ArrivalTime.Equal(stops[1].ArrivalTime) {
		t.Fatalf("stop = %+v, want %+v", listed[1], stops[1])
	}
}

func TestSqliteLogRepositoryCertification(t *testing.T) {
	db := newTestDB(t)
	trips := NewSqliteTripRepository(db)
	repo := NewSqliteLogRepository(db)
	ctx := context.Background()

	trip := &domain.Trip{CurrentLocation: "A", PickupLocation: "B", DropoffLocation: "C"}
	if err := trips.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs := []domain.DailyLog{{
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Events: []domain.DutyEvent{{
			Time:     time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			Status:   domain.StatusOnDuty,
			Location: "A",
			Remarks:  "Arrived at start stop",
		}},
		HoursSummary: domain.HoursSummary{OnDutyNotDriving: 1, TotalOnDuty: 1, Total: 1},
		MilesDriven:  0,
	}}

	if err := repo.ReplaceLogs(ctx, trip.ID, logs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := repo.ListLogs(ctx, trip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 log, got %d", len(stored))
	}
	if stored[0].Certified {
		t.Fatal("logs must be stored uncertified")
	}
	if stored[0].HoursSummary.Total != 1 {
		t.Fatalf("summary total = %v, want 1", stored[0].HoursSummary.Total)
	}

	cert := domain.LogCertification{
		LogID:       stored[0].ID,
		DriverID:    "driver-9",
		Certified:   true,
		CertifiedAt: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.ApplyCertification(ctx, cert); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Certification stamps the record without touching computed fields.
	after, err := repo.ListLogs(ctx, trip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !after[0].Certified || after[0].CertifiedBy != "driver-9" {
		t.Fatalf("log = %+v, want certified by driver-9", after[0])
	}
	if after[0].HoursSummary != stored[0].HoursSummary || len(after[0].Events) != len(stored[0].Events) {
		t.Fatal("certification must not change computed log fields")
	}

	missing := domain.LogCertification{LogID: "missing", DriverID: "driver-9", Certified: true, CertifiedAt: cert.CertifiedAt}
	if err := repo.ApplyCertification(ctx, missing); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
