package services

import (
	"errors"
	"testing"
	"time"
)

func TestCertifyLog(t *testing.T) {
	now := time.Date(2026, 4, 2, 17, 30, 0, 0, time.UTC)

	cert, err := CertifyLog("log-1", "driver-7", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cert.LogID != "log-1" || cert.DriverID != "driver-7" {
		t.Fatalf("certification = %+v", cert)
	}
	if !cert.Certified {
		t.Fatal("certification must be marked certified")
	}
	if !cert.CertifiedAt.Equal(now) {
		t.Fatalf("certified at %v, want %v", cert.CertifiedAt, now)
	}

	// Re-certifying is a pure re-stamp: same inputs, same result.
	again, err := CertifyLog("log-1", "driver-7", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != cert {
		t.Fatalf("re-certification = %+v, want %+v", again, cert)
	}
}

func TestCertifyLogRequiresIdentifiers(t *testing.T) {
	now := time.Now()

	if _, err := CertifyLog("", "driver-7", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if _, err := CertifyLog("log-1", "", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
