package services

import (
	"fmt"
	"time"

	"trip-planner-service/internal/domain"
)

// CertifyLog stamps a daily log as reviewed by the driver. It is a
// pure record-stamping action: none of the log's computed fields are
// touched, and re-certifying yields the same shape with a fresh
// timestamp. The clock is a parameter for reproducibility.
func CertifyLog(logID, driverID string, now time.Time) (domain.LogCertification, error) {
	if logID == "" {
		return domain.LogCertification{}, fmt.Errorf("%w: log id is required", ErrValidation)
	}
	if driverID == "" {
		return domain.LogCertification{}, fmt.Errorf("%w: driver id is required", ErrValidation)
	}

	return domain.LogCertification{
		LogID:       logID,
		DriverID:    driverID,
		Certified:   true,
		CertifiedAt: now,
	}, nil
}
