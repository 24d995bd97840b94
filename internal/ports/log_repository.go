package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for persisting daily logs and certification stamps.
type LogRepository interface {
	// Replace a trip's daily logs with a freshly synthesized set.
	ReplaceLogs(ctx context.Context, tripID string, logs []domain.DailyLog) error
	// Retrieve a trip's daily logs ordered by date.
	ListLogs(ctx context.Context, tripID string) ([]domain.DailyLog, error)
	// Stamp a stored log as certified. The log's computed fields are
	// left untouched; re-applying overwrites the stamp.
	ApplyCertification(ctx context.Context, cert domain.LogCertification) error
}
