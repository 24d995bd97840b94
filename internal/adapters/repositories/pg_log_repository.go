package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Postgres backed store for daily ELD logs.
type PostgresLogRepository struct {
	DB *sql.DB
}

func NewPostgresLogRepository(db *sql.DB) *PostgresLogRepository {
	return &PostgresLogRepository{DB: db}
}

func (r *PostgresLogRepository) ReplaceLogs(ctx context.Context, tripID string, logs []domain.DailyLog) error {
	if r.DB == nil {
		return errors.New("log repository: db is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace logs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM eld_logs WHERE trip_id = $1;`, tripID); err != nil {
		return fmt.Errorf("replace logs: clear previous: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO eld_logs (id, trip_id, log_date, log_data, certified)
	VALUES ($1, $2, $3, $4, FALSE);
	`)
	if err != nil {
		return fmt.Errorf("replace logs: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range logs {
		if logs[i].ID == "" {
			logs[i].ID = uuid.NewString()
		}

		data, err := encodeLogData(logs[i])
		if err != nil {
			return fmt.Errorf("replace logs: %w", err)
		}

		if _, err := stmt.ExecContext(ctx, logs[i].ID, tripID, logs[i].Date, string(data)); err != nil {
			return fmt.Errorf("replace logs: insert date=%s: %w", logs[i].Date.Format(dateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace logs: commit: %w", err)
	}

	return nil
}

func (r *PostgresLogRepository) ListLogs(ctx context.Context, tripID string) ([]domain.DailyLog, error) {
	if r.DB == nil {
		return nil, errors.New("log repository: db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT id, log_date, log_data, certified, certified_by, certified_at
	FROM eld_logs
	WHERE trip_id = $1
	ORDER BY log_date;
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list logs: query: %w", err)
	}
	defer rows.Close()

	logs := []domain.DailyLog{}
	for rows.Next() {
		var log domain.DailyLog
		var data string
		var certifiedBy sql.NullString
		var certifiedAt sql.NullTime
		if err := rows.Scan(&log.ID, &log.Date, &data, &log.Certified, &certifiedBy, &certifiedAt); err != nil {
			return nil, fmt.Errorf("list logs: scan: %w", err)
		}

		if err := decodeLogData([]byte(data), &log); err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}

		if certifiedBy.Valid {
			log.CertifiedBy = certifiedBy.String
		}
		if certifiedAt.Valid {
			at := certifiedAt.Time
			log.CertifiedAt = &at
		}

		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs: row iteration: %w", err)
	}

	return logs, nil
}

func (r *PostgresLogRepository) ApplyCertification(ctx context.Context, cert domain.LogCertification) error {
	if r.DB == nil {
		return errors.New("log repository: db is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE eld_logs
	SET certified = TRUE, certified_by = $1, certified_at = $2
	WHERE id = $3;
	`, cert.DriverID, cert.CertifiedAt, cert.LogID)
	if err != nil {
		return fmt.Errorf("certify log %q: %w", cert.LogID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("certify log %q: rows affected: %w", cert.LogID, err)
	}
	if affected == 0 {
		return fmt.Errorf("certify log %q: %w", cert.LogID, ports.ErrNotFound)
	}

	return nil
}
