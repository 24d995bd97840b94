package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SQLite backed store for daily ELD logs. The computed log content is
// stored as a JSON document; certification stamps live in their own
// columns so applying one never rewrites the document.
type SqliteLogRepository struct {
	DB *sql.DB
}

func NewSqliteLogRepository(db *sql.DB) *SqliteLogRepository {
	return &SqliteLogRepository{DB: db}
}

func (r *SqliteLogRepository) ReplaceLogs(ctx context.Context, tripID string, logs []domain.DailyLog) error {
	if r.DB == nil {
		return errors.New("log repository: db is nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace logs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM eld_logs WHERE trip_id = ?;`, tripID); err != nil {
		return fmt.Errorf("replace logs: clear previous: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO eld_logs (id, trip_id, log_date, log_data, certified)
	VALUES (?, ?, ?, ?, 0);
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

		if _, err := stmt.ExecContext(ctx, logs[i].ID, tripID, logs[i].Date.Format(dateLayout), string(data)); err != nil {
			return fmt.Errorf("replace logs: insert date=%s: %w", logs[i].Date.Format(dateLayout), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace logs: commit: %w", err)
	}

	return nil
}

func (r *SqliteLogRepository) ListLogs(ctx context.Context, tripID string) ([]domain.DailyLog, error) {
	if r.DB == nil {
		return nil, errors.New("log repository: db is nil")
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT id, log_date, log_data, certified, certified_by, certified_at
	FROM eld_logs
	WHERE trip_id = ?
	ORDER BY log_date;
	`, tripID)
	if err != nil {
		return nil, fmt.Errorf("list logs: query: %w", err)
	}
	defer rows.Close()

	logs := []domain.DailyLog{}
	for rows.Next() {
		var log domain.DailyLog
		var date, data string
		var certified int
		var certifiedBy, certifiedAt sql.NullString
		if err := rows.Scan(&log.ID, &date, &data, &certified, &certifiedBy, &certifiedAt); err != nil {
			return nil, fmt.Errorf("list logs: scan: %w", err)
		}

		if log.Date, err = time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("list logs: parse date: %w", err)
		}
		if err := decodeLogData([]byte(data), &log); err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}

		log.Certified = certified != 0
		if certifiedBy.Valid {
			log.CertifiedBy = certifiedBy.String
		}
		if certifiedAt.Valid {
			at, err := time.Parse(time.RFC3339Nano, certifiedAt.String)
			if err != nil {
				return nil, fmt.Errorf("list logs: parse certified_at: %w", err)
			}
			log.CertifiedAt = &at
		}

		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs: row iteration: %w", err)
	}

	return logs, nil
}

func (r *SqliteLogRepository) ApplyCertification(ctx context.Context, cert domain.LogCertification) error {
	if r.DB == nil {
		return errors.New("log repository: db is nil")
	}

	res, err := r.DB.ExecContext(ctx, `
	UPDATE eld_logs
	SET certified = 1, certified_by = ?, certified_at = ?
	WHERE id = ?;
	`, cert.DriverID, cert.CertifiedAt.Format(time.RFC3339Nano), cert.LogID)
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
