package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"fundtracker/internal/domain"
	"time"
)

type ReportArchiveRepository interface {
	// Add stores the report keyed by month. Regenerating a month
	// replaces the archived copy.
	Add(report domain.MonthlyReport) error
	Get(month string) (*domain.MonthlyReport, error)
}

type reportArchiveRepositoryHandler struct {
	Db *sql.DB
}

func NewReportArchiveRepository(db *sql.DB) ReportArchiveRepository {
	return reportArchiveRepositoryHandler{db}
}

func (h reportArchiveRepositoryHandler) Add(report domain.MonthlyReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = h.Db.Exec(
		`INSERT OR REPLACE INTO monthly_report(report_id, month, payload, generated_at)
		VALUES(?,?,?,?)`,
		report.ID.String(), report.Month, string(payload),
		report.GeneratedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}

	return nil
}

func (h reportArchiveRepositoryHandler) Get(month string) (*domain.MonthlyReport, error) {
	var payload string
	err := h.Db.QueryRow(
		`SELECT payload FROM monthly_report WHERE month = ?`, month,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archived report: %w", err)
	}

	report := domain.MonthlyReport{}
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal archived report: %w", err)
	}

	return &report, nil
}
