package repository

import (
	"database/sql"
	"fmt"
)

// InitSchema creates every table the repositories expect. Statements are
// idempotent so callers run it on every startup.
func InitSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fund_catalog(
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			pinyin TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS api_request(
			request_id TEXT PRIMARY KEY,
			ip_address TEXT,
			method TEXT NOT NULL,
			route TEXT NOT NULL,
			request_body TEXT,
			start_ts TEXT NOT NULL,
			duration_ms INTEGER,
			status_code INTEGER,
			response_body TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS latency_tracking(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			request_id TEXT,
			processing_times TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_report(
			report_id TEXT PRIMARY KEY,
			month TEXT NOT NULL UNIQUE,
			payload TEXT NOT NULL,
			generated_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}

	return nil
}
