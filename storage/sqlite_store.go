package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore archives one normalized record per report run, keyed by
// (year, month). Re-running a month replaces its record.
type SQLiteStore struct {
	db *sql.DB
}

var ErrReportNotFound = errors.New("report not found")

// ReportRow is one archived report run.
type ReportRow struct {
	ID         int64
	ReportID   string
	Year       int
	Month      int
	ReportDate string
	Payload    []byte
	CreatedAt  string
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	report_id TEXT NOT NULL,
	year INTEGER NOT NULL CHECK(year > 0),
	month INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
	report_date TEXT NOT NULL,
	payload TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(year, month)
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveReport inserts or replaces the archived record for one report month.
func (s *SQLiteStore) SaveReport(year, month int, reportID, reportDate string, payload []byte) error {
	const query = `
INSERT INTO reports (report_id, year, month, report_date, payload)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(year, month) DO UPDATE SET
	report_id = excluded.report_id,
	report_date = excluded.report_date,
	payload = excluded.payload,
	created_at = CURRENT_TIMESTAMP;
`
	if _, err := s.db.Exec(query, reportID, year, month, reportDate, string(payload)); err != nil {
		return fmt.Errorf("save report %d-%02d: %w", year, month, err)
	}
	return nil
}

// GetReport returns the archived record for one report month.
func (s *SQLiteStore) GetReport(year, month int) (*ReportRow, error) {
	const query = `
SELECT id, report_id, year, month, report_date, payload, created_at
FROM reports
WHERE year = ? AND month = ?;
`
	row := s.db.QueryRow(query, year, month)

	var report ReportRow
	var payload string
	err := row.Scan(&report.ID, &report.ReportID, &report.Year, &report.Month, &report.ReportDate, &payload, &report.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get report %d-%02d: %w", year, month, err)
	}
	report.Payload = []byte(payload)
	return &report, nil
}

// ListReports returns all archived runs, newest report month first.
func (s *SQLiteStore) ListReports() ([]ReportRow, error) {
	const query = `
SELECT id, report_id, year, month, report_date, payload, created_at
FROM reports
ORDER BY year DESC, month DESC;
`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := make([]ReportRow, 0, 16)
	for rows.Next() {
		var report ReportRow
		var payload string
		if err := rows.Scan(&report.ID, &report.ReportID, &report.Year, &report.Month, &report.ReportDate, &payload, &report.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		report.Payload = []byte(payload)
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report rows: %w", err)
	}

	return reports, nil
}
