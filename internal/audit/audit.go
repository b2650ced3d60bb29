package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Logger keeps an append-only record of analysis runs in SQLite. Entries
// hold run metadata only: contract text, clause text, and extracted
// entities are never written here, so the log is safe to retain and
// share for billing or review.
type Logger struct {
	db *sql.DB
}

// Entry is one analysis run
type Entry struct {
	ID           int64     `json:"id"`
	RunID        string    `json:"run_id"`
	FileName     string    `json:"file_name"`
	ContractType string    `json:"contract_type"`
	RiskLevel    string    `json:"risk_level"`
	RiskScore    float64   `json:"risk_score"`
	RiskCount    int       `json:"risk_count"`
	ClauseCount  int       `json:"clause_count"`
	Timestamp    time.Time `json:"timestamp"`
}

// Open creates or opens the audit database at path
func Open(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create audit dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS analysis_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		file_name TEXT,
		contract_type TEXT,
		risk_level TEXT,
		risk_score REAL,
		risk_count INTEGER,
		clause_count INTEGER,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit table: %w", err)
	}

	return &Logger{db: db}, nil
}

// Record appends one entry. A nil logger is a no-op so callers can
// disable auditing without branching.
func (l *Logger) Record(e Entry) error {
	if l == nil || l.db == nil {
		return nil
	}
	_, err := l.db.Exec(
		`INSERT INTO analysis_log (run_id, file_name, contract_type, risk_level, risk_score, risk_count, clause_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.RunID, e.FileName, e.ContractType, e.RiskLevel, e.RiskScore, e.RiskCount, e.ClauseCount,
	)
	if err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first
func (l *Logger) Recent(limit int) ([]Entry, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.Query(
		`SELECT id, run_id, file_name, contract_type, risk_level, risk_score, risk_count, clause_count, timestamp
		 FROM analysis_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.RunID, &e.FileName, &e.ContractType, &e.RiskLevel,
			&e.RiskScore, &e.RiskCount, &e.ClauseCount, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database
func (l *Logger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}
