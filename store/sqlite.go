package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/speakwise/analyzer/orchestrator"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps reports as JSON documents with indexed owner and time columns.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store: empty path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		overall_score INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		body TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_user_created ON reports(user_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Save(ctx context.Context, r orchestrator.Report) (string, error) {
	r.ID = newID()
	body, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO reports (id, user_id, overall_score, created_at, body) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.OverallScore, r.CreatedAt.UTC().Format(timeLayout), string(body),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}
	return r.ID, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (orchestrator.Report, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return orchestrator.Report{}, ErrNotFound
	}
	if err != nil {
		return orchestrator.Report{}, fmt.Errorf("failed to query report: %w", err)
	}
	var r orchestrator.Report
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return orchestrator.Report{}, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	return r, nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string, limit int) ([]orchestrator.Report, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT body FROM reports WHERE user_id = ? ORDER BY created_at DESC, id ASC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	out := []orchestrator.Report{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var r orchestrator.Report
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) Close() error { return s.db.Close() }
