// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history journals operation runs in a SQLite database so a user
// can see what was done, to which files, and with what outcome.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// DefaultLimit bounds List when no limit is given.
const DefaultLimit = 20

// listSep joins file names in a single column. It cannot appear in a path.
const listSep = "\x00"

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at path, creating its
// directory and schema when missing.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation TEXT NOT NULL,
			inputs TEXT NOT NULL,
			outputs TEXT NOT NULL,
			status TEXT NOT NULL,
			message TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores rec and returns it with its assigned ID.
func (s *Store) Record(ctx context.Context, rec types.HistoryRecord) (types.HistoryRecord, error) {
	if rec.Operation == "" {
		return rec, fmt.Errorf("history record has no operation")
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (operation, inputs, outputs, status, message, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Operation,
		strings.Join(rec.Inputs, listSep),
		strings.Join(rec.Outputs, listSep),
		string(rec.Status),
		rec.Message,
		rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return rec, fmt.Errorf("inserting history record: %w", err)
	}
	if rec.ID, err = res.LastInsertId(); err != nil {
		return rec, fmt.Errorf("reading record id: %w", err)
	}
	return rec, nil
}

// List returns up to limit records, newest first. A limit <= 0 uses
// DefaultLimit.
func (s *Store) List(ctx context.Context, limit int) ([]types.HistoryRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, operation, inputs, outputs, status, message, started_at, duration_ms
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.HistoryRecord
	for rows.Next() {
		var (
			rec             types.HistoryRecord
			inputs, outputs string
			status          string
			message         sql.NullString
			startedAt       string
			durationMS      int64
		)
		if err := rows.Scan(&rec.ID, &rec.Operation, &inputs, &outputs, &status, &message, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Inputs = splitList(inputs)
		rec.Outputs = splitList(outputs)
		rec.Status = types.HistoryStatus(status)
		rec.Message = message.String
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, fmt.Errorf("parsing start time of record %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes every record and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}

// ExportYAML writes up to limit records, newest first, to w as YAML.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, limit int) error {
	records, err := s.List(ctx, limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []types.HistoryRecord{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, listSep)
}

// StatusOf derives the journal status of a batch.
func StatusOf(res types.BatchResult) types.HistoryStatus {
	switch {
	case res.Failed == 0:
		return types.StatusOK
	case res.Succeeded == 0:
		return types.StatusFailed
	default:
		return types.StatusPartial
	}
}
