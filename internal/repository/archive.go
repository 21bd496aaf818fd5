package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/marcus-hale/ticket-stubs-tracker/internal/extract"
)

// ArchiveSchema for the local scans table. Call ArchiveStore.Init() or apply
// manually.
const ArchiveSchema = `
CREATE TABLE IF NOT EXISTS scans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_path TEXT NOT NULL,
	transcript TEXT NOT NULL,
	fields_json TEXT NOT NULL,
	scanned_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_scanned_at ON scans(scanned_at);
`

// ArchiveScan is one locally archived parse result.
type ArchiveScan struct {
	ID         int64
	SourcePath string
	Transcript string
	Fields     extract.Fields
	ScannedAt  time.Time
}

// ArchiveStore keeps an offline history of parsed stubs in a SQLite file.
// It backs the CLI, which runs without the Postgres-backed service.
type ArchiveStore struct {
	db *sql.DB
}

// OpenArchive opens (or creates) the SQLite archive at path.
func OpenArchive(path string) (*ArchiveStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	s := &ArchiveStore{db: db}
	if err := s.Init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates the scans table if it doesn't exist.
func (s *ArchiveStore) Init() error {
	if _, err := s.db.Exec(ArchiveSchema); err != nil {
		return fmt.Errorf("init archive schema: %w", err)
	}
	return nil
}

func (s *ArchiveStore) Close() error {
	return s.db.Close()
}

// SaveScan records one parse result.
func (s *ArchiveStore) SaveScan(ctx context.Context, sourcePath, transcript string, fields extract.Fields) (int64, error) {
	fj, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("encode fields: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scans (source_path, transcript, fields_json, scanned_at) VALUES (?, ?, ?, ?)`,
		sourcePath, transcript, string(fj), time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("insert scan: %w", err)
	}
	return res.LastInsertId()
}

// ListScans returns the most recent archived scans, newest first.
func (s *ArchiveStore) ListScans(ctx context.Context, limit int) ([]ArchiveScan, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, transcript, fields_json, scanned_at
		 FROM scans ORDER BY scanned_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var result []ArchiveScan
	for rows.Next() {
		var (
			a  ArchiveScan
			fj string
			ts int64
		)
		if err := rows.Scan(&a.ID, &a.SourcePath, &a.Transcript, &fj, &ts); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(fj), &a.Fields); err != nil {
			return nil, fmt.Errorf("decode fields: %w", err)
		}
		a.ScannedAt = time.Unix(ts, 0)
		result = append(result, a)
	}
	return result, rows.Err()
}
