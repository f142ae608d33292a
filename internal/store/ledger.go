// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SyncRecord is one ledger row: a single document synced into the content
// store.
type SyncRecord struct {
	DocName      string    `json:"doc_name"`
	ContentKey   string    `json:"content_key"`
	FileModTime  string    `json:"file_mod_time"`
	SectionCount int       `json:"section_count"`
	ImageCount   int       `json:"image_count"`
	SyncedAt     time.Time `json:"synced_at"`
}

// Ledger is the SQLite sync ledger backing incremental extraction.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func OpenLedger(path string) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS syncs (
			doc_name TEXT PRIMARY KEY,
			content_key TEXT NOT NULL,
			file_mod_time TEXT NOT NULL,
			section_count INTEGER NOT NULL,
			image_count INTEGER NOT NULL,
			synced_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_syncs_content_key ON syncs(content_key)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Unchanged reports whether docName was last synced with exactly modTime.
// Unknown documents report false.
func (l *Ledger) Unchanged(ctx context.Context, docName, modTime string) (bool, error) {
	var stored string
	err := l.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM syncs WHERE doc_name = ?`, docName,
	).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying sync ledger: %w", err)
	}
	return stored == modTime, nil
}

// RecordSync upserts the ledger row for rec.DocName. A zero SyncedAt is
// filled with the current time.
func (l *Ledger) RecordSync(ctx context.Context, rec SyncRecord) error {
	syncedAt := rec.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now().UTC()
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO syncs (doc_name, content_key, file_mod_time, section_count, image_count, synced_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(doc_name) DO UPDATE SET
			content_key=excluded.content_key, file_mod_time=excluded.file_mod_time,
			section_count=excluded.section_count, image_count=excluded.image_count,
			synced_at=excluded.synced_at`,
		rec.DocName, rec.ContentKey, rec.FileModTime, rec.SectionCount, rec.ImageCount,
		syncedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording sync: %w", err)
	}
	return nil
}

// History returns all ledger rows, most recently synced first.
func (l *Ledger) History(ctx context.Context) ([]SyncRecord, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT doc_name, content_key, file_mod_time, section_count, image_count, synced_at
		 FROM syncs ORDER BY synced_at DESC, doc_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sync history: %w", err)
	}
	defer rows.Close()

	var records []SyncRecord
	for rows.Next() {
		var rec SyncRecord
		var syncedAt string
		if err := rows.Scan(&rec.DocName, &rec.ContentKey, &rec.FileModTime,
			&rec.SectionCount, &rec.ImageCount, &syncedAt); err != nil {
			return nil, fmt.Errorf("scanning sync record: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, syncedAt); err == nil {
			rec.SyncedAt = ts
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// FormatModTime renders a file modification time the way the ledger stores
// it. Comparisons are string equality, so every caller must format through
// here.
func FormatModTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
