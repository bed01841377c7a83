// Package journal records successful vault mutations in a SQLite table.
// The journal is observational: the patch pipeline never consults it,
// and file content is always read fresh from disk.
package journal

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS revisions (
	id TEXT PRIMARY KEY,
	path TEXT NOT NULL,
	op TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	size INTEGER NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revisions_path ON revisions(path);
CREATE INDEX IF NOT EXISTS idx_revisions_created_at ON revisions(created_at);
`

// Op names the mutation that produced a revision.
type Op string

const (
	OpCreate  Op = "create"
	OpReplace Op = "replace"
	OpPatch   Op = "patch"
)

// Entry is one recorded revision of a vault file.
type Entry struct {
	ID          string `db:"id" json:"id"`
	Path        string `db:"path" json:"path"`
	Op          Op     `db:"op" json:"op"`
	Fingerprint string `db:"fingerprint" json:"fingerprint"`
	Size        int64  `db:"size" json:"size"`
	CreatedAt   string `db:"created_at" json:"createdAt"`
}

// Service provides access to the revision journal.
type Service struct {
	db *sqlx.DB
}

// NewService initializes the journal schema on an open database.
func NewService(db *sqlx.DB) (*Service, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("initialize journal schema: %w", err)
	}
	return &Service{db: db}, nil
}

// Record appends one revision and returns it with its generated id and
// timestamp filled in.
func (s *Service) Record(path string, op Op, fingerprint string, size int64) (*Entry, error) {
	entry := &Entry{
		ID:          uuid.NewString(),
		Path:        path,
		Op:          op,
		Fingerprint: fingerprint,
		Size:        size,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}

	_, err := s.db.Exec(
		`INSERT INTO revisions (id, path, op, fingerprint, size, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Path, entry.Op, entry.Fingerprint, entry.Size, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("record revision for %s: %w", path, err)
	}

	return entry, nil
}

// List returns the most recent revisions, newest first, optionally
// filtered to a single path. limit values outside 1..500 are clamped.
func (s *Service) List(path string, limit int) ([]*Entry, error) {
	if limit < 1 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}

	var entries []*Entry
	var err error
	// rowid breaks ties between entries written in the same nanosecond
	if path != "" {
		err = s.db.Select(&entries,
			`SELECT id, path, op, fingerprint, size, created_at FROM revisions
			 WHERE path = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`, path, limit)
	} else {
		err = s.db.Select(&entries,
			`SELECT id, path, op, fingerprint, size, created_at FROM revisions
			 ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	if entries == nil {
		entries = []*Entry{}
	}
	return entries, nil
}
