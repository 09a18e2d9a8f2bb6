// Package store persists UsefulnessReport summaries in a local SQLite
// database, keyed by a content hash of a match expression's arm patterns.
// The CLI writes a summary after each analysis; it does not look the cache
// up before analyzing, so every run re-analyzes every match expression.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // SQLite driver
)

// Cache wraps a *sql.DB holding one table of cached analysis results.
type Cache struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS usefulness_reports (
	id          TEXT PRIMARY KEY,
	content_key TEXT UNIQUE NOT NULL,
	arm_count   INTEGER NOT NULL,
	reachable   INTEGER NOT NULL,
	exhaustive  INTEGER NOT NULL,
	witnesses   TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
`

// Open creates or opens the SQLite database at path and ensures the schema
// exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error { return c.db.Close() }

// Record is the persisted summary of one match expression's usefulness
// report. It deliberately does not store ast.Handle values, which are only
// meaningful within the arena that produced them; Witnesses holds their
// printed form instead.
type Record struct {
	ID         string
	ArmCount   int
	Reachable  int
	Exhaustive bool
	Witnesses  []string
	CreatedAt  time.Time
}

// ContentKey hashes the printed form of a match expression's arm patterns
// into a stable cache key.
func ContentKey(armPatternsPrinted []string) string {
	h := sha256.New()
	for _, p := range armPatternsPrinted {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Lookup returns the cached Record for contentKey, if present.
func (c *Cache) Lookup(contentKey string) (*Record, bool, error) {
	row := c.db.QueryRow(
		`SELECT id, arm_count, reachable, exhaustive, witnesses, created_at
		 FROM usefulness_reports WHERE content_key = ?`,
		contentKey,
	)

	var rec Record
	var exhaustiveInt int
	var witnessesJSON string
	var createdAt string
	err := row.Scan(&rec.ID, &rec.ArmCount, &rec.Reachable, &exhaustiveInt, &witnessesJSON, &createdAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: lookup %s: %w", contentKey, err)
	}

	if err := json.Unmarshal([]byte(witnessesJSON), &rec.Witnesses); err != nil {
		return nil, false, fmt.Errorf("store: decode witnesses for %s: %w", contentKey, err)
	}
	rec.Exhaustive = exhaustiveInt != 0
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, false, fmt.Errorf("store: decode created_at for %s: %w", contentKey, err)
	}
	return &rec, true, nil
}

// Put inserts (or replaces) the record for contentKey, assigning it a fresh
// uuid.UUID as its id and stamping createdAt.
func (c *Cache) Put(contentKey string, armCount, reachable int, exhaustive bool, witnesses []string, createdAt time.Time) (*Record, error) {
	witnessesJSON, err := json.Marshal(witnesses)
	if err != nil {
		return nil, fmt.Errorf("store: encode witnesses: %w", err)
	}

	id := uuid.New().String()
	exhaustiveInt := 0
	if exhaustive {
		exhaustiveInt = 1
	}

	_, err = c.db.Exec(
		`INSERT INTO usefulness_reports (id, content_key, arm_count, reachable, exhaustive, witnesses, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(content_key) DO UPDATE SET
			id = excluded.id,
			arm_count = excluded.arm_count,
			reachable = excluded.reachable,
			exhaustive = excluded.exhaustive,
			witnesses = excluded.witnesses,
			created_at = excluded.created_at`,
		id, contentKey, armCount, reachable, exhaustiveInt, string(witnessesJSON), createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("store: put %s: %w", contentKey, err)
	}

	return &Record{
		ID:         id,
		ArmCount:   armCount,
		Reachable:  reachable,
		Exhaustive: exhaustive,
		Witnesses:  witnesses,
		CreatedAt:  createdAt,
	}, nil
}
