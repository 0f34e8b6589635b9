// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists conversion outcomes in a SQLite database so
// past runs can be inspected with the history command. Recording is
// best-effort from the converter's point of view; the catalog never gates
// a conversion.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/fit2gpx/pkg/types"
)

// DefaultPath is the catalog database file used when no path is configured.
const DefaultPath = "fit2gpx.db"

// Catalog manages the conversion history SQLite database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the catalog database at path and ensures the
// schema exists.
func Open(path string) (*Catalog, error) {
	if path == "" {
		path = DefaultPath
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			output TEXT NOT NULL,
			status TEXT NOT NULL,
			source_size INTEGER NOT NULL DEFAULT 0,
			source_mod_time TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status)`,
	}
	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record appends one conversion outcome.
func (c *Catalog) Record(rec types.ConversionRecord) error {
	var modTime string
	if !rec.SourceModTime.IsZero() {
		modTime = rec.SourceModTime.UTC().Format(time.RFC3339)
	}

	_, err := c.db.Exec(
		`INSERT INTO conversions
			(source, output, status, source_size, source_mod_time, duration_ms, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Source, rec.Output, string(rec.Status),
		rec.SourceSize, modTime, rec.DurationMS,
		rec.RecordedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", rec.Source, err)
	}
	return nil
}

// History returns up to limit recorded outcomes, newest first. A limit of
// zero or less applies the default of 50.
func (c *Catalog) History(ctx context.Context, limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT source, output, status, source_size, source_mod_time, duration_ms, recorded_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var recs []types.ConversionRecord
	for rows.Next() {
		var rec types.ConversionRecord
		var status, modTime, recordedAt string
		if err := rows.Scan(&rec.Source, &rec.Output, &status,
			&rec.SourceSize, &modTime, &rec.DurationMS, &recordedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Status = types.ConversionStatus(status)
		if modTime != "" {
			rec.SourceModTime, _ = time.Parse(time.RFC3339, modTime)
		}
		rec.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
