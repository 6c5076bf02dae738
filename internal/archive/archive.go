// Package archive persists daily box-office snapshots as the static JSON
// files the page is served from, plus the latest.json pointer and an
// optional sqlite fetch ledger.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"K-Movie-Archive/internal"
	"K-Movie-Archive/internal/datafeed"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const dailyListPath = "boxOfficeResult.dailyBoxOfficeList"

var (
	// ErrEmptySnapshot indicates the collector fetched an empty body.
	ErrEmptySnapshot = errors.New("archive: snapshot body is empty")
	// ErrInvalidSnapshot indicates the body is not valid JSON and must not
	// be archived.
	ErrInvalidSnapshot = errors.New("archive: snapshot is not valid JSON")
)

// Store writes dated snapshots and the latest.json pointer under a data
// directory. When db is non-nil every successful save is recorded in the
// fetch ledger.
type Store struct {
	dir string
	db  *sql.DB
}

func NewStore(dir string, db *sql.DB) *Store {
	return &Store{dir: dir, db: db}
}

// SaveDaily writes {targetDt}.json pretty-printed, rewrites latest.json to
// point at it, and records the fetch. The returned pointer is the record
// written to latest.json.
func (s *Store) SaveDaily(ctx context.Context, targetDt string, raw []byte) (*datafeed.Pointer, error) {
	if len(raw) == 0 {
		return nil, ErrEmptySnapshot
	}
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidSnapshot
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("archive: create data dir: %w", err)
	}

	file := targetDt + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, file), pretty.Pretty(raw), 0644); err != nil {
		return nil, fmt.Errorf("archive: write snapshot: %w", err)
	}

	ptr := &datafeed.Pointer{
		URL:  "./data/" + file,
		Date: targetDt,
		File: file,
	}
	ptrJSON, err := json.MarshalIndent(ptr, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("archive: marshal pointer: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, "latest.json"), append(ptrJSON, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("archive: write pointer: %w", err)
	}

	if s.db != nil {
		count := len(gjson.GetBytes(raw, dailyListPath).Array())
		err := internal.WithTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `INSERT INTO fetches (target_dt, file, entry_count, fetched_at) VALUES (?, ?, ?, ?) ON CONFLICT(target_dt) DO UPDATE SET file = excluded.file, entry_count = excluded.entry_count, fetched_at = excluded.fetched_at`,
				targetDt, file, count, internal.Now(),
			)
			if err != nil {
				return fmt.Errorf("archive: record fetch: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return ptr, nil
}
