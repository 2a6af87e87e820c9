package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/menuscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ menuscrape.RunLedger = (*Ledger)(nil)

// Ledger implements menuscrape.RunLedger using SQLite.
type Ledger struct {
	db  *DB
	now func() time.Time
}

// NewLedger creates a new Ledger.
func NewLedger(db *DB) *Ledger {
	return &Ledger{db: db, now: time.Now}
}

// BeginRun records a new run, generating its ID and start time when unset.
func (l *Ledger) BeginRun(ctx context.Context, run *menuscrape.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = l.now()
	}
	run.StartedAt = run.StartedAt.UTC()

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO runs (id, dir, started_at)
		VALUES (?, ?, ?)
	`, run.ID, run.Dir, run.StartedAt.Format(time.RFC3339))
	return err
}

// RecordResult stores the outcome of one source within a run.
func (l *Ledger) RecordResult(ctx context.Context, result *menuscrape.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}

	var exists int
	err := l.db.QueryRowContext(ctx, "SELECT 1 FROM runs WHERE id = ?", result.RunID).Scan(&exists)
	if err == sql.ErrNoRows {
		return menuscrape.Errorf(menuscrape.ENOTFOUND, "run %s not found", result.RunID)
	}
	if err != nil {
		return err
	}

	if result.FinishedAt.IsZero() {
		result.FinishedAt = l.now()
	}
	result.FinishedAt = result.FinishedAt.UTC()

	_, err = l.db.ExecContext(ctx, `
		INSERT INTO results (run_id, source, status, code, message, path, size, checksum, pages, changed, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.RunID, result.Source, result.Status, result.Code, result.Message, result.Path,
		result.Size, result.Checksum, result.Pages, result.Changed, result.FinishedAt.Format(time.RFC3339))
	return err
}

const resultColumns = "run_id, source, status, code, message, path, size, checksum, pages, changed, finished_at"

// LastSuccess returns the most recent successful result for source.
func (l *Ledger) LastSuccess(ctx context.Context, source string) (*menuscrape.Result, error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT `+resultColumns+`
		FROM results
		WHERE source = ? AND status = ?
		ORDER BY finished_at DESC, id DESC
		LIMIT 1
	`, source, menuscrape.StatusOK)

	result, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, menuscrape.Errorf(menuscrape.ENOTFOUND, "no successful result for %s", source)
	}
	return result, err
}

// FindResults retrieves results matching the filter, newest first.
func (l *Ledger) FindResults(ctx context.Context, filter menuscrape.ResultFilter) ([]*menuscrape.Result, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + resultColumns + " FROM results WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY finished_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := l.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*menuscrape.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(s scanner) (*menuscrape.Result, error) {
	var r menuscrape.Result
	var finishedAt string
	if err := s.Scan(&r.RunID, &r.Source, &r.Status, &r.Code, &r.Message, &r.Path,
		&r.Size, &r.Checksum, &r.Pages, &r.Changed, &finishedAt); err != nil {
		return nil, err
	}

	var err error
	r.FinishedAt, err = parseRFC3339(finishedAt, "finished_at")
	if err != nil {
		return nil, err
	}
	return &r, nil
}
