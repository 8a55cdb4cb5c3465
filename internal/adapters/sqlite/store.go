// Package sqlite persists sampling runs and their placements in a SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
	_ "modernc.org/sqlite"

	"github.com/bft-labs/bulbplot/internal/ports"
	"github.com/bft-labs/bulbplot/pkg/bulbplot"
	"github.com/bft-labs/bulbplot/pkg/cloud"
)

var _ ports.RunStore = (*Store)(nil)

var (
	// ErrNoRun is returned by RenderInstanced before BeginRun.
	ErrNoRun = errors.New("sqlite: no run in progress")

	// ErrRunNotFound is returned by LoadCloud for unknown or unfinished runs.
	ErrRunNotFound = errors.New("sqlite: run not found")
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id            TEXT PRIMARY KEY,
	started_at        TIMESTAMP NOT NULL,
	bounding_size     DOUBLE NOT NULL,
	resolution        INTEGER NOT NULL,
	max_iterations    INTEGER NOT NULL,
	escape_threshold  DOUBLE NOT NULL,
	bulb_offset       DOUBLE NOT NULL,
	samples_per_yield INTEGER NOT NULL,
	samples           INTEGER,
	members           INTEGER,
	turns             INTEGER,
	duration_ms       INTEGER
);
CREATE TABLE IF NOT EXISTS placements (
	run_id TEXT NOT NULL,
	seq    INTEGER NOT NULL,
	x      DOUBLE NOT NULL,
	y      DOUBLE NOT NULL,
	z      DOUBLE NOT NULL,
	scale  DOUBLE NOT NULL,
	PRIMARY KEY (run_id, seq),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// RunInfo describes a run being stored.
type RunInfo = ports.RunInfo

// Store writes placements for one run at a time. Each chunk passed to
// RenderInstanced is committed in its own transaction.
//
// A run only becomes visible to Runs and LoadCloud after FinishRun, so a
// pass that fails part way never reads back as a partial cloud.
type Store struct {
	db *sql.DB

	// ctx comes from BeginRun. RenderInstanced has no context parameter
	// because it implements batch.Renderer, so the run's context is kept here.
	ctx   context.Context
	runID string
	seq   int
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records an unfinished run and makes it the target of subsequent
// RenderInstanced calls. ctx bounds those calls as well.
func (s *Store) BeginRun(ctx context.Context, info RunInfo) error {
	c := info.Config
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, started_at, bounding_size, resolution, max_iterations,
			escape_threshold, bulb_offset, samples_per_yield)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.StartedAt.UTC(), c.BoundingSize, c.Resolution, c.MaxIterations,
		c.EscapeThreshold, c.Offset, c.SamplesPerYield)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", info.ID, err)
	}
	s.ctx = ctx
	s.runID = info.ID
	s.seq = 0
	return nil
}

// RenderInstanced inserts one chunk of placements for the current run.
func (s *Store) RenderInstanced(chunk []cloud.Placement) error {
	if s.runID == "" {
		return ErrNoRun
	}
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("run %s: %w", s.runID, err)
	}
	tx, err := s.db.BeginTx(s.ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(s.ctx, `INSERT INTO placements (run_id, seq, x, y, z, scale) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range chunk {
		if _, err := stmt.ExecContext(s.ctx, s.runID, s.seq+i, p.Position.X, p.Position.Y, p.Position.Z, p.Scale); err != nil {
			return fmt.Errorf("insert placement %d: %w", s.seq+i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.seq += len(chunk)
	return nil
}

// FinishRun stores the completion summary of a run, marking it finished.
func (s *Store) FinishRun(ctx context.Context, ev bulbplot.CompleteEvent) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs SET samples = ?, members = ?, turns = ?, duration_ms = ?
		WHERE run_id = ?`,
		ev.Samples, ev.Members, ev.Turns, ev.Duration.Milliseconds(), ev.RunID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, ev.RunID)
	}
	return nil
}

// DeleteRun removes a run and its placements.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM placements WHERE run_id = ?`, runID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, runID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	if s.runID == runID {
		s.runID = ""
	}
	return nil
}

// LoadCloud reads back the placements of a finished run in traversal order.
func (s *Store) LoadCloud(ctx context.Context, runID string) (*cloud.Cloud, error) {
	var finished bool
	err := s.db.QueryRowContext(ctx, `SELECT samples IS NOT NULL FROM runs WHERE run_id = ?`, runID).Scan(&finished)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !finished) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT x, y, z, scale FROM placements WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []cloud.Placement
	for rows.Next() {
		var p cloud.Placement
		var v r3.Vec
		if err := rows.Scan(&v.X, &v.Y, &v.Z, &p.Scale); err != nil {
			return nil, err
		}
		p.Position = v
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cloud.Freeze(out), nil
}

// Runs returns the ids of finished runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT run_id FROM runs WHERE samples IS NOT NULL ORDER BY started_at, run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
