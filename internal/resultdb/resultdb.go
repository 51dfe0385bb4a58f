// Package resultdb persists inversion runs to sqlite so estimates can be
// reviewed and compared after the fact.
package resultdb

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/whigg/subradar/surface"
)

type DB struct {
	*sql.DB
}

// NewDB opens (creating if needed) the results database at path.
func NewDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS inversion_runs (
			run_id            TEXT PRIMARY KEY,
			model             TEXT,
			approx            TEXT,
			pc_db             DOUBLE,
			pn_db             DOUBLE,
			wf                DOUBLE,
			th_max            DOUBLE,
			created_at        BIGINT
		);
		CREATE TABLE IF NOT EXISTS inversion_points (
			run_id            TEXT,
			idx               BIGINT,
			ep                DOUBLE,
			sh                DOUBLE,
			cl                DOUBLE,
			FOREIGN KEY(run_id) REFERENCES inversion_runs(run_id)
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db}, nil
}

// Run describes one inversion invocation. Power targets are stored in
// decibels regardless of how the inversion was called.
type Run struct {
	RunID     string
	Model     string
	Approx    string
	PcDB      float64
	PnDB      float64
	Wf        float64
	ThMax     float64
	Timestamp time.Time
}

// RecordRun stores a run and its estimate, returning the run id. A fresh id
// is generated when run.RunID is empty. NaN correlation lengths (rows where
// the search found no crossing) are stored as NULL.
func (db *DB) RecordRun(run Run, est surface.SurfaceEstimate) (string, error) {
	id := run.RunID
	if id == "" {
		id = uuid.NewString()
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	createdAt := run.Timestamp
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = tx.Exec(
		`INSERT INTO inversion_runs (run_id, model, approx, pc_db, pn_db, wf, th_max, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Model, run.Approx, run.PcDB, run.PnDB, run.Wf, run.ThMax, createdAt.Unix(),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO inversion_points (run_id, idx, ep, sh, cl) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i := range est.Ep {
		cl := sql.NullFloat64{Float64: est.Cl[i], Valid: !math.IsNaN(est.Cl[i])}
		if _, err := stmt.Exec(id, i, est.Ep[i], est.Sh[i], cl); err != nil {
			return "", fmt.Errorf("insert point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// GetEstimate reloads the estimate stored for a run, restoring NULL
// correlation lengths to NaN.
func (db *DB) GetEstimate(runID string) (surface.SurfaceEstimate, error) {
	rows, err := db.Query(
		`SELECT ep, sh, cl FROM inversion_points WHERE run_id = ? ORDER BY idx`,
		runID,
	)
	if err != nil {
		return surface.SurfaceEstimate{}, err
	}
	defer rows.Close()

	var est surface.SurfaceEstimate
	for rows.Next() {
		var ep, sh float64
		var cl sql.NullFloat64
		if err := rows.Scan(&ep, &sh, &cl); err != nil {
			return surface.SurfaceEstimate{}, err
		}
		est.Ep = append(est.Ep, ep)
		est.Sh = append(est.Sh, sh)
		if cl.Valid {
			est.Cl = append(est.Cl, cl.Float64)
		} else {
			est.Cl = append(est.Cl, math.NaN())
		}
	}
	if err := rows.Err(); err != nil {
		return surface.SurfaceEstimate{}, err
	}
	if len(est.Ep) == 0 {
		return surface.SurfaceEstimate{}, fmt.Errorf("no points for run %q", runID)
	}
	return est, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(
		`SELECT run_id, model, approx, pc_db, pn_db, wf, th_max, created_at
		 FROM inversion_runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAtUnix int64
		if err := rows.Scan(&r.RunID, &r.Model, &r.Approx, &r.PcDB, &r.PnDB, &r.Wf, &r.ThMax, &createdAtUnix); err != nil {
			return nil, err
		}
		r.Timestamp = time.Unix(createdAtUnix, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
