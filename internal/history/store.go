// Package history persists search runs and their per-level evaluations in
// SQLite. The store is write-mostly provenance: the search never reads prior
// runs to seed itself, but the replay tool and operators do.
package history

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS search_runs (
	run_id        TEXT PRIMARY KEY,
	lower_bound   INTEGER NOT NULL,
	upper_bound   INTEGER NOT NULL,
	trials        INTEGER NOT NULL,
	epochs        INTEGER NOT NULL,
	started_at    TEXT NOT NULL,
	finished_at   TEXT,
	best_level    INTEGER,
	best_accuracy REAL
);

CREATE TABLE IF NOT EXISTS evaluations (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id          TEXT NOT NULL,
	level           INTEGER NOT NULL,
	accuracy        REAL NOT NULL,
	best_epoch      INTEGER NOT NULL,
	checkpoint_path TEXT,
	created_at      TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES search_runs(run_id)
);
`

// #endregion schema

// #region types

// RunRecord is one search run's provenance row.
type RunRecord struct {
	RunID        string
	LowerBound   int
	UpperBound   int
	Trials       int
	Epochs       int
	StartedAt    time.Time
	FinishedAt   time.Time
	BestLevel    int
	BestAccuracy float64
	Finished     bool
}

// EvaluationRecord is one completed training run within a search.
type EvaluationRecord struct {
	RunID          string
	Level          int
	Accuracy       float64
	BestEpoch      int
	CheckpointPath string
	CreatedAt      time.Time
}

// #endregion

// #region store

// Store manages search provenance in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion

// #region create-run

// CreateRun opens a new search run row and returns it with a fresh run ID.
func (s *Store) CreateRun(lowerBound, upperBound, trials, epochs int) (RunRecord, error) {
	rec := RunRecord{
		RunID:      uuid.New().String(),
		LowerBound: lowerBound,
		UpperBound: upperBound,
		Trials:     trials,
		Epochs:     epochs,
		StartedAt:  time.Now().UTC(),
	}
	_, err := s.db.Exec(
		`INSERT INTO search_runs (run_id, lower_bound, upper_bound, trials, epochs, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.LowerBound, rec.UpperBound, rec.Trials, rec.Epochs,
		rec.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return RunRecord{}, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

// #endregion

// #region record-evaluation

// RecordEvaluation appends one completed evaluation to a run.
func (s *Store) RecordEvaluation(rec EvaluationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO evaluations (run_id, level, accuracy, best_epoch, checkpoint_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Level, rec.Accuracy, rec.BestEpoch, rec.CheckpointPath,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert evaluation: %w", err)
	}
	return nil
}

// #endregion

// #region finish-run

// FinishRun stamps a run with its outcome and completion time.
func (s *Store) FinishRun(runID string, bestLevel int, bestAccuracy float64) error {
	res, err := s.db.Exec(
		`UPDATE search_runs SET finished_at = ?, best_level = ?, best_accuracy = ? WHERE run_id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), bestLevel, bestAccuracy, runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: unknown run %s", runID)
	}
	return nil
}

// #endregion

// #region queries

// GetRun loads one run by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT run_id, lower_bound, upper_bound, trials, epochs, started_at, finished_at, best_level, best_accuracy
		 FROM search_runs WHERE run_id = ?`, runID)
	return scanRun(row)
}

// LatestRun loads the most recently started run.
func (s *Store) LatestRun() (RunRecord, error) {
	row := s.db.QueryRow(
		`SELECT run_id, lower_bound, upper_bound, trials, epochs, started_at, finished_at, best_level, best_accuracy
		 FROM search_runs ORDER BY started_at DESC LIMIT 1`)
	return scanRun(row)
}

func scanRun(row *sql.Row) (RunRecord, error) {
	var rec RunRecord
	var started string
	var finished sql.NullString
	var bestLevel sql.NullInt64
	var bestAcc sql.NullFloat64
	err := row.Scan(&rec.RunID, &rec.LowerBound, &rec.UpperBound, &rec.Trials,
		&rec.Epochs, &started, &finished, &bestLevel, &bestAcc)
	if err != nil {
		return RunRecord{}, fmt.Errorf("scan run: %w", err)
	}
	rec.StartedAt, err = time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return RunRecord{}, fmt.Errorf("parse started_at: %w", err)
	}
	if finished.Valid {
		rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String)
		if err != nil {
			return RunRecord{}, fmt.Errorf("parse finished_at: %w", err)
		}
		rec.Finished = true
	}
	rec.BestLevel = int(bestLevel.Int64)
	rec.BestAccuracy = bestAcc.Float64
	return rec, nil
}

// RunEvaluations returns a run's evaluations in recording order.
func (s *Store) RunEvaluations(runID string) ([]EvaluationRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, level, accuracy, best_epoch, checkpoint_path, created_at
		 FROM evaluations WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}
	defer rows.Close()

	var out []EvaluationRecord
	for rows.Next() {
		var rec EvaluationRecord
		var created string
		var checkpoint sql.NullString
		if err := rows.Scan(&rec.RunID, &rec.Level, &rec.Accuracy, &rec.BestEpoch,
			&checkpoint, &created); err != nil {
			return nil, fmt.Errorf("scan evaluation: %w", err)
		}
		rec.CheckpointPath = checkpoint.String
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion
