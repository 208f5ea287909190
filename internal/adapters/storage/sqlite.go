package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nayeemz/bdtradesim/internal/domain"
	_ "modernc.org/sqlite"
)

// ErrRunNotFound is returned when a run ID is not in the database.
var ErrRunNotFound = errors.New("storage: run not found")

const schema = `
-- One row per simulation run
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    scenario      TEXT     NOT NULL,
    start_year    INTEGER  NOT NULL,
    end_year      INTEGER  NOT NULL,
    seed          INTEGER  NOT NULL,
    created_at    DATETIME NOT NULL,
    final_exports REAL     NOT NULL DEFAULT 0,
    final_imports REAL     NOT NULL DEFAULT 0,
    final_gdp     REAL     NOT NULL DEFAULT 0
);

-- One row per simulated year, flattened for time-series queries
CREATE TABLE IF NOT EXISTS yearly_metrics (
    run_id          TEXT    NOT NULL REFERENCES runs(id),
    year            INTEGER NOT NULL,
    exports         REAL    NOT NULL DEFAULT 0,
    imports         REAL    NOT NULL DEFAULT 0,
    gdp             REAL    NOT NULL DEFAULT 0,
    trade_balance   REAL    NOT NULL DEFAULT 0,
    trade_openness  REAL    NOT NULL DEFAULT 0,
    exchange_rate   REAL    NOT NULL DEFAULT 0,
    diversification REAL    NOT NULL DEFAULT 0,
    PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario);
CREATE INDEX IF NOT EXISTS idx_metrics_run ON yearly_metrics(run_id, year);
`

// SQLiteStore implements ports.RunStore on SQLite (pure Go, no CGo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the results database at path and applies
// the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStore: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStore: apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// SaveRun persists the run summary and its per-year metric rows in one
// transaction. Re-saving a run ID replaces its rows.
func (s *SQLiteStore) SaveRun(ctx context.Context, run *domain.RunResult) error {
	final, ok := run.FinalYear()
	if !ok {
		return fmt.Errorf("storage.SaveRun: run %s has no years", run.Metadata.RunID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveRun: begin tx: %w", err)
	}
	defer tx.Rollback()

	meta := run.Metadata
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs
			(id, scenario, start_year, end_year, seed, created_at,
			 final_exports, final_imports, final_gdp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			scenario      = excluded.scenario,
			start_year    = excluded.start_year,
			end_year      = excluded.end_year,
			seed          = excluded.seed,
			created_at    = excluded.created_at,
			final_exports = excluded.final_exports,
			final_imports = excluded.final_imports,
			final_gdp     = excluded.final_gdp
	`,
		meta.RunID, meta.Scenario, meta.StartYear, meta.EndYear,
		int64(meta.Seed), meta.CreatedAt.UTC(),
		final.Aggregates.TotalExports, final.Aggregates.TotalImports, final.Aggregates.GDP,
	); err != nil {
		return fmt.Errorf("storage.SaveRun: upsert run %s: %w", meta.RunID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM yearly_metrics WHERE run_id = ?`, meta.RunID,
	); err != nil {
		return fmt.Errorf("storage.SaveRun: clear metrics %s: %w", meta.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO yearly_metrics
			(run_id, year, exports, imports, gdp, trade_balance,
			 trade_openness, exchange_rate, diversification)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveRun: prepare: %w", err)
	}
	defer stmt.Close()

	for _, year := range run.Years {
		agg := year.Aggregates
		if _, err := stmt.ExecContext(ctx,
			meta.RunID, year.Year,
			agg.TotalExports, agg.TotalImports, agg.GDP, agg.TradeBalance,
			agg.TradeOpenness, agg.ExchangeRate, agg.Diversification,
		); err != nil {
			return fmt.Errorf("storage.SaveRun: insert year %d: %w", year.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveRun: commit: %w", err)
	}
	return nil
}

// ListRuns returns stored run summaries, newest first. limit <= 0 means no
// limit.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario, start_year, end_year, seed, created_at,
		       final_exports, final_imports, final_gdp
		FROM runs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.ListRuns: query: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunSummary
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("storage.ListRuns: %w", err)
		}
		runs = append(runs, summary)
	}
	return runs, rows.Err()
}

// GetRun returns one run's summary, or ErrRunNotFound.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (domain.RunSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, start_year, end_year, seed, created_at,
		       final_exports, final_imports, final_gdp
		FROM runs
		WHERE id = ?
	`, id)

	summary, err := scanSummary(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.RunSummary{}, fmt.Errorf("storage.GetRun: %q: %w", id, ErrRunNotFound)
	case err != nil:
		return domain.RunSummary{}, fmt.Errorf("storage.GetRun: %w", err)
	}
	return summary, nil
}

// YearMetrics returns the run's per-year rows ordered by year.
func (s *SQLiteStore) YearMetrics(ctx context.Context, id string) ([]domain.YearMetrics, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, year, exports, imports, gdp, trade_balance,
		       trade_openness, exchange_rate, diversification
		FROM yearly_metrics
		WHERE run_id = ?
		ORDER BY year
	`, id)
	if err != nil {
		return nil, fmt.Errorf("storage.YearMetrics: query: %w", err)
	}
	defer rows.Close()

	var metrics []domain.YearMetrics
	for rows.Next() {
		var m domain.YearMetrics
		if err := rows.Scan(
			&m.RunID, &m.Year, &m.Exports, &m.Imports, &m.GDP,
			&m.TradeBalance, &m.TradeOpenness, &m.ExchangeRate, &m.Diversification,
		); err != nil {
			return nil, fmt.Errorf("storage.YearMetrics: scan row: %w", err)
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for scanSummary.
type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (domain.RunSummary, error) {
	var (
		summary domain.RunSummary
		seed    int64
		created string
	)
	if err := row.Scan(
		&summary.ID, &summary.Scenario, &summary.StartYear, &summary.EndYear,
		&seed, &created,
		&summary.FinalExports, &summary.FinalImports, &summary.FinalGDP,
	); err != nil {
		return domain.RunSummary{}, err
	}
	summary.Seed = uint64(seed)

	createdAt, err := parseStoredTime(created)
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	summary.CreatedAt = createdAt
	return summary, nil
}

// parseStoredTime handles both formats the sqlite driver emits for DATETIME.
func parseStoredTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05.999999999-07:00", s)
}
