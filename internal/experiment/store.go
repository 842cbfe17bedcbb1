package experiment

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	model      TEXT NOT NULL,
	num_blocks INTEGER NOT NULL,
	config     TEXT NOT NULL,
	run        INTEGER NOT NULL,
	success    INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_results_model ON results(model, num_blocks, config);
`

// Store persists experiment results in a SQLite database so repeated
// sweeps accumulate and charts can be regenerated later.
type Store struct {
	db *sql.DB
}

// OpenStore opens (and if needed initializes) the results database
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init results schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records one run for the given model
func (s *Store) Insert(ctx context.Context, model string, res Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (model, num_blocks, config, run, success, iterations)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		model, res.NumBlocks, res.Config, res.Run, res.Success, res.Iterations)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

// InsertAll records a whole sweep for the given model
func (s *Store) InsertAll(ctx context.Context, model string, results []Result) error {
	for _, res := range results {
		if err := s.Insert(ctx, model, res); err != nil {
			return err
		}
	}
	return nil
}

// Mean is the average iteration count for one size/configuration cell
type Mean struct {
	NumBlocks  int
	Config     string
	Iterations float64
}

// MeanIterations aggregates stored results for a model, grouped by
// problem size and configuration, ordered by size then configuration.
func (s *Store) MeanIterations(ctx context.Context, model string) ([]Mean, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT num_blocks, config, AVG(iterations)
		 FROM results WHERE model = ?
		 GROUP BY num_blocks, config
		 ORDER BY num_blocks, config`, model)
	if err != nil {
		return nil, fmt.Errorf("query means: %w", err)
	}
	defer rows.Close()

	var means []Mean
	for rows.Next() {
		var m Mean
		if err := rows.Scan(&m.NumBlocks, &m.Config, &m.Iterations); err != nil {
			return nil, fmt.Errorf("scan mean: %w", err)
		}
		means = append(means, m)
	}
	return means, rows.Err()
}
