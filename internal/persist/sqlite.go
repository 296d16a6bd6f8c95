package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createRunsSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    label TEXT NOT NULL,
    started_at INTEGER NOT NULL,
    created_at INTEGER NOT NULL
);
`

const createResultsSQL = `
CREATE TABLE IF NOT EXISTS run_results (
    run_id TEXT NOT NULL REFERENCES runs(id),
    output TEXT NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (run_id, output)
);
`

// SQLite persists run snapshots into a local database file.
type SQLite struct {
	sqlDB *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens or creates the snapshot database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping snapshot db: %w", err)
	}

	for _, stmt := range []string{createRunsSQL, createResultsSQL} {
		if _, err := sqlDB.Exec(stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("ensure snapshot schema: %w", err)
		}
	}
	return &SQLite{sqlDB: sqlDB}, nil
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save stores one run and its JSON-encoded results atomically. An empty
// meta.ID is replaced by a fresh uuid.
func (s *SQLite) Save(ctx context.Context, meta RunMeta, results Results) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("snapshot store is not configured")
	}

	id := strings.TrimSpace(meta.ID)
	if id == "" {
		id = uuid.NewString()
	}
	kind := strings.TrimSpace(meta.Kind)
	if kind == "" {
		return fmt.Errorf("run kind is required")
	}
	started := meta.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO runs (id, kind, label, started_at, created_at)
VALUES (?, ?, ?, ?, ?)
`,
		id, kind, meta.Label,
		started.UTC().UnixMilli(), time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}

	for _, output := range sortedOutputs(results) {
		payload, err := json.Marshal(results[output])
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("marshal result %s: %w", output, err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO run_results (run_id, output, payload)
VALUES (?, ?, ?)
`,
			id, output, string(payload),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert result %s: %w", output, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Runs lists stored runs newest-first.
func (s *SQLite) Runs(ctx context.Context) ([]RunMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("snapshot store is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, kind, label, started_at
FROM runs
ORDER BY created_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var meta RunMeta
		var startedAt int64
		if err := rows.Scan(&meta.ID, &meta.Kind, &meta.Label, &startedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		meta.StartedAt = time.UnixMilli(startedAt).UTC()
		runs = append(runs, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// LoadResults returns the decoded results of one stored run.
func (s *SQLite) LoadResults(ctx context.Context, runID string) (Results, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("snapshot store is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT output, payload
FROM run_results
WHERE run_id = ?
ORDER BY output
`, runID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	defer rows.Close()

	results := make(Results)
	for rows.Next() {
		var output, payload string
		if err := rows.Scan(&output, &payload); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		var value any
		if err := json.Unmarshal([]byte(payload), &value); err != nil {
			return nil, fmt.Errorf("unmarshal result %s: %w", output, err)
		}
		results[output] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

func sortedOutputs(results Results) []string {
	outputs := make([]string, 0, len(results))
	for output := range results {
		outputs = append(outputs, output)
	}
	sort.Strings(outputs)
	return outputs
}
