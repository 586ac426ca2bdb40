package pg

import (
	"context"
	"fmt"
)

// schema is applied statement by statement; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS boards (
		id            BIGSERIAL PRIMARY KEY,
		serial_number TEXT NOT NULL UNIQUE CHECK (btrim(serial_number) <> ''),
		revision      TEXT,
		batch         TEXT,
		assembled_by  TEXT,
		assembly_date DATE,
		status        TEXT,
		doc_url       TEXT,
		notes         TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS test_runs (
		id               BIGSERIAL PRIMARY KEY,
		board_id         BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
		tester           TEXT NOT NULL,
		firmware_version TEXT,
		fixture_version  TEXT,
		result           TEXT CHECK (result IN ('pass', 'fail')),
		comments         TEXT,
		tested_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS test_runs_board_id_tested_at_idx ON test_runs (board_id, tested_at DESC)`,
	`CREATE INDEX IF NOT EXISTS test_runs_tested_at_idx ON test_runs (tested_at DESC)`,
}

// EnsureSchema creates the boards and test_runs tables if they are absent.
func (s *Storage) EnsureSchema(ctx context.Context) error {
	for i, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
