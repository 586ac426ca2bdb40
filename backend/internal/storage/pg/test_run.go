package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/boardlog/shared/domain"
	internal_errors "github.com/itchan-dev/boardlog/shared/errors"
	sharedpg "github.com/itchan-dev/boardlog/shared/storage/pg"
)

const testRunColumns = `r.id, r.board_id, r.tester, r.firmware_version, r.fixture_version,
	r.result, r.comments, r.tested_at`

// =========================================================================
// Public Methods (satisfy the service.TestRunStorage interface)
// =========================================================================

// CreateTestRun upserts the board and records a run against it in one transaction.
func (s *Storage) CreateTestRun(ctx context.Context, board domain.BoardUpsert, run domain.TestRunCreationData) (domain.CreatedTestRun, error) {
	var created domain.CreatedTestRun
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		boardId, err := s.upsertBoard(ctx, tx, board)
		if err != nil {
			return err
		}
		run.BoardId = boardId
		runId, err := s.insertTestRun(ctx, tx, run)
		if err != nil {
			return err
		}
		created = domain.CreatedTestRun{BoardId: boardId, RunId: runId}
		return nil
	})
	return created, err
}

// ListTestRuns returns at most limit runs with their board serials, newest first.
func (s *Storage) ListTestRuns(ctx context.Context, limit int) ([]domain.TestRunListItem, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT `+testRunColumns+`, b.serial_number
	FROM test_runs AS r
	JOIN boards AS b ON b.id = r.board_id
	ORDER BY r.tested_at DESC, r.id DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list test runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.TestRunListItem, 0)
	for rows.Next() {
		var item domain.TestRunListItem
		if err := rows.Scan(append(testRunDest(&item.TestRun), &item.SerialNumber)...); err != nil {
			return nil, fmt.Errorf("failed to scan test run: %w", err)
		}
		runs = append(runs, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate test runs: %w", err)
	}
	return runs, nil
}

// =========================================================================
// Internal Methods
// =========================================================================

func (s *Storage) insertTestRun(ctx context.Context, q sharedpg.Querier, run domain.TestRunCreationData) (domain.TestRunId, error) {
	var id domain.TestRunId
	err := q.QueryRowContext(ctx, `
	INSERT INTO test_runs (board_id, tester, firmware_version, fixture_version, result, comments, tested_at)
	VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::timestamptz, now()))
	RETURNING id`,
		run.BoardId, run.Tester, run.FirmwareVersion, run.FixtureVersion, run.Result, run.Comments, run.TestedAt,
	).Scan(&id)
	if err != nil {
		switch {
		case sharedpg.IsForeignKeyViolation(err):
			return 0, internal_errors.NotFound("board not found")
		case sharedpg.IsCheckViolation(err):
			return 0, internal_errors.BadRequest("run.result must be one of: pass fail")
		}
		return 0, fmt.Errorf("failed to insert test run: %w", err)
	}
	return id, nil
}

func (s *Storage) getBoardRuns(ctx context.Context, q sharedpg.Querier, boardId domain.BoardId) ([]domain.TestRun, error) {
	rows, err := q.QueryContext(ctx, `
	SELECT `+testRunColumns+`
	FROM test_runs AS r
	WHERE r.board_id = $1
	ORDER BY r.tested_at DESC, r.id DESC`, boardId)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs of board %d: %w", boardId, err)
	}
	defer rows.Close()

	runs := make([]domain.TestRun, 0)
	for rows.Next() {
		var run domain.TestRun
		if err := rows.Scan(testRunDest(&run)...); err != nil {
			return nil, fmt.Errorf("failed to scan test run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate test runs: %w", err)
	}
	return runs, nil
}

// testRunDest lists scan targets in testRunColumns order.
func testRunDest(r *domain.TestRun) []any {
	return []any{&r.Id, &r.BoardId, &r.Tester, &r.FirmwareVersion, &r.FixtureVersion, &r.Result, &r.Comments, &r.TestedAt}
}
