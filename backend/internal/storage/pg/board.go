package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/itchan-dev/boardlog/shared/domain"
	internal_errors "github.com/itchan-dev/boardlog/shared/errors"
	sharedpg "github.com/itchan-dev/boardlog/shared/storage/pg"
)

var errEmptySerial = internal_errors.BadRequest("board.serial_number is required")

const boardColumns = `id, serial_number, revision, batch, assembled_by,
	to_char(assembly_date, 'YYYY-MM-DD'), status, doc_url, notes, created_at, updated_at`

// =========================================================================
// Public Methods (satisfy the service.BoardStorage interface)
// =========================================================================

// UpsertBoard inserts the board or updates the existing row with the same serial.
func (s *Storage) UpsertBoard(ctx context.Context, board domain.BoardUpsert) (domain.BoardId, error) {
	return s.upsertBoard(ctx, s.db, board)
}

// GetBoard returns the board with the given serial and all of its runs, newest first.
func (s *Storage) GetBoard(ctx context.Context, serial domain.SerialNumber) (*domain.BoardWithRuns, error) {
	board, err := s.getBoard(ctx, s.db, serial)
	if err != nil {
		return nil, err
	}
	runs, err := s.getBoardRuns(ctx, s.db, board.Id)
	if err != nil {
		return nil, err
	}
	return &domain.BoardWithRuns{Board: *board, Runs: runs}, nil
}

// =========================================================================
// Internal Methods (accept a Querier for transactional flexibility)
// =========================================================================

// upsertBoard writes the board keyed on serial_number. Attributes left nil keep
// whatever is stored; the row id is re-read afterwards.
func (s *Storage) upsertBoard(ctx context.Context, q sharedpg.Querier, board domain.BoardUpsert) (domain.BoardId, error) {
	if strings.TrimSpace(board.SerialNumber) == "" {
		return 0, errEmptySerial
	}

	_, err := q.ExecContext(ctx, `
	INSERT INTO boards (serial_number, revision, batch, assembled_by, assembly_date, status, doc_url, notes)
	VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)
	ON CONFLICT (serial_number) DO UPDATE SET
		revision      = COALESCE(EXCLUDED.revision, boards.revision),
		batch         = COALESCE(EXCLUDED.batch, boards.batch),
		assembled_by  = COALESCE(EXCLUDED.assembled_by, boards.assembled_by),
		assembly_date = COALESCE(EXCLUDED.assembly_date, boards.assembly_date),
		status        = COALESCE(EXCLUDED.status, boards.status),
		doc_url       = COALESCE(EXCLUDED.doc_url, boards.doc_url),
		notes         = COALESCE(EXCLUDED.notes, boards.notes),
		updated_at    = now()`,
		board.SerialNumber, board.Revision, board.Batch, board.AssembledBy,
		board.AssemblyDate, board.Status, board.DocURL, board.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert board %q: %w", board.SerialNumber, err)
	}

	var id domain.BoardId
	err = q.QueryRowContext(ctx, "SELECT id FROM boards WHERE serial_number = $1", board.SerialNumber).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read back board %q: %w", board.SerialNumber, err)
	}
	return id, nil
}

func (s *Storage) getBoard(ctx context.Context, q sharedpg.Querier, serial domain.SerialNumber) (*domain.Board, error) {
	var b domain.Board
	err := q.QueryRowContext(ctx, "SELECT "+boardColumns+" FROM boards WHERE serial_number = $1", serial).Scan(
		&b.Id, &b.SerialNumber, &b.Revision, &b.Batch, &b.AssembledBy,
		&b.AssemblyDate, &b.Status, &b.DocURL, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal_errors.NotFound("board not found")
		}
		return nil, fmt.Errorf("failed to get board %q: %w", serial, err)
	}
	return &b, nil
}
