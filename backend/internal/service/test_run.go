package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/boardlog/backend/internal/service/utils"
	"github.com/itchan-dev/boardlog/shared/domain"
	"github.com/itchan-dev/boardlog/shared/errors"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/itchan-dev/boardlog/shared/middleware/metrics"
)

// MaxListedRuns caps how many runs a single list request returns.
const MaxListedRuns = 500

type TestRunService interface {
	List(ctx context.Context, limit int) ([]domain.TestRunListItem, error)
	Create(ctx context.Context, board domain.BoardUpsert, run domain.TestRunCreationData) (domain.CreatedTestRun, error)
}

type TestRun struct {
	storage TestRunStorage
}

type TestRunStorage interface {
	ListTestRuns(ctx context.Context, limit int) ([]domain.TestRunListItem, error)
	CreateTestRun(ctx context.Context, board domain.BoardUpsert, run domain.TestRunCreationData) (domain.CreatedTestRun, error)
}

func NewTestRun(storage TestRunStorage) TestRunService {
	return &TestRun{storage}
}

// List returns the most recent runs. limit <= 0 or above MaxListedRuns means MaxListedRuns.
func (s *TestRun) List(ctx context.Context, limit int) ([]domain.TestRunListItem, error) {
	if limit <= 0 || limit > MaxListedRuns {
		limit = MaxListedRuns
	}
	return s.storage.ListTestRuns(ctx, limit)
}

// Create upserts the board then records the run against it.
func (s *TestRun) Create(ctx context.Context, board domain.BoardUpsert, run domain.TestRunCreationData) (domain.CreatedTestRun, error) {
	board, err := normalizeBoard(board)
	if err != nil {
		return domain.CreatedTestRun{}, err
	}

	run.Tester = strings.TrimSpace(run.Tester)
	if run.Tester == "" {
		return domain.CreatedTestRun{}, errors.BadRequest("run.tester is required")
	}
	run.FirmwareVersion = utils.OptionalString(run.FirmwareVersion)
	run.FixtureVersion = utils.OptionalString(run.FixtureVersion)
	run.Comments = utils.PlainText(run.Comments)
	if run.Result, err = normalizeResult(run.Result); err != nil {
		return domain.CreatedTestRun{}, err
	}

	created, err := s.storage.CreateTestRun(ctx, board, run)
	if err != nil {
		return domain.CreatedTestRun{}, err
	}

	result := "unknown"
	if run.Result != nil {
		result = *run.Result
	}
	metrics.TestRunsCreated.WithLabelValues(result).Inc()
	logger.FromContext(ctx).Info("test run recorded",
		"serial", board.SerialNumber,
		"board_id", created.BoardId,
		"run_id", created.RunId,
		"result", result,
	)
	return created, nil
}

// normalizeResult accepts pass/fail in any case and common spellings.
func normalizeResult(r *domain.TestResult) (*domain.TestResult, error) {
	r = utils.OptionalString(r)
	if r == nil {
		return nil, nil
	}
	switch strings.ToLower(*r) {
	case "pass", "passed", "ok":
		v := domain.ResultPass
		return &v, nil
	case "fail", "failed":
		v := domain.ResultFail
		return &v, nil
	}
	return nil, errors.BadRequest("run.result must be one of: pass fail")
}
