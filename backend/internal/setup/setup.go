package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/boardlog/backend/internal/handler"
	"github.com/itchan-dev/boardlog/backend/internal/service"
	"github.com/itchan-dev/boardlog/backend/internal/storage/pg"
	"github.com/itchan-dev/boardlog/shared/config"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/itchan-dev/boardlog/shared/middleware/metrics"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies connects to the database, bootstraps the schema and wires
// services and handlers. The schema must exist before any traffic is accepted.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg.Pg)
	if err != nil {
		return nil, err
	}

	if err := storage.EnsureSchema(ctx); err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	logger.Log.Info("schema ready")

	if err := metrics.RegisterDB(storage.DB(), cfg.Pg.Dbname); err != nil {
		storage.Cleanup()
		return nil, fmt.Errorf("failed to register db metrics: %w", err)
	}

	board := service.NewBoard(storage)
	testRun := service.NewTestRun(storage)

	h := handler.New(board, testRun, storage, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
