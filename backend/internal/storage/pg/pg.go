package pg

import (
	"context"
	"database/sql"

	"github.com/itchan-dev/boardlog/shared/config"
	"github.com/itchan-dev/boardlog/shared/logger"
	sharedpg "github.com/itchan-dev/boardlog/shared/storage/pg"
)

type Storage struct {
	db *sql.DB
}

func New(ctx context.Context, cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Host, "port", cfg.Port, "dbname", cfg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.ConnectionConfigFrom(cfg))
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return &Storage{db}, nil
}

// DB exposes the pool for metrics collection.
func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}
