package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/itchan-dev/boardlog/backend/internal/router"
	"github.com/itchan-dev/boardlog/backend/internal/setup"
	"github.com/itchan-dev/boardlog/shared/config"
	"github.com/itchan-dev/boardlog/shared/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 60 * time.Second
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Bootstrap the schema and start the HTTP server",
	Long: `Connect to PostgreSQL, create the boards and test_runs tables if they
are missing, then serve the API until SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	deps, err := setup.SetupDependencies(startCtx, cfg)
	cancel()
	if err != nil {
		return err
	}
	defer deps.Storage.Cleanup()

	server := configureServer(cfg, router.New(deps))
	return run(ctx, server)
}

func configureServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, server *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Log.Info("server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down", "timeout", shutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Log.Info("shutdown complete")
	return nil
}
