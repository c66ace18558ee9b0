package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/fadilmartias/submitme/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API used by the browser extension",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = rt.logger.Sync() }()

	app := server.New(rt.cfg, server.Dependencies{
		CV:     rt.cv,
		Answer: rt.answer,
		Logger: rt.logger,
	})

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info("server running",
			zap.String("addr", rt.cfg.App.Addr()),
			zap.String("env", rt.cfg.App.Env),
			zap.String("version", version),
		)
		errCh <- app.Listen(rt.cfg.App.Addr())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	rt.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
