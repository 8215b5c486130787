package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database"
	"inventory-backend/internal/logging"
	"inventory-backend/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg)

	db, err := database.Init(cfg)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}

	app := server.New(cfg, db)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.HTTPPort, "driver", cfg.DatabaseDriver)
		errCh <- app.Listen(":" + cfg.HTTPPort)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
