package main

import (
	"Cocktail-Catalog/cmd/config"
	migration "Cocktail-Catalog/cmd/database/migrate"
	"Cocktail-Catalog/internal/utils"
	"Cocktail-Catalog/internal/utils/logging"
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("cocktail catalog stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if _, err := logging.Setup(cfg.LogLevel); err != nil {
		slog.Warn("falling back to info logging", slog.String("error", err.Error()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migration.Migrate(db); err != nil {
		return err
	}
	if cfg.SeedData {
		if _, err := migration.Seed(ctx, db); err != nil {
			return err
		}
	}

	app, err := config.NewApp(ctx, db, cfg, config.Options{})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("listening", slog.String("port", cfg.Port), slog.String("api", cfg.APIBaseURL))
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
