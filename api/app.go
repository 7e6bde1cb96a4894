package main

import (
	"context"
	"log/slog"

	"github.com/rogerio-castellano/store-dashboard/internal/config"
	"github.com/rogerio-castellano/store-dashboard/internal/db"
	"github.com/rogerio-castellano/store-dashboard/internal/observability"
)

// app bundles what every command needs: configuration, logger and, unless
// skipped, the database connection.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *db.DB
}

func bootstrap(ctx context.Context, connect bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: observability.NewLogger(cfg.Log)}
	if !connect {
		return a, nil
	}

	a.db, err = db.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	a.logger.Info("database connected", "driver", cfg.Database.Driver)
	return a, nil
}

func (a *app) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("failed to close database", "error", err)
		}
	}
}
