package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
	"github.com/rogerio-castellano/store-dashboard/internal/cache"
	"github.com/rogerio-castellano/store-dashboard/internal/config"
	api "github.com/rogerio-castellano/store-dashboard/internal/http"
	"github.com/rogerio-castellano/store-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/redissvc"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/rogerio-castellano/store-dashboard/internal/report"
	"github.com/rogerio-castellano/store-dashboard/internal/seed"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var inMemory bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&inMemory, "in-memory", false, "serve the seed CSVs from memory instead of a database")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, !inMemory)
	if err != nil {
		return err
	}
	defer a.close()
	cfg, logger := a.cfg, a.logger

	g, gctx := errgroup.WithContext(ctx)
	checks := map[string]handlers.HealthCheck{}

	var (
		sales    repo.SalesRepository
		reloader handlers.Reloader
	)
	if inMemory {
		memRepo := repo.NewInMemorySalesRepository(models.Dataset{})
		importer := seed.NewMemoryImporter(memRepo, cfg.Data.Dir, logger)
		if _, err := importer.Import(ctx); err != nil {
			return fmt.Errorf("load seed data: %w", err)
		}
		sales, reloader = memRepo, importer
	} else {
		sales = repo.NewSQLSalesRepository(a.db, cfg.Database.QueryTimeout)
		reloader = seed.NewImporter(repo.NewSchema(a.db), cfg.Data.Dir, logger)
		checks["database"] = a.db.PingContext
	}

	var c cache.Cache
	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rs, err := redissvc.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rs.Close()
		c = cache.NewRedis(rs.Rdb(), cfg.Cache.Prefix)
		checks["redis"] = rs.Ping
	case config.CacheMemory:
		m := cache.NewMemory()
		g.Go(func() error {
			m.StartJanitor(gctx, time.Minute)
			return nil
		})
		c = m
	}
	if c != nil {
		sales = repo.NewCachedSalesRepository(sales, c, cfg.Cache.TTL, logger)
		logger.Info("query cache enabled", "backend", cfg.Cache.Backend, "ttl", cfg.Cache.TTL)
	}

	var limiter *rl.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		g.Go(func() error {
			limiter.StartVisitorCleanupLoop(gctx, time.Minute, 5*time.Minute)
			return nil
		})
	}

	authSvc := auth.NewAuthService(cfg.Auth)
	if !authSvc.Enabled() {
		logger.Warn("admin endpoints disabled: auth.jwt_secret or auth.admin_password_hash not set")
	}

	h := handlers.NewAPI(handlers.Dependencies{
		Reports: report.NewService(sales, logger),
		Auth:    authSvc,
		Admin:   reloader,
		Cache:   c,
		Checks:  checks,
		Logger:  logger,
	})

	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      api.NewRouter(h, api.RouterOptions{Logger: logger, Limiter: limiter}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g.Go(func() error {
		logger.Info("starting server",
			"addr", srv.Addr,
			"read_timeout", cfg.Server.ReadTimeout,
			"write_timeout", cfg.Server.WriteTimeout,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("starting graceful shutdown", "timeout", cfg.Server.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown failed: %w", err)
		}
		logger.Info("HTTP server stopped gracefully")
		return nil
	})

	return g.Wait()
}
