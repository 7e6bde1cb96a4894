package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
)

// SchemaWriter is the write side the importer drives; repo.Schema implements it.
type SchemaWriter interface {
	Reset(ctx context.Context) error
	Load(ctx context.Context, ds models.Dataset) error
	ReconcileOrderTotals(ctx context.Context) (int64, error)
}

type Stats struct {
	Stores     int           `json:"stores"`
	Sellers    int           `json:"sellers"`
	Customers  int           `json:"customers"`
	Products   int           `json:"products"`
	Orders     int           `json:"orders"`
	OrderItems int           `json:"order_items"`
	Reconciled int64         `json:"reconciled"`
	Duration   time.Duration `json:"duration_ns"`
}

// Importer performs the full re-initialization: drop and recreate the
// tables, load the CSV files and reconcile order totals.
type Importer struct {
	schema SchemaWriter
	dir    string
	logger *slog.Logger
}

func NewImporter(schema SchemaWriter, dir string, logger *slog.Logger) *Importer {
	return &Importer{schema: schema, dir: dir, logger: logger}
}

func (i *Importer) Import(ctx context.Context) (Stats, error) {
	start := time.Now()

	ds, err := ReadDir(ctx, i.dir)
	if err != nil {
		return Stats{}, err
	}
	i.logger.Info("seed files read", "dir", i.dir, "orders", len(ds.Orders), "order_items", len(ds.OrderItems))

	if err := i.schema.Reset(ctx); err != nil {
		return Stats{}, fmt.Errorf("reset schema: %w", err)
	}
	if err := i.schema.Load(ctx, ds); err != nil {
		return Stats{}, fmt.Errorf("load data: %w", err)
	}

	n, err := i.Reconcile(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := statsOf(ds)
	stats.Reconciled = n
	stats.Duration = time.Since(start)
	i.logger.Info("database initialized", "stats", stats)
	return stats, nil
}

func (i *Importer) Reconcile(ctx context.Context) (int64, error) {
	n, err := i.schema.ReconcileOrderTotals(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile: %w", err)
	}
	i.logger.Info("order totals reconciled", "orders", n)
	return n, nil
}

func statsOf(ds models.Dataset) Stats {
	return Stats{
		Stores:     len(ds.Stores),
		Sellers:    len(ds.Sellers),
		Customers:  len(ds.Customers),
		Products:   len(ds.Products),
		Orders:     len(ds.Orders),
		OrderItems: len(ds.OrderItems),
	}
}

// MemoryImporter reloads an InMemorySalesRepository from the seed files,
// for running the dashboard without a database server.
type MemoryImporter struct {
	repo   *repo.InMemorySalesRepository
	dir    string
	logger *slog.Logger
}

func NewMemoryImporter(r *repo.InMemorySalesRepository, dir string, logger *slog.Logger) *MemoryImporter {
	return &MemoryImporter{repo: r, dir: dir, logger: logger}
}

func (m *MemoryImporter) Import(ctx context.Context) (Stats, error) {
	start := time.Now()

	ds, err := ReadDir(ctx, m.dir)
	if err != nil {
		return Stats{}, err
	}
	m.repo.Replace(ds)

	stats := statsOf(ds)
	stats.Reconciled, _ = m.Reconcile(ctx)
	stats.Duration = time.Since(start)
	m.logger.Info("in-memory dataset loaded", "stats", stats)
	return stats, nil
}

func (m *MemoryImporter) Reconcile(_ context.Context) (int64, error) {
	return m.repo.Reconcile(), nil
}
