package report

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"syscall"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type FailureKind string

const (
	FailureConnection FailureKind = "connection"
	FailureTimeout    FailureKind = "timeout"
	FailureQuery      FailureKind = "query"
)

// Failure is the tagged error carried by a failed result.
type Failure struct {
	Op   string
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// KindOf returns the failure tag of err, or "" when err is not a Failure.
func KindOf(err error) FailureKind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

func classify(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.Is(err, syscall.ECONNREFUSED) {
		return FailureConnection
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return FailureConnection
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureConnection
	}
	return FailureQuery
}

// Service is the fail-soft boundary over the query layer. Every failure is
// logged once here and handed back as an error result; nothing panics and
// nothing is retried.
type Service struct {
	repo   repo.SalesRepository
	kpis   *KPIAggregator
	logger *slog.Logger
}

func NewService(r repo.SalesRepository, logger *slog.Logger) *Service {
	return &Service{repo: r, kpis: NewKPIAggregator(r), logger: logger}
}

func run[T any](ctx context.Context, s *Service, op string, attrs []any, fn func(context.Context) (T, error)) mo.Result[T] {
	v, err := fn(ctx)
	if err != nil {
		f := &Failure{Op: op, Kind: classify(err), Err: err}
		s.logger.ErrorContext(ctx, "query failed", append(attrs, "op", op, "kind", f.Kind, "error", err)...)
		return mo.Err[T](f)
	}
	return mo.Ok(v)
}

func periodAttrs(storeID int, p Period) []any {
	return []any{"store_id", storeID, "month", p.Month, "year", p.Year}
}

func (s *Service) Stores(ctx context.Context) mo.Result[[]models.Store] {
	return run(ctx, s, "list_stores", nil, s.repo.ListStores)
}

func (s *Service) MonthlySummary(ctx context.Context, storeID int, p Period) mo.Result[repo.MonthSummary] {
	return run(ctx, s, "monthly_summary", periodAttrs(storeID, p), func(ctx context.Context) (repo.MonthSummary, error) {
		return s.repo.MonthlySummary(ctx, storeID, p.Month, p.Year)
	})
}

func (s *Service) MonthlyTimeSeries(ctx context.Context, storeID int) mo.Result[[]repo.PeriodSales] {
	return run(ctx, s, "monthly_time_series", []any{"store_id", storeID}, func(ctx context.Context) ([]repo.PeriodSales, error) {
		return s.repo.MonthlyTimeSeries(ctx, storeID)
	})
}

func (s *Service) TopProducts(ctx context.Context, storeID int, p Period) mo.Result[[]repo.ProductQuantity] {
	return run(ctx, s, "top_products", periodAttrs(storeID, p), func(ctx context.Context) ([]repo.ProductQuantity, error) {
		return s.repo.TopProductsByQuantity(ctx, storeID, p.Month, p.Year)
	})
}

func (s *Service) AverageBasket(ctx context.Context, storeID int, p Period) mo.Result[decimal.Decimal] {
	return run(ctx, s, "average_basket", periodAttrs(storeID, p), func(ctx context.Context) (decimal.Decimal, error) {
		return s.repo.AverageBasketValue(ctx, storeID, p.Month, p.Year)
	})
}

func (s *Service) KPIs(ctx context.Context, storeID int, p Period) mo.Result[KPIs] {
	return run(ctx, s, "kpis", periodAttrs(storeID, p), func(ctx context.Context) (KPIs, error) {
		return s.kpis.Aggregate(ctx, storeID, p)
	})
}
