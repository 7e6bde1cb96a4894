package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/cache"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

// CachedSalesRepository memoizes another SalesRepository for ttl. Entries are
// keyed by operation and parameters and may be stale within their window.
// Failed queries are never cached; a broken cache falls through to next.
type CachedSalesRepository struct {
	next   SalesRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSalesRepository(next SalesRepository, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CachedSalesRepository {
	return &CachedSalesRepository{next: next, cache: c, ttl: ttl, logger: logger}
}

func cacheKey(op string, params ...int) string {
	key := op
	for _, p := range params {
		key += fmt.Sprintf(":%d", p)
	}
	return key
}

func cached[T any](ctx context.Context, r *CachedSalesRepository, key string, load func(context.Context) (T, error)) (T, error) {
	raw, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("cache read failed", "key", key, "error", err)
	}
	if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		r.logger.Warn("discarding undecodable cache entry", "key", key)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
			r.logger.Warn("cache write failed", "key", key, "error", err)
		}
	}
	return v, nil
}

func (r *CachedSalesRepository) ListStores(ctx context.Context) ([]models.Store, error) {
	return cached(ctx, r, cacheKey("list_stores"), r.next.ListStores)
}

func (r *CachedSalesRepository) MonthlySummary(ctx context.Context, storeID, month, year int) (MonthSummary, error) {
	return cached(ctx, r, cacheKey("monthly_summary", storeID, month, year), func(ctx context.Context) (MonthSummary, error) {
		return r.next.MonthlySummary(ctx, storeID, month, year)
	})
}

func (r *CachedSalesRepository) MonthlyTimeSeries(ctx context.Context, storeID int) ([]PeriodSales, error) {
	return cached(ctx, r, cacheKey("monthly_time_series", storeID), func(ctx context.Context) ([]PeriodSales, error) {
		return r.next.MonthlyTimeSeries(ctx, storeID)
	})
}

func (r *CachedSalesRepository) TopProductsByQuantity(ctx context.Context, storeID, month, year int) ([]ProductQuantity, error) {
	return cached(ctx, r, cacheKey("top_products", storeID, month, year), func(ctx context.Context) ([]ProductQuantity, error) {
		return r.next.TopProductsByQuantity(ctx, storeID, month, year)
	})
}

func (r *CachedSalesRepository) AverageBasketValue(ctx context.Context, storeID, month, year int) (decimal.Decimal, error) {
	return cached(ctx, r, cacheKey("average_basket", storeID, month, year), func(ctx context.Context) (decimal.Decimal, error) {
		return r.next.AverageBasketValue(ctx, storeID, month, year)
	})
}

// Invalidate drops every memoized result, e.g. after a reload.
func (r *CachedSalesRepository) Invalidate(ctx context.Context) error {
	return r.cache.Flush(ctx)
}
