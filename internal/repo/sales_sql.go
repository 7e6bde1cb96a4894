package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/db"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

const (
	listStoresQuery = `SELECT store_id, store_name, city, manager FROM stores ORDER BY store_id`

	monthlySummaryQuery = `
		SELECT COUNT(*), COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		JOIN sellers s ON o.seller_id = s.seller_id
		WHERE s.store_id = ?
		  AND substr(o.order_date, 1, 4) = ?
		  AND substr(o.order_date, 6, 2) = ?`

	monthlyTimeSeriesQuery = `
		SELECT substr(o.order_date, 1, 7) AS period, COUNT(*), COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		JOIN sellers s ON o.seller_id = s.seller_id
		WHERE s.store_id = ?
		GROUP BY substr(o.order_date, 1, 7)
		ORDER BY period ASC`

	topProductsQuery = `
		SELECT p.product_name, SUM(oi.quantity) AS total_quantity
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.order_id
		JOIN sellers s ON o.seller_id = s.seller_id
		JOIN products p ON oi.product_id = p.product_id
		WHERE s.store_id = ?
		  AND substr(o.order_date, 1, 4) = ?
		  AND substr(o.order_date, 6, 2) = ?
		GROUP BY p.product_name
		ORDER BY total_quantity DESC, p.product_name`

	averageBasketQuery = `
		SELECT AVG(o.total_amount)
		FROM orders o
		JOIN sellers s ON o.seller_id = s.seller_id
		WHERE s.store_id = ?
		  AND substr(o.order_date, 1, 4) = ?
		  AND substr(o.order_date, 6, 2) = ?`
)

type SQLSalesRepository struct {
	conn    *db.DB
	timeout time.Duration
}

func NewSQLSalesRepository(conn *db.DB, timeout time.Duration) *SQLSalesRepository {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &SQLSalesRepository{conn: conn, timeout: timeout}
}

func (r *SQLSalesRepository) ListStores(ctx context.Context) ([]models.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, r.conn.Dialect.Rebind(listStoresQuery))
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.Manager); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return stores, nil
}

func (r *SQLSalesRepository) MonthlySummary(ctx context.Context, storeID, month, year int) (MonthSummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return MonthSummary{}, err
	}
	if storeID <= 0 {
		return MonthSummary{TotalAmount: decimal.Zero}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	y, m := periodArgs(month, year)
	var s MonthSummary
	err := r.conn.QueryRowContext(ctx, r.conn.Dialect.Rebind(monthlySummaryQuery), storeID, y, m).
		Scan(&s.Count, &s.TotalAmount)
	if err != nil {
		return MonthSummary{}, fmt.Errorf("failed to query monthly summary: %w", err)
	}

	return s, nil
}

func (r *SQLSalesRepository) MonthlyTimeSeries(ctx context.Context, storeID int) ([]PeriodSales, error) {
	if storeID <= 0 {
		return []PeriodSales{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.conn.QueryContext(ctx, r.conn.Dialect.Rebind(monthlyTimeSeriesQuery), storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly time series: %w", err)
	}
	defer rows.Close()

	series := []PeriodSales{}
	for rows.Next() {
		var (
			yearMonth string
			p         PeriodSales
		)
		if err := rows.Scan(&yearMonth, &p.Count, &p.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan period: %w", err)
		}
		p.Period = displayPeriod(yearMonth)
		series = append(series, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query monthly time series: %w", err)
	}

	return series, nil
}

func (r *SQLSalesRepository) TopProductsByQuantity(ctx context.Context, storeID, month, year int) ([]ProductQuantity, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if storeID <= 0 {
		return []ProductQuantity{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	y, m := periodArgs(month, year)
	rows, err := r.conn.QueryContext(ctx, r.conn.Dialect.Rebind(topProductsQuery), storeID, y, m)
	if err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	defer rows.Close()

	products := []ProductQuantity{}
	for rows.Next() {
		var p ProductQuantity
		if err := rows.Scan(&p.ProductName, &p.TotalQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan product quantity: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}

	return products, nil
}

func (r *SQLSalesRepository) AverageBasketValue(ctx context.Context, storeID, month, year int) (decimal.Decimal, error) {
	if err := validatePeriod(month, year); err != nil {
		return decimal.Zero, err
	}
	if storeID <= 0 {
		return decimal.Zero, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	y, m := periodArgs(month, year)
	var avg decimal.NullDecimal
	err := r.conn.QueryRowContext(ctx, r.conn.Dialect.Rebind(averageBasketQuery), storeID, y, m).Scan(&avg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query average basket: %w", err)
	}

	// AVG over zero rows is NULL
	if !avg.Valid {
		return decimal.Zero, nil
	}
	return avg.Decimal, nil
}
