package repo

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/store-dashboard/internal/config"
	"github.com/rogerio-castellano/store-dashboard/internal/db"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB returns a fresh in-memory database loaded with sampleDataset
// and reconciled.
func newSQLiteDB(t *testing.T) *db.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          ":memory:",
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	require.NoError(t, err)

	schema := NewSchema(conn)
	require.NoError(t, schema.Reset(ctx))
	require.NoError(t, schema.Load(ctx, sampleDataset()))

	n, err := schema.ReconcileOrderTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)

	return conn
}

func TestSchema_ReconcileOrderTotals(t *testing.T) {
	conn := newSQLiteDB(t)

	rows, err := conn.Query(`SELECT order_id, total_amount FROM orders ORDER BY order_id`)
	require.NoError(t, err)
	defer rows.Close()

	want := map[int]float64{1: 51.98, 2: 39.95, 3: 50, 4: 7.99, 5: 15.99, 6: 0}
	got := map[int]float64{}
	for rows.Next() {
		var id int
		var total float64
		require.NoError(t, rows.Scan(&id, &total))
		got[id] = total
	}
	require.NoError(t, rows.Err())

	require.Len(t, got, len(want))
	for id, total := range want {
		assert.InDelta(t, total, got[id], 1e-9, "order %d", id)
	}
}

func TestSchema_ConstraintsRejectInvalidRows(t *testing.T) {
	conn := newSQLiteDB(t)
	ctx := context.Background()
	schema := NewSchema(conn)

	require.NoError(t, schema.Reset(ctx))

	ds := sampleDataset()
	ds.OrderItems[0].Quantity = 0
	assert.Error(t, schema.Load(ctx, ds), "quantity must be positive")

	ds = sampleDataset()
	ds.Sellers[0].StoreID = 99
	assert.Error(t, schema.Load(ctx, ds), "seller must reference an existing store")

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM stores`).Scan(&count))
	assert.Zero(t, count, "failed load leaves no partial rows")
}

func TestSQLSalesRepository_MonthlySummary(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)
	ctx := context.Background()

	s, err := r.MonthlySummary(ctx, 1, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 91.93, s.TotalAmount.InexactFloat64(), 1e-9)

	s, err = r.MonthlySummary(ctx, 1, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.InDelta(t, 50.0, s.TotalAmount.InexactFloat64(), 1e-9)
}

func TestSQLSalesRepository_MonthlySummary_NoOrders(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)
	ctx := context.Background()

	for _, tc := range []struct{ store, month, year int }{
		{3, 3, 2024},
		{1, 7, 2024},
		{99, 1, 2020},
	} {
		s, err := r.MonthlySummary(ctx, tc.store, tc.month, tc.year)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Count)
		assert.True(t, s.TotalAmount.IsZero())
	}
}

func TestSQLSalesRepository_MonthlyTimeSeries(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)

	series, err := r.MonthlyTimeSeries(context.Background(), 1)
	require.NoError(t, err)

	periods := make([]string, len(series))
	for i, p := range series {
		periods[i] = p.Period
	}
	assert.Equal(t, []string{"03/2023", "12/2023", "02/2024", "03/2024"}, periods)
	assert.Equal(t, 2, series[3].Count)
	assert.InDelta(t, 91.93, series[3].TotalAmount.InexactFloat64(), 1e-9)
	assert.True(t, series[1].TotalAmount.IsZero())
}

func TestSQLSalesRepository_MonthlyTimeSeries_Empty(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)

	series, err := r.MonthlyTimeSeries(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, series)

	series, err = r.MonthlyTimeSeries(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestSQLSalesRepository_TopProductsByQuantity(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)

	products, err := r.TopProductsByQuantity(context.Background(), 1, 3, 2024)
	require.NoError(t, err)

	assert.Equal(t, []ProductQuantity{
		{ProductName: "Copy Paper", TotalQuantity: 5},
		{ProductName: "Envelopes", TotalQuantity: 4},
		{ProductName: "Premium Paper", TotalQuantity: 2},
	}, products)
}

func TestSQLSalesRepository_AverageBasketValue(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)
	ctx := context.Background()

	avg, err := r.AverageBasketValue(ctx, 1, 3, 2024)
	require.NoError(t, err)
	assert.InDelta(t, 45.965, avg.InexactFloat64(), 1e-9)

	avg, err = r.AverageBasketValue(ctx, 3, 3, 2024)
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestSQLSalesRepository_ListStores(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)

	stores, err := r.ListStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, models.Store{ID: 1, Name: "Scranton Branch", City: "Scranton", Manager: "Michael Scott"}, stores[0])
}

func TestSQLSalesRepository_InvalidPeriod(t *testing.T) {
	r := NewSQLSalesRepository(newSQLiteDB(t), 0)
	ctx := context.Background()

	_, err := r.MonthlySummary(ctx, 1, 13, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = r.TopProductsByQuantity(ctx, 1, 0, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = r.AverageBasketValue(ctx, 1, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
