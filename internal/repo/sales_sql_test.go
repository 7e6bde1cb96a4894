package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rogerio-castellano/store-dashboard/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*SQLSalesRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewSQLSalesRepository(db.Wrap(sqlDB, db.Postgres), 0), mock
}

func TestSQLSalesRepository_Postgres_MonthlySummaryArgs(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE s.store_id = $1")).
		WithArgs(1, "2024", "03").
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(int64(1), 100.0))

	s, err := r.MonthlySummary(context.Background(), 1, 3, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, "100", s.TotalAmount.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSalesRepository_Postgres_QueryFailure(t *testing.T) {
	r, mock := newMockRepo(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).WillReturnError(boom)
	_, err := r.MonthlySummary(context.Background(), 1, 3, 2024)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT substr(o.order_date, 1, 7)")).WillReturnError(boom)
	_, err = r.MonthlyTimeSeries(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT p.product_name")).WillReturnError(boom)
	_, err = r.TopProductsByQuantity(context.Background(), 1, 3, 2024)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(o.total_amount)")).WillReturnError(boom)
	_, err = r.AverageBasketValue(context.Background(), 1, 3, 2024)
	assert.ErrorIs(t, err, boom)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stores")).WillReturnError(boom)
	_, err = r.ListStores(context.Background())
	assert.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSalesRepository_Postgres_AverageBasketNull(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT AVG(o.total_amount)")).
		WithArgs(2, "2023", "12").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	avg, err := r.AverageBasketValue(context.Background(), 2, 12, 2023)
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSalesRepository_Postgres_TimeSeriesFormatsPeriod(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY substr(o.order_date, 1, 7)")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"period", "count", "sum"}).
			AddRow("2023-11", int64(3), 30.5).
			AddRow("2024-01", int64(1), 12.0))

	series, err := r.MonthlyTimeSeries(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "11/2023", series[0].Period)
	assert.Equal(t, "01/2024", series[1].Period)
	assert.Equal(t, 3, series[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLSalesRepository_NonPositiveStoreSkipsQuery(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	s, err := r.MonthlySummary(ctx, 0, 3, 2024)
	require.NoError(t, err)
	assert.Zero(t, s.Count)

	series, err := r.MonthlyTimeSeries(ctx, -1)
	require.NoError(t, err)
	assert.Empty(t, series)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_ReconcileOrderTotals_Mock(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WillReturnResult(sqlmock.NewResult(0, 42))

	n, err := NewSchema(db.Wrap(sqlDB, db.Postgres)).ReconcileOrderTotals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchema_ReconcileOrderTotals_RowsAffectedError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders")).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("rows affected not supported")))

	n, err := NewSchema(db.Wrap(sqlDB, db.Postgres)).ReconcileOrderTotals(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
