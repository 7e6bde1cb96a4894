package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("invalid period")

// MonthSummary is the order count and amount of one store for one calendar month.
type MonthSummary struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// PeriodSales is one point of the monthly time series. Period is MM/YYYY.
type PeriodSales struct {
	Period      string          `json:"period"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type ProductQuantity struct {
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
}

// SalesRepository is the read side of the sales schema. Every method is a
// pure read; a store id <= 0 yields an empty result without querying.
type SalesRepository interface {
	ListStores(ctx context.Context) ([]models.Store, error)
	MonthlySummary(ctx context.Context, storeID, month, year int) (MonthSummary, error)
	MonthlyTimeSeries(ctx context.Context, storeID int) ([]PeriodSales, error)
	TopProductsByQuantity(ctx context.Context, storeID, month, year int) ([]ProductQuantity, error)
	AverageBasketValue(ctx context.Context, storeID, month, year int) (decimal.Decimal, error)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	return nil
}

// periodArgs renders month and year the way order_date stores them.
func periodArgs(month, year int) (string, string) {
	return fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month)
}

// displayPeriod turns a YYYY-MM prefix into MM/YYYY.
func displayPeriod(yearMonth string) string {
	if len(yearMonth) < 7 {
		return yearMonth
	}
	return yearMonth[5:7] + "/" + yearMonth[:4]
}
