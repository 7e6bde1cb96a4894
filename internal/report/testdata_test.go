package report

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/shopspring/decimal"
)

// scenarioRepo holds store 1 with a 100.00 order in 2024-03 and a 50.00
// order in 2024-02.
func scenarioRepo() *repo.InMemorySalesRepository {
	r := repo.NewInMemorySalesRepository(models.Dataset{
		Stores:    []models.Store{{ID: 1, Name: "Scranton Branch", City: "Scranton", Manager: "Michael Scott"}},
		Sellers:   []models.Seller{{ID: 1, Name: "Jim Halpert", StoreID: 1}},
		Customers: []models.Customer{{ID: 1, Name: "Customer 1", City: "Boston"}},
		Products: []models.Product{
			{ID: 1, Name: "Premium Paper", UnitPrice: decimal.NewFromInt(25)},
			{ID: 2, Name: "Copy Paper", UnitPrice: decimal.NewFromInt(10)},
		},
		Orders: []models.Order{
			{ID: 1, CustomerID: 1, SellerID: 1, OrderDate: "2024-03-15"},
			{ID: 2, CustomerID: 1, SellerID: 1, OrderDate: "2024-02-10"},
		},
		OrderItems: []models.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 4},
			{ID: 2, OrderID: 2, ProductID: 2, Quantity: 5},
		},
	})
	r.Reconcile()
	return r
}

// failingRepo delegates to next except for the operations listed in errs.
type failingRepo struct {
	next repo.SalesRepository
	errs map[string]error
}

func (f *failingRepo) ListStores(ctx context.Context) ([]models.Store, error) {
	if err := f.errs["list_stores"]; err != nil {
		return nil, err
	}
	return f.next.ListStores(ctx)
}

func (f *failingRepo) MonthlySummary(ctx context.Context, storeID, month, year int) (repo.MonthSummary, error) {
	if err := f.errs["monthly_summary"]; err != nil {
		return repo.MonthSummary{}, err
	}
	return f.next.MonthlySummary(ctx, storeID, month, year)
}

func (f *failingRepo) MonthlyTimeSeries(ctx context.Context, storeID int) ([]repo.PeriodSales, error) {
	if err := f.errs["monthly_time_series"]; err != nil {
		return nil, err
	}
	return f.next.MonthlyTimeSeries(ctx, storeID)
}

func (f *failingRepo) TopProductsByQuantity(ctx context.Context, storeID, month, year int) ([]repo.ProductQuantity, error) {
	if err := f.errs["top_products"]; err != nil {
		return nil, err
	}
	return f.next.TopProductsByQuantity(ctx, storeID, month, year)
}

func (f *failingRepo) AverageBasketValue(ctx context.Context, storeID, month, year int) (decimal.Decimal, error) {
	if err := f.errs["average_basket"]; err != nil {
		return decimal.Zero, err
	}
	return f.next.AverageBasketValue(ctx, storeID, month, year)
}

var errSyntax = errors.New(`syntax error at or near "FORM"`)
