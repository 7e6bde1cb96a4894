package repo

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InMemorySalesRepository answers the same queries as SQLSalesRepository over
// a dataset held in memory.
type InMemorySalesRepository struct {
	mu sync.RWMutex
	ds models.Dataset
}

func NewInMemorySalesRepository(ds models.Dataset) *InMemorySalesRepository {
	return &InMemorySalesRepository{ds: ds}
}

// Replace swaps the whole dataset, the in-memory counterpart of a reload.
func (r *InMemorySalesRepository) Replace(ds models.Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ds = ds
}

// Reconcile recomputes every order total from its items and returns the
// number of orders touched.
func (r *InMemorySalesRepository) Reconcile() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	prices := lo.SliceToMap(r.ds.Products, func(p models.Product) (int, decimal.Decimal) {
		return p.ID, p.UnitPrice
	})

	totals := make(map[int]decimal.Decimal)
	for _, item := range r.ds.OrderItems {
		line := prices[item.ProductID].Mul(decimal.NewFromInt(int64(item.Quantity)))
		totals[item.OrderID] = totals[item.OrderID].Add(line)
	}

	orders := make([]models.Order, len(r.ds.Orders))
	for i, o := range r.ds.Orders {
		o.TotalAmount = totals[o.ID]
		orders[i] = o
	}
	r.ds.Orders = orders

	return int64(len(orders))
}

func (r *InMemorySalesRepository) Orders() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.ds.Orders)
}

func (r *InMemorySalesRepository) ListStores(_ context.Context) ([]models.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stores := slices.Clone(r.ds.Stores)
	slices.SortFunc(stores, func(a, b models.Store) int { return cmp.Compare(a.ID, b.ID) })
	if stores == nil {
		stores = []models.Store{}
	}
	return stores, nil
}

func (r *InMemorySalesRepository) MonthlySummary(_ context.Context, storeID, month, year int) (MonthSummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return MonthSummary{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.storeOrders(storeID, month, year)
	return MonthSummary{Count: len(orders), TotalAmount: sumTotals(orders)}, nil
}

func (r *InMemorySalesRepository) MonthlyTimeSeries(_ context.Context, storeID int) ([]PeriodSales, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.storeOrders(storeID, 0, 0)
	groups := lo.GroupBy(orders, func(o models.Order) string { return yearMonth(o.OrderDate) })

	keys := lo.Keys(groups)
	slices.Sort(keys)

	return lo.Map(keys, func(k string, _ int) PeriodSales {
		return PeriodSales{
			Period:      displayPeriod(k),
			Count:       len(groups[k]),
			TotalAmount: sumTotals(groups[k]),
		}
	}), nil
}

func (r *InMemorySalesRepository) TopProductsByQuantity(_ context.Context, storeID, month, year int) ([]ProductQuantity, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orderIDs := lo.SliceToMap(r.storeOrders(storeID, month, year), func(o models.Order) (int, struct{}) {
		return o.ID, struct{}{}
	})
	names := lo.SliceToMap(r.ds.Products, func(p models.Product) (int, string) { return p.ID, p.Name })

	quantities := make(map[string]int)
	for _, item := range r.ds.OrderItems {
		if _, ok := orderIDs[item.OrderID]; !ok {
			continue
		}
		name, ok := names[item.ProductID]
		if !ok {
			continue
		}
		quantities[name] += item.Quantity
	}

	products := lo.MapToSlice(quantities, func(name string, qty int) ProductQuantity {
		return ProductQuantity{ProductName: name, TotalQuantity: qty}
	})
	slices.SortFunc(products, func(a, b ProductQuantity) int {
		if c := cmp.Compare(b.TotalQuantity, a.TotalQuantity); c != 0 {
			return c
		}
		return cmp.Compare(a.ProductName, b.ProductName)
	})
	return products, nil
}

func (r *InMemorySalesRepository) AverageBasketValue(_ context.Context, storeID, month, year int) (decimal.Decimal, error) {
	if err := validatePeriod(month, year); err != nil {
		return decimal.Zero, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := r.storeOrders(storeID, month, year)
	if len(orders) == 0 {
		return decimal.Zero, nil
	}
	return sumTotals(orders).Div(decimal.NewFromInt(int64(len(orders)))), nil
}

// storeOrders returns the orders placed through sellers of storeID. A zero
// month matches every period.
func (r *InMemorySalesRepository) storeOrders(storeID, month, year int) []models.Order {
	if storeID <= 0 {
		return nil
	}

	sellers := lo.SliceToMap(
		lo.Filter(r.ds.Sellers, func(s models.Seller, _ int) bool { return s.StoreID == storeID }),
		func(s models.Seller) (int, struct{}) { return s.ID, struct{}{} },
	)

	var prefix string
	if month > 0 {
		y, m := periodArgs(month, year)
		prefix = y + "-" + m
	}

	return lo.Filter(r.ds.Orders, func(o models.Order, _ int) bool {
		if _, ok := sellers[o.SellerID]; !ok {
			return false
		}
		return prefix == "" || yearMonth(o.OrderDate) == prefix
	})
}

func yearMonth(orderDate string) string {
	if len(orderDate) < 7 {
		return orderDate
	}
	return orderDate[:7]
}

func sumTotals(orders []models.Order) decimal.Decimal {
	return lo.Reduce(orders, func(acc decimal.Decimal, o models.Order, _ int) decimal.Decimal {
		return acc.Add(o.TotalAmount)
	}, decimal.Zero)
}
