package report

import (
	"context"

	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type SectionStatus string

const (
	StatusOK    SectionStatus = "ok"
	StatusEmpty SectionStatus = "empty"
	StatusError SectionStatus = "error"
)

// Section is one independently degradable part of the dashboard.
type Section[T any] struct {
	Status  SectionStatus `json:"status"`
	Failure FailureKind   `json:"failure,omitempty"`
	Data    T             `json:"data"`
}

func (s Section[T]) OK() bool { return s.Status == StatusOK }

// SectionOf turns a result into a section; isEmpty decides ok versus empty.
func SectionOf[T any](r mo.Result[T], isEmpty func(T) bool) Section[T] {
	v, err := r.Get()
	if err != nil {
		var zero T
		return Section[T]{Status: StatusError, Failure: KindOf(err), Data: zero}
	}
	if isEmpty(v) {
		return Section[T]{Status: StatusEmpty, Data: v}
	}
	return Section[T]{Status: StatusOK, Data: v}
}

// Dashboard is everything one store's page renders.
type Dashboard struct {
	StoreID       int `json:"storeId"`
	CurrentMonth  int `json:"currentMonth"`
	CurrentYear   int `json:"currentYear"`
	LastMonth     int `json:"lastMonth"`
	LastMonthYear int `json:"lastMonthYear"`
	LastYear      int `json:"lastYear"`

	KPIs             Section[KPIs]                   `json:"kpis"`
	SalesSeries      Section[[]repo.PeriodSales]     `json:"salesSeries"`
	TopProducts      Section[[]repo.ProductQuantity] `json:"topProducts"`
	CurrentAvgBasket Section[decimal.Decimal]        `json:"currentAvgBasket"`
	LastAvgBasket    Section[decimal.Decimal]        `json:"lastAvgBasket"`
	BasketChangePct  float64                         `json:"basketChangePct"`
}

// NoKPIs reports a section with nothing to show: no sales in the current
// month and no movement against either comparison period.
func NoKPIs(k KPIs) bool {
	return k.CurrentCount == 0 && k.CurrentAmount.IsZero() && k.LastYearAmount.IsZero() &&
		k.CountChangePct == 0 && k.AmountChangePct == 0 && k.YearAmountChangePct == 0
}

func EmptySlice[T any](v []T) bool { return len(v) == 0 }

func ZeroAmount(d decimal.Decimal) bool { return d.IsZero() }

// Dashboard assembles the page for storeID at period p. A failing query only
// degrades its own section.
func (s *Service) Dashboard(ctx context.Context, storeID int, p Period) (Dashboard, error) {
	if err := p.Validate(); err != nil {
		return Dashboard{}, err
	}
	w := WindowAt(p)

	d := Dashboard{
		StoreID:       storeID,
		CurrentMonth:  w.Current.Month,
		CurrentYear:   w.Current.Year,
		LastMonth:     w.LastMonth.Month,
		LastMonthYear: w.LastMonth.Year,
		LastYear:      w.LastYear.Year,
	}

	d.KPIs = SectionOf(s.KPIs(ctx, storeID, w.Current), NoKPIs)
	d.SalesSeries = SectionOf(s.MonthlyTimeSeries(ctx, storeID), EmptySlice[repo.PeriodSales])
	d.TopProducts = SectionOf(s.TopProducts(ctx, storeID, w.Current), EmptySlice[repo.ProductQuantity])
	d.CurrentAvgBasket = SectionOf(s.AverageBasket(ctx, storeID, w.Current), ZeroAmount)
	d.LastAvgBasket = SectionOf(s.AverageBasket(ctx, storeID, w.LastMonth), ZeroAmount)

	if d.CurrentAvgBasket.Status != StatusError && d.LastAvgBasket.Status != StatusError {
		d.BasketChangePct = PercentChange(d.CurrentAvgBasket.Data, d.LastAvgBasket.Data)
	}
	return d, nil
}
