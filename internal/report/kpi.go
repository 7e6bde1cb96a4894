package report

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// KPIs compares a store's month against the previous month and against the
// same month one year earlier. Percentages are unrounded.
type KPIs struct {
	CurrentCount        int             `json:"currentCount"`
	CountChangePct      float64         `json:"countChangePct"`
	CurrentAmount       decimal.Decimal `json:"currentAmount"`
	AmountChangePct     float64         `json:"amountChangePct"`
	LastYearAmount      decimal.Decimal `json:"lastYearAmount"`
	YearAmountChangePct float64         `json:"yearAmountChangePct"`
}

// PercentChange returns (current - previous) / previous * 100, or 0 when
// previous is zero.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
}

func ComputeKPIs(current, lastMonth, lastYear repo.MonthSummary) KPIs {
	return KPIs{
		CurrentCount:        current.Count,
		CountChangePct:      PercentChange(decimal.NewFromInt(int64(current.Count)), decimal.NewFromInt(int64(lastMonth.Count))),
		CurrentAmount:       current.TotalAmount,
		AmountChangePct:     PercentChange(current.TotalAmount, lastMonth.TotalAmount),
		LastYearAmount:      lastYear.TotalAmount,
		YearAmountChangePct: PercentChange(current.TotalAmount, lastYear.TotalAmount),
	}
}

// SummaryQuerier is the slice of the query layer the aggregator needs.
type SummaryQuerier interface {
	MonthlySummary(ctx context.Context, storeID, month, year int) (repo.MonthSummary, error)
}

type KPIAggregator struct {
	q SummaryQuerier
}

func NewKPIAggregator(q SummaryQuerier) *KPIAggregator {
	return &KPIAggregator{q: q}
}

// Aggregate fails as a whole when any of the three summaries fails.
func (a *KPIAggregator) Aggregate(ctx context.Context, storeID int, p Period) (KPIs, error) {
	if err := p.Validate(); err != nil {
		return KPIs{}, err
	}

	w := WindowAt(p)
	summaries := make([]repo.MonthSummary, 0, 3)
	for _, period := range []Period{w.Current, w.LastMonth, w.LastYear} {
		s, err := a.q.MonthlySummary(ctx, storeID, period.Month, period.Year)
		if err != nil {
			return KPIs{}, fmt.Errorf("summary for %s: %w", period, err)
		}
		summaries = append(summaries, s)
	}

	return ComputeKPIs(summaries[0], summaries[1], summaries[2]), nil
}
