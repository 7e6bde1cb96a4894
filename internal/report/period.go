package report

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/repo"
)

// Years are four digits. MinYear leaves the year-back comparison in range.
const (
	MinYear = 1000
	MaxYear = 9999
)

// Period is a calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12, got %d", repo.ErrInvalidPeriod, p.Month)
	}
	if p.Year < MinYear || p.Year > MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d", repo.ErrInvalidPeriod, MinYear, MaxYear, p.Year)
	}
	return nil
}

// PreviousMonth rolls January back to December of the prior year.
func (p Period) PreviousMonth() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

func (p Period) SameMonthLastYear() Period {
	return Period{Month: p.Month, Year: p.Year - 1}
}

// String renders MM/YYYY, the format used by the sales series.
func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", p.Month, p.Year)
}

// Window holds the three periods a dashboard compares.
type Window struct {
	Current   Period
	LastMonth Period
	LastYear  Period
}

func WindowAt(p Period) Window {
	return Window{
		Current:   p,
		LastMonth: p.PreviousMonth(),
		LastYear:  p.SameMonthLastYear(),
	}
}
