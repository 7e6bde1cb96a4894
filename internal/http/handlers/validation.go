package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/store-dashboard/internal/report"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func parseStoreID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "storeID"))
	if err != nil {
		return 0, fmt.Errorf("invalid store ID")
	}
	return id, nil
}

// parsePeriod reads month and year from the query string. Missing values
// default to the month containing now.
func parsePeriod(r *http.Request, now time.Time) (report.Period, []ValidationError) {
	p := report.PeriodOf(now)
	errs := []ValidationError{}
	q := r.URL.Query()

	if s := strings.TrimSpace(q.Get("month")); s != "" {
		m, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{Field: "month", Description: "month must be a number"})
		case m < 1 || m > 12:
			errs = append(errs, ValidationError{Field: "month", Description: "month must be between 1 and 12"})
		default:
			p.Month = m
		}
	}

	if s := strings.TrimSpace(q.Get("year")); s != "" {
		y, err := strconv.Atoi(s)
		switch {
		case err != nil:
			errs = append(errs, ValidationError{Field: "year", Description: "year must be a number"})
		case y < report.MinYear || y > report.MaxYear:
			errs = append(errs, ValidationError{Field: "year", Description: "year must have four digits"})
		default:
			p.Year = y
		}
	}

	return p, errs
}
