package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/rogerio-castellano/store-dashboard/internal/report"
)

// storeAndPeriod parses the common path and query parameters. It writes the
// 400 response itself and reports false when the request is malformed.
func (a *API) storeAndPeriod(w http.ResponseWriter, r *http.Request) (int, report.Period, bool) {
	storeID, err := parseStoreID(r)
	if err != nil {
		a.badRequest(w, r, []ValidationError{{Field: "storeID", Description: err.Error()}})
		return 0, report.Period{}, false
	}

	p, errs := parsePeriod(r, a.now())
	if len(errs) > 0 {
		a.badRequest(w, r, errs)
		return 0, report.Period{}, false
	}
	return storeID, p, true
}

// GetStoresHandler godoc
// @Summary List stores for the store selector
// @Tags stores
// @Produce json
// @Success 200 {object} report.Section[[]models.Store]
// @Router /stores [get]
func (a *API) GetStoresHandler(w http.ResponseWriter, r *http.Request) {
	section := report.SectionOf(a.reports.Stores(r.Context()), report.EmptySlice[models.Store])
	a.respond(w, r, http.StatusOK, section)
}

// GetDashboardHandler godoc
// @Summary Full dashboard payload for one store
// @Description Each section degrades independently: a failed query yields status "error" for that section only.
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Param month query int false "Month (1-12), defaults to the current month"
// @Param year query int false "Year, defaults to the current year"
// @Success 200 {object} report.Dashboard
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/dashboard [get]
func (a *API) GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	storeID, p, ok := a.storeAndPeriod(w, r)
	if !ok {
		return
	}

	d, err := a.reports.Dashboard(r.Context(), storeID, p)
	if err != nil {
		a.badRequest(w, r, []ValidationError{{Field: "period", Description: err.Error()}})
		return
	}
	a.respond(w, r, http.StatusOK, d)
}

// GetMonthlySummaryHandler godoc
// @Summary Order count and total amount for one month
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} report.Section[repo.MonthSummary]
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/summary [get]
func (a *API) GetMonthlySummaryHandler(w http.ResponseWriter, r *http.Request) {
	storeID, p, ok := a.storeAndPeriod(w, r)
	if !ok {
		return
	}

	section := report.SectionOf(a.reports.MonthlySummary(r.Context(), storeID, p), func(s repo.MonthSummary) bool {
		return s.Count == 0
	})
	a.respond(w, r, http.StatusOK, section)
}

// GetKPIsHandler godoc
// @Summary Month-over-month and year-over-year KPIs
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} report.Section[report.KPIs]
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/kpis [get]
func (a *API) GetKPIsHandler(w http.ResponseWriter, r *http.Request) {
	storeID, p, ok := a.storeAndPeriod(w, r)
	if !ok {
		return
	}

	section := report.SectionOf(a.reports.KPIs(r.Context(), storeID, p), report.NoKPIs)
	a.respond(w, r, http.StatusOK, section)
}

// GetTopProductsHandler godoc
// @Summary Products sold in the month, by quantity descending
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} report.Section[[]repo.ProductQuantity]
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/top-products [get]
func (a *API) GetTopProductsHandler(w http.ResponseWriter, r *http.Request) {
	storeID, p, ok := a.storeAndPeriod(w, r)
	if !ok {
		return
	}

	section := report.SectionOf(a.reports.TopProducts(r.Context(), storeID, p), report.EmptySlice[repo.ProductQuantity])
	a.respond(w, r, http.StatusOK, section)
}

// GetBasketHandler godoc
// @Summary Average basket value for the month and the month before
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} BasketResult
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/basket [get]
func (a *API) GetBasketHandler(w http.ResponseWriter, r *http.Request) {
	storeID, p, ok := a.storeAndPeriod(w, r)
	if !ok {
		return
	}

	last := p.PreviousMonth()
	res := BasketResult{
		Period:     p,
		LastPeriod: last,
		Current:    report.SectionOf(a.reports.AverageBasket(r.Context(), storeID, p), report.ZeroAmount),
		Last:       report.SectionOf(a.reports.AverageBasket(r.Context(), storeID, last), report.ZeroAmount),
	}
	if res.Current.Status != report.StatusError && res.Last.Status != report.StatusError {
		res.ChangePct = report.PercentChange(res.Current.Data, res.Last.Data)
	}
	a.respond(w, r, http.StatusOK, res)
}

// GetSalesSeriesHandler godoc
// @Summary Monthly order count and amount over the store's whole history
// @Tags dashboard
// @Produce json
// @Param storeID path int true "Store ID"
// @Success 200 {object} report.Section[[]repo.PeriodSales]
// @Failure 400 {object} ValidationErrors
// @Router /stores/{storeID}/sales-series [get]
func (a *API) GetSalesSeriesHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := parseStoreID(r)
	if err != nil {
		a.badRequest(w, r, []ValidationError{{Field: "storeID", Description: err.Error()}})
		return
	}

	section := report.SectionOf(a.reports.MonthlyTimeSeries(r.Context(), storeID), report.EmptySlice[repo.PeriodSales])
	a.respond(w, r, http.StatusOK, section)
}

// ExportSalesSeriesHandler godoc
// @Summary Export the monthly sales series
// @Tags dashboard
// @Produce text/csv, application/json
// @Param storeID path int true "Store ID"
// @Param format query string true "Export format (csv or json)"
// @Success 200 {file} file
// @Failure 400 {object} ValidationErrors
// @Failure 503 {string} string "Sales data unavailable"
// @Router /stores/{storeID}/sales-series/export [get]
func (a *API) ExportSalesSeriesHandler(w http.ResponseWriter, r *http.Request) {
	storeID, err := parseStoreID(r)
	if err != nil {
		a.badRequest(w, r, []ValidationError{{Field: "storeID", Description: err.Error()}})
		return
	}

	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		a.badRequest(w, r, []ValidationError{{Field: "format", Description: "format must be 'csv' or 'json'"}})
		return
	}

	series, err := a.reports.MonthlyTimeSeries(r.Context(), storeID).Get()
	if err != nil {
		http.Error(w, "sales data unavailable", http.StatusServiceUnavailable)
		return
	}

	filename := "sales-store-" + strconv.Itoa(storeID)
	switch format {
	case "json":
		headers := http.Header{"Content-Disposition": {`attachment; filename="` + filename + `.json"`}}
		if err := writeJSON(w, http.StatusOK, series, headers); err != nil {
			a.logger.ErrorContext(r.Context(), "failed to write JSON response", "path", r.URL.Path, "error", err)
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"period", "count", "total_amount"})
		for _, s := range series {
			_ = csvWriter.Write([]string{
				s.Period,
				strconv.Itoa(s.Count),
				s.TotalAmount.StringFixed(2),
			})
		}
		csvWriter.Flush()
	}
}
