package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/store-dashboard/docs"
	"github.com/rogerio-castellano/store-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-dashboard/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type RouterOptions struct {
	Logger *slog.Logger
	// Limiter is nil when rate limiting is disabled.
	Limiter *rl.Limiter
}

func NewRouter(api *handlers.API, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", api.HealthHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(RateLimitMiddleware(opts.Limiter))
		}

		r.Post("/login", api.LoginHandler)
		r.Get("/stores", api.GetStoresHandler)
		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Get("/dashboard", api.GetDashboardHandler)
			r.Get("/summary", api.GetMonthlySummaryHandler)
			r.Get("/kpis", api.GetKPIsHandler)
			r.Get("/top-products", api.GetTopProductsHandler)
			r.Get("/basket", api.GetBasketHandler)
			r.Get("/sales-series", api.GetSalesSeriesHandler)
			r.Get("/sales-series/export", api.ExportSalesSeriesHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminMiddleware(api.Auth().Issuer()))
			r.Post("/reload", api.ReloadHandler)
			r.Post("/reconcile", api.ReconcileHandler)
			r.Post("/cache/flush", api.FlushCacheHandler)
		})
	})

	return r
}
