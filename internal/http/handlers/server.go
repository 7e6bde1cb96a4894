package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
	"github.com/rogerio-castellano/store-dashboard/internal/cache"
	"github.com/rogerio-castellano/store-dashboard/internal/report"
	"github.com/rogerio-castellano/store-dashboard/internal/seed"
)

// Reloader re-initializes the database from the seed files.
type Reloader interface {
	Import(ctx context.Context) (seed.Stats, error)
	Reconcile(ctx context.Context) (int64, error)
}

// HealthCheck reports whether one dependency answers.
type HealthCheck func(ctx context.Context) error

type Dependencies struct {
	Reports *report.Service
	Auth    *auth.AuthService
	// Admin and Cache are optional; admin endpoints answer 503 without Admin.
	Admin  Reloader
	Cache  cache.Cache
	Checks map[string]HealthCheck
	Logger *slog.Logger
	Now    func() time.Time
}

// API holds everything the handlers need.
type API struct {
	reports *report.Service
	auth    *auth.AuthService
	admin   Reloader
	cache   cache.Cache
	checks  map[string]HealthCheck
	logger  *slog.Logger
	now     func() time.Time
}

func NewAPI(d Dependencies) *API {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &API{
		reports: d.Reports,
		auth:    d.Auth,
		admin:   d.Admin,
		cache:   d.Cache,
		checks:  d.Checks,
		logger:  d.Logger,
		now:     d.Now,
	}
}

func (a *API) Auth() *auth.AuthService {
	return a.auth
}
