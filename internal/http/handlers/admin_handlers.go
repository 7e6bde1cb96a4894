package handlers

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
)

func (a *API) adminName(ctx context.Context) string {
	if u, ok := auth.UserFrom(ctx); ok {
		return u.Username
	}
	return ""
}

// flushCache reports whether a cache existed and was emptied.
func (a *API) flushCache(ctx context.Context) bool {
	if a.cache == nil {
		return false
	}
	if err := a.cache.Flush(ctx); err != nil {
		a.logger.ErrorContext(ctx, "cache flush failed", "error", err)
		return false
	}
	return true
}

// ReloadHandler godoc
// @Summary Drop and recreate the tables, load the seed CSVs and reconcile totals
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ReloadResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Reload failed"
// @Failure 503 {string} string "Reload not available"
// @Router /admin/reload [post]
func (a *API) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if a.admin == nil {
		http.Error(w, "reload not available", http.StatusServiceUnavailable)
		return
	}

	a.logger.InfoContext(r.Context(), "reload requested", "admin", a.adminName(r.Context()))
	stats, err := a.admin.Import(r.Context())
	if err != nil {
		a.logger.ErrorContext(r.Context(), "reload failed", "error", err)
		http.Error(w, "reload failed", http.StatusInternalServerError)
		return
	}

	a.respond(w, r, http.StatusOK, ReloadResult{
		Message:      "database reloaded",
		Stats:        stats,
		CacheFlushed: a.flushCache(r.Context()),
	})
}

// ReconcileHandler godoc
// @Summary Recompute every order total from its items
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ReconcileResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Reconciliation failed"
// @Failure 503 {string} string "Reconciliation not available"
// @Router /admin/reconcile [post]
func (a *API) ReconcileHandler(w http.ResponseWriter, r *http.Request) {
	if a.admin == nil {
		http.Error(w, "reconciliation not available", http.StatusServiceUnavailable)
		return
	}

	n, err := a.admin.Reconcile(r.Context())
	if err != nil {
		a.logger.ErrorContext(r.Context(), "reconciliation failed", "error", err)
		http.Error(w, "reconciliation failed", http.StatusInternalServerError)
		return
	}

	a.respond(w, r, http.StatusOK, ReconcileResult{
		Message:      "order totals reconciled",
		Reconciled:   n,
		CacheFlushed: a.flushCache(r.Context()),
	})
}

// FlushCacheHandler godoc
// @Summary Drop every memoized query result
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} MessageResult
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Flush failed"
// @Router /admin/cache/flush [post]
func (a *API) FlushCacheHandler(w http.ResponseWriter, r *http.Request) {
	if a.cache == nil {
		a.respond(w, r, http.StatusOK, MessageResult{Message: "cache disabled"})
		return
	}
	if !a.flushCache(r.Context()) {
		http.Error(w, "flush failed", http.StatusInternalServerError)
		return
	}
	a.respond(w, r, http.StatusOK, MessageResult{Message: "cache flushed"})
}
