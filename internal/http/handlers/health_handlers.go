package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Liveness and dependency checks
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Failure 503 {object} HealthResult
// @Router /healthz [get]
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	res := HealthResult{Status: "ok", Checks: make(map[string]string, len(a.checks))}
	status := http.StatusOK
	for name, check := range a.checks {
		if err := check(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", "check", name, "error", err)
			res.Checks[name] = err.Error()
			res.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		res.Checks[name] = "ok"
	}

	a.respond(w, r, status, res)
}
