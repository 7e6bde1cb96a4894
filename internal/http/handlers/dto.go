package handlers

import (
	"github.com/rogerio-castellano/store-dashboard/internal/report"
	"github.com/rogerio-castellano/store-dashboard/internal/seed"
	"github.com/shopspring/decimal"
)

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type BasketResult struct {
	Period     report.Period                   `json:"period"`
	LastPeriod report.Period                   `json:"lastPeriod"`
	Current    report.Section[decimal.Decimal] `json:"current"`
	Last       report.Section[decimal.Decimal] `json:"last"`
	ChangePct  float64                         `json:"changePct"`
}

type ReloadResult struct {
	Message      string     `json:"message"`
	Stats        seed.Stats `json:"stats"`
	CacheFlushed bool       `json:"cache_flushed"`
}

type ReconcileResult struct {
	Message      string `json:"message"`
	Reconciled   int64  `json:"reconciled"`
	CacheFlushed bool   `json:"cache_flushed"`
}

type MessageResult struct {
	Message string `json:"message"`
}

type HealthResult struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
