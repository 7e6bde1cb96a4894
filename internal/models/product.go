package models

import "github.com/shopspring/decimal"

// Product represents an item sold across all stores.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
