package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDateLayout is the storage format of Order.OrderDate.
const OrderDateLayout = "2006-01-02"

// Order is a sale placed by a customer through a seller. TotalAmount stays at
// zero until the reconciliation pass recomputes it from the order items.
type Order struct {
	ID          int             `json:"id"`
	CustomerID  int             `json:"customer_id"`
	SellerID    int             `json:"seller_id"`
	OrderDate   string          `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Date parses OrderDate.
func (o Order) Date() (time.Time, error) {
	return time.Parse(OrderDateLayout, o.OrderDate)
}

type OrderItem struct {
	ID        int `json:"id"`
	OrderID   int `json:"order_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Dataset bundles every table of the sales schema, as read from the seed files.
type Dataset struct {
	Stores     []Store
	Sellers    []Seller
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}
