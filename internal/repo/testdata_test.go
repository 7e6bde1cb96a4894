package repo

import (
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleDataset has two stores. Store 1 sells in 2024-02, 2024-03 and
// 2023-03; store 2 only in 2024-03. Order 6 has no items.
func sampleDataset() models.Dataset {
	return models.Dataset{
		Stores: []models.Store{
			{ID: 1, Name: "Scranton Branch", City: "Scranton", Manager: "Michael Scott"},
			{ID: 2, Name: "Stamford Branch", City: "Stamford", Manager: "Josh Porter"},
			{ID: 3, Name: "Nashua Branch", City: "Nashua", Manager: "Craig"},
		},
		Sellers: []models.Seller{
			{ID: 1, Name: "Jim Halpert", StoreID: 1},
			{ID: 2, Name: "Dwight Schrute", StoreID: 1},
			{ID: 3, Name: "Andy Bernard", StoreID: 2},
		},
		Customers: []models.Customer{
			{ID: 1, Name: "Customer 1", City: "Scranton"},
			{ID: 2, Name: "Customer 2", City: "Nashua"},
		},
		Products: []models.Product{
			{ID: 1, Name: "Premium Paper", UnitPrice: price("15.99")},
			{ID: 2, Name: "Copy Paper", UnitPrice: price("7.99")},
			{ID: 3, Name: "Envelopes", UnitPrice: price("5")},
		},
		Orders: []models.Order{
			{ID: 1, CustomerID: 1, SellerID: 1, OrderDate: "2024-03-15"},
			{ID: 2, CustomerID: 2, SellerID: 2, OrderDate: "2024-03-02"},
			{ID: 3, CustomerID: 1, SellerID: 1, OrderDate: "2024-02-10"},
			{ID: 4, CustomerID: 1, SellerID: 2, OrderDate: "2023-03-30"},
			{ID: 5, CustomerID: 2, SellerID: 3, OrderDate: "2024-03-20"},
			{ID: 6, CustomerID: 2, SellerID: 1, OrderDate: "2023-12-01"},
		},
		OrderItems: []models.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2}, // 31.98
			{ID: 2, OrderID: 1, ProductID: 3, Quantity: 4}, // 20
			{ID: 3, OrderID: 2, ProductID: 2, Quantity: 5}, // 39.95
			{ID: 4, OrderID: 3, ProductID: 3, Quantity: 10}, // 50
			{ID: 5, OrderID: 4, ProductID: 2, Quantity: 1}, // 7.99
			{ID: 6, OrderID: 5, ProductID: 1, Quantity: 1}, // 15.99
		},
	}
}
