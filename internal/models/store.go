package models

// Store is a physical branch. Sellers belong to exactly one store.
type Store struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Manager string `json:"manager"`
}

type Seller struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	StoreID int    `json:"store_id"`
}

type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}
