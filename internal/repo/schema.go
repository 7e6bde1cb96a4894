package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/store-dashboard/internal/db"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
)

// Tables in foreign key order. Drops run in reverse.
var tables = []string{"stores", "sellers", "customers", "products", "orders", "order_items"}

var createStatements = []string{
	`CREATE TABLE stores (
		store_id INTEGER PRIMARY KEY,
		store_name TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		manager TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE sellers (
		seller_id INTEGER PRIMARY KEY,
		seller_name TEXT NOT NULL,
		store_id INTEGER NOT NULL REFERENCES stores(store_id)
	)`,
	`CREATE TABLE customers (
		customer_id INTEGER PRIMARY KEY,
		customer_name TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE products (
		product_id INTEGER PRIMARY KEY,
		product_name TEXT NOT NULL,
		unit_price DOUBLE PRECISION NOT NULL CHECK (unit_price >= 0)
	)`,
	`CREATE TABLE orders (
		order_id INTEGER PRIMARY KEY,
		customer_id INTEGER NOT NULL REFERENCES customers(customer_id),
		seller_id INTEGER NOT NULL REFERENCES sellers(seller_id),
		order_date TEXT NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE order_items (
		order_item_id INTEGER PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(order_id),
		product_id INTEGER NOT NULL REFERENCES products(product_id),
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	)`,
	`CREATE INDEX idx_sellers_store ON sellers (store_id)`,
	`CREATE INDEX idx_orders_seller_date ON orders (seller_id, order_date)`,
	`CREATE INDEX idx_order_items_order ON order_items (order_id)`,
}

// reconcileQuery sets every order total to the sum of its item lines, or 0
// for an order without items.
const reconcileQuery = `
	UPDATE orders
	SET total_amount = COALESCE((
		SELECT SUM(oi.quantity * p.unit_price)
		FROM order_items oi
		JOIN products p ON oi.product_id = p.product_id
		WHERE oi.order_id = orders.order_id
	), 0)`

// Schema owns the write side: table lifecycle, bulk load and reconciliation.
// The dashboard read path never goes through it.
type Schema struct {
	conn *db.DB
}

func NewSchema(conn *db.DB) *Schema {
	return &Schema{conn: conn}
}

// Reset drops every table and recreates the schema empty.
func (s *Schema) Reset(ctx context.Context) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema reset: %w", err)
	}
	defer tx.Rollback()

	for i := len(tables) - 1; i >= 0; i-- {
		if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+tables[i]); err != nil {
			return fmt.Errorf("failed to drop %s: %w", tables[i], err)
		}
	}

	for _, stmt := range createStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return tx.Commit()
}

// Load inserts the dataset in one transaction. Order totals are left at their
// default; run ReconcileOrderTotals afterwards.
func (s *Schema) Load(ctx context.Context, ds models.Dataset) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load: %w", err)
	}
	defer tx.Rollback()

	d := s.conn.Dialect

	if err := insertAll(ctx, tx, d, `INSERT INTO stores (store_id, store_name, city, manager) VALUES (?, ?, ?, ?)`,
		ds.Stores, func(v models.Store) []any { return []any{v.ID, v.Name, v.City, v.Manager} }); err != nil {
		return fmt.Errorf("failed to insert stores: %w", err)
	}

	if err := insertAll(ctx, tx, d, `INSERT INTO sellers (seller_id, seller_name, store_id) VALUES (?, ?, ?)`,
		ds.Sellers, func(v models.Seller) []any { return []any{v.ID, v.Name, v.StoreID} }); err != nil {
		return fmt.Errorf("failed to insert sellers: %w", err)
	}

	if err := insertAll(ctx, tx, d, `INSERT INTO customers (customer_id, customer_name, city) VALUES (?, ?, ?)`,
		ds.Customers, func(v models.Customer) []any { return []any{v.ID, v.Name, v.City} }); err != nil {
		return fmt.Errorf("failed to insert customers: %w", err)
	}

	if err := insertAll(ctx, tx, d, `INSERT INTO products (product_id, product_name, unit_price) VALUES (?, ?, ?)`,
		ds.Products, func(v models.Product) []any { return []any{v.ID, v.Name, v.UnitPrice.InexactFloat64()} }); err != nil {
		return fmt.Errorf("failed to insert products: %w", err)
	}

	if err := insertAll(ctx, tx, d, `INSERT INTO orders (order_id, customer_id, seller_id, order_date) VALUES (?, ?, ?, ?)`,
		ds.Orders, func(v models.Order) []any { return []any{v.ID, v.CustomerID, v.SellerID, v.OrderDate} }); err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}

	if err := insertAll(ctx, tx, d, `INSERT INTO order_items (order_item_id, order_id, product_id, quantity) VALUES (?, ?, ?, ?)`,
		ds.OrderItems, func(v models.OrderItem) []any { return []any{v.ID, v.OrderID, v.ProductID, v.Quantity} }); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}

	return tx.Commit()
}

// ReconcileOrderTotals recomputes orders.total_amount from order_items and
// products and returns the number of orders touched.
func (s *Schema) ReconcileOrderTotals(ctx context.Context) (int64, error) {
	res, err := s.conn.ExecContext(ctx, reconcileQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile order totals: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reconciled orders: %w", err)
	}
	return n, nil
}

func insertAll[T any](ctx context.Context, tx *sql.Tx, d db.Dialect, query string, rows []T, args func(T) []any) error {
	if len(rows) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, d.Rebind(query))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, args(row)...); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return nil
}
