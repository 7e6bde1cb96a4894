package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	StoresFile     = "stores.csv"
	SellersFile    = "sellers.csv"
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
)

// record is one CSV row addressed by lower-cased header name.
type record struct {
	file   string
	row    int
	fields map[string]string
}

func (r record) text(col string) (string, error) {
	v, ok := r.fields[col]
	if !ok {
		return "", fmt.Errorf("%s row %d: missing column %q", r.file, r.row, col)
	}
	return strings.TrimSpace(v), nil
}

func (r record) integer(col string) (int, error) {
	s, err := r.text(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s row %d: invalid %s %q", r.file, r.row, col, s)
	}
	return v, nil
}

func (r record) money(col string) (decimal.Decimal, error) {
	s, err := r.text(col)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s row %d: invalid %s %q", r.file, r.row, col, s)
	}
	return v, nil
}

func (r record) date(col string) (string, error) {
	s, err := r.text(col)
	if err != nil {
		return "", err
	}
	if _, err := time.Parse(models.OrderDateLayout, s); err != nil {
		return "", fmt.Errorf("%s row %d: invalid %s %q, want YYYY-MM-DD", r.file, r.row, col, s)
	}
	return s, nil
}

func (r record) has(col string) bool {
	_, ok := r.fields[col]
	return ok
}

// readRecords reads a header-led CSV. Row numbers count the header as row 1.
func readRecords(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := filepath.Base(path)
	reader := csv.NewReader(f)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: invalid CSV header: %w", name, err)
	}
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []record
	for row := 2; ; row++ {
		values, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: CSV read error: %w", name, err)
		}

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				fields[h] = values[i]
			}
		}
		records = append(records, record{file: name, row: row, fields: fields})
	}
	return records, nil
}

// parseFile reads path and converts each record with parse.
func parseFile[T any](path string, parse func(record) (T, error)) ([]T, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := parse(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadDir reads the six seed files from dir concurrently.
func ReadDir(ctx context.Context, dir string) (models.Dataset, error) {
	var ds models.Dataset
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		ds.Stores, err = parseFile(filepath.Join(dir, StoresFile), parseStore)
		return err
	})
	g.Go(func() (err error) {
		ds.Sellers, err = parseFile(filepath.Join(dir, SellersFile), parseSeller)
		return err
	})
	g.Go(func() (err error) {
		ds.Customers, err = parseFile(filepath.Join(dir, CustomersFile), parseCustomer)
		return err
	})
	g.Go(func() (err error) {
		ds.Products, err = parseFile(filepath.Join(dir, ProductsFile), parseProduct)
		return err
	})
	g.Go(func() (err error) {
		ds.Orders, err = parseFile(filepath.Join(dir, OrdersFile), parseOrder)
		return err
	})
	g.Go(func() (err error) {
		ds.OrderItems, err = parseFile(filepath.Join(dir, OrderItemsFile), parseOrderItem)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dataset{}, fmt.Errorf("read seed data: %w", err)
	}
	return ds, nil
}

func parseStore(r record) (s models.Store, err error) {
	if s.ID, err = r.integer("store_id"); err != nil {
		return
	}
	if s.Name, err = r.text("store_name"); err != nil {
		return
	}
	if s.City, err = r.text("city"); err != nil {
		return
	}
	s.Manager, err = r.text("manager")
	return
}

func parseSeller(r record) (s models.Seller, err error) {
	if s.ID, err = r.integer("seller_id"); err != nil {
		return
	}
	if s.Name, err = r.text("seller_name"); err != nil {
		return
	}
	s.StoreID, err = r.integer("store_id")
	return
}

func parseCustomer(r record) (c models.Customer, err error) {
	if c.ID, err = r.integer("customer_id"); err != nil {
		return
	}
	if c.Name, err = r.text("customer_name"); err != nil {
		return
	}
	c.City, err = r.text("city")
	return
}

func parseProduct(r record) (p models.Product, err error) {
	if p.ID, err = r.integer("product_id"); err != nil {
		return
	}
	if p.Name, err = r.text("product_name"); err != nil {
		return
	}
	p.UnitPrice, err = r.money("unit_price")
	return
}

func parseOrder(r record) (o models.Order, err error) {
	if o.ID, err = r.integer("order_id"); err != nil {
		return
	}
	if o.CustomerID, err = r.integer("customer_id"); err != nil {
		return
	}
	if o.SellerID, err = r.integer("seller_id"); err != nil {
		return
	}
	o.OrderDate, err = r.date("order_date")
	return
}

// parseOrderItem numbers items by row when the file has no order_item_id column.
func parseOrderItem(r record) (i models.OrderItem, err error) {
	if r.has("order_item_id") {
		if i.ID, err = r.integer("order_item_id"); err != nil {
			return
		}
	} else {
		i.ID = r.row - 1
	}
	if i.OrderID, err = r.integer("order_id"); err != nil {
		return
	}
	if i.ProductID, err = r.integer("product_id"); err != nil {
		return
	}
	i.Quantity, err = r.integer("quantity")
	return
}
