package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
	"github.com/rogerio-castellano/store-dashboard/internal/cache"
	"github.com/rogerio-castellano/store-dashboard/internal/config"
	api "github.com/rogerio-castellano/store-dashboard/internal/http"
	handler "github.com/rogerio-castellano/store-dashboard/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-dashboard/internal/http/rate_limiter"
	"github.com/rogerio-castellano/store-dashboard/internal/models"
	"github.com/rogerio-castellano/store-dashboard/internal/observability"
	"github.com/rogerio-castellano/store-dashboard/internal/repo"
	"github.com/rogerio-castellano/store-dashboard/internal/report"
	"github.com/rogerio-castellano/store-dashboard/internal/seed"
	"github.com/shopspring/decimal"
)

var (
	fixedNow  = time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)
	adminHash string
)

func init() {
	hash, err := auth.HashPassword("secret")
	if err != nil {
		panic(fmt.Sprintf("error hashing password: %v", err))
	}
	adminHash = hash
}

// testDataset: store 1 sold 100.00 in 2024-03 and 50.00 in 2024-02; store 2
// has a seller but no orders.
func testDataset() models.Dataset {
	return models.Dataset{
		Stores: []models.Store{
			{ID: 1, Name: "Scranton Branch", City: "Scranton", Manager: "Michael Scott"},
			{ID: 2, Name: "Stamford Branch", City: "Stamford", Manager: "Josh Porter"},
		},
		Sellers: []models.Seller{
			{ID: 1, Name: "Jim Halpert", StoreID: 1},
			{ID: 2, Name: "Oscar Martinez", StoreID: 2},
		},
		Customers: []models.Customer{{ID: 1, Name: "Customer 1", City: "Boston"}},
		Products: []models.Product{
			{ID: 1, Name: "Premium Paper", UnitPrice: decimal.NewFromInt(25)},
			{ID: 2, Name: "Copy Paper", UnitPrice: decimal.NewFromInt(10)},
		},
		Orders: []models.Order{
			{ID: 1, CustomerID: 1, SellerID: 1, OrderDate: "2024-03-15"},
			{ID: 2, CustomerID: 1, SellerID: 1, OrderDate: "2024-02-10"},
		},
		OrderItems: []models.OrderItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 4},
			{ID: 2, OrderID: 2, ProductID: 2, Quantity: 5},
		},
	}
}

type fakeReloader struct {
	imports    int
	reconciles int
	err        error
}

func (f *fakeReloader) Import(context.Context) (seed.Stats, error) {
	f.imports++
	return seed.Stats{Stores: 2, Orders: 2, Reconciled: 2}, f.err
}

func (f *fakeReloader) Reconcile(context.Context) (int64, error) {
	f.reconciles++
	return 2, f.err
}

// brokenSummaries fails every MonthlySummary call and delegates the rest.
type brokenSummaries struct {
	repo.SalesRepository
}

func (brokenSummaries) MonthlySummary(context.Context, int, int, int) (repo.MonthSummary, error) {
	return repo.MonthSummary{}, fmt.Errorf("relation \"orders\" does not exist")
}

type testEnv struct {
	router   http.Handler
	reloader *fakeReloader
	cache    *cache.Memory
}

type envOption func(*envSetup)

type envSetup struct {
	sales   repo.SalesRepository
	limiter *rl.Limiter
	checks  map[string]handler.HealthCheck
}

func withSales(r repo.SalesRepository) envOption {
	return func(s *envSetup) { s.sales = r }
}

func withLimiter(l *rl.Limiter) envOption {
	return func(s *envSetup) { s.limiter = l }
}

func withChecks(c map[string]handler.HealthCheck) envOption {
	return func(s *envSetup) { s.checks = c }
}

func setupTestEnv(opts ...envOption) *testEnv {
	memRepo := repo.NewInMemorySalesRepository(testDataset())
	memRepo.Reconcile()

	setup := envSetup{sales: memRepo, checks: map[string]handler.HealthCheck{}}
	for _, o := range opts {
		o(&setup)
	}

	logger := observability.Discard()
	c := cache.NewMemory()
	reloader := &fakeReloader{}

	authSvc := auth.NewAuthService(config.AuthConfig{
		JWTSecret:         "test-secret",
		AdminUsername:     "admin",
		AdminPasswordHash: adminHash,
		TokenTTL:          time.Minute,
	})

	h := handler.NewAPI(handler.Dependencies{
		Reports: report.NewService(setup.sales, logger),
		Auth:    authSvc,
		Admin:   reloader,
		Cache:   c,
		Checks:  setup.checks,
		Logger:  logger,
		Now:     func() time.Time { return fixedNow },
	})

	return &testEnv{
		router:   api.NewRouter(h, api.RouterOptions{Logger: logger, Limiter: setup.limiter}),
		reloader: reloader,
		cache:    c,
	}
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) post(path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func generateToken(e *testEnv, username, password string) (string, error) {
	w := e.post("/login", "", handler.UserLogin{Username: username, Password: password})
	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return v
}
