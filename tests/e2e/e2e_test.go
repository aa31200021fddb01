//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   T-E2E-1: Full checkout cycle (login → catalog → shelf → card → receipt)
//   T-E2E-2: Checkout is all-or-nothing and reports every problem at once
//   T-E2E-3: Promotion sweep marks down once and stays idempotent
//   T-E2E-4: Referential deletes are blocked with 409
//   T-E2E-5: Employee list honors role filter, surname search, and sort
//   T-E2E-6: Public price check needs no token

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/AndreHordd/Zlagoda/internal/config"
	"github.com/AndreHordd/Zlagoda/internal/infra"
	"github.com/AndreHordd/Zlagoda/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // manager JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("zlagoda_test"),
		tcPostgres.WithUsername("zlagoda"),
		tcPostgres.WithPassword("zlagoda"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		PromoSweepMinutes:  60,
		PromoWindowDays:    3,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed a manager with a login
	hash, err := bcrypt.GenerateFromPassword([]byte("zlagoda2026"), 12)
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		INSERT INTO employee (id_employee, empl_surname, empl_name, empl_role,
		                      salary, date_of_birth, date_of_start,
		                      phone_number, city, street, zip_code)
		VALUES ('e2emanager', 'Demo', 'Manager', 'manager',
		        15000, '1990-01-01', CURRENT_DATE,
		        '+380000000000', 'Kyiv', 'Khreshchatyk 1', '01001')`).Error)
	require.NoError(t, db.Exec(`
		INSERT INTO account (username, password_hash, role, employee_id, created_at)
		VALUES ('manager@e2e', ?, 'manager', 'e2emanager', NOW())`, string(hash)).Error)

	r, _ := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "manager@e2e", "password": "zlagoda2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken}
}

// seedShelfItem creates category → product → store product and returns the UPC.
func seedShelfItem(t *testing.T, env *testEnv, name, price string, qty int, expiry string, threshold int) string {
	t.Helper()

	catResp := do(t, env.server, "POST", "/v1/categories",
		jsonBody(t, map[string]any{"name": name + " category"}), env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		Number int `json:"number"`
	}
	decodeJSON(t, catResp, &cat)

	prodResp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{
			"category_number": cat.Number,
			"name":            name,
			"characteristics": "test item",
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID int `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	spResp := do(t, env.server, "POST", "/v1/store-products",
		jsonBody(t, map[string]any{
			"product_id":      prod.ID,
			"price":           price,
			"quantity":        qty,
			"expiry_date":     expiry,
			"promo_threshold": threshold,
		}), env.token)
	require.Equal(t, http.StatusCreated, spResp.StatusCode)
	var sp struct {
		UPC string `json:"upc"`
	}
	decodeJSON(t, spResp, &sp)
	require.Len(t, sp.UPC, 12)
	return sp.UPC
}

// ── Tests ────────────────────────────────────────────────────────────────────

// T-E2E-1: Full checkout cycle
func TestE2E_FullCheckoutCycle(t *testing.T) {
	env := setupTestEnv(t)
	farExpiry := time.Now().AddDate(0, 6, 0).Format("2006-01-02")

	upc := seedShelfItem(t, env, "Soda 500ml", "50.00", 20, farExpiry, 0)

	cardResp := do(t, env.server, "POST", "/v1/customer-cards",
		jsonBody(t, map[string]any{
			"surname": "Kovalenko", "name": "Olena",
			"phone": "+380501112233", "percent": 10,
		}), env.token)
	require.Equal(t, http.StatusCreated, cardResp.StatusCode)
	var card struct {
		Number string `json:"number"`
	}
	decodeJSON(t, cardResp, &card)
	require.Len(t, card.Number, 13)

	checkoutResp := do(t, env.server, "POST", "/v1/receipts",
		jsonBody(t, map[string]any{
			"card_number": card.Number,
			"items":       []map[string]any{{"upc": upc, "quantity": 2}},
		}), env.token)
	require.Equal(t, http.StatusCreated, checkoutResp.StatusCode)
	var receipt struct {
		Number   string `json:"number"`
		Subtotal string `json:"subtotal"`
		Discount string `json:"discount"`
		VAT      string `json:"vat"`
		Total    string `json:"total"`
	}
	decodeJSON(t, checkoutResp, &receipt)

	// 2 × 50 = 100; 10 % card → 90 taxable; VAT 18; payable 108.
	assert.Equal(t, "100", receipt.Subtotal)
	assert.Equal(t, "10", receipt.Discount)
	assert.Equal(t, "18", receipt.VAT)
	assert.Equal(t, "108", receipt.Total)

	spResp := do(t, env.server, "GET", "/v1/store-products/"+upc, nil, env.token)
	require.Equal(t, http.StatusOK, spResp.StatusCode)
	var sp struct {
		Quantity int `json:"quantity"`
	}
	decodeJSON(t, spResp, &sp)
	assert.Equal(t, 18, sp.Quantity)

	listResp := do(t, env.server, "GET", "/v1/receipts?date_from="+time.Now().Format("2006-01-02"), nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	pdfResp := do(t, env.server, "GET", "/v1/receipts/"+receipt.Number+"/pdf", nil, env.token)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	pdfResp.Body.Close()
}

// T-E2E-2: all-or-nothing checkout
func TestE2E_CheckoutCollectsAllProblems(t *testing.T) {
	env := setupTestEnv(t)
	farExpiry := time.Now().AddDate(0, 6, 0).Format("2006-01-02")

	upc := seedShelfItem(t, env, "Milk 1L", "30.00", 1, farExpiry, 0)

	checkoutResp := do(t, env.server, "POST", "/v1/receipts",
		jsonBody(t, map[string]any{
			"items": []map[string]any{
				{"upc": upc, "quantity": 5},
				{"upc": "000000000000", "quantity": 1},
			},
		}), env.token)
	require.Equal(t, http.StatusUnprocessableEntity, checkoutResp.StatusCode)
	var body struct {
		Errors []string `json:"errors"`
	}
	decodeJSON(t, checkoutResp, &body)
	assert.Len(t, body.Errors, 2)

	// Stock untouched
	spResp := do(t, env.server, "GET", "/v1/store-products/"+upc, nil, env.token)
	var sp struct {
		Quantity int `json:"quantity"`
	}
	decodeJSON(t, spResp, &sp)
	assert.Equal(t, 1, sp.Quantity)
}

// T-E2E-3: promotion sweep
func TestE2E_PromoSweepMarksDownOnce(t *testing.T) {
	env := setupTestEnv(t)
	nearExpiry := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	upc := seedShelfItem(t, env, "Yogurt", "100.00", 20, nearExpiry, 10)

	for i := 0; i < 2; i++ {
		sweepResp := do(t, env.server, "POST", "/v1/promotions/sweep", jsonBody(t, map[string]any{}), env.token)
		require.Equal(t, http.StatusOK, sweepResp.StatusCode)
		sweepResp.Body.Close()
	}

	spResp := do(t, env.server, "GET", "/v1/store-products/"+upc, nil, env.token)
	var sp struct {
		Price       string `json:"price"`
		Promotional bool   `json:"promotional"`
	}
	decodeJSON(t, spResp, &sp)
	assert.True(t, sp.Promotional)
	assert.Equal(t, "80", sp.Price)
}

// T-E2E-4: referential deletes blocked
func TestE2E_ReferentialDeleteBlocked(t *testing.T) {
	env := setupTestEnv(t)
	farExpiry := time.Now().AddDate(0, 6, 0).Format("2006-01-02")

	catResp := do(t, env.server, "POST", "/v1/categories",
		jsonBody(t, map[string]any{"name": "Bakery"}), env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		Number int `json:"number"`
	}
	decodeJSON(t, catResp, &cat)

	prodResp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{
			"category_number": cat.Number,
			"name":            "Bread",
			"characteristics": "rye, 500g",
		}), env.token)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID int `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	delResp := do(t, env.server, "DELETE", "/v1/categories/"+strconv.Itoa(cat.Number), nil, env.token)
	assert.Equal(t, http.StatusConflict, delResp.StatusCode)
	delResp.Body.Close()

	spResp := do(t, env.server, "POST", "/v1/store-products",
		jsonBody(t, map[string]any{
			"product_id": prod.ID, "price": "20.00", "quantity": 5, "expiry_date": farExpiry,
		}), env.token)
	require.Equal(t, http.StatusCreated, spResp.StatusCode)
	spResp.Body.Close()

	prodDelResp := do(t, env.server, "DELETE", "/v1/products/"+strconv.Itoa(prod.ID), nil, env.token)
	assert.Equal(t, http.StatusConflict, prodDelResp.StatusCode)
	prodDelResp.Body.Close()
}

// T-E2E-5: employee list filtering
func TestE2E_EmployeeListRoleSearchSort(t *testing.T) {
	env := setupTestEnv(t)

	hire := func(surname, role string) {
		resp := do(t, env.server, "POST", "/v1/employees",
			jsonBody(t, map[string]any{
				"surname": surname, "name": "Test", "role": role,
				"salary":        "12000",
				"date_of_birth": "1995-03-09",
				"date_of_start": "2024-01-15",
				"phone":         "+380501234567",
				"city":          "Kyiv", "street": "Khreshchatyk 1", "zip_code": "01001",
			}), env.token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	hire("Petrova", "cashier")
	hire("Petrov", "cashier")
	hire("Petrovsky", "manager")
	hire("Shevchenko", "cashier")

	// Lowercase search exercises the case-insensitive substring match; the
	// manager Petrovsky is excluded by the role filter.
	listResp := do(t, env.server, "GET",
		"/v1/employees?role=cashier&search=petrov&sort_by=surname&order=asc", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list []struct {
		Surname string `json:"surname"`
		Role    string `json:"role"`
	}
	decodeJSON(t, listResp, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "Petrov", list[0].Surname)
	assert.Equal(t, "Petrova", list[1].Surname)
	for _, e := range list {
		assert.Equal(t, "cashier", e.Role)
	}
}

// T-E2E-6: public price check
func TestE2E_PublicPriceCheck(t *testing.T) {
	env := setupTestEnv(t)
	farExpiry := time.Now().AddDate(0, 6, 0).Format("2006-01-02")

	upc := seedShelfItem(t, env, "Juice 1L", "45.00", 7, farExpiry, 0)

	// No token on purpose
	priceResp := do(t, env.server, "GET", "/v1/price/"+upc, nil, "")
	require.Equal(t, http.StatusOK, priceResp.StatusCode)
	var price struct {
		UPC      string `json:"upc"`
		Price    string `json:"price"`
		Quantity int    `json:"quantity"`
	}
	decodeJSON(t, priceResp, &price)
	assert.Equal(t, upc, price.UPC)
	assert.Equal(t, "45", price.Price)
	assert.Equal(t, 7, price.Quantity)

	missResp := do(t, env.server, "GET", "/v1/price/999999999999", nil, "")
	assert.Equal(t, http.StatusNotFound, missResp.StatusCode)
	missResp.Body.Close()
}
