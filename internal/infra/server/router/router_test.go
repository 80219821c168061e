package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mycash/backend/config"
	"github.com/mycash/backend/internal/infra/dependency"
	"github.com/mycash/backend/internal/integration/persistence"
)

var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Store: config.StoreConfig{
			Seed:            42,
			ReferencePolicy: config.ReferencePolicyKeep,
			TimeZone:        "UTC",
			PageSize:        10,
		},
		Log:       config.LogConfig{Level: "info", Format: "json"},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
}

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T, cfg *config.Config) *apiClient {
	t.Helper()
	injector := dependency.NewInjector(cfg, persistence.WithClock(func() time.Time { return fixedNow }))
	return &apiClient{t: t, engine: injector.Router.Setup(cfg.Server.Environment)}
}

func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func (a *apiClient) create(path string, body any) map[string]any {
	a.t.Helper()
	rec := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(a.t, rec)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, code, decode(t, rec)["code"])
}

// household creates one member, one account, one card and a category of each type.
type household struct {
	memberID, accountID, cardID, foodID, salaryID string
}

func newHousehold(a *apiClient) household {
	member := a.create("/api/v1/members", map[string]any{"name": "Lucas", "role": "Pai"})
	account := a.create("/api/v1/bank-accounts", map[string]any{
		"name": "Nubank Conta", "holder_id": member["id"], "balance": 5000,
	})
	card := a.create("/api/v1/credit-cards", map[string]any{
		"name": "Nubank", "holder_id": member["id"], "limit": 3000, "current_bill": 120,
		"closing_day": 5, "due_day": 12, "last_digits": "1234",
	})
	food := a.create("/api/v1/categories", map[string]any{"name": "Alimentação", "type": "expense", "color": "#080B12"})
	salary := a.create("/api/v1/categories", map[string]any{"name": "Salário", "type": "income"})

	return household{
		memberID:  member["id"].(string),
		accountID: account["id"].(string),
		cardID:    card["id"].(string),
		foodID:    food["id"].(string),
		salaryID:  salary["id"].(string),
	}
}

func TestHealth(t *testing.T) {
	api := newAPI(t, testConfig())

	rec := api.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 0, body["store"].(map[string]any)["transactions"])
}

func TestDashboardScenario(t *testing.T) {
	api := newAPI(t, testConfig())
	h := newHousehold(api)

	api.create("/api/v1/transactions", map[string]any{
		"type": "income", "description": "Salário", "amount": 1000,
		"category_id": h.salaryID, "account_type": "bank_account", "account_id": h.accountID,
		"date": "2026-03-05",
	})
	api.create("/api/v1/transactions", map[string]any{
		"type": "expense", "description": "Supermercado", "amount": 400,
		"category_id": h.foodID, "account_type": "credit_card", "account_id": h.cardID,
		"member_id": h.memberID, "date": "2026-03-10",
	})

	t.Run("summary", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/dashboard/summary", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "4880.00", body["total_balance"])
		assert.Equal(t, "1000.00", body["income"])
		assert.Equal(t, "400.00", body["expenses"])
		assert.EqualValues(t, 60, body["savings_rate"])
		assert.EqualValues(t, 1, body["member_count"])

		change := body["income_change"].(map[string]any)
		assert.Equal(t, "1000.00", change["amount"])
		assert.EqualValues(t, 0, change["percentage"], "no income last month")
	})

	t.Run("expenses by category", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/dashboard/expenses-by-category", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		categories := decode(t, rec)["categories"].([]any)
		require.Len(t, categories, 1)
		entry := categories[0].(map[string]any)
		assert.Equal(t, h.foodID, entry["category_id"])
		assert.Equal(t, "400.00", entry["total"])
		assert.EqualValues(t, 40, entry["percentage"])
	})

	t.Run("category percentage", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/dashboard/category-percentage?total=250", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.EqualValues(t, 25, decode(t, rec)["percentage"])
	})

	t.Run("flow chart has seven months", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/dashboard/flow-chart", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		points := decode(t, rec)["points"].([]any)
		require.Len(t, points, 7)
		last := points[6].(map[string]any)
		assert.Equal(t, "1000.00", last["income"])
		assert.Equal(t, "400.00", last["expense"])
	})

	t.Run("ledger listing with totals", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/transactions?type=expense", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Len(t, body["transactions"], 1)
		totals := body["totals"].(map[string]any)
		assert.Equal(t, "400.00", totals["expense_total"])
		assert.Equal(t, "-400.00", totals["difference"])
	})

	t.Run("card details lists recent expenses", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/credit-cards/"+h.cardID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "2880.00", body["available_limit"])
		assert.Len(t, body["recent_expenses"], 1)
	})

	t.Run("member filter narrows the period", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/v1/filters", map[string]any{"member_id": h.memberID})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode(t, api.do(http.MethodGet, "/api/v1/dashboard/summary", nil))
		assert.Equal(t, "0.00", body["income"])
		assert.Equal(t, "400.00", body["expenses"])
		assert.EqualValues(t, 0, body["savings_rate"])

		rec = api.do(http.MethodDelete, "/api/v1/filters", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode(t, rec)["member_id"])
	})
}

func TestTransactionRoutes(t *testing.T) {
	api := newAPI(t, testConfig())
	h := newHousehold(api)

	bill := api.create("/api/v1/transactions", map[string]any{
		"type": "expense", "description": "Conta de Luz", "amount": 180.5,
		"category_id": h.foodID, "account_type": "bank_account", "account_id": h.accountID,
		"date": "2026-03-01", "due_date": "2026-03-20", "status": "pending",
	})
	billID := bill["id"].(string)

	t.Run("pending bills", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/transactions/pending?limit=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("mark paid is idempotent", func(t *testing.T) {
		for range 2 {
			rec := api.do(http.MethodPost, "/api/v1/transactions/"+billID+"/pay", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, true, body["is_paid"])
			assert.Equal(t, "completed", body["status"])
		}
		body := decode(t, api.do(http.MethodGet, "/api/v1/transactions/pending", nil))
		assert.EqualValues(t, 0, body["total"])
	})

	t.Run("update keeps unspecified fields", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/v1/transactions/"+billID, map[string]any{"amount": 200})
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "200.00", body["amount"])
		assert.Equal(t, "Conta de Luz", body["description"])
	})

	t.Run("invalid id", func(t *testing.T) {
		assertError(t, api.do(http.MethodPatch, "/api/v1/transactions/not-a-uuid", map[string]any{}), http.StatusBadRequest, "SRV-010002")
	})

	t.Run("unknown transaction", func(t *testing.T) {
		assertError(t, api.do(http.MethodDelete, "/api/v1/transactions/"+uuid.NewString(), nil), http.StatusNotFound, "TXN-010004")
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Táxi", "amount": 30,
			"category_id": uuid.NewString(), "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-02",
		})
		assertError(t, rec, http.StatusUnprocessableEntity, "TXN-010008")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/transactions", map[string]any{"type": "transfer"})
		assertError(t, rec, http.StatusBadRequest, "SRV-010001")

		rec = api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Aluguel", "amount": 100,
			"category_id": "food", "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-04",
		})
		assertError(t, rec, http.StatusBadRequest, "SRV-010001")

		rec = api.do(http.MethodGet, "/api/v1/transactions?account_id=food", nil)
		assertError(t, rec, http.StatusBadRequest, "SRV-010003")
	})

	t.Run("amount as currency text", func(t *testing.T) {
		body := api.create("/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Aluguel", "amount": "R$ 1.234,56",
			"category_id": h.foodID, "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-04",
		})
		assert.Equal(t, "1234.56", body["amount"])

		rec := api.do(http.MethodPatch, "/api/v1/transactions/"+body["id"].(string), map[string]any{"amount": "R$ 99,90"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "99.90", decode(t, rec)["amount"])
	})

	t.Run("amount without a number", func(t *testing.T) {
		rec := api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Aluguel", "amount": "R$",
			"category_id": h.foodID, "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-04",
		})
		assertError(t, rec, http.StatusBadRequest, "TXN-010003")

		rec = api.do(http.MethodPost, "/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Aluguel", "amount": true,
			"category_id": h.foodID, "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-04",
		})
		assertError(t, rec, http.StatusBadRequest, "SRV-010001")
	})

	t.Run("delete", func(t *testing.T) {
		rec := api.do(http.MethodDelete, "/api/v1/transactions/"+billID, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestReferencePolicies(t *testing.T) {
	t.Run("keep leaves dangling references readable", func(t *testing.T) {
		api := newAPI(t, testConfig())
		h := newHousehold(api)
		api.create("/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Feira", "amount": 50,
			"category_id": h.foodID, "account_type": "bank_account", "account_id": h.accountID,
			"date": "2026-03-03",
		})

		require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/categories/"+h.foodID, nil).Code)

		body := decode(t, api.do(http.MethodGet, "/api/v1/transactions", nil))
		row := body["transactions"].([]any)[0].(map[string]any)
		assert.Equal(t, h.foodID, row["category_id"])
		assert.Equal(t, "Sem categoria", row["category_name"])

		rec := api.do(http.MethodPatch, "/api/v1/transactions/"+row["id"].(string), map[string]any{"description": "Feira livre"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "Feira livre", decode(t, rec)["description"])
	})

	t.Run("restrict refuses referenced deletes", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.ReferencePolicy = config.ReferencePolicyRestrict
		api := newAPI(t, cfg)
		h := newHousehold(api)
		api.create("/api/v1/transactions", map[string]any{
			"type": "expense", "description": "Feira", "amount": 50,
			"category_id": h.foodID, "account_type": "credit_card", "account_id": h.cardID,
			"member_id": h.memberID, "date": "2026-03-03",
		})

		assertError(t, api.do(http.MethodDelete, "/api/v1/categories/"+h.foodID, nil), http.StatusConflict, "CAT-020001")
		assertError(t, api.do(http.MethodDelete, "/api/v1/credit-cards/"+h.cardID, nil), http.StatusConflict, "ACC-020001")
		assertError(t, api.do(http.MethodDelete, "/api/v1/members/"+h.memberID, nil), http.StatusConflict, "MBR-020001")
	})
}

func TestEntityRoutes(t *testing.T) {
	api := newAPI(t, testConfig())
	h := newHousehold(api)

	t.Run("goals", func(t *testing.T) {
		goal := api.create("/api/v1/goals", map[string]any{
			"name": "Viagem", "target_amount": 5000, "current_amount": 1250, "deadline": "2026-12-31",
		})
		assert.EqualValues(t, 25, goal["progress_percentage"])
		assert.Equal(t, "Família", goal["member_name"])

		rec := api.do(http.MethodPatch, "/api/v1/goals/"+goal["id"].(string), map[string]any{"member_id": uuid.NewString()})
		assertError(t, rec, http.StatusUnprocessableEntity, "GOL-010007")

		rec = api.do(http.MethodGet, "/api/v1/goals?family=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["goals"], 1)

		assertError(t, api.do(http.MethodGet, "/api/v1/goals/"+uuid.NewString(), nil), http.StatusNotFound, "GOL-010001")
	})

	t.Run("credit cards", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/v1/credit-cards/"+h.cardID, map[string]any{"theme": "lime"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "lime", decode(t, rec)["theme"])

		rec = api.do(http.MethodGet, "/api/v1/credit-cards?holder_id="+h.memberID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(t, rec)["credit_cards"], 1)

		rec = api.do(http.MethodPost, "/api/v1/credit-cards", map[string]any{
			"name": "Nubank", "holder_id": "not-a-uuid", "limit": 1000, "closing_day": 5, "due_day": 12,
		})
		assertError(t, rec, http.StatusBadRequest, "SRV-010001")
	})

	t.Run("bank accounts", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/v1/bank-accounts/"+h.accountID, map[string]any{"balance": -150})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "-150.00", decode(t, rec)["balance"])

		rec = api.do(http.MethodPost, "/api/v1/bank-accounts", map[string]any{"name": "Inter", "holder_id": uuid.NewString()})
		assertError(t, rec, http.StatusUnprocessableEntity, "ACC-010005")

		rec = api.do(http.MethodPost, "/api/v1/bank-accounts", map[string]any{"name": "Inter", "holder_id": "12345"})
		assertError(t, rec, http.StatusBadRequest, "SRV-010001")
	})

	t.Run("members", func(t *testing.T) {
		rec := api.do(http.MethodPatch, "/api/v1/members/"+h.memberID, map[string]any{"monthly_income": 8000})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "8000.00", decode(t, rec)["monthly_income"])

		assertError(t, api.do(http.MethodPatch, "/api/v1/members/"+uuid.NewString(), map[string]any{}), http.StatusNotFound, "MBR-010001")
	})

	t.Run("categories", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/categories?type=income", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		categories := decode(t, rec)["categories"].([]any)
		require.Len(t, categories, 1)
		assert.Equal(t, h.salaryID, categories[0].(map[string]any)["id"])

		rec = api.do(http.MethodPatch, "/api/v1/categories/"+h.salaryID, map[string]any{"color": "green"})
		assertError(t, rec, http.StatusBadRequest, "CAT-010005")
	})
}

func TestFilterValidation(t *testing.T) {
	api := newAPI(t, testConfig())

	rec := api.do(http.MethodPatch, "/api/v1/filters", map[string]any{"start_date": "2026-04-01", "end_date": "2026-03-01"})
	assertError(t, rec, http.StatusBadRequest, "DSH-010001")

	rec = api.do(http.MethodPatch, "/api/v1/filters", map[string]any{"start_date": "01/03/2026"})
	assertError(t, rec, http.StatusBadRequest, "DSH-010002")

	rec = api.do(http.MethodPatch, "/api/v1/filters", map[string]any{"type": "transfer"})
	assertError(t, rec, http.StatusBadRequest, "DSH-010003")

	rec = api.do(http.MethodGet, "/api/v1/filters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "2026-03-01", body["start_date"])
	assert.Equal(t, "2026-03-31", body["end_date"])
	assert.Equal(t, "all", body["type"])
}

func TestDataRoutes(t *testing.T) {
	api := newAPI(t, testConfig())

	rec := api.do(http.MethodPost, "/api/v1/data/seed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	counts := decode(t, rec)["counts"].(map[string]any)
	assert.EqualValues(t, 12, counts["categories"])
	assert.EqualValues(t, 3, counts["family_members"])

	t.Run("json export", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/data/export", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="mycash-2026-03-15.json"`)
		assert.True(t, json.Valid(rec.Body.Bytes()))
	})

	t.Run("xlsx export", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/api/v1/data/export?format=xlsx", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		book, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer book.Close()
		assert.Contains(t, book.GetSheetList(), "Transações")
	})

	t.Run("unknown format", func(t *testing.T) {
		assertError(t, api.do(http.MethodGet, "/api/v1/data/export?format=csv", nil), http.StatusBadRequest, "DAT-010001")
	})

	t.Run("clear", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, "/api/v1/data", nil).Code)
		store := decode(t, api.do(http.MethodGet, "/health", nil))["store"].(map[string]any)
		for collection, count := range store {
			assert.EqualValues(t, 0, count, collection)
		}
	})
}

func TestRateLimiting(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Environment = "development"
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, MaxRequests: 2, Window: time.Minute}
	gin.SetMode(gin.TestMode)
	api := newAPI(t, cfg)

	for i := range 2 {
		rec := api.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": fmt.Sprintf("Categoria %d", i), "type": "expense"})
		require.Equal(t, http.StatusCreated, rec.Code)
	}
	rec := api.do(http.MethodPost, "/api/v1/categories", map[string]any{"name": "Extra", "type": "expense"})
	assertError(t, rec, http.StatusTooManyRequests, "SRV-030001")

	// Reads are never limited
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/categories", nil).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newAPI(t, testConfig())
	api.do(http.MethodGet, "/api/v1/categories", nil)

	rec := api.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	text := rec.Body.String()
	assert.True(t, strings.Contains(text, `mycash_store_records{collection="transactions"} 0`), text)
	assert.Contains(t, text, `mycash_http_requests_total{method="GET",route="/api/v1/categories",status="200"} 1`)
}
