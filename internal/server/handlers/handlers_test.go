package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/market"
	"github.com/mamadbah2/farmplan/internal/repository/memory"
	"github.com/mamadbah2/farmplan/internal/server/handlers"
	"github.com/mamadbah2/farmplan/internal/server/router"
	alertsvc "github.com/mamadbah2/farmplan/internal/service/alerts"
	reportingsvc "github.com/mamadbah2/farmplan/internal/service/reporting"
	"github.com/mamadbah2/farmplan/internal/state"
)

type testApp struct {
	engine *gin.Engine
	store  *state.Store
	repo   *memory.Repository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	repo := memory.NewRepository(nil)
	store := state.NewStore(repo, nil)
	require.NoError(t, store.Load(context.Background()))

	catalog := market.NewCatalog(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	reportingSvc := reportingsvc.NewService(store, nil, nil)
	alertSvc := alertsvc.NewService(store, catalog, nil, nil)

	engine := router.New(router.Handlers{
		Calculator: handlers.NewCalculatorHandler(nil),
		Expenses:   handlers.NewExpenseHandler(store, nil),
		Plan:       handlers.NewPlanHandler(store, nil),
		Learning:   handlers.NewLearningHandler(store, nil),
		Market:     handlers.NewMarketHandler(catalog, store, nil),
		Alerts:     handlers.NewAlertHandler(store, alertSvc, nil),
		Reports:    handlers.NewReportHandler(reportingSvc, nil),
	}, nil)

	return &testApp{engine: engine, store: store, repo: repo}
}

func (a *testApp) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.engine.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	rec := app.request(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCalculatorProfit(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/calculator/profit", models.ProfitInput{
		CropType:       models.CropRice,
		FarmSize:       2,
		SeedCost:       1000,
		FertilizerCost: 500,
		LaborCost:      2000,
		IrrigationCost: 300,
		ExpectedYield:  20,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[models.ProfitResult](t, rec)
	assert.Equal(t, 3800.0, result.TotalCost)
	assert.Equal(t, 1900.0, result.CostPerAcre)
	assert.Equal(t, 190.0, result.BreakEvenPrice)
	assert.Equal(t, 1000.0, result.CostBreakdown.Seeds)
}

func TestCalculatorRisk(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/calculator/risk", models.RiskInput{
		FarmSize:        1,
		Diversification: models.DiversificationSingle,
		WeatherRisk:     models.WeatherHigh,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	result := decode[models.RiskResult](t, rec)
	assert.Equal(t, 95, result.Score)
	assert.Equal(t, models.RiskHigh, result.RiskLevel)
	assert.Len(t, result.Risks, 3)
}

func TestExpenseLifecycle(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/expenses", models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500, Notes: "paddy seed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[models.Expense](t, rec)
	require.NotEmpty(t, created.ID)

	rec = app.request(t, http.MethodPatch, "/api/expenses/"+created.ID, map[string]any{"cost": 650})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/expenses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]models.Expense](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, 650.0, listed[0].Cost)
	assert.Equal(t, "paddy seed", listed[0].Notes)

	rec = app.request(t, http.MethodDelete, "/api/expenses/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// An unknown id deletes as a no-op, indistinguishable from success.
	rec = app.request(t, http.MethodDelete, "/api/expenses/does-not-exist", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExpenseCreate_DegradedPersistence(t *testing.T) {
	app := newTestApp(t)
	app.repo.FailWrites(assert.AnError)

	rec := app.request(t, http.MethodPost, "/api/expenses", models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})

	// The record made it into memory; the degraded durable write shows as 202.
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Len(t, app.store.Expenses(), 1)
}

func TestExpenseCreate_InvalidPayload(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/expenses", map[string]any{"cost": 12})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProfitPlanRoundTrip(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/profit-plan", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request(t, http.MethodPut, "/api/profit-plan", map[string]any{
		"cropType":       "rice",
		"farmSize":       2,
		"seedCost":       1000,
		"fertilizerCost": 500,
		"laborCost":      2000,
		"irrigationCost": 300,
		"expectedYield":  20,
		// Derived fields posted by a stale client must be ignored.
		"totalCost":      1,
		"breakEvenPrice": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decode[models.ProfitPlan](t, rec)
	assert.Equal(t, 3800.0, saved.TotalCost)
	assert.Equal(t, 190.0, saved.BreakEvenPrice)

	rec = app.request(t, http.MethodGet, "/api/profit-plan", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	loaded := decode[models.ProfitPlan](t, rec)
	assert.Equal(t, saved.TotalCost, loaded.TotalCost)
}

func TestLearningProgressEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/learning/modules", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	modules := decode[[]models.LearningModule](t, rec)
	assert.NotEmpty(t, modules)

	rec = app.request(t, http.MethodPost, "/api/learning/progress/middleman/middleman-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodPost, "/api/learning/progress/middleman/no-such-lesson", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/learning/progress", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Progress models.LearningProgress `json:"progress"`
		Modules  []models.ModuleProgress `json:"modules"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Progress.Completed("middleman", "middleman-1"))
}

func TestMarketEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodGet, "/api/market/prices", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	prices := decode[[]models.MarketPrice](t, rec)
	assert.Len(t, prices, len(models.CropTypes))

	rec = app.request(t, http.MethodGet, "/api/market/prices/cotton", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	price := decode[models.MarketPrice](t, rec)
	assert.Equal(t, 5800.0, price.CurrentPrice)

	rec = app.request(t, http.MethodGet, "/api/market/prices/bananas", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Outlook requires a saved plan.
	rec = app.request(t, http.MethodGet, "/api/market/outlook", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.request(t, http.MethodPut, "/api/profit-plan", models.ProfitInput{
		CropType: models.CropRice, FarmSize: 2, SeedCost: 1000, FertilizerCost: 500,
		LaborCost: 2000, IrrigationCost: 300, ExpectedYield: 20,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/market/outlook", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	outlook := decode[market.PriceComparison](t, rec)
	assert.Equal(t, 190.0, outlook.BreakEvenPrice)
	assert.True(t, outlook.WithinFair)
}

func TestPriceAlertEndpoints(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/price-alerts", models.PriceAlertInput{
		CropType: models.CropRice, TargetPrice: 2000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	alert := decode[models.PriceAlert](t, rec)
	assert.True(t, alert.Active)

	rec = app.request(t, http.MethodPost, "/api/price-alerts/sweep", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sweep struct {
		Triggered []models.TriggeredAlert `json:"triggered"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sweep))
	require.Len(t, sweep.Triggered, 1)
	assert.Equal(t, alert.ID, sweep.Triggered[0].Alert.ID)

	rec = app.request(t, http.MethodDelete, "/api/price-alerts/"+alert.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = app.request(t, http.MethodGet, "/api/price-alerts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]models.PriceAlert](t, rec))
}

func TestReportSummaryEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, err := app.store.AddExpense(context.Background(), models.ExpenseInput{
		Date: "2026-07-10", ActivityType: models.ActivityLabor, Cost: 1800,
	})
	require.NoError(t, err)

	rec := app.request(t, http.MethodGet, "/api/reports/expenses/summary?start=2026-07-01&end=2026-07-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[reportingsvc.ExpenseSummary](t, rec)
	assert.Equal(t, 1800.0, summary.Total)
	assert.Equal(t, 1, summary.Entries)

	rec = app.request(t, http.MethodGet, "/api/reports/expenses/summary?start=bad", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportExport_NotConfigured(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(t, http.MethodPost, "/api/reports/expenses", map[string]string{
		"start": "2026-07-01", "end": "2026-07-31",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
