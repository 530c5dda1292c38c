package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Analitica-retail/internal/application/analytics"
	"github.com/jhoicas/Analitica-retail/internal/application/dto"
	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/jhoicas/Analitica-retail/internal/domain/entity"
	apphttp "github.com/jhoicas/Analitica-retail/internal/interfaces/http"
	"github.com/jhoicas/Analitica-retail/pkg/logger"
)

// buildReportApp arma la app con un dataset chico y las rutas de reportes
// públicas (sin secret, como en desarrollo).
func buildReportApp(t *testing.T) *fiber.App {
	t.Helper()

	items := []entity.Item{
		{ID: "A", ItemType: "Dairy", MRP: decimal.NewFromInt(40), Visibility: decimal.NewFromFloat(0.1), FatContent: "Low Fat"},
		{ID: "B", ItemType: "Snacks", MRP: decimal.NewFromInt(120), Visibility: decimal.NewFromFloat(0.1), FatContent: "Regular"},
	}
	outlets := []entity.Outlet{
		{ID: "O1", EstablishmentYear: 2002, Size: "Small", LocationType: "Tier 1", OutletType: "Grocery Store"},
	}
	ventas := []entity.SalesRecord{
		{OutletID: "O1", ItemID: "A", Sales: decimal.NewFromInt(10)},
		{OutletID: "O1", ItemID: "B", Sales: decimal.NewFromInt(20)},
	}

	ds, err := dataset.New(items, outlets, ventas)
	require.NoError(t, err)
	svc, err := analytics.NewService(ds, 0)
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Reports: apphttp.NewReportHandler(svc, log),
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestCatalog_DevuelveLosQuinceReportes(t *testing.T) {
	app := buildReportApp(t)
	resp := get(t, app, "/api/reports")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var metas []dto.ReportMeta
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metas))
	assert.Len(t, metas, 15)
	assert.Equal(t, "top-items", metas[0].Slug)
}

func TestGet_ReporteConocido(t *testing.T) {
	app := buildReportApp(t)
	resp := get(t, app, "/api/reports/top-items")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Report dto.ReportMeta   `json:"report"`
		Rows   []dto.TopItemRow `json:"rows"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "top-items", body.Report.Slug)
	require.Len(t, body.Rows, 2)
	assert.Equal(t, "B", body.Rows[0].ItemID, "ordenado por ventas descendentes")
}

func TestGet_ReporteDesconocidoDevuelve404(t *testing.T) {
	app := buildReportApp(t)
	resp := get(t, app, "/api/reports/no-existe")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAll_EjecutaTodoElCatalogo(t *testing.T) {
	app := buildReportApp(t)
	resp := get(t, app, "/api/reports/all")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 15)
	assert.Contains(t, body, "dominance")
	assert.Contains(t, body, "price-band-mix")
}

func TestHealth_Publico(t *testing.T) {
	app := buildReportApp(t)
	resp := get(t, app, "/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
