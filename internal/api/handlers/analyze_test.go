package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff-impact/internal/api/models"
	"tariff-impact/internal/config"
	"tariff-impact/internal/data"
	"tariff-impact/internal/model"
	"tariff-impact/internal/session"
)

func testRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tariffs, err := data.NewTariffTable([]model.SectorTariffRecord{
		{Sector: "Acier", HSCode: "7208", BaselineTariff: 2, TrumpTariff: 22, SafeguardMeasure: "Section 232"},
		{Sector: "Textile", HSCode: "6204", BaselineTariff: 11, TrumpTariff: 18.5},
	})
	require.NoError(t, err)
	markets, err := data.NewMarketTable([]model.AlternativeMarket{
		{Market: "Union européenne", AvgTariff: 4.5, Notes: "Accès préférentiel via accords existants"},
	})
	require.NoError(t, err)

	store := session.NewStore()
	defaults := config.Default().Defaults

	analyze := NewAnalyzeHandler(tariffs, markets, defaults, store)
	catalog := NewCatalogHandler(tariffs, markets)
	scenarios := NewScenariosHandler(store)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/analyze", analyze.RunAnalysis)
	api.GET("/sectors", catalog.ListSectors)
	api.GET("/markets", catalog.ListMarkets)
	api.GET("/exposure", catalog.SectorExposure)
	api.GET("/scenarios", scenarios.ListScenarios)
	api.GET("/scenarios/export", scenarios.ExportScenarios)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRunAnalysis(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze", `{
		"sector": "Acier",
		"annual_export_value": 12,
		"passthrough_ratio": 0.6,
		"negotiation_rate": 15
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Acier", resp.Sector.Sector)
	assert.InDelta(t, 2.4, resp.Metrics.AdditionalCost, 1e-9)
	assert.InDelta(t, 24.0, resp.Metrics.PressureIndex, 1e-9)
	assert.Equal(t, model.RiskHigh, resp.Metrics.RiskLevel)
	assert.Equal(t, "Élevé", resp.RiskLabel)
	assert.GreaterOrEqual(t, len(resp.Recommendations), 2)
	assert.Zero(t, resp.SavedCount)
}

func TestRunAnalysis_DefaultsApply(t *testing.T) {
	r, _ := testRouter(t)

	// Only the sector: value 12.0, passthrough 0.6 and a negotiated rate
	// of 0.7*trump come from the configured defaults.
	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze", `{"sector": "Acier"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 22*0.7, resp.Metrics.NegotiationRate, 1e-9)
	assert.InDelta(t, 12.0*22/100, resp.Metrics.TrumpCost, 1e-9)
}

func TestRunAnalysis_SaveAppendsToSession(t *testing.T) {
	r, store := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyze",
		`{"sector": "Acier", "negotiation_rate": 15, "save": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.SavedCount)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "Acier", store.All()[0].Sector)
}

func TestRunAnalysis_Errors(t *testing.T) {
	r, _ := testRouter(t)

	cases := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{"missing sector", `{}`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown sector", `{"sector": "Horlogerie"}`, http.StatusNotFound, "UNKNOWN_SECTOR"},
		{"unknown market", `{"sector": "Acier", "target_market": "Atlantide"}`, http.StatusBadRequest, "UNKNOWN_MARKET"},
		{"rate below baseline", `{"sector": "Acier", "negotiation_rate": 1}`, http.StatusBadRequest, "INVALID_PARAMETERS"},
		{"passthrough above one", `{"sector": "Acier", "passthrough_ratio": 1.5}`, http.StatusBadRequest, "INVALID_REQUEST"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/v1/analyze", tc.body)
			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantErr)
		})
	}
}

func TestListSectorsAndMarkets(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/sectors", "")
	require.Equal(t, http.StatusOK, w.Code)
	var sectors models.SectorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sectors))
	assert.Len(t, sectors.Sectors, 2)

	w = doJSON(t, r, http.MethodGet, "/api/v1/markets", "")
	require.Equal(t, http.StatusOK, w.Code)
	var markets models.MarketsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &markets))
	assert.Equal(t, model.StayInCurrentMarket, markets.StaySentinel)
	assert.Len(t, markets.Markets, 1)
}

func TestSectorExposure_RankedByDelta(t *testing.T) {
	r, _ := testRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/exposure", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ExposureResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 2)
	assert.Equal(t, 1, resp.Rankings[0].Rank)
	assert.Equal(t, "Acier", resp.Rankings[0].Sector)
	assert.InDelta(t, 20.0, resp.Rankings[0].TariffDelta, 1e-9)
}

func TestScenariosListAndExport(t *testing.T) {
	r, _ := testRouter(t)

	// Empty history: list has count 0, export is header-only.
	w := doJSON(t, r, http.MethodGet, "/api/v1/scenarios", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)

	doJSON(t, r, http.MethodPost, "/api/v1/analyze",
		`{"sector": "Acier", "negotiation_rate": 15, "save": true}`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/scenarios", "")
	var resp models.ScenariosResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "HIGH", resp.Scenarios[0].RiskLevel)

	w = doJSON(t, r, http.MethodGet, "/api/v1/scenarios/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Secteur,Valeur exportée (M USD)")
	assert.Contains(t, w.Body.String(), "Élevé")
}
