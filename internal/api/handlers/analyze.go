package handlers

import (
	"net/http"

	"tariff-impact/internal/api/models"
	"tariff-impact/internal/config"
	"tariff-impact/internal/data"
	"tariff-impact/internal/impact"
	"tariff-impact/internal/model"
	"tariff-impact/internal/session"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler runs impact computations against the loaded tables.
type AnalyzeHandler struct {
	tariffs  *data.TariffTable
	markets  *data.MarketTable
	defaults config.DefaultsConfig
	store    *session.Store
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(tariffs *data.TariffTable, markets *data.MarketTable, defaults config.DefaultsConfig, store *session.Store) *AnalyzeHandler {
	return &AnalyzeHandler{
		tariffs:  tariffs,
		markets:  markets,
		defaults: defaults,
		store:    store,
	}
}

// RunAnalysis handles POST /api/v1/analyze
func (h *AnalyzeHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params, ok := h.buildParams(c, req)
	if !ok {
		return
	}

	metrics := impact.Compute(params)
	recommendations, err := impact.Recommend(params, metrics, h.markets)
	if err != nil {
		// The target market was checked against the table above; a miss
		// here means the loaded data itself is inconsistent.
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "DATA_INTEGRITY",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.AnalyzeResponse{
		Sector:          params.Record,
		Metrics:         metrics,
		RiskLabel:       metrics.RiskLevel.Label(),
		Recommendations: recommendations,
	}
	if req.Save {
		resp.SavedCount = h.store.Append(session.Snapshot(params, metrics))
	}
	c.JSON(http.StatusOK, resp)
}

// buildParams resolves the request into validated AnalysisParameters,
// filling unset fields from the configured defaults. On failure the
// error response has already been written.
func (h *AnalyzeHandler) buildParams(c *gin.Context, req models.AnalyzeRequest) (model.AnalysisParameters, bool) {
	record, err := h.tariffs.Sector(req.Sector)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_SECTOR",
				Message: err.Error(),
			},
		})
		return model.AnalysisParameters{}, false
	}

	params := model.AnalysisParameters{
		Record:            record,
		AnnualExportValue: h.defaults.AnnualExportValue,
		PassthroughRatio:  h.defaults.PassthroughRatio,
		NegotiationRate:   record.TrumpTariff * h.defaults.NegotiationFactor,
		TargetMarket:      model.StayInCurrentMarket,
	}
	if req.AnnualExportValue != nil {
		params.AnnualExportValue = *req.AnnualExportValue
	}
	if req.PassthroughRatio != nil {
		params.PassthroughRatio = *req.PassthroughRatio
	}
	if req.NegotiationRate != nil {
		params.NegotiationRate = *req.NegotiationRate
	}
	if req.TargetMarket != "" {
		params.TargetMarket = req.TargetMarket
	}

	if params.TargetMarket != model.StayInCurrentMarket {
		if _, err := h.markets.Market(params.TargetMarket); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNKNOWN_MARKET",
					Message: err.Error(),
				},
			})
			return model.AnalysisParameters{}, false
		}
	}

	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_PARAMETERS",
				Message: err.Error(),
			},
		})
		return model.AnalysisParameters{}, false
	}
	return params, true
}
