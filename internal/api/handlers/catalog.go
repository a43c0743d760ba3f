package handlers

import (
	"net/http"

	"tariff-impact/internal/analysis"
	"tariff-impact/internal/api/models"
	"tariff-impact/internal/data"
	"tariff-impact/internal/model"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the loaded reference tables.
type CatalogHandler struct {
	tariffs *data.TariffTable
	markets *data.MarketTable
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(tariffs *data.TariffTable, markets *data.MarketTable) *CatalogHandler {
	return &CatalogHandler{tariffs: tariffs, markets: markets}
}

// ListSectors handles GET /api/v1/sectors
func (h *CatalogHandler) ListSectors(c *gin.Context) {
	c.JSON(http.StatusOK, models.SectorsResponse{
		Sectors: h.tariffs.Records(),
	})
}

// ListMarkets handles GET /api/v1/markets
func (h *CatalogHandler) ListMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, models.MarketsResponse{
		StaySentinel: model.StayInCurrentMarket,
		Markets:      h.markets.Markets(),
	})
}

// SectorExposure handles GET /api/v1/exposure
func (h *CatalogHandler) SectorExposure(c *gin.Context) {
	ranked := analysis.RankByTariffDelta(h.tariffs.Records())

	rankings := make([]models.ExposureRanking, 0, len(ranked))
	for i, e := range ranked {
		rankings = append(rankings, models.ExposureRanking{
			Rank:             i + 1,
			Sector:           e.Sector,
			HSCode:           e.HSCode,
			BaselineTariff:   e.BaselineTariff,
			TrumpTariff:      e.TrumpTariff,
			TariffDelta:      e.TariffDelta,
			SafeguardMeasure: e.SafeguardMeasure,
		})
	}
	c.JSON(http.StatusOK, models.ExposureResponse{Rankings: rankings})
}
