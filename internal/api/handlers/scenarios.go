package handlers

import (
	"bytes"
	"net/http"

	"tariff-impact/internal/api/models"
	"tariff-impact/internal/session"

	"github.com/gin-gonic/gin"
)

// ScenariosHandler serves the saved session history.
type ScenariosHandler struct {
	store *session.Store
}

// NewScenariosHandler creates a new scenarios handler.
func NewScenariosHandler(store *session.Store) *ScenariosHandler {
	return &ScenariosHandler{store: store}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenariosHandler) ListScenarios(c *gin.Context) {
	all := h.store.All()
	entries := make([]models.ScenarioEntry, 0, len(all))
	for i, sc := range all {
		entries = append(entries, models.ScenarioEntry{
			Index:            i,
			Sector:           sc.Sector,
			AnnualValue:      sc.AnnualValue,
			TrumpRate:        sc.TrumpRate,
			NegotiationRate:  sc.NegotiationRate,
			AdditionalCost:   sc.AdditionalCost,
			MitigatedSavings: sc.MitigatedSavings,
			TargetMarket:     sc.TargetMarket,
			RiskLevel:        string(sc.RiskLevel),
		})
	}
	c.JSON(http.StatusOK, models.ScenariosResponse{
		Count:     len(entries),
		Scenarios: entries,
	})
}

// ExportScenarios handles GET /api/v1/scenarios/export
// The CSV column set matches the historical tool's download artifact.
func (h *ScenariosHandler) ExportScenarios(c *gin.Context) {
	var buf bytes.Buffer
	if err := session.WriteCSV(&buf, h.store.All()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "EXPORT_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="analyses_itc.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
