package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// InsightsHandler relays dashboard data to the text generator.
type InsightsHandler struct {
	facade InsightsFacade
}

// NewInsightsHandler constructs InsightsHandler.
func NewInsightsHandler(facade InsightsFacade) *InsightsHandler {
	return &InsightsHandler{facade: facade}
}

// Generate handles POST /api/generate-insights.
func (h *InsightsHandler) Generate(c *gin.Context) {
	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Failed to generate insights")
		return
	}

	text, err := h.facade.GenerateInsights(c.Request.Context(), req.Data)
	if err != nil {
		writeError(c, err, "Failed to generate insights")
		return
	}
	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: text})
}
