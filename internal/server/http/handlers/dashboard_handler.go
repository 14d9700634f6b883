package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/logidash/internal/server/http/dto"
)

// DashboardHandler serves the overview read model.
type DashboardHandler struct {
	facade DashboardFacade
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(facade DashboardFacade) *DashboardHandler {
	return &DashboardHandler{facade: facade}
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.facade.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to fetch dashboard data")
		return
	}

	response := dto.DashboardResponse{
		Metrics:      make([]dto.MetricResponse, 0, len(dashboard.Metrics)),
		RecentOrders: make([]dto.OrderResponse, 0, len(dashboard.RecentOrders)),
	}
	for _, m := range dashboard.Metrics {
		response.Metrics = append(response.Metrics, dto.MetricResponse{
			Label:  m.Label,
			Value:  m.Value,
			Change: m.Change,
			Trend:  string(m.Trend),
			Icon:   m.Icon,
		})
	}
	for _, o := range dashboard.RecentOrders {
		response.RecentOrders = append(response.RecentOrders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}
