package dto

import "encoding/json"

// MetricResponse is one dashboard tile.
type MetricResponse struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
	Icon   string `json:"icon"`
}

// DashboardResponse is returned by GET /api/dashboard.
type DashboardResponse struct {
	Metrics      []MetricResponse `json:"metrics"`
	RecentOrders []OrderResponse  `json:"recentOrders"`
}

// InsightsRequest wraps arbitrary dashboard data.
type InsightsRequest struct {
	Data json.RawMessage `json:"data"`
}

// InsightsResponse carries generated text.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
