package model

// Trend is the direction indicator shown next to a metric.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Metric is one tile of the dashboard summary. It is derived, never persisted.
type Metric struct {
	Label  string
	Value  string
	Change string
	Trend  Trend
	Icon   string
}

// Dashboard is the read model served to the overview page.
type Dashboard struct {
	Metrics      []Metric
	RecentOrders []Order
}

// DashboardStats holds the raw figures the metrics are formatted from.
type DashboardStats struct {
	TotalOrders      int64
	PendingShipments int64
	DeliveredOrders  int64
	TotalRevenue     float64
}
