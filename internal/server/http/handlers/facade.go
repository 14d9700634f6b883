package handlers

import (
	"context"
	"encoding/json"

	"github.com/polkiloo/logidash/internal/domain/model"
)

// DashboardFacade provides the overview read model.
type DashboardFacade interface {
	Dashboard(ctx context.Context) (*model.Dashboard, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, order model.Order) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// ShipmentFacade encapsulates shipment operations exposed via HTTP.
type ShipmentFacade interface {
	Shipments(ctx context.Context) ([]model.Shipment, error)
	CreateShipment(ctx context.Context, shipment model.Shipment) (*model.Shipment, error)
	UpdateShipment(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error)
	DeleteShipment(ctx context.Context, id string) error
}

// InsightsFacade relays data to the text generator.
type InsightsFacade interface {
	GenerateInsights(ctx context.Context, data json.RawMessage) (string, error)
}

// HealthFacade reports store reachability.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// LogisticsFacade aggregates the full set of operations used across handlers.
type LogisticsFacade interface {
	DashboardFacade
	OrderFacade
	ShipmentFacade
	InsightsFacade
	HealthFacade
}
