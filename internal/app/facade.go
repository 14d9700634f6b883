package app

import (
	"context"
	"encoding/json"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/usecase"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// LogisticsFacade groups the use cases served over HTTP.
type LogisticsFacade struct {
	dashboard *usecase.DashboardUseCase
	orders    *usecase.OrderUseCase
	shipments *usecase.ShipmentUseCase
	insights  *usecase.InsightsUseCase
	health    HealthChecker
}

func NewLogisticsFacade(
	dashboard *usecase.DashboardUseCase,
	orders *usecase.OrderUseCase,
	shipments *usecase.ShipmentUseCase,
	insights *usecase.InsightsUseCase,
	health HealthChecker,
) *LogisticsFacade {
	return &LogisticsFacade{dashboard: dashboard, orders: orders, shipments: shipments, insights: insights, health: health}
}

func (f *LogisticsFacade) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return f.dashboard.Dashboard(ctx)
}

func (f *LogisticsFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *LogisticsFacade) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	return f.orders.Create(ctx, order)
}

func (f *LogisticsFacade) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Update(ctx, id, patch)
}

func (f *LogisticsFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *LogisticsFacade) Shipments(ctx context.Context) ([]model.Shipment, error) {
	return f.shipments.List(ctx)
}

func (f *LogisticsFacade) CreateShipment(ctx context.Context, shipment model.Shipment) (*model.Shipment, error) {
	return f.shipments.Create(ctx, shipment)
}

func (f *LogisticsFacade) UpdateShipment(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error) {
	return f.shipments.Update(ctx, id, patch)
}

func (f *LogisticsFacade) DeleteShipment(ctx context.Context, id string) error {
	return f.shipments.Delete(ctx, id)
}

func (f *LogisticsFacade) GenerateInsights(ctx context.Context, data json.RawMessage) (string, error) {
	return f.insights.Generate(ctx, data)
}

func (f *LogisticsFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
