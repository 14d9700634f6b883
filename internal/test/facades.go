package test

import (
	"context"
	"encoding/json"

	"github.com/polkiloo/logidash/internal/domain/model"
)

// DashboardFacadeStub returns a configurable dashboard.
type DashboardFacadeStub struct {
	DashboardFn func(context.Context) (*model.Dashboard, error)
}

// Dashboard delegates to override or returns an empty dashboard.
func (s DashboardFacadeStub) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx)
	}
	return &model.Dashboard{Metrics: []model.Metric{}, RecentOrders: []model.Order{}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn      func(context.Context) ([]model.Order, error)
	CreateOrderFn func(context.Context, model.Order) (*model.Order, error)
	UpdateOrderFn func(context.Context, string, model.OrderPatch) (*model.Order, error)
	DeleteOrderFn func(context.Context, string) error
}

// Orders returns configured orders or a single default one.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "#ORD-1", Quantity: 1, Status: model.OrderStatusPending}}, nil
}

// CreateOrder echoes the order back by default.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, order)
	}
	return &order, nil
}

// UpdateOrder returns an order with the given id by default.
func (s OrderFacadeStub) UpdateOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateOrderFn != nil {
		return s.UpdateOrderFn(ctx, id, patch)
	}
	return &model.Order{ID: id}, nil
}

// DeleteOrder succeeds by default.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, id)
	}
	return nil
}

// ShipmentFacadeStub provides controllable behaviour for shipment endpoints.
type ShipmentFacadeStub struct {
	ShipmentsFn      func(context.Context) ([]model.Shipment, error)
	CreateShipmentFn func(context.Context, model.Shipment) (*model.Shipment, error)
	UpdateShipmentFn func(context.Context, string, model.ShipmentPatch) (*model.Shipment, error)
	DeleteShipmentFn func(context.Context, string) error
}

// Shipments returns configured shipments or a single default one.
func (s ShipmentFacadeStub) Shipments(ctx context.Context) ([]model.Shipment, error) {
	if s.ShipmentsFn != nil {
		return s.ShipmentsFn(ctx)
	}
	return []model.Shipment{{ID: "TRK-1", Status: "Label Created"}}, nil
}

// CreateShipment echoes the shipment back by default.
func (s ShipmentFacadeStub) CreateShipment(ctx context.Context, shipment model.Shipment) (*model.Shipment, error) {
	if s.CreateShipmentFn != nil {
		return s.CreateShipmentFn(ctx, shipment)
	}
	return &shipment, nil
}

// UpdateShipment returns a shipment with the given id by default.
func (s ShipmentFacadeStub) UpdateShipment(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error) {
	if s.UpdateShipmentFn != nil {
		return s.UpdateShipmentFn(ctx, id, patch)
	}
	return &model.Shipment{ID: id}, nil
}

// DeleteShipment succeeds by default.
func (s ShipmentFacadeStub) DeleteShipment(ctx context.Context, id string) error {
	if s.DeleteShipmentFn != nil {
		return s.DeleteShipmentFn(ctx, id)
	}
	return nil
}

// InsightsFacadeStub returns canned insight text.
type InsightsFacadeStub struct {
	GenerateFn func(context.Context, json.RawMessage) (string, error)
}

// GenerateInsights delegates to override or returns a fixed bullet list.
func (s InsightsFacadeStub) GenerateInsights(ctx context.Context, data json.RawMessage) (string, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, data)
	}
	return "- insight", nil
}

// HealthFacadeStub reports store health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// LogisticsFacadeStub aggregates facade dependencies for HTTP layer tests.
type LogisticsFacadeStub struct {
	DashboardFacadeStub
	OrderFacadeStub
	ShipmentFacadeStub
	InsightsFacadeStub
	HealthFacadeStub
}

// TextGeneratorStub records prompts and returns configured text.
type TextGeneratorStub struct {
	Text    string
	Err     error
	Prompts []string
}

// Generate records prompt and returns configured response.
func (s *TextGeneratorStub) Generate(_ context.Context, prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}

// TokenVerifierStub implements the write guard contract.
type TokenVerifierStub struct {
	Tokens   []string
	VerifyFn func(string) error
}

// Verify records token and delegates to override.
func (s *TokenVerifierStub) Verify(token string) error {
	s.Tokens = append(s.Tokens, token)
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	return nil
}
