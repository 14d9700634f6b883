package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/domain/repository"
)

// SeedUseCase resets the store to the demo data set.
type SeedUseCase struct {
	orders    repository.OrderRepository
	shipments repository.ShipmentRepository
	logger    *slog.Logger
}

// NewSeedUseCase constructs SeedUseCase.
func NewSeedUseCase(orders repository.OrderRepository, shipments repository.ShipmentRepository, logger *slog.Logger) *SeedUseCase {
	return &SeedUseCase{orders: orders, shipments: shipments, logger: logger}
}

// Seed deletes every order and shipment, then inserts the demo records.
// It is not atomic: a failure midway leaves a partially seeded store.
func (u *SeedUseCase) Seed(ctx context.Context) error {
	if err := u.orders.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	if err := u.shipments.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear shipments: %w", err)
	}

	orders := DemoOrders()
	for _, o := range orders {
		if _, err := u.orders.Create(ctx, o); err != nil {
			return fmt.Errorf("seed order %s: %w", o.ID, err)
		}
	}

	shipments := DemoShipments()
	for _, s := range shipments {
		if _, err := u.shipments.Create(ctx, s); err != nil {
			return fmt.Errorf("seed shipment %s: %w", s.ID, err)
		}
	}

	u.logger.Info("seed complete",
		slog.Int("orders", len(orders)),
		slog.Int("shipments", len(shipments)),
	)
	return nil
}

// DemoOrders returns the demo orders in insertion order.
func DemoOrders() []model.Order {
	return []model.Order{
		{ID: "#ORD-8821", Customer: "Sarah Jenkins", Location: "London, UK", Product: "Industrial Compressor 50L", Quantity: 2, Total: 1240.00, Status: model.OrderStatusInTransit, Date: "Oct 12, 2023"},
		{ID: "#ORD-8819", Customer: "Tech Solutions Inc", Location: "San Francisco, CA", Product: "Server Rack Mounting Kit", Quantity: 15, Total: 845.50, Status: model.OrderStatusDelivered, Date: "Oct 12, 2023"},
		{ID: "#ORD-8815", Customer: "Michael Chen", Location: "Singapore", Product: "Logistics Hub Switch", Quantity: 1, Total: 2100.00, Status: model.OrderStatusLabelCreated, Date: "Oct 11, 2023"},
		{ID: "#ORD-8799", Customer: "Global Imports LLC", Location: "New York, NY", Product: "Steel Shipping Crates", Quantity: 50, Total: 4500.00, Status: model.OrderStatusCancelled, Date: "Oct 11, 2023"},
		{ID: "#ORD-8795", Customer: "Anita Rodriguez", Location: "Madrid, ES", Product: "Cargo Handling Gloves", Quantity: 100, Total: 1500.00, Status: model.OrderStatusDelivered, Date: "Oct 11, 2023"},
	}
}

// DemoShipments returns the demo shipments in insertion order.
func DemoShipments() []model.Shipment {
	return []model.Shipment{
		{ID: "TRK-9902120", Status: "In Transit - Chicago, IL", ETA: strPtr("Today, 6:00 PM"), Progress: 75, Color: "bg-blue-600"},
		{ID: "TRK-8812341", Status: "Out for Delivery", Courier: strPtr("Mike S."), Progress: 95, Color: "bg-emerald-500"},
		{ID: "TRK-4451290", Status: "Label Created", ETA: strPtr("Pending Pickup"), Progress: 10, Color: "bg-slate-300"},
	}
}

func strPtr(s string) *string { return &s }
