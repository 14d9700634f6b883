package repository

import (
	"context"

	"github.com/polkiloo/logidash/internal/domain/model"
)

// ShipmentRepository describes persistence operations with shipments.
type ShipmentRepository interface {
	List(ctx context.Context) ([]model.Shipment, error)
	Create(ctx context.Context, shipment model.Shipment) (*model.Shipment, error)
	Update(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	CountNotInStatus(ctx context.Context, status string) (int64, error)
}
