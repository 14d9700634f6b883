package usecase

import (
	"context"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/domain/repository"
)

// ShipmentUseCase exposes CRUD over shipments.
type ShipmentUseCase struct {
	shipments      repository.ShipmentRepository
	strictProgress bool
}

// NewShipmentUseCase constructs ShipmentUseCase. With strictProgress unset any
// progress value is stored as given.
func NewShipmentUseCase(shipments repository.ShipmentRepository, strictProgress bool) *ShipmentUseCase {
	return &ShipmentUseCase{shipments: shipments, strictProgress: strictProgress}
}

func (u *ShipmentUseCase) List(ctx context.Context) ([]model.Shipment, error) {
	return u.shipments.List(ctx)
}

func (u *ShipmentUseCase) Create(ctx context.Context, shipment model.Shipment) (*model.Shipment, error) {
	if err := ValidateShipment(shipment, u.strictProgress); err != nil {
		return nil, err
	}
	return u.shipments.Create(ctx, shipment)
}

func (u *ShipmentUseCase) Update(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error) {
	if err := ValidateShipmentPatch(patch, u.strictProgress); err != nil {
		return nil, err
	}
	return u.shipments.Update(ctx, id, patch)
}

func (u *ShipmentUseCase) Delete(ctx context.Context, id string) error {
	return u.shipments.Delete(ctx, id)
}
