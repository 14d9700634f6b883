package usecase

import (
	"context"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/domain/repository"
)

// OrderUseCase exposes CRUD over orders.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// List returns every order in insertion order.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Create validates and stores a new order. Duplicate ids yield ErrAlreadyExists.
func (u *OrderUseCase) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if err := ValidateOrder(order); err != nil {
		return nil, err
	}
	return u.orders.Create(ctx, order)
}

// Update replaces the fields present in patch.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if err := ValidateOrderPatch(patch); err != nil {
		return nil, err
	}
	return u.orders.Update(ctx, id, patch)
}

// Delete removes the order or returns ErrNotFound.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}
