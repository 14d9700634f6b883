package repository

import (
	"context"

	"github.com/polkiloo/logidash/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (*model.Order, error)
	Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	SumTotal(ctx context.Context) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
}
