package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
	"github.com/polkiloo/logidash/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory in insertion order.
// Fn overrides take precedence over the in-memory behaviour.
type OrderRepositoryStub struct {
	ListFn          func(context.Context) ([]model.Order, error)
	CreateFn        func(context.Context, model.Order) (*model.Order, error)
	UpdateFn        func(context.Context, string, model.OrderPatch) (*model.Order, error)
	DeleteFn        func(context.Context, string) error
	CountFn         func(context.Context) (int64, error)
	CountByStatusFn func(context.Context, model.OrderStatus) (int64, error)
	SumTotalFn      func(context.Context) (float64, error)
	ListRecentFn    func(context.Context, int) ([]model.Order, error)

	mu     sync.Mutex
	Orders []model.Order
	next   int64
}

// List returns a copy of stored orders.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Order{}, s.Orders...), nil
}

// Create appends order unless the id is taken.
func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Orders {
		if o.ID == order.ID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.next++
	order.Seq = s.next
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// Update applies the non-nil patch fields.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID != id {
			continue
		}
		o := &s.Orders[i]
		if patch.Customer != nil {
			o.Customer = *patch.Customer
		}
		if patch.Location != nil {
			o.Location = *patch.Location
		}
		if patch.Product != nil {
			o.Product = *patch.Product
		}
		if patch.Quantity != nil {
			o.Quantity = *patch.Quantity
		}
		if patch.Total != nil {
			o.Total = *patch.Total
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.Date != nil {
			o.Date = *patch.Date
		}
		updated := *o
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes order by id.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.Orders {
		if o.ID == id {
			s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// DeleteAll drops every stored order.
func (s *OrderRepositoryStub) DeleteAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Orders = nil
	return nil
}

// Count returns number of stored orders.
func (s *OrderRepositoryStub) Count(ctx context.Context) (int64, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.Orders)), nil
}

// CountByStatus counts orders with the given status.
func (s *OrderRepositoryStub) CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error) {
	if s.CountByStatusFn != nil {
		return s.CountByStatusFn(ctx, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, o := range s.Orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

// SumTotal sums order totals.
func (s *OrderRepositoryStub) SumTotal(ctx context.Context) (float64, error) {
	if s.SumTotalFn != nil {
		return s.SumTotalFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum float64
	for _, o := range s.Orders {
		sum += o.Total
	}
	return sum, nil
}

// ListRecent returns up to limit orders, newest first.
func (s *OrderRepositoryStub) ListRecent(ctx context.Context, limit int) ([]model.Order, error) {
	if s.ListRecentFn != nil {
		return s.ListRecentFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]model.Order, 0, limit)
	for i := len(s.Orders) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.Orders[i])
	}
	return result, nil
}

// ShipmentRepositoryStub keeps shipments in memory in insertion order.
type ShipmentRepositoryStub struct {
	ListFn             func(context.Context) ([]model.Shipment, error)
	CreateFn           func(context.Context, model.Shipment) (*model.Shipment, error)
	UpdateFn           func(context.Context, string, model.ShipmentPatch) (*model.Shipment, error)
	DeleteFn           func(context.Context, string) error
	CountNotInStatusFn func(context.Context, string) (int64, error)

	mu        sync.Mutex
	Shipments []model.Shipment
}

// List returns a copy of stored shipments.
func (s *ShipmentRepositoryStub) List(ctx context.Context) ([]model.Shipment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Shipment{}, s.Shipments...), nil
}

// Create appends shipment unless the id is taken.
func (s *ShipmentRepositoryStub) Create(ctx context.Context, shipment model.Shipment) (*model.Shipment, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, shipment)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.Shipments {
		if existing.ID == shipment.ID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	s.Shipments = append(s.Shipments, shipment)
	return &shipment, nil
}

// Update applies the non-nil patch fields and the nullable fields that were set.
func (s *ShipmentRepositoryStub) Update(ctx context.Context, id string, patch model.ShipmentPatch) (*model.Shipment, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Shipments {
		if s.Shipments[i].ID != id {
			continue
		}
		sh := &s.Shipments[i]
		if patch.Status != nil {
			sh.Status = *patch.Status
		}
		sh.ETA = patch.ETA.Apply(sh.ETA)
		sh.Courier = patch.Courier.Apply(sh.Courier)
		if patch.Progress != nil {
			sh.Progress = *patch.Progress
		}
		if patch.Color != nil {
			sh.Color = *patch.Color
		}
		updated := *sh
		return &updated, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes shipment by id.
func (s *ShipmentRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sh := range s.Shipments {
		if sh.ID == id {
			s.Shipments = append(s.Shipments[:i], s.Shipments[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// DeleteAll drops every stored shipment.
func (s *ShipmentRepositoryStub) DeleteAll(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Shipments = nil
	return nil
}

// CountNotInStatus counts shipments whose status differs from status.
func (s *ShipmentRepositoryStub) CountNotInStatus(ctx context.Context, status string) (int64, error) {
	if s.CountNotInStatusFn != nil {
		return s.CountNotInStatusFn(ctx, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, sh := range s.Shipments {
		if sh.Status != status {
			n++
		}
	}
	return n, nil
}
