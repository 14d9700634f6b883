package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/polkiloo/logidash/internal/domain/model"
	"github.com/polkiloo/logidash/internal/domain/repository"
)

// RecentOrdersLimit is the number of orders shown on the dashboard.
const RecentOrdersLimit = 5

// DashboardUseCase builds the overview read model. It holds no state and
// recomputes everything on each call.
type DashboardUseCase struct {
	orders    repository.OrderRepository
	shipments repository.ShipmentRepository
}

// NewDashboardUseCase constructs DashboardUseCase.
func NewDashboardUseCase(orders repository.OrderRepository, shipments repository.ShipmentRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, shipments: shipments}
}

// Dashboard returns the metrics and most recent orders. Any failed read fails the call.
func (u *DashboardUseCase) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	var (
		stats  model.DashboardStats
		recent []model.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	u.collectStats(gctx, g, &stats)
	g.Go(func() error {
		orders, err := u.orders.ListRecent(gctx, RecentOrdersLimit)
		if err != nil {
			return fmt.Errorf("list recent orders: %w", err)
		}
		recent = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []model.Order{}
	}
	return &model.Dashboard{Metrics: BuildMetrics(stats), RecentOrders: recent}, nil
}

func (u *DashboardUseCase) collectStats(ctx context.Context, g *errgroup.Group, stats *model.DashboardStats) {
	g.Go(func() error {
		n, err := u.orders.Count(ctx)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		stats.TotalOrders = n
		return nil
	})
	g.Go(func() error {
		n, err := u.shipments.CountNotInStatus(ctx, model.ShipmentStatusDelivered)
		if err != nil {
			return fmt.Errorf("count pending shipments: %w", err)
		}
		stats.PendingShipments = n
		return nil
	})
	g.Go(func() error {
		n, err := u.orders.CountByStatus(ctx, model.OrderStatusDelivered)
		if err != nil {
			return fmt.Errorf("count delivered orders: %w", err)
		}
		stats.DeliveredOrders = n
		return nil
	})
	g.Go(func() error {
		sum, err := u.orders.SumTotal(ctx)
		if err != nil {
			return fmt.Errorf("sum revenue: %w", err)
		}
		stats.TotalRevenue = sum
		return nil
	})
}
