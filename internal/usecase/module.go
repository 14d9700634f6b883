package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/logidash/internal/config"
	"github.com/polkiloo/logidash/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewOrderUseCase,
	newShipmentUseCase,
	NewDashboardUseCase,
	NewInsightsUseCase,
	NewSeedUseCase,
)

func newShipmentUseCase(shipments repository.ShipmentRepository, cfg *config.Config) *ShipmentUseCase {
	return NewShipmentUseCase(shipments, cfg.StrictShipmentProgress)
}
