package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/logidash/internal/domain/errors"
	"github.com/polkiloo/logidash/internal/domain/model"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainErrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ValidateOrder checks a complete order before it is created.
func ValidateOrder(order model.Order) error {
	if strings.TrimSpace(order.ID) == "" {
		return invalid("order id is required")
	}
	return validateOrderFields(&order.Quantity, &order.Total, &order.Status)
}

// ValidateOrderPatch checks only the fields present in the patch.
func ValidateOrderPatch(patch model.OrderPatch) error {
	return validateOrderFields(patch.Quantity, patch.Total, patch.Status)
}

func validateOrderFields(quantity *int, total *float64, status *model.OrderStatus) error {
	if status != nil && !status.Valid() {
		return invalid("unknown order status %q", *status)
	}
	if quantity != nil && *quantity < 1 {
		return invalid("quantity must be at least 1")
	}
	if total != nil && *total < 0 {
		return invalid("total must not be negative")
	}
	return nil
}

// ValidateShipment checks a shipment before it is created.
func ValidateShipment(shipment model.Shipment, strictProgress bool) error {
	if strings.TrimSpace(shipment.ID) == "" {
		return invalid("shipment id is required")
	}
	if strictProgress {
		return validateProgress(shipment.Progress)
	}
	return nil
}

// ValidateShipmentPatch checks the progress of a patch when strict mode is on.
func ValidateShipmentPatch(patch model.ShipmentPatch, strictProgress bool) error {
	if strictProgress && patch.Progress != nil {
		return validateProgress(*patch.Progress)
	}
	return nil
}

func validateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return invalid("progress must be within 0..100, got %d", progress)
	}
	return nil
}
