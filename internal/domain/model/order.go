package model

// OrderStatus describes where an order is in its delivery lifecycle.
type OrderStatus string

const (
	OrderStatusInTransit    OrderStatus = "In Transit"
	OrderStatusDelivered    OrderStatus = "Delivered"
	OrderStatusLabelCreated OrderStatus = "Label Created"
	OrderStatusCancelled    OrderStatus = "Cancelled"
	OrderStatusProcessing   OrderStatus = "Processing"
	OrderStatusShipped      OrderStatus = "Shipped"
	OrderStatusPending      OrderStatus = "Pending"
)

// OrderStatuses lists every accepted order status.
var OrderStatuses = []OrderStatus{
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusLabelCreated,
	OrderStatusCancelled,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusPending,
}

// Valid reports whether status belongs to the fixed enumeration.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order describes a logistics order record.
type Order struct {
	ID       string
	Customer string
	Location string
	Product  string
	Quantity int
	Total    float64
	Status   OrderStatus
	Date     string

	// Seq is the store-assigned insertion sequence.
	Seq int64
}

// OrderPatch carries fields to replace on update. Nil fields are left untouched.
type OrderPatch struct {
	Customer *string
	Location *string
	Product  *string
	Quantity *int
	Total    *float64
	Status   *OrderStatus
	Date     *string
}

// Empty reports whether the patch changes nothing.
func (p OrderPatch) Empty() bool {
	return p.Customer == nil && p.Location == nil && p.Product == nil &&
		p.Quantity == nil && p.Total == nil && p.Status == nil && p.Date == nil
}
