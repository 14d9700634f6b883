package model

// ShipmentStatusDelivered is the only shipment status the dashboard treats specially.
const ShipmentStatusDelivered = "Delivered"

// Shipment is a tracking record. It is not linked to any order.
type Shipment struct {
	ID       string
	Status   string
	ETA      *string
	Courier  *string
	Progress int
	Color    string
}

// Nullable is a patch value for a nullable column. Set tells an explicit null
// apart from a field that was not sent.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// NullableOf returns a Nullable that replaces the column with v, or clears it when v is nil.
func NullableOf[T any](v *T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

// Apply returns the value the column holds after the patch.
func (n Nullable[T]) Apply(current *T) *T {
	if !n.Set {
		return current
	}
	return n.Value
}

// ShipmentPatch carries fields to replace on update. Nil fields are left
// untouched; ETA and Courier are cleared when Set with a nil Value.
type ShipmentPatch struct {
	Status   *string
	ETA      Nullable[string]
	Courier  Nullable[string]
	Progress *int
	Color    *string
}

// Empty reports whether the patch changes nothing.
func (p ShipmentPatch) Empty() bool {
	return p.Status == nil && !p.ETA.Set && !p.Courier.Set && p.Progress == nil && p.Color == nil
}
