package enum

// OrderStatus represents the kitchen workflow status of an order.
// Progression is expected to be forward-only: pending -> preparing -> ready -> delivered.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

// Valid reports whether the status is one of the known workflow states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}
