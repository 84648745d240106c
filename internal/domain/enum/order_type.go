package enum

// OrderType distinguishes counter pickup from delivery orders.
type OrderType string

const (
	OrderTypeBalcao  OrderType = "BALCAO"
	OrderTypeEntrega OrderType = "ENTREGA"
)

// Valid reports whether the order type is known.
func (t OrderType) Valid() bool {
	return t == OrderTypeBalcao || t == OrderTypeEntrega
}

func (t OrderType) String() string {
	return string(t)
}
