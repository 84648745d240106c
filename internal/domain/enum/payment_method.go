package enum

// PaymentMethod represents how an order was paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "DINHEIRO"
	PaymentPix    PaymentMethod = "PIX"
	PaymentCard   PaymentMethod = "CARTAO"
	PaymentCredit PaymentMethod = "CONVENIO" // company credit account, settled monthly
)

// Valid reports whether the payment method is known.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCard, PaymentCredit:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}
