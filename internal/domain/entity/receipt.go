package entity

// Receipt is a value object representing one rendered printable receipt.
// It is NOT a database entity — it is composed from order/settings data at
// render time. Company orders render one receipt per employee; everything
// else renders a single consolidated receipt.
type Receipt struct {
	OrderNumber int    `json:"order_number"`
	For         string `json:"for,omitempty"` // employee label on company receipts
	Text        string `json:"text"`          // full 40-column receipt body
}
