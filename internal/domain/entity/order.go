package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/enum"
)

// StringList is a list of product names stored as a JSON text column.
// Duplicate entries represent multiple units.
type StringList []string

// Value serializes the list to JSON for storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes the list from its JSON column
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("entity: unsupported type for StringList")
}

// Order is a customer order. Orders are never deleted; after creation only
// the workflow status and the printed flag change.
type Order struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber    int                `gorm:"uniqueIndex;not null" json:"order_number"`
	CustomerName   string             `gorm:"size:255;not null" json:"customer_name"`
	IsCompanyOrder bool               `gorm:"default:false" json:"is_company_order"`
	OrderType      enum.OrderType     `gorm:"size:20;not null" json:"order_type"`
	DeliveryAddr   *string            `gorm:"type:text;column:delivery_address" json:"delivery_address,omitempty"`
	Salads         StringList         `gorm:"type:text" json:"salads"`
	Beverages      StringList         `gorm:"type:text" json:"beverages"`
	Coffees        StringList         `gorm:"type:text" json:"coffees"`
	Snacks         StringList         `gorm:"type:text" json:"snacks"`
	Desserts       StringList         `gorm:"type:text" json:"desserts"`
	Others         StringList         `gorm:"type:text" json:"others"`
	Observations   *string            `gorm:"type:text" json:"observations,omitempty"`
	TotalPrice     int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	PaymentMethod  enum.PaymentMethod `gorm:"size:20;default:'DINHEIRO'" json:"payment_method"`
	AmountPaid     int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ChangeAmount   int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Status         enum.OrderStatus   `gorm:"size:20;default:'pending';index" json:"status"`
	AttendantCode  string             `gorm:"size:50" json:"attendant_code"`
	AttendantName  string             `gorm:"size:255" json:"attendant_name"`
	Printed        bool               `gorm:"default:false" json:"printed"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`

	// Relationships
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		TotalPrice   float64 `json:"total_price"`
		AmountPaid   float64 `json:"amount_paid"`
		ChangeAmount float64 `json:"change_amount"`
	}{
		Alias:        Alias(o),
		TotalPrice:   float64(o.TotalPrice) / 100,
		AmountPaid:   float64(o.AmountPaid) / 100,
		ChangeAmount: float64(o.ChangeAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one marmita container within an order. Items are owned
// exclusively by their order and have no independent lifecycle.
type OrderItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	Position       int        `gorm:"not null" json:"position"`
	EmployeeName   *string    `gorm:"size:255" json:"employee_name,omitempty"`
	Size           enum.Size  `gorm:"size:5;not null" json:"size"`
	Protein        *string    `gorm:"size:255" json:"protein,omitempty"` // legacy single-protein field
	Proteins       StringList `gorm:"type:text" json:"proteins"`
	Accompaniments StringList `gorm:"type:text" json:"accompaniments"`
	CreatedAt      time.Time  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ProteinList returns the item's proteins with blank entries dropped,
// wrapping the legacy singular field when the list is absent.
func (i *OrderItem) ProteinList() []string {
	src := []string(i.Proteins)
	if len(src) == 0 && i.Protein != nil {
		src = []string{*i.Protein}
	}
	out := make([]string, 0, len(src))
	for _, p := range src {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
