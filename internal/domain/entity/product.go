package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/enum"
)

// Product is a catalog item. Proteins and accompaniments are priced per
// marmita size (P/M/G); beverages, salads, coffees, snacks, desserts and
// others carry a single flat price. All prices are stored in cents.
type Product struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Name      string           `gorm:"size:255;not null" json:"name"`
	Type      enum.ProductType `gorm:"size:30;not null;index" json:"type"`
	Price     int64            `gorm:"default:0" json:"-"`
	PriceP    int64            `gorm:"default:0" json:"-"`
	PriceM    int64            `gorm:"default:0" json:"-"`
	PriceG    int64            `gorm:"default:0" json:"-"`
	Active    bool             `gorm:"default:true" json:"active"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// MarshalJSON converts cent-denominated prices to decimals for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price  float64 `json:"price"`
		PriceP float64 `json:"price_p"`
		PriceM float64 `json:"price_m"`
		PriceG float64 `json:"price_g"`
	}{
		Alias:  Alias(p),
		Price:  float64(p.Price) / 100,
		PriceP: float64(p.PriceP) / 100,
		PriceM: float64(p.PriceM) / 100,
		PriceG: float64(p.PriceG) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// PriceForSize returns the price for a given marmita size, falling back to
// the flat price for products that are not size-priced.
func (p *Product) PriceForSize(size enum.Size) int64 {
	if !p.Type.SizePriced() {
		return p.Price
	}
	switch size {
	case enum.SizeP:
		return p.PriceP
	case enum.SizeM:
		return p.PriceM
	case enum.SizeG:
		return p.PriceG
	}
	return 0
}
