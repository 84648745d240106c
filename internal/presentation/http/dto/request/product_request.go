package request

// CreateProductRequest represents a product creation request. Proteins and
// accompaniments are priced per size; everything else uses the flat price.
type CreateProductRequest struct {
	Name   string  `json:"name" binding:"required,min=1,max=255"`
	Type   string  `json:"type" binding:"required"`
	Price  float64 `json:"price" binding:"min=0"`
	PriceP float64 `json:"price_p" binding:"min=0"`
	PriceM float64 `json:"price_m" binding:"min=0"`
	PriceG float64 `json:"price_g" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name   *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Type   *string  `json:"type"`
	Price  *float64 `json:"price" binding:"omitempty,min=0"`
	PriceP *float64 `json:"price_p" binding:"omitempty,min=0"`
	PriceM *float64 `json:"price_m" binding:"omitempty,min=0"`
	PriceG *float64 `json:"price_g" binding:"omitempty,min=0"`
	Active *bool    `json:"active"`
}
