package enum

// ProductType categorizes catalog products. Proteins and accompaniments are
// priced per marmita size; the remaining categories carry a flat price.
type ProductType string

const (
	ProductProtein       ProductType = "protein"
	ProductAccompaniment ProductType = "accompaniment"
	ProductSalad         ProductType = "salad"
	ProductBeverage      ProductType = "beverage"
	ProductCoffee        ProductType = "coffee"
	ProductSnack         ProductType = "snack"
	ProductDessert       ProductType = "dessert"
	ProductOther         ProductType = "other"
)

// Valid reports whether the product type is known.
func (t ProductType) Valid() bool {
	switch t {
	case ProductProtein, ProductAccompaniment, ProductSalad, ProductBeverage,
		ProductCoffee, ProductSnack, ProductDessert, ProductOther:
		return true
	}
	return false
}

// SizePriced reports whether the product is priced per marmita size.
func (t ProductType) SizePriced() bool {
	return t == ProductProtein || t == ProductAccompaniment
}

func (t ProductType) String() string {
	return string(t)
}
