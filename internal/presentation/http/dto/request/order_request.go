package request

// OrderItemRequest represents one marmita in an order submission. The
// legacy singular "protein" field is still accepted alongside "proteins".
type OrderItemRequest struct {
	EmployeeName   string   `json:"employee_name"`
	Size           string   `json:"size" binding:"required"`
	Protein        string   `json:"protein"`
	Proteins       []string `json:"proteins"`
	Accompaniments []string `json:"accompaniments"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name" binding:"required"`
	IsCompanyOrder  bool               `json:"is_company_order"`
	OrderType       string             `json:"order_type" binding:"required"`
	DeliveryAddress string             `json:"delivery_address"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	Salads          []string           `json:"salads"`
	Beverages       []string           `json:"beverages"`
	Coffees         []string           `json:"coffees"`
	Snacks          []string           `json:"snacks"`
	Desserts        []string           `json:"desserts"`
	Others          []string           `json:"others"`
	Observations    string             `json:"observations"`
	TotalPrice      float64            `json:"total_price"`
	PaymentMethod   string             `json:"payment_method"`
	AmountPaid      float64            `json:"amount_paid"`
}

// UpdateOrderStatusRequest represents an order status transition request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	Status  string `form:"status"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
