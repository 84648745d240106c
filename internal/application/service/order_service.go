package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
	"github.com/dguedes/marmitaria-api/pkg/pagination"
)

// OrderService handles order validation, creation and lifecycle.
type OrderService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository, settingsRepo repository.SettingsRepository) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
	}
}

// OrderItemInput represents one marmita in an order submission. The legacy
// singular Protein field and the Proteins list form a union: both are
// accepted, and the validator normalizes them into a single list.
type OrderItemInput struct {
	EmployeeName   string
	Size           string
	Protein        string
	Proteins       []string
	Accompaniments []string
}

// CreateOrderInput represents the create order input. Money values arrive
// as decimals and are stored in cents. The total is client-supplied and is
// not recomputed from catalog prices.
type CreateOrderInput struct {
	CustomerName   string
	IsCompanyOrder bool
	OrderType      string
	DeliveryAddr   string
	Items          []OrderItemInput
	Salads         []string
	Beverages      []string
	Coffees        []string
	Snacks         []string
	Desserts       []string
	Others         []string
	Observations   string
	TotalPrice     float64
	PaymentMethod  string
	AmountPaid     float64
	AttendantCode  string
	AttendantName  string
}

// CreateOrder validates the submission, assigns the next order number and
// persists the order. Nothing is written when validation fails.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	order, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// validate checks shape and consistency of a submission and produces the
// order ready for persistence. It performs no I/O.
func (s *OrderService) validate(input *CreateOrderInput) (*entity.Order, error) {
	var fieldErrs []apperror.FieldError

	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}

	orderType := enum.OrderType(input.OrderType)
	if !orderType.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "order_type", Message: "Order type must be BALCAO or ENTREGA"})
	}
	if orderType == enum.OrderTypeEntrega && strings.TrimSpace(input.DeliveryAddr) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "delivery_address", Message: "Delivery address is required for ENTREGA orders"})
	}

	if len(input.Items) == 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "items", Message: "Order must contain at least one item"})
	}

	if input.TotalPrice < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "total_price", Message: "Total price cannot be negative"})
	}

	payment := enum.PaymentMethod(input.PaymentMethod)
	if input.PaymentMethod == "" {
		payment = enum.PaymentCash
	}
	if !payment.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "payment_method", Message: "Unknown payment method"})
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for i, in := range input.Items {
		size := enum.Size(in.Size)
		if !size.Valid() {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "items", Message: "Item size must be P, M or G"})
		}

		item := entity.OrderItem{
			Position:       i + 1,
			Size:           size,
			Proteins:       normalizeProteins(in.Proteins, in.Protein),
			Accompaniments: entity.StringList(in.Accompaniments),
		}
		if in.EmployeeName != "" {
			name := in.EmployeeName
			item.EmployeeName = &name
		}
		items = append(items, item)
	}

	total := toCents(input.TotalPrice)
	paid := toCents(input.AmountPaid)
	var change int64

	if payment == enum.PaymentCash && paid > 0 {
		change = paid - total
		if change < 0 {
			fieldErrs = append(fieldErrs, apperror.FieldError{Field: "amount_paid", Message: "Amount paid is less than the total"})
		}
	} else {
		// amount paid and change are only meaningful for cash payments
		paid = 0
		change = 0
	}

	if len(fieldErrs) > 0 {
		return nil, apperror.NewInvalidOrderError(fieldErrs)
	}

	order := &entity.Order{
		CustomerName:   input.CustomerName,
		IsCompanyOrder: input.IsCompanyOrder,
		OrderType:      orderType,
		Salads:         entity.StringList(input.Salads),
		Beverages:      entity.StringList(input.Beverages),
		Coffees:        entity.StringList(input.Coffees),
		Snacks:         entity.StringList(input.Snacks),
		Desserts:       entity.StringList(input.Desserts),
		Others:         entity.StringList(input.Others),
		TotalPrice:     total,
		PaymentMethod:  payment,
		AmountPaid:     paid,
		ChangeAmount:   change,
		Status:         enum.OrderStatusPending,
		AttendantCode:  input.AttendantCode,
		AttendantName:  input.AttendantName,
		Items:          items,
	}
	if orderType == enum.OrderTypeEntrega {
		addr := input.DeliveryAddr
		order.DeliveryAddr = &addr
	}
	if input.Observations != "" {
		obs := input.Observations
		order.Observations = &obs
	}

	return order, nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders newest first, optionally filtered by status.
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	params.Pagination.Validate()
	return pagination.NewPaginatedResult(orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateOrderStatus moves an order to a new workflow status.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if !status.Valid() {
		return apperror.NewBadRequestError("Unknown order status")
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Order")
		}
		return err
	}
	return nil
}

// GetReceipts renders the receipt texts for an order without printing.
func (s *OrderService) GetReceipts(ctx context.Context, id uuid.UUID) ([]entity.Receipt, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return RenderReceipts(order, settings), nil
}

// normalizeProteins folds the legacy singular protein field and the
// proteins list into one list, dropping blank entries.
func normalizeProteins(proteins []string, legacy string) entity.StringList {
	src := proteins
	if len(src) == 0 && legacy != "" {
		src = []string{legacy}
	}
	out := make(entity.StringList, 0, len(src))
	for _, p := range src {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// toCents converts a decimal money value to integer cents.
func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}
