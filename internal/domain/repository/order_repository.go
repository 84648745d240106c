package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations.
// There is deliberately no Delete: orders are permanent and order numbers
// are never reused.
type OrderRepository interface {
	// Create persists the order and assigns its sequential order number
	// atomically with respect to all concurrent creations.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	MarkPrinted(ctx context.Context, id uuid.UUID) error
	MaxOrderNumber(ctx context.Context) (int, error)
}

// OrderFilterParams contains filtering parameters for order queries.
// Results are always ordered by created_at descending.
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	Search     string // matches customer name
}
