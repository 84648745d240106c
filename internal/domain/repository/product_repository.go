package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	List(ctx context.Context, activeOnly bool) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ToggleActive(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeletePermanent(ctx context.Context, id uuid.UUID) error
}
