package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
)

// UserRepository defines the interface for staff user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByCode(ctx context.Context, code string) (*entity.User, error)
	List(ctx context.Context, activeOnly bool) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Deactivate flags the user inactive; staff rows are never removed so
	// past orders keep their attendant attribution.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
