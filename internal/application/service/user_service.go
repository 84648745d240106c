package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
)

// UserService handles staff user management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Code     string
	Name     string
	Role     string
	Password string
}

// CreateUser registers a staff member. Admins require a password;
// attendant passwords are optional and ignored at login.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	var fieldErrs []apperror.FieldError

	if strings.TrimSpace(input.Code) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "code", Message: "Login code is required"})
	}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}

	role := enum.UserRole(input.Role)
	if input.Role == "" {
		role = enum.RoleAttendant
	}
	if !role.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "role", Message: "Role must be attendant or admin"})
	}
	if role == enum.RoleAdmin && input.Password == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "password", Message: "Admins require a password"})
	}

	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	existing, err := s.userRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A user with this code already exists")
	}

	user := &entity.User{
		Code:   input.Code,
		Name:   input.Name,
		Role:   role,
		Active: true,
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		user.Password = &hashed
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers lists staff users, optionally restricted to active ones.
func (s *UserService) ListUsers(ctx context.Context, activeOnly bool) ([]entity.User, error) {
	return s.userRepo.List(ctx, activeOnly)
}

// UpdateUserInput represents the update user input; nil fields are left
// unchanged.
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Password *string
	Active   *bool
}

// UpdateUser applies a partial update to a staff member.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		role := enum.UserRole(*input.Role)
		if !role.Valid() {
			return nil, apperror.NewBadRequestError("Role must be attendant or admin")
		}
		user.Role = role
	}
	if input.Password != nil && *input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		user.Password = &hashed
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser flags a staff member inactive. Users are never deleted
// so past orders keep their attendant attribution.
func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Deactivate(ctx, id)
}
