package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
	"github.com/dguedes/marmitaria-api/pkg/pagination"
)

// Customer types.
const (
	CustomerTypeNormal  = "normal"
	CustomerTypeCompany = "company"
)

// CustomerService handles customer management.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name    string
	Phone   string
	Address string
	Type    string
}

// CreateCustomer registers a customer.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	var fieldErrs []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	customerType := input.Type
	if customerType == "" {
		customerType = CustomerTypeNormal
	}
	if customerType != CustomerTypeNormal && customerType != CustomerTypeCompany {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "type", Message: "Type must be normal or company"})
	}

	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	customer := &entity.Customer{
		Name: input.Name,
		Type: customerType,
	}
	if input.Phone != "" {
		phone := input.Phone
		customer.Phone = &phone
	}
	if input.Address != "" {
		addr := input.Address
		customer.Address = &addr
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers by name, optionally filtered by a name search.
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	params.Validate()
	return pagination.NewPaginatedResult(customers,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateCustomerInput represents the update customer input; nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	Name    *string
	Phone   *string
	Address *string
	Type    *string
}

// UpdateCustomer applies a partial update to a customer.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.Type != nil {
		if *input.Type != CustomerTypeNormal && *input.Type != CustomerTypeCompany {
			return nil, apperror.NewBadRequestError("Type must be normal or company")
		}
		customer.Type = *input.Type
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer removes a customer. Orders only carry the customer name,
// so history is unaffected.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	return s.customerRepo.Delete(ctx, id)
}
