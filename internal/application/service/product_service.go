package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
)

// ProductService handles catalog management.
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input. Prices arrive as
// decimals; size-priced types (protein, accompaniment) use PriceP/M/G and
// flat-priced types use Price.
type CreateProductInput struct {
	Name   string
	Type   string
	Price  float64
	PriceP float64
	PriceM float64
	PriceG float64
}

// CreateProduct adds a catalog item.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrs []apperror.FieldError

	if strings.TrimSpace(input.Name) == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	productType := enum.ProductType(input.Type)
	if !productType.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "type", Message: "Unknown product type"})
	}
	if input.Price < 0 || input.PriceP < 0 || input.PriceM < 0 || input.PriceG < 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "price", Message: "Prices cannot be negative"})
	}

	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	product := &entity.Product{
		Name:   input.Name,
		Type:   productType,
		Price:  toCents(input.Price),
		PriceP: toCents(input.PriceP),
		PriceM: toCents(input.PriceM),
		PriceG: toCents(input.PriceG),
		Active: true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists catalog items, optionally restricted to active ones.
func (s *ProductService) ListProducts(ctx context.Context, activeOnly bool) ([]entity.Product, error) {
	return s.productRepo.List(ctx, activeOnly)
}

// UpdateProductInput represents the update product input; nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name   *string
	Type   *string
	Price  *float64
	PriceP *float64
	PriceM *float64
	PriceG *float64
	Active *bool
}

// UpdateProduct applies a partial update to a catalog item.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Type != nil {
		productType := enum.ProductType(*input.Type)
		if !productType.Valid() {
			return nil, apperror.NewBadRequestError("Unknown product type")
		}
		product.Type = productType
	}
	if input.Price != nil {
		product.Price = toCents(*input.Price)
	}
	if input.PriceP != nil {
		product.PriceP = toCents(*input.PriceP)
	}
	if input.PriceM != nil {
		product.PriceM = toCents(*input.PriceM)
	}
	if input.PriceG != nil {
		product.PriceG = toCents(*input.PriceG)
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ToggleProduct flips a product between active and inactive.
func (s *ProductService) ToggleProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return nil, err
	}
	if err := s.productRepo.ToggleActive(ctx, id); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a catalog item so historical orders keep
// rendering its name.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// DeleteProductPermanent removes a catalog item for good.
func (s *ProductService) DeleteProductPermanent(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.DeletePermanent(ctx, id)
}
