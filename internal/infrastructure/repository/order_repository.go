package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	domainRepo "github.com/dguedes/marmitaria-api/internal/domain/repository"
)

// OrderCounter is the single-row table backing order number assignment.
// Incrementing it inside the insert transaction serializes concurrent
// creations under both dialects; the unique index on orders.order_number
// is the backstop.
type OrderCounter struct {
	ID    int `gorm:"primaryKey"`
	Value int `gorm:"not null"`
}

// TableName returns the table name for the OrderCounter model
func (OrderCounter) TableName() string {
	return "order_counters"
}

const orderCounterID = 1

// SeedOrderCounter creates the counter row from the current maximum order
// number if it does not exist yet.
func SeedOrderCounter(db *gorm.DB) error {
	var counter OrderCounter
	err := db.First(&counter, "id = ?", orderCounterID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var max sql.NullInt64
	if err := db.Model(&entity.Order{}).Select("MAX(order_number)").Scan(&max).Error; err != nil {
		return err
	}
	return db.Create(&OrderCounter{ID: orderCounterID, Value: int(max.Int64)}).Error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&OrderCounter{}).
			Where("id = ?", orderCounterID).
			Update("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// first boot without a seeded counter
			if err := tx.Create(&OrderCounter{ID: orderCounterID, Value: 1}).Error; err != nil {
				return err
			}
		}

		var counter OrderCounter
		if err := tx.First(&counter, "id = ?", orderCounterID).Error; err != nil {
			return err
		}

		order.OrderNumber = counter.Value
		return tx.Create(order).Error
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		query = query.Where("customer_name LIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.position ASC")
		}).
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("printed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) MaxOrderNumber(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("MAX(order_number)").
		Scan(&max).Error
	return int(max.Int64), err
}
