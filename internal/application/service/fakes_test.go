package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/enum"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
)

// fakeOrderRepo is an in-memory OrderRepository. Number assignment is
// serialized under the mutex, mirroring the counter-row transaction of the
// real implementation.
type fakeOrderRepo struct {
	mu      sync.Mutex
	orders  map[uuid.UUID]*entity.Order
	counter int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	order.OrderNumber = r.counter
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []entity.Order
	for _, o := range r.orders {
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) MarkPrinted(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Printed = true
	return nil
}

func (r *fakeOrderRepo) MaxOrderNumber(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counter, nil
}

// fakeSettingsRepo is an in-memory SettingsRepository.
type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.Settings
}

func newFakeSettingsRepo(settings *entity.Settings) *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: settings}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.settings == nil {
		r.settings = entity.DefaultSettings()
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *settings
	r.settings = &copied
	return nil
}
