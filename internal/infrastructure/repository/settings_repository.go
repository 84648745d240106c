package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	domainRepo "github.com/dguedes/marmitaria-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", entity.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := entity.DefaultSettings()
		if err := r.db.WithContext(ctx).Create(defaults).Error; err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.Settings) error {
	settings.ID = entity.SettingsID
	// Save writes the full row in one statement, so concurrent readers see
	// either the old or the new settings, never a mix.
	return r.db.WithContext(ctx).Save(settings).Error
}
