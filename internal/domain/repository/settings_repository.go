package repository

import (
	"context"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the settings singleton.
type SettingsRepository interface {
	// Get returns the settings row, creating it with defaults on first call.
	Get(ctx context.Context) (*entity.Settings, error)
	// Update replaces the singleton atomically; concurrent readers never
	// observe a partially written row.
	Update(ctx context.Context, settings *entity.Settings) error
}
