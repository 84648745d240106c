package service

import (
	"context"

	"github.com/dguedes/marmitaria-api/internal/domain/entity"
	"github.com/dguedes/marmitaria-api/internal/domain/repository"
	"github.com/dguedes/marmitaria-api/pkg/apperror"
)

// SettingsService handles the store-wide settings singleton.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the settings, creating defaults on first call.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the update settings input; nil fields are
// left unchanged.
type UpdateSettingsInput struct {
	StoreName       *string
	StoreAddress    *string
	StorePhone      *string
	LogoURL         *string
	PrinterType     *string
	PrinterIP       *string
	PrinterPort     *int
	SoftwareCompany *string
	SoftwarePhone   *string
}

// UpdateSettings applies a partial update to the settings singleton.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.StoreAddress != nil {
		settings.StoreAddress = *input.StoreAddress
	}
	if input.StorePhone != nil {
		settings.StorePhone = *input.StorePhone
	}
	if input.LogoURL != nil {
		settings.LogoURL = input.LogoURL
	}
	if input.PrinterType != nil {
		switch *input.PrinterType {
		case entity.PrinterTypeGenericFile, entity.PrinterTypeThermal:
			settings.PrinterType = *input.PrinterType
		default:
			return nil, apperror.NewBadRequestError("Printer type must be generic-file or thermal")
		}
	}
	if input.PrinterIP != nil {
		settings.PrinterIP = input.PrinterIP
	}
	if input.PrinterPort != nil {
		if *input.PrinterPort < 1 || *input.PrinterPort > 65535 {
			return nil, apperror.NewBadRequestError("Printer port must be between 1 and 65535")
		}
		settings.PrinterPort = *input.PrinterPort
	}
	if input.SoftwareCompany != nil {
		settings.SoftwareCompany = *input.SoftwareCompany
	}
	if input.SoftwarePhone != nil {
		settings.SoftwarePhone = *input.SoftwarePhone
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
