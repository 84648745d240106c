package entity

import "time"

// Printer backends selectable in Settings.
const (
	PrinterTypeGenericFile = "generic-file"
	PrinterTypeThermal     = "thermal"
)

// SettingsID is the fixed primary key of the settings singleton row.
const SettingsID = "settings"

// Settings is the store-wide configuration singleton. Exactly one row
// exists, auto-created with defaults on first read.
type Settings struct {
	ID              string    `gorm:"primary_key;size:20" json:"id"`
	StoreName       string    `gorm:"size:255" json:"store_name"`
	StoreAddress    string    `gorm:"size:255" json:"store_address"`
	StorePhone      string    `gorm:"size:50" json:"store_phone"`
	LogoURL         *string   `gorm:"size:255" json:"logo_url,omitempty"`
	PrinterType     string    `gorm:"size:20;default:'generic-file'" json:"printer_type"`
	PrinterIP       *string   `gorm:"size:50" json:"printer_ip,omitempty"`
	PrinterPort     int       `gorm:"default:9100" json:"printer_port"`
	SoftwareCompany string    `gorm:"size:255" json:"software_company"`
	SoftwarePhone   string    `gorm:"size:50" json:"software_phone"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the settings row created on first read.
func DefaultSettings() *Settings {
	return &Settings{
		ID:              SettingsID,
		StoreName:       "Dona Guedes",
		StoreAddress:    "Rua Principal, 123",
		StorePhone:      "(19) 99999-9999",
		PrinterType:     PrinterTypeGenericFile,
		PrinterPort:     9100,
		SoftwareCompany: "Japao Informatica",
		SoftwarePhone:   "(19) 99813-2220",
	}
}

// ThermalConfigured reports whether the thermal backend has a printer
// address to dial.
func (s *Settings) ThermalConfigured() bool {
	return s.PrinterType == PrinterTypeThermal && s.PrinterIP != nil && *s.PrinterIP != ""
}
