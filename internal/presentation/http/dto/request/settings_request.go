package request

// UpdateSettingsRequest represents a settings update request
type UpdateSettingsRequest struct {
	StoreName       *string `json:"store_name"`
	StoreAddress    *string `json:"store_address"`
	StorePhone      *string `json:"store_phone"`
	LogoURL         *string `json:"logo_url"`
	PrinterType     *string `json:"printer_type"`
	PrinterIP       *string `json:"printer_ip"`
	PrinterPort     *int    `json:"printer_port"`
	SoftwareCompany *string `json:"software_company"`
	SoftwarePhone   *string `json:"software_phone"`
}
